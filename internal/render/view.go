// Package render builds the presentation view of an analysis result. The
// dashboard templates and the PDF report both consume the same View, so every
// percentage and bucket label is computed exactly once.
package render

import (
	"fmt"
	"time"

	"github.com/talentlens/talentlens/internal/domain/entities"
	"github.com/talentlens/talentlens/internal/usecase/scoring"
)

// EmptyKeyTopics is the explicit empty-state line for the topics section
const EmptyKeyTopics = "No key topics identified"

// Placeholders for skills that were requested but never discussed
const (
	NotMentionedLevel  = "Not Mentioned"
	NotMentionedRating = "-"
)

// View is the fully derived presentation model of one analyzed session
type View struct {
	SessionID   string
	FileName    string
	VideoURL    string
	GeneratedAt time.Time

	Duration   float64
	Transcript []TranscriptRow
	FullText   string

	HasFeedback bool

	Sentiment          string
	Summary            string
	KeyTopics          []string
	Recommendations    []string
	ActionableInsights []string
	QualityScore       float64
	QualityPct         int
	WordCount          int

	Content       *ContentSection
	Speaking      *SpeakingSection
	Questions     []QuestionRow
	Communication *CommunicationSection
	Technical     *TechnicalSection
	Assessment    *AssessmentSection
}

// TranscriptRow is one formatted transcript segment
type TranscriptRow struct {
	Start         string
	End           string
	Text          string
	ConfidencePct int
}

// ContentSection mirrors the fixed content_analysis keys
type ContentSection struct {
	Clarity            string
	Engagement         string
	InformationDensity string
	SpeakerConfidence  string
}

// SpeakingSection mirrors speaking_patterns
type SpeakingSection struct {
	Pace           string
	FillerWords    int
	Repetitions    int
	TechnicalTerms []string
}

// QuestionRow is one interview question with its derived rating display
type QuestionRow struct {
	Question    string
	Answer      string
	Feedback    string
	Rating      float64
	RatingPct   int
	RatingLabel string
}

// CommunicationSection carries the soft-skill scores and their derivations
type CommunicationSection struct {
	Summary         string
	Impact          string
	Rating          float64
	RatingPct       int
	RatingLabel     string
	FluencyPct      int
	ArticulationPct int
}

// TechnicalSection carries skill groups plus both coverage variants
type TechnicalSection struct {
	ProficiencyPct   int
	ProficiencyLabel string
	DepthPct         int
	BreadthPct       int

	OverallTechReview string
	StrengthsSummary  string
	WeaknessesSummary string
	Verdict           string

	RequiredSkills []SkillRow
	DetectedSkills []SkillRow

	// Coverage over skills the engine flagged required (skills table)
	TableCoverage CoverageRow
	// Coverage over the reviewer's requested-skills input (summary card)
	RequestedCoverage CoverageRow
	HasRequested      bool
}

// CoverageRow is a displayed coverage fraction
type CoverageRow struct {
	Covered  int
	Total    int
	Percent  int
	Fraction string
}

// SkillRow is one skill with its display fields resolved. A row for a skill
// that never came up keeps its place in the list with placeholder displays.
type SkillRow struct {
	Name             string
	Required         bool
	NotAvailable     bool
	LevelDisplay     string
	RatingDisplay    string
	RatingLabel      string
	RatingScore      float64
	RatingPct        int
	DetailedFeedback string
	Strengths        []string
	Areas            []string
	Examples         []string
}

// BuildView derives the complete view from a session's analysis result
func BuildView(session *entities.ReviewSession) *View {
	result := session.Result

	v := &View{
		SessionID:   session.ID.String(),
		FileName:    session.FileName,
		VideoURL:    session.VideoURL,
		GeneratedAt: time.Now(),
	}
	if result == nil {
		return v
	}

	v.Duration = result.Duration
	v.FullText = result.FullText
	for _, seg := range result.Transcription {
		v.Transcript = append(v.Transcript, TranscriptRow{
			Start:         FormatTimestamp(seg.StartTime),
			End:           FormatTimestamp(seg.EndTime),
			Text:          seg.Text,
			ConfidencePct: int(seg.Confidence * 100),
		})
	}

	fb := result.Feedback
	if fb == nil {
		return v
	}
	v.HasFeedback = true

	v.Sentiment = fb.OverallSentiment
	v.Summary = fb.Summary
	v.KeyTopics = fb.KeyTopics
	v.Recommendations = fb.Recommendations
	v.ActionableInsights = fb.ActionableInsights
	v.QualityScore = fb.QualityScore
	v.QualityPct = scoring.QualityPercentage(fb.QualityScore)
	v.WordCount = fb.WordCount

	if ca := fb.ContentAnalysis; ca != nil {
		v.Content = &ContentSection{
			Clarity:            ca.Clarity,
			Engagement:         ca.Engagement,
			InformationDensity: ca.InformationDensity,
			SpeakerConfidence:  ca.SpeakerConfidence,
		}
	}

	if sp := fb.SpeakingPatterns; sp != nil {
		v.Speaking = &SpeakingSection{
			Pace:           sp.Pace,
			FillerWords:    sp.FillerWords,
			Repetitions:    sp.Repetitions,
			TechnicalTerms: sp.TechnicalTerms,
		}
	}

	for _, q := range fb.Questions {
		v.Questions = append(v.Questions, QuestionRow{
			Question:    q.Question,
			Answer:      q.Answer,
			Feedback:    q.Feedback,
			Rating:      q.Rating,
			RatingPct:   scoring.Percentage(q.Rating),
			RatingLabel: scoring.PerformanceLabel(q.Rating),
		})
	}

	if cs := fb.CommunicationSkills; cs != nil {
		v.Communication = &CommunicationSection{
			Summary:         cs.Summary,
			Impact:          cs.Impact,
			Rating:          cs.Rating,
			RatingPct:       scoring.Percentage(cs.Rating),
			RatingLabel:     scoring.PerformanceLabel(cs.Rating),
			FluencyPct:      scoring.Percentage(cs.LanguageFluency),
			ArticulationPct: scoring.Percentage(cs.TechnicalArticulation),
		}
	}

	if ts := fb.TechnicalSkills; ts != nil {
		v.Technical = buildTechnicalSection(ts, session.RequiredSkills)
	}

	v.Assessment = &AssessmentSection{
		ConfidencePct:    scoring.Percentage(fb.ConfidenceLevel),
		ConfidenceLabel:  scoring.PerformanceLabel(fb.ConfidenceLevel),
		CultureFitPct:    scoring.Percentage(fb.CultureFit),
		CultureFitLabel:  scoring.PerformanceLabel(fb.CultureFit),
		LearningPct:      scoring.Percentage(fb.LearningAptitude),
		LearningLabel:    scoring.PerformanceLabel(fb.LearningAptitude),
		InterviewerNotes: fb.InterviewerNotes,
		FinalAssessment:  fb.FinalAssessment,
	}

	return v
}

// AssessmentSection carries the closing evaluation scores
type AssessmentSection struct {
	ConfidencePct    int
	ConfidenceLabel  string
	CultureFitPct    int
	CultureFitLabel  string
	LearningPct      int
	LearningLabel    string
	InterviewerNotes string
	FinalAssessment  string
}

func buildTechnicalSection(ts *entities.TechnicalSkills, requested []string) *TechnicalSection {
	sec := &TechnicalSection{
		ProficiencyPct:    scoring.TechProficiencyPercentage(ts.DepthInCoreTopics, ts.BreadthOfTechStack),
		DepthPct:          scoring.Percentage(ts.DepthInCoreTopics),
		BreadthPct:        scoring.Percentage(ts.BreadthOfTechStack),
		OverallTechReview: ts.OverallTechReview,
		StrengthsSummary:  ts.StrengthsSummary,
		WeaknessesSummary: ts.WeaknessesSummary,
		Verdict:           ts.Verdict,
		HasRequested:      len(requested) > 0,
	}
	sec.ProficiencyLabel = scoring.AssessmentLabel((ts.DepthInCoreTopics + ts.BreadthOfTechStack) / 2)

	required, detected := scoring.PartitionSkills(ts.Skills)
	for _, s := range required {
		sec.RequiredSkills = append(sec.RequiredSkills, buildSkillRow(s))
	}
	for _, s := range detected {
		sec.DetectedSkills = append(sec.DetectedSkills, buildSkillRow(s))
	}

	sec.TableCoverage = coverageRow(scoring.RequiredCoverage(ts.Skills))
	sec.RequestedCoverage = coverageRow(scoring.RequestedCoverage(requested, ts.Skills))

	return sec
}

func buildSkillRow(s entities.SkillAssessment) SkillRow {
	row := SkillRow{
		Name:             s.SkillName,
		Required:         s.Required(),
		DetailedFeedback: s.DetailedFeedback,
		Strengths:        s.Strengths,
		Areas:            s.AreasForImprovement,
		Examples:         s.ExamplesMentioned,
	}

	if !s.Discussed() {
		// Requested but never discussed: stays in the list, score display
		// suppressed so the absence is visible to the reviewer
		row.NotAvailable = true
		row.LevelDisplay = NotMentionedLevel
		row.RatingDisplay = NotMentionedRating
		return row
	}

	row.LevelDisplay = s.Level
	row.RatingScore = s.RatingScore
	row.RatingPct = scoring.Percentage(s.RatingScore)
	row.RatingDisplay = fmt.Sprintf("%d%%", row.RatingPct)
	row.RatingLabel = s.RatingText
	if row.RatingLabel == "" {
		row.RatingLabel = scoring.AssessmentLabel(s.RatingScore)
	}
	return row
}

func coverageRow(cov scoring.Coverage) CoverageRow {
	return CoverageRow{
		Covered:  cov.Covered,
		Total:    cov.Total,
		Percent:  cov.Percent(),
		Fraction: fmt.Sprintf("%d/%d", cov.Covered, cov.Total),
	}
}

// FormatTimestamp renders seconds as mm:ss (or h:mm:ss past an hour)
func FormatTimestamp(seconds float64) string {
	total := int(seconds)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
