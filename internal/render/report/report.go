// Package report produces the downloadable PDF rendition of an analysis.
// It consumes the same view model as the HTML dashboard so both outputs
// always show identical derived values.
package report

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/talentlens/talentlens/internal/render"
)

// FileName is the fixed download name for every generated report.
const FileName = "interview-analysis-report.pdf"

const (
	pageMargin = 15.0
	labelWidth = 55.0
)

// Generate renders the view into a PDF document.
func Generate(view *render.View) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	g := &generator{pdf: pdf, tr: tr, view: view}
	g.summaryPage()
	if view.Technical != nil && (len(view.Technical.RequiredSkills) > 0 || len(view.Technical.DetectedSkills) > 0) {
		g.skillsPage()
	}
	if len(view.Questions) > 0 {
		g.questionsPage()
	}
	if view.Technical != nil || view.Communication != nil || view.Assessment != nil {
		g.assessmentPage()
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

type generator struct {
	pdf  *fpdf.Fpdf
	tr   func(string) string
	view *render.View
}

func (g *generator) summaryPage() {
	g.pdf.AddPage()

	g.pdf.SetFont("Helvetica", "B", 18)
	g.pdf.CellFormat(0, 10, "Interview Analysis Report", "", 1, "L", false, 0, "")
	g.pdf.SetFont("Helvetica", "", 9)
	g.pdf.SetTextColor(110, 110, 110)
	meta := g.view.GeneratedAt.Format("Jan 2, 2006 15:04")
	if g.view.FileName != "" {
		meta = g.view.FileName + "  ·  " + meta
	}
	g.pdf.CellFormat(0, 5, g.tr(meta), "", 1, "L", false, 0, "")
	g.pdf.SetTextColor(0, 0, 0)
	g.pdf.Ln(4)

	if !g.view.HasFeedback {
		g.paragraph("No analysis feedback is available for this recording.")
		return
	}

	g.heading("Summary")
	g.row("Overall sentiment", g.view.Sentiment)
	g.row("Quality", fmt.Sprintf("%d%%", g.view.QualityPct))
	g.row("Word count", fmt.Sprintf("%d", g.view.WordCount))
	g.row("Duration", render.FormatTimestamp(g.view.Duration))
	if g.view.Summary != "" {
		g.pdf.Ln(2)
		g.paragraph(g.view.Summary)
	}

	g.heading("Key Topics")
	if len(g.view.KeyTopics) == 0 {
		g.paragraph(render.EmptyKeyTopics)
	} else {
		for _, topic := range g.view.KeyTopics {
			g.bullet(topic)
		}
	}

	if len(g.view.Recommendations) > 0 {
		g.heading("Recommendations")
		for _, r := range g.view.Recommendations {
			g.bullet(r)
		}
	}

	if len(g.view.ActionableInsights) > 0 {
		g.heading("Actionable Insights")
		for _, a := range g.view.ActionableInsights {
			g.bullet(a)
		}
	}

	if c := g.view.Content; c != nil {
		g.heading("Content Analysis")
		g.row("Clarity", c.Clarity)
		g.row("Engagement", c.Engagement)
		g.row("Information density", c.InformationDensity)
		g.row("Speaker confidence", c.SpeakerConfidence)
	}

	if s := g.view.Speaking; s != nil {
		g.heading("Speaking Patterns")
		g.row("Pace", s.Pace)
		g.row("Filler words", fmt.Sprintf("%d", s.FillerWords))
		g.row("Repetitions", fmt.Sprintf("%d", s.Repetitions))
		if len(s.TechnicalTerms) > 0 {
			g.row("Technical terms", joinLimited(s.TechnicalTerms, 12))
		}
	}
}

func (g *generator) skillsPage() {
	g.pdf.AddPage()
	ts := g.view.Technical

	g.heading("Skills Assessment")
	g.row("Required skills covered", ts.TableCoverage.Fraction+fmt.Sprintf(" (%d%%)", ts.TableCoverage.Percent))
	if ts.HasRequested {
		g.row("Requested skill coverage", ts.RequestedCoverage.Fraction+fmt.Sprintf(" (%d%%)", ts.RequestedCoverage.Percent))
	}
	g.pdf.Ln(3)

	if len(ts.RequiredSkills) > 0 {
		g.subheading("Required Skills")
		g.skillTable(ts.RequiredSkills)
	}
	if len(ts.DetectedSkills) > 0 {
		g.subheading("Other Skills Detected")
		g.skillTable(ts.DetectedSkills)
	}
}

func (g *generator) skillTable(rows []render.SkillRow) {
	widths := []float64{45, 35, 20, 80}
	headers := []string{"Skill", "Level", "Rating", "Assessment"}

	g.pdf.SetFont("Helvetica", "B", 9)
	g.pdf.SetFillColor(240, 242, 246)
	for i, h := range headers {
		g.pdf.CellFormat(widths[i], 7, h, "1", 0, "L", true, 0, "")
	}
	g.pdf.Ln(-1)

	g.pdf.SetFont("Helvetica", "", 9)
	for _, row := range rows {
		assessment := row.DetailedFeedback
		if row.NotAvailable {
			assessment = "Not discussed in the interview"
		} else if row.RatingLabel != "" {
			assessment = row.RatingLabel + ". " + assessment
		}
		g.pdf.CellFormat(widths[0], 7, g.tr(truncate(row.Name, 28)), "1", 0, "L", false, 0, "")
		g.pdf.CellFormat(widths[1], 7, g.tr(row.LevelDisplay), "1", 0, "L", false, 0, "")
		g.pdf.CellFormat(widths[2], 7, row.RatingDisplay, "1", 0, "C", false, 0, "")
		g.pdf.CellFormat(widths[3], 7, g.tr(truncate(assessment, 55)), "1", 0, "L", false, 0, "")
		g.pdf.Ln(-1)
	}
	g.pdf.Ln(3)
}

func (g *generator) questionsPage() {
	g.pdf.AddPage()
	g.heading("Interview Questions")

	for i, q := range g.view.Questions {
		g.pdf.SetFont("Helvetica", "B", 10)
		g.pdf.MultiCell(0, 6, g.tr(fmt.Sprintf("Q%d. %s", i+1, q.Question)), "", "L", false)
		g.pdf.SetFont("Helvetica", "", 9)
		g.pdf.MultiCell(0, 5, g.tr(q.Answer), "", "L", false)
		g.pdf.SetTextColor(90, 90, 90)
		g.pdf.MultiCell(0, 5, g.tr(fmt.Sprintf("%s (%d%%) — %s", q.RatingLabel, q.RatingPct, q.Feedback)), "", "L", false)
		g.pdf.SetTextColor(0, 0, 0)
		g.pdf.Ln(3)
	}
}

func (g *generator) assessmentPage() {
	g.pdf.AddPage()

	if ts := g.view.Technical; ts != nil {
		g.heading("Technical Evaluation")
		g.row("Overall proficiency", fmt.Sprintf("%d%% (%s)", ts.ProficiencyPct, ts.ProficiencyLabel))
		g.row("Depth in core topics", fmt.Sprintf("%d%%", ts.DepthPct))
		g.row("Breadth of tech stack", fmt.Sprintf("%d%%", ts.BreadthPct))
		if ts.OverallTechReview != "" {
			g.pdf.Ln(2)
			g.paragraph(ts.OverallTechReview)
		}
		if ts.StrengthsSummary != "" {
			g.subheading("Strengths")
			g.paragraph(ts.StrengthsSummary)
		}
		if ts.WeaknessesSummary != "" {
			g.subheading("Weaknesses")
			g.paragraph(ts.WeaknessesSummary)
		}
		if ts.Verdict != "" {
			g.subheading("Verdict")
			g.paragraph(ts.Verdict)
		}
	}

	if cs := g.view.Communication; cs != nil {
		g.heading("Communication Skills")
		g.row("Rating", fmt.Sprintf("%d%% (%s)", cs.RatingPct, cs.RatingLabel))
		g.row("Language fluency", fmt.Sprintf("%d%%", cs.FluencyPct))
		g.row("Technical articulation", fmt.Sprintf("%d%%", cs.ArticulationPct))
		if cs.Summary != "" {
			g.pdf.Ln(2)
			g.paragraph(cs.Summary)
		}
		if cs.Impact != "" {
			g.paragraph(cs.Impact)
		}
	}

	if a := g.view.Assessment; a != nil {
		g.heading("Final Assessment")
		g.row("Confidence level", fmt.Sprintf("%d%% (%s)", a.ConfidencePct, a.ConfidenceLabel))
		g.row("Culture fit", fmt.Sprintf("%d%% (%s)", a.CultureFitPct, a.CultureFitLabel))
		g.row("Learning aptitude", fmt.Sprintf("%d%% (%s)", a.LearningPct, a.LearningLabel))
		if a.InterviewerNotes != "" {
			g.subheading("Interviewer Notes")
			g.paragraph(a.InterviewerNotes)
		}
		if a.FinalAssessment != "" {
			g.subheading("Conclusion")
			g.paragraph(a.FinalAssessment)
		}
	}
}

func (g *generator) heading(text string) {
	g.pdf.Ln(3)
	g.pdf.SetFont("Helvetica", "B", 13)
	g.pdf.SetTextColor(30, 58, 138)
	g.pdf.CellFormat(0, 8, text, "", 1, "L", false, 0, "")
	g.pdf.SetTextColor(0, 0, 0)
	g.pdf.SetFont("Helvetica", "", 10)
}

func (g *generator) subheading(text string) {
	g.pdf.Ln(1)
	g.pdf.SetFont("Helvetica", "B", 10)
	g.pdf.CellFormat(0, 6, text, "", 1, "L", false, 0, "")
	g.pdf.SetFont("Helvetica", "", 10)
}

func (g *generator) row(label, value string) {
	g.pdf.SetFont("Helvetica", "", 10)
	g.pdf.SetTextColor(110, 110, 110)
	g.pdf.CellFormat(labelWidth, 6, g.tr(label), "", 0, "L", false, 0, "")
	g.pdf.SetTextColor(0, 0, 0)
	g.pdf.MultiCell(0, 6, g.tr(value), "", "L", false)
}

func (g *generator) paragraph(text string) {
	g.pdf.SetFont("Helvetica", "", 10)
	g.pdf.MultiCell(0, 5.5, g.tr(text), "", "L", false)
}

func (g *generator) bullet(text string) {
	g.pdf.SetFont("Helvetica", "", 10)
	g.pdf.CellFormat(6, 5.5, g.tr("•"), "", 0, "C", false, 0, "")
	g.pdf.MultiCell(0, 5.5, g.tr(text), "", "L", false)
}

// truncate cuts on rune boundaries so a multibyte character is never split
// before the cp1252 translation
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

func joinLimited(items []string, max int) string {
	if len(items) > max {
		items = items[:max]
	}
	out := ""
	for i, item := range items {
		if i > 0 {
			out += ", "
		}
		out += item
	}
	return out
}
