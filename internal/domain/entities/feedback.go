package entities

// FeedbackRecord is the nested feedback document inside an AnalysisResult.
// Every nested object is a pointer and every slice may be nil: the engine is
// free to omit any section, and consumers must treat a missing section as
// "do not render", never as an error.
type FeedbackRecord struct {
	OverallSentiment   string   `json:"overall_sentiment,omitempty"`
	KeyTopics          []string `json:"key_topics,omitempty"`
	Summary            string   `json:"summary,omitempty"`
	Recommendations    []string `json:"recommendations,omitempty"`
	ActionableInsights []string `json:"actionable_insights,omitempty"`
	QualityScore       float64  `json:"quality_score,omitempty"`
	WordCount          int      `json:"word_count,omitempty"`

	ContentAnalysis     *ContentAnalysis     `json:"content_analysis,omitempty"`
	SpeakingPatterns    *SpeakingPatterns    `json:"speaking_patterns,omitempty"`
	Questions           []QuestionReview     `json:"questions,omitempty"`
	CommunicationSkills *CommunicationSkills `json:"communication_skills,omitempty"`
	TechnicalSkills     *TechnicalSkills     `json:"technical_skills,omitempty"`

	InterviewerNotes string  `json:"interviewer_notes,omitempty"`
	ConfidenceLevel  float64 `json:"confidence_level,omitempty"`
	CultureFit       float64 `json:"culture_fit,omitempty"`
	LearningAptitude float64 `json:"learning_aptitude,omitempty"`
	FinalAssessment  string  `json:"final_assessment,omitempty"`
}

// ContentAnalysis maps the fixed analysis dimensions to descriptive values
// (typically "high" / "medium" / "low"; treated as opaque labels)
type ContentAnalysis struct {
	Clarity            string `json:"clarity,omitempty"`
	Engagement         string `json:"engagement,omitempty"`
	InformationDensity string `json:"information_density,omitempty"`
	SpeakerConfidence  string `json:"speaker_confidence,omitempty"`
}

// SpeakingPatterns describes delivery characteristics of the candidate
type SpeakingPatterns struct {
	Pace           string   `json:"pace,omitempty"`
	FillerWords    int      `json:"filler_words,omitempty"`
	Repetitions    int      `json:"repetitions,omitempty"`
	TechnicalTerms []string `json:"technical_terms,omitempty"`
}

// QuestionReview is one interview question with the candidate's answer and
// the engine's assessment of it
type QuestionReview struct {
	Question string  `json:"question"`
	Answer   string  `json:"answer"`
	Rating   float64 `json:"rating"`
	Feedback string  `json:"feedback"`
}

// CommunicationSkills summarizes soft-skill observations
type CommunicationSkills struct {
	Summary               string  `json:"summary,omitempty"`
	Impact                string  `json:"impact,omitempty"`
	Rating                float64 `json:"rating,omitempty"`
	LanguageFluency       float64 `json:"language_fluency,omitempty"`
	TechnicalArticulation float64 `json:"technical_articulation,omitempty"`
}

// TechnicalSkills holds the per-skill assessments plus the overall technical
// review written by the engine
type TechnicalSkills struct {
	Skills             []SkillAssessment `json:"skills,omitempty"`
	OverallTechReview  string            `json:"overall_tech_review,omitempty"`
	StrengthsSummary   string            `json:"strengths_summary,omitempty"`
	WeaknessesSummary  string            `json:"weaknesses_summary,omitempty"`
	Verdict            string            `json:"verdict,omitempty"`
	DepthInCoreTopics  float64           `json:"depth_in_core_topics,omitempty"`
	BreadthOfTechStack float64           `json:"breadth_of_tech_stack,omitempty"`
}
