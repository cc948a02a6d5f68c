package entities

// Skill level labels emitted by the analysis engine
const (
	SkillLevelBeginner     = "Beginner"
	SkillLevelIntermediate = "Intermediate"
	SkillLevelProfessional = "Professional"
	SkillLevelExpert       = "Expert"
)

// Skill rating text labels emitted by the analysis engine
const (
	SkillRatingExcellent        = "Excellent"
	SkillRatingVeryGood         = "Very Good"
	SkillRatingGood             = "Good"
	SkillRatingSatisfactory     = "Satisfactory"
	SkillRatingNeedsImprovement = "Needs Improvement"
)

// AvailabilityNotAvailable marks a skill the reviewer asked about but the
// candidate never discussed. Such skills stay visible in every listing so their
// absence is apparent; only their level/rating displays are suppressed.
const AvailabilityNotAvailable = "Not Available"

// SkillAssessment is one entry describing the candidate's demonstrated level
// in a specific named skill
type SkillAssessment struct {
	SkillName           string   `json:"skill_name"`
	Level               string   `json:"level,omitempty"`
	RatingText          string   `json:"rating_text,omitempty"`
	RatingScore         float64  `json:"rating_score,omitempty"`
	DetailedFeedback    string   `json:"detailed_feedback,omitempty"`
	Strengths           []string `json:"strengths,omitempty"`
	AreasForImprovement []string `json:"areas_for_improvement,omitempty"`
	ExamplesMentioned   []string `json:"examples_mentioned,omitempty"`
	IsRequired          *bool    `json:"is_required,omitempty"`
	AvailabilityStatus  string   `json:"availability_status,omitempty"`
}

// Required reports whether the reviewer explicitly asked for this skill
func (s *SkillAssessment) Required() bool {
	return s.IsRequired != nil && *s.IsRequired
}

// Discussed reports whether the skill actually came up in the interview
func (s *SkillAssessment) Discussed() bool {
	return s.AvailabilityStatus != AvailabilityNotAvailable
}
