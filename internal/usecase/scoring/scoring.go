// Package scoring holds every numeric derivation shared by the dashboard and
// the PDF report. Both renderers must call into this package so their computed
// values can never diverge.
package scoring

import (
	"math"

	"github.com/talentlens/talentlens/internal/domain/entities"
)

// Percentage converts a rating on the fixed 0-5 scale to a whole percentage:
// round(rating / 5 * 100)
func Percentage(rating float64) int {
	return int(math.Round(rating / 5 * 100))
}

// QualityPercentage converts the quality_score to a percentage with the x20
// rule: round(score * 20). Numerically equal to Percentage but kept separate
// so the two scaling conventions stay distinct at call sites.
func QualityPercentage(score float64) int {
	return int(math.Round(score * 20))
}

// TechProficiencyPercentage combines depth and breadth into one percentage:
// round(((depth + breadth) / 2) * 20)
func TechProficiencyPercentage(depth, breadth float64) int {
	return int(math.Round(((depth + breadth) / 2) * 20))
}

// PerformanceLabel buckets a 0-5 rating into the performance vocabulary used
// for question ratings and communication scores
func PerformanceLabel(rating float64) string {
	switch {
	case rating >= 4:
		return "Excellent"
	case rating >= 3:
		return "Good"
	case rating >= 2:
		return "Fair"
	default:
		return "Poor"
	}
}

// AssessmentLabel buckets a 0-5 rating into the assessment vocabulary used for
// skill ratings and overall technical proficiency. The thresholds match
// PerformanceLabel but the label set does not; the two must not be unified.
func AssessmentLabel(rating float64) string {
	switch {
	case rating >= 4:
		return "Excellent"
	case rating >= 3:
		return "Very Good"
	case rating >= 2:
		return "Satisfactory"
	default:
		return "Needs Improvement"
	}
}

// Coverage is a required-skill coverage fraction
type Coverage struct {
	Covered int
	Total   int
}

// Percent returns the coverage as a whole percentage, guarding against a zero
// denominator
func (c Coverage) Percent() int {
	total := c.Total
	if total < 1 {
		total = 1
	}
	return int(math.Round(float64(c.Covered) / float64(total) * 100))
}

// RequiredCoverage computes coverage with the skills-table denominator: the
// count of returned skills flagged is_required. A required skill counts toward
// the numerator only when it was actually discussed.
func RequiredCoverage(skills []entities.SkillAssessment) Coverage {
	var cov Coverage
	for i := range skills {
		if !skills[i].Required() {
			continue
		}
		cov.Total++
		if skills[i].Discussed() {
			cov.Covered++
		}
	}
	return cov
}

// RequestedCoverage computes coverage with the summary-section denominator:
// the length of the reviewer's original required-skills input. The numerator
// is the same as RequiredCoverage.
func RequestedCoverage(requested []string, skills []entities.SkillAssessment) Coverage {
	cov := RequiredCoverage(skills)
	cov.Total = len(requested)
	return cov
}

// PartitionSkills splits the skill list into the required group (rendered
// first) and the detected group, preserving the engine's original order within
// each group. Skills marked "Not Available" stay in their group.
func PartitionSkills(skills []entities.SkillAssessment) (required, detected []entities.SkillAssessment) {
	for i := range skills {
		if skills[i].Required() {
			required = append(required, skills[i])
		} else {
			detected = append(detected, skills[i])
		}
	}
	return required, detected
}
