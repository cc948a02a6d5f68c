package review

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/talentlens/talentlens/internal/domain/entities"
)

// ParseEngineResponse decodes the engine's response body into an
// AnalysisResult. A partially populated document is valid; only undecodable
// JSON is an error.
func ParseEngineResponse(body []byte) (*entities.AnalysisResult, error) {
	jsonString := extractJSON(string(body))

	var result entities.AnalysisResult
	if err := json.Unmarshal([]byte(jsonString), &result); err != nil {
		return nil, fmt.Errorf("failed to parse engine response: %w", err)
	}

	normalize(&result)
	return &result, nil
}

// normalize initializes nil slices inside sections the engine did return, so
// renderers can distinguish "section absent" (nil pointer) from "section
// present but empty" (empty slice with its own empty-state text)
func normalize(result *entities.AnalysisResult) {
	if result.Transcription == nil {
		result.Transcription = make([]entities.TranscriptSegment, 0)
	}

	fb := result.Feedback
	if fb == nil {
		return
	}

	if fb.KeyTopics == nil {
		fb.KeyTopics = make([]string, 0)
	}
	if fb.Recommendations == nil {
		fb.Recommendations = make([]string, 0)
	}
	if fb.ActionableInsights == nil {
		fb.ActionableInsights = make([]string, 0)
	}
	if fb.Questions == nil {
		fb.Questions = make([]entities.QuestionReview, 0)
	}
	if fb.SpeakingPatterns != nil && fb.SpeakingPatterns.TechnicalTerms == nil {
		fb.SpeakingPatterns.TechnicalTerms = make([]string, 0)
	}
	if fb.TechnicalSkills != nil && fb.TechnicalSkills.Skills == nil {
		fb.TechnicalSkills.Skills = make([]entities.SkillAssessment, 0)
	}
}

// extractJSON extracts JSON content from markdown code blocks or plain text
func extractJSON(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	}

	return strings.TrimSpace(content)
}
