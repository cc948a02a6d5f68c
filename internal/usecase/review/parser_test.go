package review

import (
	"testing"
)

func TestParseEngineResponse(t *testing.T) {
	body := []byte(`{
		"transcription": [
			{"start_time": 0, "end_time": 5.5, "text": "Hello", "confidence": 0.9}
		],
		"full_text": "Hello",
		"duration": 5.5,
		"feedback": {
			"overall_sentiment": "positive",
			"quality_score": 4.0,
			"word_count": 1,
			"key_topics": ["greeting"]
		}
	}`)

	result, err := ParseEngineResponse(body)
	if err != nil {
		t.Fatalf("ParseEngineResponse() error = %v", err)
	}
	if len(result.Transcription) != 1 {
		t.Fatalf("transcription segments = %d, want 1", len(result.Transcription))
	}
	if result.Transcription[0].EndTime != 5.5 {
		t.Errorf("end_time = %v, want 5.5", result.Transcription[0].EndTime)
	}
	if result.Feedback == nil {
		t.Fatal("feedback is nil")
	}
	if result.Feedback.QualityScore != 4.0 {
		t.Errorf("quality_score = %v, want 4.0", result.Feedback.QualityScore)
	}
}

func TestParseEngineResponseMarkdownFence(t *testing.T) {
	body := []byte("```json\n{\"full_text\": \"fenced\", \"duration\": 10}\n```")

	result, err := ParseEngineResponse(body)
	if err != nil {
		t.Fatalf("ParseEngineResponse() error = %v", err)
	}
	if result.FullText != "fenced" {
		t.Errorf("full_text = %q, want fenced", result.FullText)
	}
}

func TestParseEngineResponsePartialDocument(t *testing.T) {
	// Missing sections stay nil pointers; present slices never stay nil
	body := []byte(`{"full_text": "x", "feedback": {"overall_sentiment": "neutral", "speaking_patterns": {"pace": "slow"}}}`)

	result, err := ParseEngineResponse(body)
	if err != nil {
		t.Fatalf("ParseEngineResponse() error = %v", err)
	}
	fb := result.Feedback
	if fb.ContentAnalysis != nil {
		t.Error("content_analysis should stay nil when absent")
	}
	if fb.TechnicalSkills != nil {
		t.Error("technical_skills should stay nil when absent")
	}
	if fb.KeyTopics == nil {
		t.Error("key_topics should be normalized to an empty slice")
	}
	if fb.SpeakingPatterns == nil || fb.SpeakingPatterns.TechnicalTerms == nil {
		t.Error("technical_terms should be normalized inside a present section")
	}
	if result.Transcription == nil {
		t.Error("transcription should be normalized to an empty slice")
	}
}

func TestParseEngineResponseNoFeedback(t *testing.T) {
	result, err := ParseEngineResponse([]byte(`{"full_text": "bare transcript"}`))
	if err != nil {
		t.Fatalf("ParseEngineResponse() error = %v", err)
	}
	if result.Feedback != nil {
		t.Error("feedback should stay nil when absent")
	}
	if result.HasFeedback() {
		t.Error("HasFeedback() = true, want false")
	}
}

func TestParseEngineResponseMalformed(t *testing.T) {
	if _, err := ParseEngineResponse([]byte("not json at all")); err == nil {
		t.Error("expected error for malformed body")
	}
	if _, err := ParseEngineResponse([]byte(`{"duration": "not a number"}`)); err == nil {
		t.Error("expected error for mistyped field")
	}
}
