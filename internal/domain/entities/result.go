package entities

// TranscriptSegment is one chronological slice of the transcription.
// Segments arrive ordered and are never mutated after decoding.
type TranscriptSegment struct {
	StartTime  float64 `json:"start_time"`
	EndTime    float64 `json:"end_time"`
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
}

// AnalysisResult is the full structured document returned by the analysis
// engine for one video. It is created atomically from a single engine response
// and read-only afterwards; a new upload cycle replaces it wholesale.
type AnalysisResult struct {
	Transcription []TranscriptSegment `json:"transcription"`
	FullText      string              `json:"full_text"`
	Duration      float64             `json:"duration"`
	Feedback      *FeedbackRecord     `json:"feedback,omitempty"`
}

// HasFeedback reports whether the engine returned any feedback record at all
func (r *AnalysisResult) HasFeedback() bool {
	return r != nil && r.Feedback != nil
}
