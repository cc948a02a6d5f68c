package entities

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SessionPhase is the lifecycle phase of a review session
type SessionPhase string

// Session phases. The only legal transitions are
// idle -> uploading -> uploaded -> analyzing -> analyzed; a failed upload
// returns to idle and a failed analysis returns to uploaded, in both cases
// keeping the error message for display.
const (
	SessionPhaseIdle      SessionPhase = "idle"
	SessionPhaseUploading SessionPhase = "uploading"
	SessionPhaseUploaded  SessionPhase = "uploaded"
	SessionPhaseAnalyzing SessionPhase = "analyzing"
	SessionPhaseAnalyzed  SessionPhase = "analyzed"
)

// ReviewSession tracks one upload-and-analyze cycle. The session is the sole
// owner of the AnalysisResult; renderers receive it read-only.
type ReviewSession struct {
	ID             uuid.UUID       `json:"id"`
	Phase          SessionPhase    `json:"phase"`
	FileName       string          `json:"file_name,omitempty"`
	VideoURL       string          `json:"video_url,omitempty"`
	RequiredSkills []string        `json:"required_skills,omitempty"`
	Result         *AnalysisResult `json:"result,omitempty"`
	LastError      string          `json:"last_error,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// NewReviewSession creates a session in the idle phase
func NewReviewSession() *ReviewSession {
	now := time.Now()
	return &ReviewSession{
		ID:        uuid.New(),
		Phase:     SessionPhaseIdle,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// BeginUpload starts a new upload cycle. Allowed from idle or analyzed; a new
// cycle discards the previous result and URL.
func (s *ReviewSession) BeginUpload(fileName string) error {
	if s.Phase != SessionPhaseIdle && s.Phase != SessionPhaseAnalyzed {
		return fmt.Errorf("cannot start upload in phase %q", s.Phase)
	}
	s.Phase = SessionPhaseUploading
	s.FileName = fileName
	s.VideoURL = ""
	s.RequiredSkills = nil
	s.Result = nil
	s.LastError = ""
	s.touch()
	return nil
}

// CompleteUpload records the public URL returned by storage
func (s *ReviewSession) CompleteUpload(videoURL string) error {
	if s.Phase != SessionPhaseUploading {
		return fmt.Errorf("cannot complete upload in phase %q", s.Phase)
	}
	s.Phase = SessionPhaseUploaded
	s.VideoURL = videoURL
	s.touch()
	return nil
}

// FailUpload returns the session to idle with no URL set, so analysis stays
// unreachable
func (s *ReviewSession) FailUpload(err error) {
	s.Phase = SessionPhaseIdle
	s.VideoURL = ""
	if err != nil {
		s.LastError = err.Error()
	}
	s.touch()
}

// BeginAnalysis starts the analysis call for the uploaded video
func (s *ReviewSession) BeginAnalysis(requiredSkills []string) error {
	if s.Phase != SessionPhaseUploaded {
		return fmt.Errorf("cannot start analysis in phase %q", s.Phase)
	}
	if s.VideoURL == "" {
		return fmt.Errorf("no uploaded video URL")
	}
	s.Phase = SessionPhaseAnalyzing
	s.RequiredSkills = requiredSkills
	s.touch()
	return nil
}

// CompleteAnalysis stores the result and moves the session to analyzed
func (s *ReviewSession) CompleteAnalysis(result *AnalysisResult) error {
	if s.Phase != SessionPhaseAnalyzing {
		return fmt.Errorf("cannot complete analysis in phase %q", s.Phase)
	}
	s.Phase = SessionPhaseAnalyzed
	s.Result = result
	s.LastError = ""
	s.touch()
	return nil
}

// FailAnalysis returns the session to uploaded; the pre-analysis state is
// retained and the error kept for the banner
func (s *ReviewSession) FailAnalysis(err error) {
	s.Phase = SessionPhaseUploaded
	s.Result = nil
	if err != nil {
		s.LastError = err.Error()
	}
	s.touch()
}

// Clone returns an independent copy. The result document is shared by
// reference: it is never mutated once attached to a session.
func (s *ReviewSession) Clone() *ReviewSession {
	c := *s
	if s.RequiredSkills != nil {
		c.RequiredSkills = append([]string(nil), s.RequiredSkills...)
	}
	return &c
}

// Analyzed reports whether a full result is available for rendering
func (s *ReviewSession) Analyzed() bool {
	return s.Phase == SessionPhaseAnalyzed && s.Result != nil
}

func (s *ReviewSession) touch() {
	s.UpdatedAt = time.Now()
}
