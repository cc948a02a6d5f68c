// Package review defines the request and response shapes of the review API.
package review

import "github.com/talentlens/talentlens/internal/domain/entities"

// AnalyzeRequest starts an analysis of an uploaded recording. SessionID is
// optional: direct API callers may supply only a video URL.
type AnalyzeRequest struct {
	VideoURL       string   `json:"videoUrl" validate:"required,url"`
	RequiredSkills []string `json:"requiredSkills" validate:"omitempty,dive,min=1"`
	SessionID      string   `json:"sessionId" validate:"omitempty,uuid4"`
}

// UploadedFile describes the stored recording
type UploadedFile struct {
	URL         string `json:"url"`
	Name        string `json:"name"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
}

// UploadResponse is the payload of a successful upload
type UploadResponse struct {
	SessionID string       `json:"session_id"`
	File      UploadedFile `json:"file"`
}

// AnalyzeResponse is the payload of a completed analysis
type AnalyzeResponse struct {
	SessionID string                   `json:"session_id"`
	Phase     string                   `json:"phase"`
	Result    *entities.AnalysisResult `json:"result"`
}

// SessionResponse reports the current phase of a session
type SessionResponse struct {
	SessionID string `json:"session_id"`
	Phase     string `json:"phase"`
	FileName  string `json:"file_name,omitempty"`
	VideoURL  string `json:"video_url,omitempty"`
	LastError string `json:"last_error,omitempty"`
}
