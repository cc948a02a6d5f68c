package review

import (
	"context"
	"io"

	"go.uber.org/zap"

	apperrors "github.com/talentlens/talentlens/errors"
	"github.com/talentlens/talentlens/internal/domain/entities"
	"github.com/talentlens/talentlens/internal/infrastructure/cache"
)

// Uploader streams one recording into object storage and returns its public URL
type Uploader interface {
	UploadRecording(ctx context.Context, fileName string, reader io.Reader, size int64, contentType string) (string, error)
}

// EngineClient sends a video URL to the analysis engine and returns the raw
// result document
type EngineClient interface {
	AnalyzeVideo(ctx context.Context, videoURL string, requiredSkills []string) ([]byte, error)
}

// Service orchestrates the two relay calls and owns the session store. Upload
// and analysis are independent operations triggered by separate user actions;
// the service never chains one into the other.
type Service struct {
	uploader Uploader
	engine   EngineClient
	sessions *cache.SessionStore
	logger   *zap.Logger
}

// NewService creates a review service
func NewService(uploader Uploader, engine EngineClient, sessions *cache.SessionStore, logger *zap.Logger) *Service {
	return &Service{
		uploader: uploader,
		engine:   engine,
		sessions: sessions,
		logger:   logger,
	}
}

// Upload relays one file to object storage. On failure the session returns to
// idle with no URL, so analysis stays unreachable. The stored object is not
// deleted on later failures.
func (s *Service) Upload(ctx context.Context, fileName string, reader io.Reader, size int64, contentType string) (*entities.ReviewSession, error) {
	session := entities.NewReviewSession()
	if err := session.BeginUpload(fileName); err != nil {
		return nil, apperrors.ErrInternal(err)
	}
	s.sessions.Put(session)

	url, err := s.uploader.UploadRecording(ctx, fileName, reader, size, contentType)
	if err != nil {
		session.FailUpload(err)
		s.sessions.Put(session)
		if s.logger != nil {
			s.logger.Error("upload failed",
				zap.String("session_id", session.ID.String()),
				zap.String("file_name", fileName),
				zap.Error(err))
		}
		return nil, apperrors.ErrUploadFailed(err)
	}

	if err := session.CompleteUpload(url); err != nil {
		return nil, apperrors.ErrInternal(err)
	}
	s.sessions.Put(session)

	if s.logger != nil {
		s.logger.Info("recording uploaded",
			zap.String("session_id", session.ID.String()),
			zap.String("file_name", fileName),
			zap.Int64("size", size))
	}
	return session, nil
}

// Analyze sends the uploaded video URL to the engine and blocks until the full
// result arrives. No retry and no partial results: either the session ends up
// analyzed with a complete result, or it returns to uploaded with the error
// recorded.
func (s *Service) Analyze(ctx context.Context, sessionID, videoURL string, requiredSkills []string) (*entities.ReviewSession, error) {
	session, err := s.resolveSession(sessionID, videoURL)
	if err != nil {
		return nil, err
	}

	if err := session.BeginAnalysis(requiredSkills); err != nil {
		return nil, apperrors.ErrSessionInvalidState(
			session.ID.String(), string(session.Phase), string(entities.SessionPhaseUploaded))
	}
	s.sessions.Put(session)

	body, err := s.engine.AnalyzeVideo(ctx, session.VideoURL, requiredSkills)
	if err != nil {
		session.FailAnalysis(err)
		s.sessions.Put(session)
		if s.logger != nil {
			s.logger.Error("analysis failed",
				zap.String("session_id", session.ID.String()),
				zap.Error(err))
		}
		return nil, apperrors.ErrAnalysisFailed(err)
	}

	result, err := ParseEngineResponse(body)
	if err != nil {
		session.FailAnalysis(err)
		s.sessions.Put(session)
		if s.logger != nil {
			s.logger.Error("engine response unreadable",
				zap.String("session_id", session.ID.String()),
				zap.Error(err))
		}
		return nil, apperrors.ErrMalformedResult(err)
	}

	if err := session.CompleteAnalysis(result); err != nil {
		return nil, apperrors.ErrInternal(err)
	}
	s.sessions.Put(session)

	if s.logger != nil {
		s.logger.Info("analysis completed",
			zap.String("session_id", session.ID.String()),
			zap.Int("segments", len(result.Transcription)),
			zap.Bool("has_feedback", result.HasFeedback()))
	}
	return session, nil
}

// resolveSession finds the session for an analysis call. Callers that went
// through the upload relay pass their session id; direct API callers may pass
// only a URL, for which a session is minted in the uploaded phase.
func (s *Service) resolveSession(sessionID, videoURL string) (*entities.ReviewSession, error) {
	if sessionID == "" {
		if videoURL == "" {
			return nil, apperrors.ErrMissingVideoURL()
		}
		session := entities.NewReviewSession()
		if err := session.BeginUpload(""); err != nil {
			return nil, apperrors.ErrInternal(err)
		}
		if err := session.CompleteUpload(videoURL); err != nil {
			return nil, apperrors.ErrInternal(err)
		}
		s.sessions.Put(session)
		return session, nil
	}

	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, apperrors.ErrSessionNotFound(sessionID)
	}
	if videoURL != "" && session.VideoURL != "" && session.VideoURL != videoURL {
		return nil, apperrors.ErrInvalidArgument("videoUrl does not match the uploaded recording")
	}
	return session, nil
}

// Session returns a stored session
func (s *Service) Session(sessionID string) (*entities.ReviewSession, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, apperrors.ErrSessionNotFound(sessionID)
	}
	return session, nil
}

// Result returns the analysis result of an analyzed session
func (s *Service) Result(sessionID string) (*entities.ReviewSession, *entities.AnalysisResult, error) {
	session, err := s.Session(sessionID)
	if err != nil {
		return nil, nil, err
	}
	if !session.Analyzed() {
		return nil, nil, apperrors.ErrSessionNotReady(sessionID, string(session.Phase))
	}
	return session, session.Result, nil
}
