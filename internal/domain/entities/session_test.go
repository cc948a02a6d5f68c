package entities

import (
	"errors"
	"testing"
)

func TestSessionHappyPath(t *testing.T) {
	s := NewReviewSession()
	if s.Phase != SessionPhaseIdle {
		t.Fatalf("new session phase = %q, want idle", s.Phase)
	}

	if err := s.BeginUpload("interview.mp4"); err != nil {
		t.Fatalf("BeginUpload() error = %v", err)
	}
	if s.Phase != SessionPhaseUploading {
		t.Errorf("phase = %q, want uploading", s.Phase)
	}

	if err := s.CompleteUpload("http://storage/bucket/uploads/a.mp4"); err != nil {
		t.Fatalf("CompleteUpload() error = %v", err)
	}
	if s.Phase != SessionPhaseUploaded {
		t.Errorf("phase = %q, want uploaded", s.Phase)
	}

	if err := s.BeginAnalysis([]string{"Go"}); err != nil {
		t.Fatalf("BeginAnalysis() error = %v", err)
	}
	if err := s.CompleteAnalysis(&AnalysisResult{FullText: "hello"}); err != nil {
		t.Fatalf("CompleteAnalysis() error = %v", err)
	}
	if !s.Analyzed() {
		t.Error("Analyzed() = false after complete analysis")
	}
}

func TestSessionUploadFailureBlocksAnalysis(t *testing.T) {
	s := NewReviewSession()
	if err := s.BeginUpload("interview.mp4"); err != nil {
		t.Fatalf("BeginUpload() error = %v", err)
	}

	s.FailUpload(errors.New("connection reset"))

	if s.Phase != SessionPhaseIdle {
		t.Errorf("phase after failed upload = %q, want idle", s.Phase)
	}
	if s.VideoURL != "" {
		t.Errorf("video url after failed upload = %q, want empty", s.VideoURL)
	}
	if s.LastError == "" {
		t.Error("expected LastError to be recorded")
	}
	if err := s.BeginAnalysis(nil); err == nil {
		t.Error("BeginAnalysis() should fail without a completed upload")
	}
}

func TestSessionAnalysisFailureKeepsUpload(t *testing.T) {
	s := NewReviewSession()
	if err := s.BeginUpload("interview.mp4"); err != nil {
		t.Fatal(err)
	}
	if err := s.CompleteUpload("http://storage/bucket/uploads/a.mp4"); err != nil {
		t.Fatal(err)
	}
	if err := s.BeginAnalysis([]string{"Go"}); err != nil {
		t.Fatal(err)
	}

	s.FailAnalysis(errors.New("engine unavailable"))

	if s.Phase != SessionPhaseUploaded {
		t.Errorf("phase after failed analysis = %q, want uploaded", s.Phase)
	}
	if s.VideoURL == "" {
		t.Error("video url should survive a failed analysis")
	}
	if s.LastError == "" {
		t.Error("expected LastError to be recorded")
	}

	// Retry is a fresh user action from the uploaded phase
	if err := s.BeginAnalysis([]string{"Go"}); err != nil {
		t.Errorf("BeginAnalysis() retry error = %v", err)
	}
}

func TestSessionReUploadClearsPriorResult(t *testing.T) {
	s := NewReviewSession()
	if err := s.BeginUpload("first.mp4"); err != nil {
		t.Fatal(err)
	}
	if err := s.CompleteUpload("http://storage/bucket/uploads/a.mp4"); err != nil {
		t.Fatal(err)
	}
	if err := s.BeginAnalysis(nil); err != nil {
		t.Fatal(err)
	}
	if err := s.CompleteAnalysis(&AnalysisResult{FullText: "hello"}); err != nil {
		t.Fatal(err)
	}

	if err := s.BeginUpload("second.mp4"); err != nil {
		t.Fatalf("BeginUpload() from analyzed error = %v", err)
	}
	if s.Result != nil {
		t.Error("prior result should be cleared by a new upload")
	}
	if s.VideoURL != "" {
		t.Error("prior video url should be cleared by a new upload")
	}
	if s.FileName != "second.mp4" {
		t.Errorf("file name = %q, want second.mp4", s.FileName)
	}
}

func TestSessionInvalidTransitions(t *testing.T) {
	s := NewReviewSession()

	if err := s.CompleteUpload("http://x"); err == nil {
		t.Error("CompleteUpload() from idle should fail")
	}
	if err := s.BeginAnalysis(nil); err == nil {
		t.Error("BeginAnalysis() from idle should fail")
	}
	if err := s.CompleteAnalysis(&AnalysisResult{}); err == nil {
		t.Error("CompleteAnalysis() from idle should fail")
	}

	if err := s.BeginUpload("a.mp4"); err != nil {
		t.Fatal(err)
	}
	if err := s.BeginUpload("b.mp4"); err == nil {
		t.Error("BeginUpload() while uploading should fail")
	}
}
