package insight

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/talentlens/talentlens/pkg/config"
)

func TestAnalyzeVideo_Success(t *testing.T) {
	// Mock analysis engine
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST got %s", r.Method)
		}
		if r.URL.Path != "/transcribe" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		var payload AnalyzeRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		if payload.VideoURL != "http://example.com/interview.mp4" {
			t.Fatalf("unexpected video_url %s", payload.VideoURL)
		}
		if len(payload.RequiredSkills) != 2 {
			t.Fatalf("expected 2 required skills, got %d", len(payload.RequiredSkills))
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"full_text": "hello world",
			"duration":  42.0,
		})
	}))
	defer ts.Close()

	client := NewClient(&config.EngineConfig{BaseURL: ts.URL, APIKey: "test-key"})

	body, err := client.AnalyzeVideo(context.Background(), "http://example.com/interview.mp4", []string{"React", "SQL"})
	if err != nil {
		t.Fatalf("AnalyzeVideo failed: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(body, &decoded); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if decoded["full_text"] != "hello world" {
		t.Fatalf("unexpected body %s", body)
	}
}

func TestAnalyzeVideo_EngineError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	client := NewClient(&config.EngineConfig{BaseURL: ts.URL})

	if _, err := client.AnalyzeVideo(context.Background(), "http://example.com/a.mp4", nil); err == nil {
		t.Fatal("expected error on 500 response")
	}
}
