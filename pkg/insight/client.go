package insight

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/talentlens/talentlens/pkg/config"
)

// Client is a minimal client for the transcription/feedback engine. The engine
// is an opaque collaborator: one POST in, the full result document out.
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewClient creates an engine client using values from the provided config.
// Pass a nil config to fall back to environment variables.
func NewClient(cfg *config.EngineConfig) *Client {
	var apiKey string
	if cfg != nil {
		apiKey = cfg.APIKey
	}
	if apiKey == "" {
		apiKey = os.Getenv("ENGINE_API_KEY")
	}

	var base string
	if cfg != nil && cfg.BaseURL != "" {
		base = cfg.BaseURL
	} else {
		base = os.Getenv("ENGINE_URL")
		if base == "" {
			base = "http://localhost:8000"
		}
	}

	// Analysis blocks for the whole processing duration; a zero timeout keeps
	// the transport default instead of cutting long transcriptions short.
	httpClient := &http.Client{}
	if cfg != nil && cfg.Timeout > 0 {
		httpClient.Timeout = cfg.Timeout
	}

	return &Client{
		apiKey:  apiKey,
		baseURL: base,
		client:  httpClient,
	}
}

// AnalyzeRequest is the payload for the engine's /transcribe endpoint
type AnalyzeRequest struct {
	VideoURL       string   `json:"video_url"`
	RequiredSkills []string `json:"required_skills,omitempty"`
}

// AnalyzeVideo sends the public video URL to the engine and waits for the full
// analysis to finish. The raw response body is returned for the caller to
// parse; no retry is attempted on failure.
func (c *Client) AnalyzeVideo(ctx context.Context, videoURL string, requiredSkills []string) ([]byte, error) {
	payload := AnalyzeRequest{
		VideoURL:       videoURL,
		RequiredSkills: requiredSkills,
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	endpoint := c.baseURL + "/transcribe"
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", c.apiKey)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("analysis engine returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("empty response from analysis engine")
	}
	return body, nil
}
