package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/talentlens/talentlens/internal/infrastructure/cache"
	"github.com/talentlens/talentlens/internal/render/dashboard"
	"github.com/talentlens/talentlens/internal/usecase/review"
	"github.com/talentlens/talentlens/pkg/config"
	pkgvalidator "github.com/talentlens/talentlens/pkg/validator"
)

type fakeUploader struct {
	url string
	err error
}

func (f *fakeUploader) UploadRecording(ctx context.Context, fileName string, reader io.Reader, size int64, contentType string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.url, nil
}

type fakeEngine struct {
	body []byte
	err  error
}

func (f *fakeEngine) AnalyzeVideo(ctx context.Context, videoURL string, requiredSkills []string) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.body, nil
}

func newTestServer(t *testing.T, uploader *fakeUploader, engine *fakeEngine) (*echo.Echo, *review.Service) {
	t.Helper()

	svc := review.NewService(uploader, engine, cache.NewSessionStore(time.Hour), nil)

	e := echo.New()
	e.Validator = pkgvalidator.New()
	renderer, err := dashboard.NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}
	e.Renderer = renderer

	cfg := &config.Config{}
	cfg.Server.Environment = "test"

	router := NewRouter(cfg, NewReview(svc, nil))
	router.Setup(e)

	return e, svc
}

func multipartBody(t *testing.T, fieldName, fileName, content string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile(fieldName, fileName)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := fw.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return &buf, w.FormDataContentType()
}

func decodeData(t *testing.T, body *bytes.Buffer) map[string]interface{} {
	t.Helper()

	var envelope struct {
		Code    int                    `json:"code"`
		Message string                 `json:"message"`
		Data    map[string]interface{} `json:"data"`
	}
	if err := json.Unmarshal(body.Bytes(), &envelope); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return envelope.Data
}

func TestUploadEndpoint(t *testing.T) {
	e, _ := newTestServer(t, &fakeUploader{url: "http://storage/bucket/uploads/a.mp4"}, &fakeEngine{})

	body, contentType := multipartBody(t, "file", "interview.mp4", "fake video bytes")
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	data := decodeData(t, rec.Body)
	if data["session_id"] == "" {
		t.Error("expected session_id in response")
	}
	file, ok := data["file"].(map[string]interface{})
	if !ok {
		t.Fatal("expected file object in response")
	}
	if file["url"] != "http://storage/bucket/uploads/a.mp4" {
		t.Errorf("file url = %v", file["url"])
	}
}

func TestUploadEndpointMissingFile(t *testing.T) {
	e, _ := newTestServer(t, &fakeUploader{}, &fakeEngine{})

	req := httptest.NewRequest(http.MethodPost, "/api/upload", strings.NewReader(""))
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestUploadEndpointStorageFailure(t *testing.T) {
	e, _ := newTestServer(t, &fakeUploader{err: errors.New("minio down")}, &fakeEngine{})

	body, contentType := multipartBody(t, "file", "interview.mp4", "x")
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}

func TestAnalyzeEndpoint(t *testing.T) {
	engine := &fakeEngine{body: []byte(`{"full_text": "hi", "feedback": {"overall_sentiment": "positive"}}`)}
	e, svc := newTestServer(t, &fakeUploader{url: "http://storage/bucket/uploads/a.mp4"}, engine)

	session, err := svc.Upload(context.Background(), "interview.mp4", strings.NewReader("x"), 1, "video/mp4")
	if err != nil {
		t.Fatal(err)
	}

	payload := `{"videoUrl": "http://storage/bucket/uploads/a.mp4", "requiredSkills": ["Go"], "sessionId": "` + session.ID.String() + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/transcribe", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	data := decodeData(t, rec.Body)
	if data["phase"] != "analyzed" {
		t.Errorf("phase = %v, want analyzed", data["phase"])
	}
}

func TestAnalyzeEndpointValidation(t *testing.T) {
	e, _ := newTestServer(t, &fakeUploader{}, &fakeEngine{})

	req := httptest.NewRequest(http.MethodPost, "/api/transcribe", strings.NewReader(`{"requiredSkills": ["Go"]}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestDashboardEndpoint(t *testing.T) {
	engine := &fakeEngine{body: []byte(`{"full_text": "hi", "feedback": {"overall_sentiment": "positive", "quality_score": 4}}`)}
	e, svc := newTestServer(t, &fakeUploader{url: "http://storage/bucket/uploads/a.mp4"}, engine)

	session, err := svc.Upload(context.Background(), "interview.mp4", strings.NewReader("x"), 1, "video/mp4")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Analyze(context.Background(), session.ID.String(), "", nil); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodGet, "/review/"+session.ID.String(), nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Interview Analysis") {
		t.Error("expected dashboard markup in response")
	}
}

func TestDashboardEndpointNotFound(t *testing.T) {
	e, _ := newTestServer(t, &fakeUploader{}, &fakeEngine{})

	req := httptest.NewRequest(http.MethodGet, "/review/unknown", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestDashboardEndpointNotReady(t *testing.T) {
	e, svc := newTestServer(t, &fakeUploader{url: "http://storage/bucket/uploads/a.mp4"}, &fakeEngine{})

	session, err := svc.Upload(context.Background(), "interview.mp4", strings.NewReader("x"), 1, "video/mp4")
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodGet, "/review/"+session.ID.String(), nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", rec.Code)
	}
}

func TestReportEndpoint(t *testing.T) {
	engine := &fakeEngine{body: []byte(`{"full_text": "hi", "feedback": {"overall_sentiment": "positive"}}`)}
	e, svc := newTestServer(t, &fakeUploader{url: "http://storage/bucket/uploads/a.mp4"}, engine)

	session, err := svc.Upload(context.Background(), "interview.mp4", strings.NewReader("x"), 1, "video/mp4")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Analyze(context.Background(), session.ID.String(), "", nil); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodGet, "/review/"+session.ID.String()+"/report.pdf", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get(echo.HeaderContentType); ct != "application/pdf" {
		t.Errorf("content type = %q", ct)
	}
	if cd := rec.Header().Get(echo.HeaderContentDisposition); !strings.Contains(cd, "interview-analysis-report.pdf") {
		t.Errorf("content disposition = %q", cd)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")) {
		t.Error("body is not a pdf document")
	}
}

func TestHealthEndpoint(t *testing.T) {
	e, _ := newTestServer(t, &fakeUploader{}, &fakeEngine{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}
