package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/talentlens/talentlens/errors"
	dto "github.com/talentlens/talentlens/internal/adapter/dto/review"
	"github.com/talentlens/talentlens/internal/render"
	"github.com/talentlens/talentlens/internal/render/report"
	"github.com/talentlens/talentlens/internal/usecase/review"
)

// Review handles the upload, analysis and review endpoints
type Review struct {
	service *review.Service
	logger  *zap.Logger
}

// NewReview creates a review handler
func NewReview(service *review.Service, logger *zap.Logger) *Review {
	return &Review{
		service: service,
		logger:  logger,
	}
}

// Upload relays one multipart video file into object storage
func (h *Review) Upload(c echo.Context) error {
	ctx := c.Request().Context()

	file, err := c.FormFile("file")
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload().WithDetail("field", "file"))
	}

	src, err := file.Open()
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload().WithDetail("reason", err.Error()))
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	session, err := h.service.Upload(ctx, file.Filename, src, file.Size, contentType)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, dto.UploadResponse{
		SessionID: session.ID.String(),
		File: dto.UploadedFile{
			URL:         session.VideoURL,
			Name:        file.Filename,
			Size:        file.Size,
			ContentType: contentType,
		},
	})
}

// Analyze relays the uploaded video URL to the analysis engine and waits for
// the full result
func (h *Review) Analyze(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.AnalyzeRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload().WithDetail("reason", err.Error()))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	session, err := h.service.Analyze(ctx, req.SessionID, req.VideoURL, req.RequiredSkills)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, dto.AnalyzeResponse{
		SessionID: session.ID.String(),
		Phase:     string(session.Phase),
		Result:    session.Result,
	})
}

// Session reports the current phase of a session
func (h *Review) Session(c echo.Context) error {
	session, err := h.service.Session(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, dto.SessionResponse{
		SessionID: session.ID.String(),
		Phase:     string(session.Phase),
		FileName:  session.FileName,
		VideoURL:  session.VideoURL,
		LastError: session.LastError,
	})
}

// Index serves the upload page
func (h *Review) Index(c echo.Context) error {
	return c.Render(http.StatusOK, "index.html", nil)
}

// Dashboard renders the analysis result of a session as HTML
func (h *Review) Dashboard(c echo.Context) error {
	session, _, err := h.service.Result(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.Render(http.StatusOK, "review.html", render.BuildView(session))
}

// Report serves the analysis result of a session as a downloadable PDF
func (h *Review) Report(c echo.Context) error {
	session, _, err := h.service.Result(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	data, err := report.Generate(render.BuildView(session))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrReportExportFailed(err))
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+report.FileName+`"`)
	return c.Blob(http.StatusOK, "application/pdf", data)
}
