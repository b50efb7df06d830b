package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/insightdash/backend/internal/application/analytics"
	"github.com/insightdash/backend/internal/domain/dataset"
	"github.com/insightdash/backend/internal/domain/history"
	"github.com/insightdash/backend/internal/infrastructure/upload"
	"github.com/insightdash/backend/internal/interfaces/http/dto"
)

// DashboardHandler handles dataset uploads and serves the computed
// dashboard payload.
type DashboardHandler struct {
	BaseHandler
	pipeline    *analytics.Pipeline
	reader      *upload.Reader
	historyRepo history.Repository
	maxFileSize int64
	log         *zap.Logger
}

// NewDashboardHandler creates a new DashboardHandler. historyRepo may be
// nil when upload history is disabled.
func NewDashboardHandler(
	pipeline *analytics.Pipeline,
	reader *upload.Reader,
	historyRepo history.Repository,
	maxFileSize int64,
	log *zap.Logger,
) *DashboardHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &DashboardHandler{
		pipeline:    pipeline,
		reader:      reader,
		historyRepo: historyRepo,
		maxFileSize: maxFileSize,
		log:         log,
	}
}

// RegisterRoutes registers dashboard routes
func (h *DashboardHandler) RegisterRoutes(rg *gin.RouterGroup) {
	dashboard := rg.Group("/dashboard")
	{
		dashboard.POST("/upload", h.Upload)
	}
}

// Upload accepts a CSV or Excel file under the "file" form field, runs the
// full dashboard pipeline against it, and returns the merged payload.
// Unlike the rest of the API the success body is the payload itself, not
// the response envelope; the dashboard frontend consumes it verbatim.
func (h *DashboardHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.BadRequest(c, "no file provided under the 'file' field")
		return
	}
	if h.maxFileSize > 0 && fileHeader.Size > h.maxFileSize {
		h.PayloadTooLarge(c, "uploaded file exceeds the maximum allowed size")
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		h.InternalError(c, "failed to open uploaded file")
		return
	}
	defer src.Close()

	start := time.Now()
	record := history.NewUploadRecord(fileHeader.Filename, fileHeader.Size)

	table, err := h.reader.Read(fileHeader.Filename, src)
	if err != nil {
		h.recordFailure(c, record, err.Error(), time.Since(start))
		h.ErrorWithCode(c, uploadErrorCode(err), err.Error())
		return
	}

	payload, err := h.pipeline.BuildPayload(table)
	if err != nil {
		h.recordFailure(c, record, err.Error(), time.Since(start))

		var missing *analytics.MissingColumnsError
		if errors.As(err, &missing) {
			h.ErrorWithCode(c, dto.ErrCodeMissingColumns, missing.Error())
			return
		}
		h.InternalError(c, "failed to process uploaded file")
		return
	}

	h.recordSuccess(c, record, table, payload, time.Since(start))
	c.JSON(http.StatusOK, payload)
}

// uploadErrorCode maps reader failures to API error codes
func uploadErrorCode(err error) string {
	switch {
	case errors.Is(err, upload.ErrUnsupportedFormat):
		return dto.ErrCodeUnsupportedFormat
	default:
		return dto.ErrCodeFileInvalid
	}
}

// recordSuccess persists a processed upload. History is best-effort; a
// storage failure never fails the upload itself.
func (h *DashboardHandler) recordSuccess(c *gin.Context, record *history.UploadRecord, table *dataset.Table, payload *analytics.Payload, duration time.Duration) {
	if h.historyRepo == nil {
		return
	}
	record.MarkProcessed(table.NumRows(), table.NumColumns(), payload.ChartCount(), duration)
	if err := h.historyRepo.Save(c.Request.Context(), record); err != nil {
		h.log.Warn("failed to record upload history",
			zap.String("file_name", record.FileName),
			zap.Error(err),
		)
	}
}

func (h *DashboardHandler) recordFailure(c *gin.Context, record *history.UploadRecord, message string, duration time.Duration) {
	if h.historyRepo == nil {
		return
	}
	record.MarkFailed(message, duration)
	if err := h.historyRepo.Save(c.Request.Context(), record); err != nil {
		h.log.Warn("failed to record upload history",
			zap.String("file_name", record.FileName),
			zap.Error(err),
		)
	}
}
