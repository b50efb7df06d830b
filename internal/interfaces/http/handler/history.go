package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/insightdash/backend/internal/domain/history"
	"github.com/insightdash/backend/internal/interfaces/http/dto"
)

// HistoryHandler serves the upload history
type HistoryHandler struct {
	BaseHandler
	repo history.Repository
}

// NewHistoryHandler creates a new HistoryHandler
func NewHistoryHandler(repo history.Repository) *HistoryHandler {
	return &HistoryHandler{repo: repo}
}

// RegisterRoutes registers upload history routes
func (h *HistoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("/uploads", h.List)
		dashboard.GET("/uploads/:id", h.Get)
	}
}

// List returns a page of upload records, most recent first
func (h *HistoryHandler) List(c *gin.Context) {
	req := dto.DefaultListRequest()
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "invalid pagination parameters")
		return
	}

	result, err := h.repo.FindAll(c.Request.Context(), req.Page, req.PageSize)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	items := dto.NewUploadHistoryListResponse(result.Items)
	h.SuccessWithMeta(c, items, result.TotalCount, result.Page, result.PageSize)
}

// Get returns a single upload record by ID
func (h *HistoryHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "invalid upload ID")
		return
	}

	record, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, dto.NewUploadHistoryResponse(record))
}
