package dto

import (
	"time"

	"github.com/insightdash/backend/internal/domain/history"
)

// UploadHistoryResponse is one upload history entry
type UploadHistoryResponse struct {
	ID          string    `json:"id"`
	FileName    string    `json:"file_name"`
	FileSize    int64     `json:"file_size"`
	RowCount    int       `json:"row_count"`
	ColumnCount int       `json:"column_count"`
	Status      string    `json:"status"`
	Message     string    `json:"message,omitempty"`
	DurationMS  int64     `json:"duration_ms"`
	ChartCount  int       `json:"chart_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewUploadHistoryResponse converts a domain record to its API shape
func NewUploadHistoryResponse(r *history.UploadRecord) UploadHistoryResponse {
	return UploadHistoryResponse{
		ID:          r.ID.String(),
		FileName:    r.FileName,
		FileSize:    r.FileSize,
		RowCount:    r.RowCount,
		ColumnCount: r.ColumnCount,
		Status:      r.Status,
		Message:     r.Message,
		DurationMS:  r.Duration.Milliseconds(),
		ChartCount:  r.ChartCount,
		CreatedAt:   r.CreatedAt,
	}
}

// NewUploadHistoryListResponse converts a page of records
func NewUploadHistoryListResponse(records []*history.UploadRecord) []UploadHistoryResponse {
	items := make([]UploadHistoryResponse, len(records))
	for i, r := range records {
		items[i] = NewUploadHistoryResponse(r)
	}
	return items
}
