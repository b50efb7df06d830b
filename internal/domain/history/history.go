// Package history holds the upload history entity: one record per processed
// dashboard upload. Recording is best-effort and never fails the upload
// itself.
package history

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Upload statuses.
const (
	StatusProcessed = "processed"
	StatusFailed    = "failed"
)

// UploadRecord describes one processed upload.
type UploadRecord struct {
	ID          uuid.UUID
	FileName    string
	FileSize    int64
	RowCount    int
	ColumnCount int
	Status      string
	Message     string
	Duration    time.Duration
	ChartCount  int
	CreatedAt   time.Time
}

// NewUploadRecord creates a record with a fresh ID and timestamp.
func NewUploadRecord(fileName string, fileSize int64) *UploadRecord {
	return &UploadRecord{
		ID:        uuid.New(),
		FileName:  fileName,
		FileSize:  fileSize,
		CreatedAt: time.Now().UTC(),
	}
}

// MarkProcessed records a successful upload.
func (r *UploadRecord) MarkProcessed(rows, columns, charts int, duration time.Duration) {
	r.Status = StatusProcessed
	r.RowCount = rows
	r.ColumnCount = columns
	r.ChartCount = charts
	r.Duration = duration
}

// MarkFailed records a rejected upload with the reason.
func (r *UploadRecord) MarkFailed(message string, duration time.Duration) {
	r.Status = StatusFailed
	r.Message = message
	r.Duration = duration
}

// ListResult is one page of upload history.
type ListResult struct {
	Items      []*UploadRecord
	TotalCount int64
	Page       int
	PageSize   int
}

// Repository persists upload records.
type Repository interface {
	Save(ctx context.Context, record *UploadRecord) error
	FindByID(ctx context.Context, id uuid.UUID) (*UploadRecord, error)
	FindAll(ctx context.Context, page, pageSize int) (*ListResult, error)
}
