// Package models holds the GORM persistence models and their domain
// conversions.
package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/insightdash/backend/internal/domain/history"
)

// UploadHistoryModel is the GORM model for upload history records.
type UploadHistoryModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	FileName    string    `gorm:"size:255;not null"`
	FileSize    int64     `gorm:"not null"`
	RowCount    int       `gorm:"not null;default:0"`
	ColumnCount int       `gorm:"not null;default:0"`
	Status      string    `gorm:"size:32;not null;index"`
	Message     string    `gorm:"size:1024"`
	DurationMS  int64     `gorm:"not null;default:0"`
	ChartCount  int       `gorm:"not null;default:0"`
	CreatedAt   time.Time `gorm:"not null;index"`
}

// TableName overrides the GORM table name
func (UploadHistoryModel) TableName() string {
	return "upload_history"
}

// ToDomain converts the model to a domain record
func (m *UploadHistoryModel) ToDomain() *history.UploadRecord {
	return &history.UploadRecord{
		ID:          m.ID,
		FileName:    m.FileName,
		FileSize:    m.FileSize,
		RowCount:    m.RowCount,
		ColumnCount: m.ColumnCount,
		Status:      m.Status,
		Message:     m.Message,
		Duration:    time.Duration(m.DurationMS) * time.Millisecond,
		ChartCount:  m.ChartCount,
		CreatedAt:   m.CreatedAt,
	}
}

// UploadHistoryModelFromDomain converts a domain record to the model
func UploadHistoryModelFromDomain(r *history.UploadRecord) *UploadHistoryModel {
	return &UploadHistoryModel{
		ID:          r.ID,
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
