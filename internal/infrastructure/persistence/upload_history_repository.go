package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/insightdash/backend/internal/domain/history"
	"github.com/insightdash/backend/internal/domain/shared"
	"github.com/insightdash/backend/internal/infrastructure/persistence/models"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// GormUploadHistoryRepository implements history.Repository using GORM
type GormUploadHistoryRepository struct {
	db *gorm.DB
}

// NewGormUploadHistoryRepository creates a new GormUploadHistoryRepository
func NewGormUploadHistoryRepository(db *gorm.DB) *GormUploadHistoryRepository {
	return &GormUploadHistoryRepository{db: db}
}

// Save saves an upload record (create or update)
func (r *GormUploadHistoryRepository) Save(ctx context.Context, record *history.UploadRecord) error {
	model := models.UploadHistoryModelFromDomain(record)
	return r.db.WithContext(ctx).Save(model).Error
}

// FindByID finds an upload record by ID
func (r *GormUploadHistoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*history.UploadRecord, error) {
	var model models.UploadHistoryModel
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns upload records, most recent first, with pagination
func (r *GormUploadHistoryRepository) FindAll(ctx context.Context, page, pageSize int) (*history.ListResult, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	query := r.db.WithContext(ctx).Model(&models.UploadHistoryModel{})

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return nil, err
	}

	var historyModels []models.UploadHistoryModel
	if err := query.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&historyModels).Error; err != nil {
		return nil, err
	}

	items := make([]*history.UploadRecord, len(historyModels))
	for i, model := range historyModels {
		items[i] = model.ToDomain()
	}

	return &history.ListResult{
		Items:      items,
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}

// Compile-time interface compliance check
var _ history.Repository = (*GormUploadHistoryRepository)(nil)
