package repository

import (
	"context"
	"errors"
	"time"

	"github.com/AFSHAL-7/trustlens/internal/model"
	"gorm.io/gorm"
)

type analysisRepository struct {
	db *gorm.DB
}

// NewAnalysisRepository 创建分析快照仓储
func NewAnalysisRepository(db *gorm.DB) AnalysisRepository {
	return &analysisRepository{db: db}
}

// Create 新增分析快照
func (r *analysisRepository) Create(ctx context.Context, analysis *model.Analysis) error {
	return r.db.WithContext(ctx).Create(analysis).Error
}

// GetByUUID 按 uuid 查询，限定归属用户
func (r *analysisRepository) GetByUUID(ctx context.Context, userID, uuid string) (*model.Analysis, error) {
	var analysis model.Analysis
	err := r.db.WithContext(ctx).
		Where("uuid = ? AND user_id = ?", uuid, userID).
		First(&analysis).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &analysis, nil
}

// ListByUser 按用户列出分析记录，最新在前
func (r *analysisRepository) ListByUser(ctx context.Context, userID string, limit int) ([]model.Analysis, error) {
	var analyses []model.Analysis
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&analyses).Error; err != nil {
		return nil, err
	}
	return analyses, nil
}

// UpdateConsent 更新文档级同意决定
func (r *analysisRepository) UpdateConsent(ctx context.Context, userID, uuid, decision string, decidedAt time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&model.Analysis{}).
		Where("uuid = ? AND user_id = ?", uuid, userID).
		Updates(map[string]any{
			"consent_decision": decision,
			"decided_at":       decidedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
