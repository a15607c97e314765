package repository

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/AFSHAL-7/trustlens/internal/model"
	"gorm.io/gorm"
)

type userStatsRepository struct {
	db *gorm.DB
}

// NewUserStatsRepository 创建用户统计仓储
func NewUserStatsRepository(db *gorm.DB) UserStatsRepository {
	return &userStatsRepository{db: db}
}

// Get 查询用户统计行，不存在时返回 ErrNotFound
func (r *userStatsRepository) Get(ctx context.Context, userID string) (*model.UserStats, error) {
	var stats model.UserStats
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&stats).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &stats, nil
}

// RecordAnalysis 记入一次新分析
// 事务内读改写：平均分按加权均值重算 round((old_avg*old_total + new_score) / new_total)
func (r *userStatsRepository) RecordAnalysis(ctx context.Context, userID string, riskScore int, highRisk bool, now time.Time) (*model.UserStats, error) {
	var stats model.UserStats
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).First(&stats).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			stats = model.UserStats{UserID: userID}
		}

		oldTotal := stats.TotalAnalyses
		newTotal := oldTotal + 1
		stats.AverageRiskScore = weightedAverage(stats.AverageRiskScore, oldTotal, riskScore, newTotal)
		stats.TotalAnalyses = newTotal
		if highRisk {
			stats.HighRiskAnalyses++
		}
		stats.LastActive = now

		return tx.Save(&stats).Error
	})
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// RecordConsent 记入一次同意决定
func (r *userStatsRepository) RecordConsent(ctx context.Context, userID string, now time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var stats model.UserStats
		if err := tx.Where("user_id = ?", userID).First(&stats).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			stats = model.UserStats{UserID: userID}
		}
		stats.ConsentDecisionsCount++
		stats.LastActive = now
		return tx.Save(&stats).Error
	})
}

func weightedAverage(oldAvg, oldTotal, newScore, newTotal int) int {
	if newTotal <= 0 {
		return 0
	}
	return int(math.Round(float64(oldAvg*oldTotal+newScore) / float64(newTotal)))
}
