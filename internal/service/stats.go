package service

import (
	"context"
	"errors"

	"github.com/AFSHAL-7/trustlens/internal/model"
	"github.com/AFSHAL-7/trustlens/internal/repository"
)

// StatsService 仪表盘统计服务
type StatsService struct {
	statsRepo repository.UserStatsRepository
}

func NewStatsService(statsRepo repository.UserStatsRepository) *StatsService {
	return &StatsService{statsRepo: statsRepo}
}

// Get 查询用户的聚合统计
// 从未分析过的用户返回全零行，便于仪表盘直接渲染
func (s *StatsService) Get(ctx context.Context, userID string) (*model.UserStats, error) {
	stats, err := s.statsRepo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &model.UserStats{UserID: userID}, nil
		}
		return nil, err
	}
	return stats, nil
}
