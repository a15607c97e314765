package repository

import (
	"context"
	"errors"
	"time"

	"github.com/AFSHAL-7/trustlens/internal/model"
)

// ErrNotFound 记录不存在错误
var ErrNotFound = errors.New("record not found")

// AnalysisRepository 分析快照仓储
type AnalysisRepository interface {
	Create(ctx context.Context, analysis *model.Analysis) error
	GetByUUID(ctx context.Context, userID, uuid string) (*model.Analysis, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]model.Analysis, error)
	UpdateConsent(ctx context.Context, userID, uuid, decision string, decidedAt time.Time) error
}

// UserStatsRepository 每用户聚合统计仓储
// RecordAnalysis / RecordConsent 在事务内做读改写
type UserStatsRepository interface {
	Get(ctx context.Context, userID string) (*model.UserStats, error)
	RecordAnalysis(ctx context.Context, userID string, riskScore int, highRisk bool, now time.Time) (*model.UserStats, error)
	RecordConsent(ctx context.Context, userID string, now time.Time) error
}
