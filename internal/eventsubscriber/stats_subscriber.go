package eventsubscriber

import (
	"context"
	"fmt"
	"time"

	"github.com/AFSHAL-7/trustlens/internal/eventbus"
	"github.com/AFSHAL-7/trustlens/internal/repository"
	"k8s.io/klog/v2"
)

// StatsSubscriber 消费分析事件并维护每用户聚合统计
// 统计失败只记日志，不影响分析主流程
type StatsSubscriber struct {
	statsRepo repository.UserStatsRepository
	now       func() time.Time
}

func NewStatsSubscriber(statsRepo repository.UserStatsRepository) *StatsSubscriber {
	return &StatsSubscriber{
		statsRepo: statsRepo,
		now:       time.Now,
	}
}

func (s *StatsSubscriber) Register(bus *eventbus.Bus) {
	if bus == nil {
		return
	}
	bus.Subscribe(eventbus.AnalysisCompleted, s.handleAnalysisCompleted)
	bus.Subscribe(eventbus.ConsentRecorded, s.handleConsentRecorded)
}

func (s *StatsSubscriber) handleAnalysisCompleted(ctx context.Context, event eventbus.AnalysisEvent) error {
	if event.UserID == "" {
		return fmt.Errorf("用户ID为空")
	}
	stats, err := s.statsRepo.RecordAnalysis(ctx, event.UserID, event.RiskScore, event.HighRisk, s.now())
	if err != nil {
		klog.Errorf("统计更新失败: type=%s, userID=%s, error=%v", event.Type, event.UserID, err)
		return err
	}
	klog.V(6).Infof("统计更新成功: userID=%s, total=%d, avg=%d", event.UserID, stats.TotalAnalyses, stats.AverageRiskScore)
	return nil
}

func (s *StatsSubscriber) handleConsentRecorded(ctx context.Context, event eventbus.AnalysisEvent) error {
	if event.UserID == "" {
		return fmt.Errorf("用户ID为空")
	}
	if err := s.statsRepo.RecordConsent(ctx, event.UserID, s.now()); err != nil {
		klog.Errorf("同意统计更新失败: userID=%s, error=%v", event.UserID, err)
		return err
	}
	klog.V(6).Infof("同意统计更新成功: userID=%s", event.UserID)
	return nil
}
