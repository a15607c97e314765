package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AFSHAL-7/trustlens/internal/analyzer"
	"github.com/AFSHAL-7/trustlens/internal/eventbus"
	"github.com/AFSHAL-7/trustlens/internal/model"
	"github.com/AFSHAL-7/trustlens/internal/pkg/artifact"
	"github.com/AFSHAL-7/trustlens/internal/pkg/metrics"
	"github.com/AFSHAL-7/trustlens/internal/repository"
	"github.com/AFSHAL-7/trustlens/internal/utils"
	"github.com/google/uuid"
	"k8s.io/klog/v2"
)

// HighRiskThreshold 风险分达到该值计入高风险统计
const HighRiskThreshold = 70

// AnalysisService 分析主服务
// 编排核心引擎，持久化快照，归档上传件并发布事件
type AnalysisService struct {
	orchestrator *analyzer.Orchestrator
	analysisRepo repository.AnalysisRepository
	artifacts    artifact.Store
	bus          *eventbus.Bus
	now          func() time.Time
}

// NewAnalysisService 创建分析服务，artifacts 可为 nil（关闭归档）
func NewAnalysisService(
	orchestrator *analyzer.Orchestrator,
	analysisRepo repository.AnalysisRepository,
	artifacts artifact.Store,
	bus *eventbus.Bus,
) *AnalysisService {
	return &AnalysisService{
		orchestrator: orchestrator,
		analysisRepo: analysisRepo,
		artifacts:    artifacts,
		bus:          bus,
		now:          time.Now,
	}
}

// Analyze 对原始载荷执行完整分析并持久化快照
func (s *AnalysisService) Analyze(ctx context.Context, userID, rawPayload string) (*model.Analysis, error) {
	result, source, err := s.orchestrator.Analyze(ctx, rawPayload)
	if err != nil {
		metrics.AnalysisRejections.WithLabelValues(rejectionReason(err)).Inc()
		return nil, err
	}

	payload := analyzer.ParsePayload(rawPayload)
	record := &model.Analysis{
		UUID:            uuid.New().String(),
		UserID:          userID,
		DocumentTitle:   result.DocumentTitle,
		CompanyName:     result.CompanyName,
		RiskScore:       result.RiskScore,
		Source:          string(source),
		ConsentDecision: model.ConsentPending,
		RiskItems:       utils.ToJSON(result.RiskItems),
		SummarySections: utils.ToJSON(result.SummaryData),
		IndividualTerms: utils.ToJSON(result.IndividualTerms),
		OriginalText:    originalText(payload),
	}
	if result.SafetyInsights != nil {
		record.SafetyInsights = utils.ToJSON(result.SafetyInsights)
	}

	if err := s.analysisRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to save analysis: %w", err)
	}
	metrics.AnalysesTotal.WithLabelValues(string(source)).Inc()
	klog.V(6).Infof("分析完成并已保存: userID=%s, uuid=%s, source=%s, score=%d",
		userID, record.UUID, source, record.RiskScore)

	s.archive(ctx, userID, record.UUID, payload)

	if s.bus != nil {
		// 统计维护走事件订阅，失败只记日志，不影响主流程
		if err := s.bus.Publish(ctx, eventbus.AnalysisEvent{
			Type:      eventbus.AnalysisCompleted,
			UserID:    userID,
			UUID:      record.UUID,
			RiskScore: record.RiskScore,
			HighRisk:  record.RiskScore >= HighRiskThreshold,
		}); err != nil {
			klog.Errorf("分析完成事件处理失败: uuid=%s, error=%v", record.UUID, err)
		}
	}

	return record, nil
}

// Decide 记录文档级同意决定
func (s *AnalysisService) Decide(ctx context.Context, userID, analysisUUID, decision string) (*model.Analysis, error) {
	if decision != model.ConsentAccepted && decision != model.ConsentDeclined {
		return nil, fmt.Errorf("invalid consent decision: %s", decision)
	}

	if err := s.analysisRepo.UpdateConsent(ctx, userID, analysisUUID, decision, s.now()); err != nil {
		return nil, err
	}
	klog.V(6).Infof("同意决定已记录: userID=%s, uuid=%s, decision=%s", userID, analysisUUID, decision)

	if s.bus != nil {
		if err := s.bus.Publish(ctx, eventbus.AnalysisEvent{
			Type:   eventbus.ConsentRecorded,
			UserID: userID,
			UUID:   analysisUUID,
		}); err != nil {
			klog.Errorf("同意事件处理失败: uuid=%s, error=%v", analysisUUID, err)
		}
	}

	return s.analysisRepo.GetByUUID(ctx, userID, analysisUUID)
}

// Get 查询单条分析记录（仅限归属用户）
func (s *AnalysisService) Get(ctx context.Context, userID, analysisUUID string) (*model.Analysis, error) {
	return s.analysisRepo.GetByUUID(ctx, userID, analysisUUID)
}

// List 列出用户的分析记录，最新在前
func (s *AnalysisService) List(ctx context.Context, userID string, limit int) ([]model.Analysis, error) {
	return s.analysisRepo.ListByUser(ctx, userID, limit)
}

// archive 把二进制上传件写入归档存储，失败不影响分析结果
func (s *AnalysisService) archive(ctx context.Context, userID, analysisUUID string, payload analyzer.Payload) {
	if s.artifacts == nil || payload.IsText() || payload.Data == "" {
		return
	}
	key := fmt.Sprintf("%s/%s", userID, analysisUUID)
	if err := s.artifacts.Save(ctx, key, []byte(payload.Data), contentType(payload.Kind)); err != nil {
		klog.Errorf("上传件归档失败: key=%s, error=%v", key, err)
	}
}

// originalText 生成持久化的原文快照
// 二进制载荷没有可读原文，存占位标记
func originalText(payload analyzer.Payload) string {
	if payload.IsText() {
		return payload.Text
	}
	name := payload.FileName
	if name == "" {
		name = "unnamed"
	}
	return fmt.Sprintf("[%s uploaded: %s]", payload.Kind, name)
}

func contentType(kind analyzer.PayloadKind) string {
	switch kind {
	case analyzer.PayloadPDF:
		return "application/pdf"
	case analyzer.PayloadImage:
		return "application/octet-stream"
	}
	return "application/octet-stream"
}

func rejectionReason(err error) string {
	var ve *analyzer.ValidationError
	if errors.As(err, &ve) {
		return "validation"
	}
	return "remote"
}
