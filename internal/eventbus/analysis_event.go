package eventbus

import "context"

type AnalysisEventType string

const (
	AnalysisCompleted AnalysisEventType = "AnalysisCompleted"
	ConsentRecorded   AnalysisEventType = "ConsentRecorded"
)

// AnalysisEvent 分析生命周期事件
// RiskScore / HighRisk 仅在 AnalysisCompleted 时有意义
type AnalysisEvent struct {
	Type      AnalysisEventType
	UserID    string
	UUID      string
	RiskScore int
	HighRisk  bool
}

type AnalysisEventHandler = func(ctx context.Context, event AnalysisEvent) error
