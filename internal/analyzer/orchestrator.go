package analyzer

import (
	"context"
	"fmt"

	"k8s.io/klog/v2"
)

// fallbackTitle 本地管线未识别出标题时的兜底标题
const fallbackTitle = "Terms & Conditions Analysis"

// RemoteAnalyzer 远程生成式分析后端
// 实现方负责超时控制，这里只区分成功与失败
type RemoteAnalyzer interface {
	Analyze(ctx context.Context, payload Payload) (*AnalysisResult, error)
}

// RemoteOutcome 远程调用的带标签结果
// 把"远程失败走回退"建成显式分支而不是贯穿控制流的异常
type RemoteOutcome struct {
	Result *AnalysisResult
	Err    error
}

// Succeeded 报告远程调用是否成功
func (o RemoteOutcome) Succeeded() bool {
	return o.Err == nil && o.Result != nil
}

// Orchestrator 分析入口
// 校验输入，优先远程分析，纯文本失败时回退本地启发式管线
type Orchestrator struct {
	remote RemoteAnalyzer
}

func NewOrchestrator(remote RemoteAnalyzer) *Orchestrator {
	return &Orchestrator{remote: remote}
}

// Analyze 对原始载荷执行完整的分析流程
// 返回统一的结果与产出路径；失败时返回面向用户的单条错误
func (o *Orchestrator) Analyze(ctx context.Context, raw string) (*AnalysisResult, Source, error) {
	sm := newAnalysisStateMachine()
	payload := ParsePayload(raw)

	// 纯文本先过文档判定，无效文本不发起远程调用
	if err := sm.transition(StateValidating); err != nil {
		return nil, "", err
	}
	if payload.IsText() {
		if cr := Classify(payload.Text); !cr.IsValid {
			sm.transition(StateRejected)
			klog.V(6).Infof("文档判定未通过: %s", cr.Reason)
			return nil, "", &ValidationError{Reason: cr.Reason}
		}
	}

	if err := sm.transition(StateRemote); err != nil {
		return nil, "", err
	}
	outcome := o.callRemote(ctx, payload)
	if outcome.Succeeded() {
		sm.transition(StateDone)
		return outcome.Result, SourceRemote, nil
	}

	// 二进制载荷没有本地回退能力，远程失败即终态
	if !payload.IsText() {
		sm.transition(StateRejected)
		klog.Errorf("二进制载荷远程分析失败且无法回退: kind=%s, err=%v", payload.Kind, outcome.Err)
		return nil, "", fmt.Errorf("remote analysis failed: %w", outcome.Err)
	}

	if err := sm.transition(StateFallback); err != nil {
		return nil, "", err
	}
	klog.V(6).Infof("远程分析失败，回退本地启发式管线: err=%v", outcome.Err)
	result := o.analyzeLocally(payload.Text)
	sm.transition(StateDone)
	return result, SourceHeuristic, nil
}

func (o *Orchestrator) callRemote(ctx context.Context, payload Payload) RemoteOutcome {
	if o.remote == nil {
		return RemoteOutcome{Err: fmt.Errorf("remote analyzer not configured")}
	}
	result, err := o.remote.Analyze(ctx, payload)
	if err != nil {
		return RemoteOutcome{Err: err}
	}
	return RemoteOutcome{Result: result}
}

// analyzeLocally 本地启发式管线
// 纯确定性计算，不会失败；远程专属字段（companyName、safetyInsights）留空
func (o *Orchestrator) analyzeLocally(text string) *AnalysisResult {
	items := Detect(text)

	title := DetectTitle(text)
	if title == "" {
		title = fallbackTitle
	}

	return &AnalysisResult{
		DocumentTitle:   title,
		RiskScore:       Score(items, text),
		RiskItems:       items,
		SummaryData:     Summarize(text, items),
		IndividualTerms: ExtractTerms(text),
	}
}
