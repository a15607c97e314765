package analyzer

import (
	"fmt"

	"k8s.io/klog/v2"
)

// AnalysisState 单次分析请求的所有可能状态
type AnalysisState string

const (
	StateIdle       AnalysisState = "idle"       // 请求刚进入
	StateValidating AnalysisState = "validating" // 正在做文档判定
	StateRemote     AnalysisState = "remote"     // 正在尝试远程分析
	StateFallback   AnalysisState = "fallback"   // 远程失败，走本地启发式管线
	StateDone       AnalysisState = "done"       // 已产出结果
	StateRejected   AnalysisState = "rejected"   // 终态失败
)

// analysisTransition 状态迁移
type analysisTransition struct {
	From AnalysisState
	To   AnalysisState
}

// analysisStateMachine 分析流程状态机
// 每次分析请求持有独立实例，请求之间不共享
type analysisStateMachine struct {
	current            AnalysisState
	allowedTransitions map[analysisTransition]bool
}

func newAnalysisStateMachine() *analysisStateMachine {
	sm := &analysisStateMachine{
		current:            StateIdle,
		allowedTransitions: make(map[analysisTransition]bool),
	}

	// 合法的迁移路径
	// idle -> validating -> remote -> done
	// 校验失败直接 rejected；远程失败视载荷类型走 fallback 或 rejected
	transitions := []analysisTransition{
		{StateIdle, StateValidating},
		{StateValidating, StateRemote},
		{StateValidating, StateRejected},
		{StateRemote, StateDone},
		{StateRemote, StateFallback},
		{StateRemote, StateRejected},
		{StateFallback, StateDone},
	}
	for _, t := range transitions {
		sm.allowedTransitions[t] = true
	}
	return sm
}

// transition 执行状态迁移，非法迁移说明编排逻辑有缺陷
func (sm *analysisStateMachine) transition(to AnalysisState) error {
	t := analysisTransition{From: sm.current, To: to}
	if !sm.allowedTransitions[t] {
		return &InvalidStateTransitionError{From: string(sm.current), To: string(to)}
	}
	klog.V(6).Infof("分析状态迁移: %s -> %s", sm.current, to)
	sm.current = to
	return nil
}

// InvalidStateTransitionError 无效的分析状态迁移错误
type InvalidStateTransitionError struct {
	From string
	To   string
}

func (e *InvalidStateTransitionError) Error() string {
	return fmt.Sprintf("invalid analysis state transition: %s -> %s", e.From, e.To)
}
