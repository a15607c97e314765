package analyzer

// Severity 风险等级
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Rank 返回等级的序数，便于比较（high > medium > low）
func (s Severity) Rank() int {
	switch s {
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	}
	return 0
}

// RiskItem 检测到的单条风险条款
// 由 detector 产出后不再修改
type RiskItem struct {
	Clause         string   `json:"clause"`
	Risk           string   `json:"risk"`
	Impact         string   `json:"impact"`
	Recommendation string   `json:"recommendation"`
	Severity       Severity `json:"severity"`
}

// SummarySection 摘要段落，嵌入在 AnalysisResult 中，不单独持久化
type SummarySection struct {
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	RiskLevel Severity `json:"riskLevel"`
}

// IndividualTerm 可单独勾选的条款项
// IsRequired 为 true 的条款不可拒绝
type IndividualTerm struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Risk        Severity `json:"risk"`
	IsRequired  bool     `json:"isRequired"`
}

// SafetyInsights 仅远程分析路径会给出的补充信息
type SafetyInsights struct {
	ComparisonToSafeServices string   `json:"comparisonToSafeServices"`
	RecommendedUsage         string   `json:"recommendedUsage"`
	TrustScore               int      `json:"trustScore"`
	KeyWarnings              []string `json:"keyWarnings"`
}

// AnalysisResult 统一的分析输出
// 本地启发式路径下，相同输入必须产出相同结果；构造后不再修改
type AnalysisResult struct {
	DocumentTitle   string           `json:"documentTitle"`
	CompanyName     string           `json:"companyName,omitempty"`
	RiskScore       int              `json:"riskScore"`
	RiskItems       []RiskItem       `json:"riskItems"`
	SummaryData     []SummarySection `json:"summaryData"`
	IndividualTerms []IndividualTerm `json:"individualTerms"`
	SafetyInsights  *SafetyInsights  `json:"safetyInsights,omitempty"`
}

// Source 标记结果由哪条路径产出
type Source string

const (
	SourceRemote    Source = "remote"
	SourceHeuristic Source = "heuristic"
)
