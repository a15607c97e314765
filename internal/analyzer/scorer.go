package analyzer

import "strings"

const (
	baseScore = 30
	maxScore  = 100
)

// severityPoints 每条风险项按等级加分
var severityPoints = map[Severity]int{
	SeverityHigh:   20,
	SeverityMedium: 10,
	SeverityLow:    5,
}

// keywordBonuses 关键词加分表，按词是否出现计一次，不按出现次数累计
var keywordBonuses = []struct {
	keyword string
	points  int
}{
	{"indefinitely", 15},
	{"permanent", 15},
	{"irrevocable", 10},
	{"biometric", 20},
	{"location", 10},
	{"children", 15},
	{"minor", 15},
	{"sell", 25},
	{"monetize", 20},
}

// Score 把风险项与原文折算成 0-100 的风险分
// 纯函数：相同 (items, text) 必得相同整数
func Score(items []RiskItem, text string) int {
	score := baseScore
	for _, item := range items {
		score += severityPoints[item.Severity]
	}

	lower := strings.ToLower(text)
	for _, bonus := range keywordBonuses {
		if strings.Contains(lower, bonus.keyword) {
			score += bonus.points
		}
	}

	if score > maxScore {
		score = maxScore
	}
	return score
}
