package analyzer

import (
	"fmt"
	"strings"
)

const (
	summaryTitle  = "Document Analysis Summary"
	maxBullets    = 5
	bulletPrefix  = "• "
	minRichBullet = 4
)

// Summarize 生成单段人类可读的摘要
// riskLevel 取 items 中的最高等级；内容为固定顺序生成的要点列表，最多保留 5 条
func Summarize(text string, items []RiskItem) []SummarySection {
	lower := strings.ToLower(text)
	bullets := make([]string, 0, maxBullets+1)

	if strings.Contains(lower, "collect") && containsAny(lower, "data", "information") {
		if containsAny(lower, "share", "third") {
			bullets = append(bullets, "Your personal data is collected and may be shared with third parties")
		} else {
			bullets = append(bullets, "Your personal data is collected and used by the service")
		}
	}

	if containsAny(lower, "cookie", "tracking") {
		bullets = append(bullets, "Cookies or tracking technologies monitor your activity")
	}

	if containsAny(lower, "marketing", "promotional") {
		bullets = append(bullets, "Your contact details may be used for marketing or promotional messages")
	}

	// 权利要点二选一，必有其一
	if containsAny(lower, "right", "access", "delete") {
		bullets = append(bullets, "The document provides user rights such as accessing or deleting your data")
	} else {
		bullets = append(bullets, "The document offers limited information about your rights over your data")
	}

	if high := countHighSeverity(items); high > 0 {
		if high == 1 {
			bullets = append(bullets, "1 high-risk clause was identified in this document")
		} else {
			bullets = append(bullets, fmt.Sprintf("%d high-risk clauses were identified in this document", high))
		}
	}

	if len(bullets) < minRichBullet {
		bullets = append(bullets, "Review the full terms carefully before accepting")
	}

	if len(bullets) > maxBullets {
		bullets = bullets[:maxBullets]
	}

	lines := make([]string, 0, len(bullets))
	for _, b := range bullets {
		lines = append(lines, bulletPrefix+b)
	}

	return []SummarySection{
		{
			Title:     summaryTitle,
			Content:   strings.Join(lines, "\n"),
			RiskLevel: maxSeverity(items),
		},
	}
}

func countHighSeverity(items []RiskItem) int {
	count := 0
	for _, item := range items {
		if item.Severity == SeverityHigh {
			count++
		}
	}
	return count
}

func maxSeverity(items []RiskItem) Severity {
	level := SeverityLow
	for _, item := range items {
		if item.Severity.Rank() > level.Rank() {
			level = item.Severity
		}
	}
	return level
}
