package analyzer

import "strings"

// detectRule 单条风险检测规则
// 规则按声明顺序求值，保证输出次序稳定
type detectRule struct {
	name  string
	match func(lower string) bool
	build func(lower string) RiskItem
}

func containsAny(lower string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

var detectRules = []detectRule{
	{
		name: "data-collection",
		match: func(lower string) bool {
			return strings.Contains(lower, "collect") && containsAny(lower, "data", "information")
		},
		build: func(lower string) RiskItem {
			severity := SeverityMedium
			if containsAny(lower, "location", "biometric") {
				severity = SeverityHigh
			}
			impact := "Your personal information is stored and processed by the service."
			if containsAny(lower, "share", "third") {
				impact = "Your personal information may be passed on to other companies."
			}
			return RiskItem{
				Clause:         "Data Collection",
				Risk:           "The service collects your personal data as part of normal use.",
				Impact:         impact,
				Recommendation: "Review which categories of data are collected and disable any optional collection.",
				Severity:       severity,
			}
		},
	},
	{
		name: "third-party-sharing",
		match: func(lower string) bool {
			return containsAny(lower, "share", "third", "partner")
		},
		build: func(lower string) RiskItem {
			return RiskItem{
				Clause:         "Third-Party Data Sharing",
				Risk:           "Your data may be shared with third parties or business partners.",
				Impact:         "Once shared, you lose control over how external parties use your data.",
				Recommendation: "Check whether sharing can be opted out of and who the recipients are.",
				Severity:       SeverityHigh,
			}
		},
	},
	{
		name: "marketing",
		match: func(lower string) bool {
			return containsAny(lower, "marketing", "advertis", "promotional")
		},
		build: func(lower string) RiskItem {
			return RiskItem{
				Clause:         "Marketing & Advertising",
				Risk:           "Your information may be used for marketing or targeted advertising.",
				Impact:         "You may receive promotional messages and see personalized ads.",
				Recommendation: "Opt out of marketing communications where the service allows it.",
				Severity:       SeverityMedium,
			}
		},
	},
	{
		name: "tracking",
		match: func(lower string) bool {
			return containsAny(lower, "cookie", "tracking", "analytics")
		},
		build: func(lower string) RiskItem {
			return RiskItem{
				Clause:         "Cookies & Tracking",
				Risk:           "The service uses cookies, analytics or other tracking technologies.",
				Impact:         "Your behavior across the service (and possibly other sites) can be profiled.",
				Recommendation: "Limit tracking through browser settings or the service's cookie preferences.",
				Severity:       SeverityMedium,
			}
		},
	},
	{
		name: "retention",
		match: func(lower string) bool {
			return containsAny(lower, "retain", "delete", "storage")
		},
		build: func(lower string) RiskItem {
			severity := SeverityMedium
			if strings.Contains(lower, "indefinitely") {
				severity = SeverityHigh
			}
			return RiskItem{
				Clause:         "Data Retention & Deletion",
				Risk:           "The document defines how long your data is kept and whether it can be deleted.",
				Impact:         "Your data may remain on the service's systems after you stop using it.",
				Recommendation: "Look for a deletion procedure and exercise it when leaving the service.",
				Severity:       severity,
			}
		},
	},
}

// genericRiskItem 所有规则都未命中时的兜底项，保证输出非空
var genericRiskItem = RiskItem{
	Clause:         "General Privacy Terms",
	Risk:           "The document contains standard terms governing your use of the service.",
	Impact:         "Your rights and obligations are defined by these terms.",
	Recommendation: "Read the full document before accepting.",
	Severity:       SeverityLow,
}

// Detect 扫描文本中的已知风险模式
// 基于小写文本做子串匹配，相同输入必得相同输出；结果永不为空
func Detect(text string) []RiskItem {
	lower := strings.ToLower(text)

	items := make([]RiskItem, 0, len(detectRules))
	for _, rule := range detectRules {
		if rule.match(lower) {
			items = append(items, rule.build(lower))
		}
	}

	if len(items) == 0 {
		items = append(items, genericRiskItem)
	}
	return items
}
