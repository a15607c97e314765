package analyzer

import "strings"

// essentialTerm 必选项，任何结果都以它开头且不可拒绝
var essentialTerm = IndividualTerm{
	ID:          "essential-service",
	Title:       "Essential Service Operation",
	Description: "Core data processing required to provide the service. This cannot be declined.",
	Risk:        SeverityLow,
	IsRequired:  true,
}

// termRule 可选条款的提取规则，按声明顺序独立求值
type termRule struct {
	match func(lower string) bool
	build func(lower string) IndividualTerm
}

var termRules = []termRule{
	{
		match: func(lower string) bool { return strings.Contains(lower, "collect") },
		build: func(lower string) IndividualTerm {
			risk := SeverityMedium
			if strings.Contains(lower, "sensitive") {
				risk = SeverityHigh
			}
			return IndividualTerm{
				ID:          "data-collection",
				Title:       "Personal Data Collection",
				Description: "Allow the service to collect personal data about you and your usage.",
				Risk:        risk,
			}
		},
	},
	{
		match: func(lower string) bool { return containsAny(lower, "marketing", "promotional") },
		build: func(lower string) IndividualTerm {
			return IndividualTerm{
				ID:          "marketing",
				Title:       "Marketing Communications",
				Description: "Receive promotional emails and other marketing messages.",
				Risk:        SeverityLow,
			}
		},
	},
	{
		match: func(lower string) bool { return containsAny(lower, "analytics", "tracking") },
		build: func(lower string) IndividualTerm {
			return IndividualTerm{
				ID:          "analytics",
				Title:       "Analytics & Usage Tracking",
				Description: "Allow your usage to be measured for product analytics.",
				Risk:        SeverityMedium,
			}
		},
	},
	{
		match: func(lower string) bool { return containsAny(lower, "share", "third") },
		build: func(lower string) IndividualTerm {
			return IndividualTerm{
				ID:          "third-party-sharing",
				Title:       "Third-Party Data Sharing",
				Description: "Allow your data to be shared with third-party companies.",
				Risk:        SeverityHigh,
			}
		},
	},
	{
		match: func(lower string) bool { return containsAny(lower, "location", "gps") },
		build: func(lower string) IndividualTerm {
			return IndividualTerm{
				ID:          "location-data",
				Title:       "Location Data",
				Description: "Allow the service to collect and use your location.",
				Risk:        SeverityHigh,
			}
		},
	},
	{
		match: func(lower string) bool { return strings.Contains(lower, "cookie") },
		build: func(lower string) IndividualTerm {
			return IndividualTerm{
				ID:          "cookies",
				Title:       "Cookies",
				Description: "Allow cookies to be stored on your device.",
				Risk:        SeverityMedium,
			}
		},
	},
}

// ExtractTerms 从文本中提取可单独勾选的条款
// 第一项永远是必选的 essential-service，其余按固定顺序按关键词出现追加
func ExtractTerms(text string) []IndividualTerm {
	lower := strings.ToLower(text)

	terms := make([]IndividualTerm, 0, len(termRules)+1)
	terms = append(terms, essentialTerm)
	for _, rule := range termRules {
		if rule.match(lower) {
			terms = append(terms, rule.build(lower))
		}
	}
	return terms
}
