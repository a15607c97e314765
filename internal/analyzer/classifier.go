package analyzer

import (
	"regexp"
	"strings"
)

// ClassifyResult 文档有效性判定结果
type ClassifyResult struct {
	IsValid bool   `json:"isValid"`
	Reason  string `json:"reason,omitempty"`
}

const (
	reasonTooShort      = "This document is too short to be valid terms and conditions."
	reasonPlaceholder   = "This appears to be placeholder or test content rather than a real document."
	reasonNotLegalDoc   = "This doesn't appear to be a terms and conditions or privacy policy document."
	reasonIncomplete    = "This document appears incomplete and lacks sufficient structure to analyze."
	minDocumentLength   = 100
	minLegalKeywordHits = 5
	minStructuredLines  = 5
	minLineContentChars = 20
)

// legalTitlePatterns 法律文档标题特征
// 命中任意一条即认定为法律文档；canonical 同时用作回退标题
var legalTitlePatterns = []struct {
	pattern   *regexp.Regexp
	canonical string
}{
	{regexp.MustCompile(`(?i)terms\s+(of|and)\s+(service|use|conditions)`), "Terms of Service"},
	{regexp.MustCompile(`(?i)privacy\s+policy`), "Privacy Policy"},
	{regexp.MustCompile(`(?i)user\s+agreement`), "User Agreement"},
	{regexp.MustCompile(`(?i)end[\s-]*user\s+licen[sc]e\s+agreement|\bEULA\b`), "End User License Agreement"},
	{regexp.MustCompile(`(?i)cookie\s+policy`), "Cookie Policy"},
	{regexp.MustCompile(`(?i)data\s+(protection|processing)\s+(policy|agreement)`), "Data Protection Policy"},
	{regexp.MustCompile(`(?i)acceptable\s+use\s+policy`), "Acceptable Use Policy"},
	{regexp.MustCompile(`(?i)conditions\s+of\s+use`), "Conditions of Use"},
	{regexp.MustCompile(`(?i)legal\s+(notice|agreement)`), "Legal Notice"},
}

// legalVocabulary 法律文档常用词表，按命中的不同词数判定
var legalVocabulary = []string{
	"agree", "rights", "obligation", "liability", "consent",
	"data", "privacy", "collect", "process", "information",
	"service", "user", "personal", "policy", "compliance",
	"protection", "security", "disclosure", "jurisdiction",
}

// placeholderMarkers 上传占位符前缀，整体为占位内容时直接拒绝
var placeholderMarkers = []string{"[image uploaded:", "[document uploaded:"}

// Classify 判断文本是否像一份值得分析的法律/授权文档
// 纯函数，按固定顺序检查，首个失败即返回
func Classify(text string) ClassifyResult {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) < minDocumentLength {
		return ClassifyResult{IsValid: false, Reason: reasonTooShort}
	}

	lower := strings.ToLower(trimmed)
	if isPlaceholder(lower) {
		return ClassifyResult{IsValid: false, Reason: reasonPlaceholder}
	}

	// 命中法律标题即认定有效，不再要求结构
	for _, p := range legalTitlePatterns {
		if p.pattern.MatchString(trimmed) {
			return ClassifyResult{IsValid: true}
		}
	}

	// 无标题时退回词表判定，并额外要求文本有基本的分行结构
	if countVocabularyHits(lower) < minLegalKeywordHits {
		return ClassifyResult{IsValid: false, Reason: reasonNotLegalDoc}
	}
	if countStructuredLines(trimmed) < minStructuredLines {
		return ClassifyResult{IsValid: false, Reason: reasonIncomplete}
	}

	return ClassifyResult{IsValid: true}
}

// DetectTitle 返回文本命中的法律标题，未命中时返回空串
func DetectTitle(text string) string {
	for _, p := range legalTitlePatterns {
		if p.pattern.MatchString(text) {
			return p.canonical
		}
	}
	return ""
}

func isPlaceholder(lower string) bool {
	for _, marker := range placeholderMarkers {
		if strings.HasPrefix(lower, marker) {
			return true
		}
	}
	if lower == "test" || lower == "sample" {
		return true
	}
	return strings.Contains(lower, "lorem ipsum")
}

func countVocabularyHits(lower string) int {
	hits := 0
	for _, word := range legalVocabulary {
		if strings.Contains(lower, word) {
			hits++
		}
	}
	return hits
}

// countStructuredLines 统计非空白字符数超过阈值的行数
func countStructuredLines(text string) int {
	count := 0
	for _, line := range strings.Split(text, "\n") {
		content := 0
		for _, r := range line {
			if !isSpace(r) {
				content++
			}
		}
		if content > minLineContentChars {
			count++
		}
	}
	return count
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n' || r == '\v' || r == '\f'
}
