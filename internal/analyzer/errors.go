package analyzer

// ValidationError 输入文本未通过文档判定
// Reason 直接作为面向用户的提示文案
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}
