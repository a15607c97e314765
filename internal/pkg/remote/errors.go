package remote

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable 网络/后端错误，对纯文本载荷触发本地回退
	ErrUnavailable = errors.New("remote analysis unavailable")
	// ErrRateLimited 后端限流（HTTP 429）
	ErrRateLimited = errors.New("remote analysis rate limited")
	// ErrQuotaExceeded 配额/额度耗尽（HTTP 402）
	ErrQuotaExceeded = errors.New("remote analysis quota exceeded")
)

// BackendValidationError 后端判定文档无效（HTTP 400）
// Message 来自后端的 error 字段，直接面向用户
type BackendValidationError struct {
	Message string
}

func (e *BackendValidationError) Error() string {
	return e.Message
}

// MalformedResponseError 传输层成功但响应体无法解析
// 对回退语义而言等同于 ErrUnavailable
type MalformedResponseError struct {
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed remote response: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return ErrUnavailable
}
