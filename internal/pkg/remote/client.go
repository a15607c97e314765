package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/AFSHAL-7/trustlens/config"
	"github.com/AFSHAL-7/trustlens/internal/analyzer"
	"github.com/AFSHAL-7/trustlens/internal/utils"
	"k8s.io/klog/v2"
)

// Client 远程分析后端客户端
type Client struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewClient 创建新的远程分析客户端，超时由配置决定
func NewClient(cfg *config.Config) *Client {
	return &Client{
		BaseURL: cfg.Remote.APIURL,
		APIKey:  cfg.Remote.APIKey,
		Client: &http.Client{
			Timeout: cfg.Remote.Timeout,
		},
	}
}

// Analyze 把载荷发给远程后端并解析结构化结果
func (c *Client) Analyze(ctx context.Context, payload analyzer.Payload) (*analyzer.AnalysisResult, error) {
	reqBody, err := buildRequest(payload)
	if err != nil {
		return nil, err
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := c.BaseURL + "/analyze"
	klog.V(6).Infof("发送远程分析请求: url=%s, kind=%s", url, payload.Kind)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", ErrUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, c.statusError(resp.StatusCode, body)
	}

	// 后端偶尔会在 JSON 外包说明文字，先提取再解析
	var result analyzer.AnalysisResult
	if err := json.Unmarshal([]byte(utils.ExtractJSON(string(body))), &result); err != nil {
		return nil, &MalformedResponseError{Err: err}
	}
	return &result, nil
}

// buildRequest 按载荷类型组请求体
func buildRequest(payload analyzer.Payload) (*AnalyzeRequest, error) {
	switch payload.Kind {
	case analyzer.PayloadText:
		return &AnalyzeRequest{Text: payload.Text}, nil
	case analyzer.PayloadImage:
		return &AnalyzeRequest{ImageData: payload.Data, Type: "image"}, nil
	case analyzer.PayloadPDF:
		return &AnalyzeRequest{PDFData: payload.Data, FileName: payload.FileName, Type: "pdf"}, nil
	case analyzer.PayloadDocument:
		return &AnalyzeRequest{DocData: payload.Data, FileName: payload.FileName, Type: "document"}, nil
	}
	return nil, fmt.Errorf("unsupported payload kind: %s", payload.Kind)
}

// statusError 把 HTTP 状态码映射到错误分类
func (c *Client) statusError(status int, body []byte) error {
	var errResp errorResponse
	json.Unmarshal(body, &errResp)
	msg := errResp.Error

	klog.V(6).Infof("远程分析返回错误: status=%d, error=%s", status, msg)

	switch status {
	case http.StatusBadRequest:
		if msg == "" {
			msg = "The document failed validation."
		}
		return &BackendValidationError{Message: msg}
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrRateLimited, msg)
	case http.StatusPaymentRequired:
		return fmt.Errorf("%w: %s", ErrQuotaExceeded, msg)
	}
	return fmt.Errorf("%w: status %d: %s", ErrUnavailable, status, msg)
}
