package remote

import "encoding/json"

// AnalyzeRequest 远程分析后端的请求体
// 四种载荷形态互斥：text / imageData / pdfData+fileName / docData+fileName
type AnalyzeRequest struct {
	Text      string `json:"text,omitempty"`
	ImageData string `json:"imageData,omitempty"`
	PDFData   string `json:"pdfData,omitempty"`
	DocData   string `json:"docData,omitempty"`
	FileName  string `json:"fileName,omitempty"`
	Type      string `json:"type,omitempty"` // image, pdf, document
}

// errorResponse 非 2xx 响应的统一错误体
type errorResponse struct {
	Error          string          `json:"error"`
	ValidationInfo json.RawMessage `json:"validationInfo,omitempty"`
}
