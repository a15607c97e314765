package analyzer

import "strings"

// PayloadKind 提交内容的类型
type PayloadKind string

const (
	PayloadText     PayloadKind = "text"
	PayloadImage    PayloadKind = "image"
	PayloadPDF      PayloadKind = "pdf"
	PayloadDocument PayloadKind = "document"
)

// 上传层与分析引擎之间的载荷前缀约定
const (
	prefixText  = "TEXT_DATA:"
	prefixImage = "IMAGE_DATA:"
	prefixPDF   = "PDF_DATA:"
	prefixDoc   = "DOC_DATA:"
)

// Payload 解析后的提交载荷
// 文本类只有 Text；二进制类的 Data 为 data URL 或 base64，FileName 可能为空
type Payload struct {
	Kind     PayloadKind
	Text     string
	Data     string
	FileName string
}

// IsText 报告载荷是否是可走本地启发式管线的纯文本
func (p Payload) IsText() bool {
	return p.Kind == PayloadText
}

// ParsePayload 解析带前缀约定的原始载荷
// 无前缀的内容按纯文本处理；PDF/DOC 的前缀后跟 <base64>:<filename>
func ParsePayload(raw string) Payload {
	switch {
	case strings.HasPrefix(raw, prefixText):
		return Payload{Kind: PayloadText, Text: raw[len(prefixText):]}
	case strings.HasPrefix(raw, prefixImage):
		return Payload{Kind: PayloadImage, Data: raw[len(prefixImage):]}
	case strings.HasPrefix(raw, prefixPDF):
		data, name := splitDataAndName(raw[len(prefixPDF):])
		return Payload{Kind: PayloadPDF, Data: data, FileName: name}
	case strings.HasPrefix(raw, prefixDoc):
		data, name := splitDataAndName(raw[len(prefixDoc):])
		return Payload{Kind: PayloadDocument, Data: data, FileName: name}
	}
	return Payload{Kind: PayloadText, Text: raw}
}

// splitDataAndName 拆出 base64 内容与文件名
// 标准 base64 字符集不含冒号，首个冒号即分隔符
func splitDataAndName(rest string) (string, string) {
	if idx := strings.Index(rest, ":"); idx >= 0 {
		return rest[:idx], rest[idx+1:]
	}
	return rest, ""
}
