package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/AFSHAL-7/trustlens/internal/analyzer"
	"github.com/AFSHAL-7/trustlens/internal/middleware"
	"github.com/AFSHAL-7/trustlens/internal/model"
	"github.com/AFSHAL-7/trustlens/internal/pkg/remote"
	"github.com/AFSHAL-7/trustlens/internal/repository"
	"github.com/AFSHAL-7/trustlens/internal/service"
	"github.com/gin-gonic/gin"
)

// 远程路径终态失败时面向用户的文案
const (
	msgRateLimited   = "The analysis service is busy. Please try again in a moment."
	msgQuotaExceeded = "Analysis credits depleted. Please try again later."
	msgAnalysisFail  = "Analysis failed. Please try again."
)

// AnalysisHandler 分析接口
type AnalysisHandler struct {
	service *service.AnalysisService
}

func NewAnalysisHandler(service *service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{service: service}
}

// CreateAnalysisRequest 提交分析请求体
// Payload 遵循上传层前缀约定，纯文本可不带前缀
type CreateAnalysisRequest struct {
	Payload string `json:"payload" binding:"required"`
}

// ConsentRequest 同意决定请求体
type ConsentRequest struct {
	Decision string `json:"decision" binding:"required"`
}

// AnalysisResponse 对外返回的分析记录
// JSON 列原样透出，避免二次解析
type AnalysisResponse struct {
	UUID            string          `json:"uuid"`
	DocumentTitle   string          `json:"document_title"`
	CompanyName     string          `json:"company_name,omitempty"`
	RiskScore       int             `json:"risk_score"`
	Source          string          `json:"source"`
	ConsentDecision string          `json:"consent_decision"`
	RiskItems       json.RawMessage `json:"risk_items"`
	SummarySections json.RawMessage `json:"summary_sections"`
	IndividualTerms json.RawMessage `json:"individual_terms"`
	SafetyInsights  json.RawMessage `json:"safety_insights,omitempty"`
	DecidedAt       *time.Time      `json:"decided_at,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

func toResponse(a *model.Analysis) AnalysisResponse {
	resp := AnalysisResponse{
		UUID:            a.UUID,
		DocumentTitle:   a.DocumentTitle,
		CompanyName:     a.CompanyName,
		RiskScore:       a.RiskScore,
		Source:          a.Source,
		ConsentDecision: a.ConsentDecision,
		RiskItems:       json.RawMessage(a.RiskItems),
		SummarySections: json.RawMessage(a.SummarySections),
		IndividualTerms: json.RawMessage(a.IndividualTerms),
		DecidedAt:       a.DecidedAt,
		CreatedAt:       a.CreatedAt,
	}
	if a.SafetyInsights != "" {
		resp.SafetyInsights = json.RawMessage(a.SafetyInsights)
	}
	return resp
}

// Create 提交文档分析
// POST /api/analyses
func (h *AnalysisHandler) Create(c *gin.Context) {
	var req CreateAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "payload is required"})
		return
	}

	record, err := h.service.Analyze(c.Request.Context(), middleware.UserID(c), req.Payload)
	if err != nil {
		status, msg := mapAnalysisError(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusCreated, toResponse(record))
}

// List 列出当前用户的分析记录
// GET /api/analyses
func (h *AnalysisHandler) List(c *gin.Context) {
	records, err := h.service.List(c.Request.Context(), middleware.UserID(c), 50)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	responses := make([]AnalysisResponse, 0, len(records))
	for i := range records {
		responses = append(responses, toResponse(&records[i]))
	}
	c.JSON(http.StatusOK, responses)
}

// Get 查询单条分析记录
// GET /api/analyses/:uuid
func (h *AnalysisHandler) Get(c *gin.Context) {
	record, err := h.service.Get(c.Request.Context(), middleware.UserID(c), c.Param("uuid"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "analysis not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toResponse(record))
}

// Consent 记录文档级同意决定
// POST /api/analyses/:uuid/consent
func (h *AnalysisHandler) Consent(c *gin.Context) {
	var req ConsentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "decision is required"})
		return
	}

	record, err := h.service.Decide(c.Request.Context(), middleware.UserID(c), c.Param("uuid"), req.Decision)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "analysis not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toResponse(record))
}

// mapAnalysisError 把引擎错误折算成状态码与单条用户文案
func mapAnalysisError(err error) (int, string) {
	var validationErr *analyzer.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, validationErr.Reason
	}

	var backendErr *remote.BackendValidationError
	if errors.As(err, &backendErr) {
		return http.StatusBadRequest, backendErr.Message
	}

	switch {
	case errors.Is(err, remote.ErrRateLimited):
		return http.StatusTooManyRequests, msgRateLimited
	case errors.Is(err, remote.ErrQuotaExceeded):
		return http.StatusPaymentRequired, msgQuotaExceeded
	}
	return http.StatusBadGateway, msgAnalysisFail
}
