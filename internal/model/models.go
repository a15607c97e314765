package model

import (
	"time"
)

// 文档级同意决定
const (
	ConsentPending  = "pending"
	ConsentAccepted = "accepted"
	ConsentDeclined = "declined"
)

// Analysis 一次分析的持久化快照，按用户归属
// 风险项、摘要、条款以 JSON 文本列存储
type Analysis struct {
	ID              uint       `json:"id" gorm:"primaryKey"`
	UUID            string     `json:"uuid" gorm:"size:64;uniqueIndex;not null"`
	UserID          string     `json:"user_id" gorm:"size:64;index;not null"`
	DocumentTitle   string     `json:"document_title" gorm:"size:255;not null"`
	CompanyName     string     `json:"company_name" gorm:"size:255"`
	RiskScore       int        `json:"risk_score" gorm:"not null"`
	Source          string     `json:"source" gorm:"size:20;not null"` // remote, heuristic
	ConsentDecision string     `json:"consent_decision" gorm:"size:20;default:pending"` // pending, accepted, declined
	RiskItems       string     `json:"risk_items" gorm:"type:text"`
	SummarySections string     `json:"summary_sections" gorm:"type:text"`
	IndividualTerms string     `json:"individual_terms" gorm:"type:text"`
	SafetyInsights  string     `json:"safety_insights" gorm:"type:text"`
	OriginalText    string     `json:"original_text" gorm:"type:text"`
	DecidedAt       *time.Time `json:"decided_at"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// UserStats 每用户一行的聚合统计，供仪表盘读取
// 平均分按加权均值读改写维护
type UserStats struct {
	ID                    uint      `json:"id" gorm:"primaryKey"`
	UserID                string    `json:"user_id" gorm:"size:64;uniqueIndex;not null"`
	TotalAnalyses         int       `json:"total_analyses" gorm:"default:0"`
	HighRiskAnalyses      int       `json:"high_risk_analyses" gorm:"default:0"`
	AverageRiskScore      int       `json:"average_risk_score" gorm:"default:0"`
	ConsentDecisionsCount int       `json:"consent_decisions_count" gorm:"default:0"`
	LastActive            time.Time `json:"last_active"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}
