package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// AnalysesTotal 按产出路径统计完成的分析次数
var AnalysesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "trustlens_analyses_total",
	Help: "Completed analyses by source (remote or heuristic).",
}, []string{"source"})

// AnalysisRejections 按原因统计被拒绝的分析请求
var AnalysisRejections = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "trustlens_analysis_rejections_total",
	Help: "Rejected analysis requests by reason.",
}, []string{"reason"})

// RequestDuration HTTP 请求耗时
var RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "trustlens_http_request_duration_seconds",
	Help:    "HTTP request duration in seconds.",
	Buckets: prometheus.DefBuckets,
}, []string{"method", "path", "status"})
