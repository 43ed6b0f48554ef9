package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "portal"

var (
	// HTTPRequests 按路由/方法/状态码统计请求数
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by route, method and status.",
	}, []string{"route", "method", "status"})

	// HTTPDuration 请求耗时分布
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route and method.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})

	// MarksSaved 成功写入的成绩条数
	MarksSaved = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "marks_saved_total",
		Help:      "Marks rows inserted or overwritten.",
	})

	// LoginAttempts 登录结果计数（success / invalid_credentials / rate_limited）
	LoginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Login attempts by result.",
	}, []string{"result"})
)

// Handler 暴露默认 Registry
func Handler() http.Handler {
	return promhttp.Handler()
}
