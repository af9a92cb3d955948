package http

import (
	"time"

	"AtobaraiGateway/internal/controller/http/handlers"
	"AtobaraiGateway/pkg/health"
	"AtobaraiGateway/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	payment        handlers.PaymentHandler
	healthRegistry *health.Registry
	healthTimeout  time.Duration
}

func NewRouter(payment handlers.PaymentHandler, healthRegistry *health.Registry, healthTimeout time.Duration) *Router {
	return &Router{
		payment:        payment,
		healthRegistry: healthRegistry,
		healthTimeout:  healthTimeout,
	}
}

func (r *Router) SetUp(engine *gin.Engine) {
	engine.POST("/payments", r.payment.Process)
	engine.POST("/payments/void", r.payment.Void)
	engine.POST("/payments/fulfillment", r.payment.ReportFulfillment)

	engine.GET("/health/live", health.LivenessHandler())
	engine.GET("/health/ready", health.ReadinessHandler(r.healthRegistry, r.healthTimeout))
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))
}
