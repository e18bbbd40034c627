package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RedisErrors counts failed Redis commands across cache and rate limiting.
var RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "yarnhog_redis_errors_total",
	Help: "Total number of failed Redis commands.",
}, []string{"command"})

// RegisterMetrics wires Prometheus HTTP metrics into the app and exposes
// them at /metrics.
func RegisterMetrics(app *fiber.App) {
	prom := fiberprometheus.New("yarnhog")
	prom.RegisterAt(app, "/metrics")
	app.Use(prom.Middleware)
}
