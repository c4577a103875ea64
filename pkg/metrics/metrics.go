package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total de peticiones HTTP",
		},
		[]string{"service", "method", "path", "status"},
	)

	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duración de las peticiones HTTP en segundos",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method", "path", "status"},
	)
)

// HTTPMetrics recolecta métricas de peticiones para un servicio.
type HTTPMetrics struct {
	serviceName string
}

// NewHTTPMetrics registra los colectores en el registry por defecto de Prometheus.
func NewHTTPMetrics(serviceName string) *HTTPMetrics {
	m := &HTTPMetrics{serviceName: serviceName}
	// MustRegister entra en pánico si se registra dos veces; Register tolera reinicios en tests.
	_ = prometheus.Register(requestCounter)
	_ = prometheus.Register(requestDuration)
	return m
}

// Middleware instrumenta cada petición con contador y histograma de duración.
// Usa la ruta registrada (c.Route().Path) para no explotar la cardinalidad con IDs.
func (m *HTTPMetrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		labels := []string{m.serviceName, c.Method(), c.Route().Path, strconv.Itoa(status)}
		requestCounter.WithLabelValues(labels...).Inc()
		requestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
		return err
	}
}

// Handler expone el endpoint de scraping de Prometheus como handler de Fiber.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
