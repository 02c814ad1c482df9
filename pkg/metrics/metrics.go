// Package metrics instrumenta el servidor HTTP con Prometheus.
//
// Registrar una vez en main con Register(); montar el middleware y el
// endpoint /metrics en el router Fiber:
//
//	app.Use(metrics.Middleware())
//	app.Get("/metrics", metrics.Handler())
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
	// requestDuration duración de cada petición HTTP por método, ruta y status.
	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "keeper",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duración de las peticiones HTTP en segundos.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// requestTotal total de peticiones HTTP atendidas.
	requestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "keeper",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total de peticiones HTTP.",
		},
		[]string{"method", "path", "status"},
	)
)

// Register registra los colectores en el registry por defecto de Prometheus.
// Llamar exactamente una vez desde main.
func Register() {
	prometheus.MustRegister(requestDuration, requestTotal)
}

// Middleware observa método, ruta y status de cada petición. Usa la ruta
// registrada (c.Route().Path) para no explotar la cardinalidad con los IDs.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}
		labels := []string{c.Method(), c.Route().Path, strconv.Itoa(status)}
		requestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
		requestTotal.WithLabelValues(labels...).Inc()
		return err
	}
}

// Handler expone el endpoint /metrics para scraping.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
