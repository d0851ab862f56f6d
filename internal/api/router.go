package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Mr-Jayed/TracON-Project1/internal/api/handler"
	apimw "github.com/Mr-Jayed/TracON-Project1/internal/api/middleware"
	"github.com/Mr-Jayed/TracON-Project1/internal/service"
)

// NewRouter wires the chi router, attaches all middleware, and registers
// every route.
func NewRouter(
	svc *service.RelayService,
	reg prometheus.Gatherer,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.Recoverer)            // a panicking request gets a 500, the process keeps serving
	r.Use(chimw.RealIP)               // trust X-Forwarded-For / X-Real-IP
	r.Use(chimw.RequestSize(1 << 20)) // 1 MB max request body
	r.Use(apimw.CorrelationID)
	r.Use(apimw.RequestLogger(logger))

	rh := handler.NewRelayHandler(svc, logger)
	dh := handler.NewDeliveryHandler(svc)
	hh := handler.NewHealthHandler()

	r.Post("/", rh.Relay)
	r.Get("/deliveries/{userID}", dh.ListByUser)

	r.Get("/health", hh.Health)
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	return r
}
