package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dtroode/taskboard-server/internal/api/http/handler"
	"github.com/dtroode/taskboard-server/internal/api/http/middleware"
	"github.com/dtroode/taskboard-server/internal/logger"
	"github.com/dtroode/taskboard-server/internal/service"
)

// Config holds everything the router mounts.
type Config struct {
	Stores         *service.Manager
	Pinger         handler.Pinger
	Snapshot       handler.SnapshotService // nil disables POST /api/snapshot
	AllowedOrigins []string
	Registry       *prometheus.Registry // nil uses the default registry
	Logger         *logger.Logger
}

// Router builds the HTTP handler tree for the taskboard API.
type Router struct {
	cfg Config
}

// New creates new Router instance.
func New(cfg Config) *Router {
	return &Router{cfg: cfg}
}

// Register builds the chi mux with request id, panic recovery, CORS, logging
// and metrics middleware in front of every route.
func (r *Router) Register() (http.Handler, error) {
	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if r.cfg.Registry != nil {
		registerer, gatherer = r.cfg.Registry, r.cfg.Registry
	}

	metrics, err := middleware.NewMetrics(registerer)
	if err != nil {
		return nil, err
	}
	logging := middleware.NewLogging(r.cfg.Logger)

	mux := chi.NewRouter()
	mux.Use(
		chimw.RequestID,
		chimw.Recoverer,
		middleware.CORS(r.cfg.AllowedOrigins),
		logging.Handle,
		metrics.Handle,
	)

	handler.NewUser(r.cfg.Stores.Users, r.cfg.Logger).Register(mux)
	handler.NewTask(r.cfg.Stores.Tasks, r.cfg.Logger).Register(mux)
	handler.NewHealth(r.cfg.Pinger, r.cfg.Logger).Register(mux)
	if r.cfg.Snapshot != nil {
		handler.NewSnapshot(r.cfg.Snapshot, r.cfg.Logger).Register(mux)
	}
	mux.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	return mux, nil
}
