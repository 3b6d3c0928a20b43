package server

import (
	"log"
	"math/rand"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"

	"hrconsole/internal/domain/core"
	"hrconsole/internal/domain/leave"
	"hrconsole/internal/domain/notifications"
	"hrconsole/internal/domain/performance"
	"hrconsole/internal/platform/config"
	"hrconsole/internal/platform/memstore"
	"hrconsole/internal/platform/metrics"
	"hrconsole/internal/platform/seed"
	"hrconsole/internal/transport/http/api"
	corehandler "hrconsole/internal/transport/http/handlers/core"
	leavehandler "hrconsole/internal/transport/http/handlers/leave"
	notificationshandler "hrconsole/internal/transport/http/handlers/notifications"
	performancehandler "hrconsole/internal/transport/http/handlers/performance"
	reportshandler "hrconsole/internal/transport/http/handlers/reports"
	"hrconsole/internal/transport/http/middleware"
)

type App struct {
	Config  config.Config
	Router  http.Handler
	Metrics *metrics.Collector
}

// New seeds the stores from the embedded fixtures and assembles the router.
func New(cfg config.Config) (*App, error) {
	data, err := seed.Load()
	if err != nil {
		return nil, err
	}

	latency := memstore.Latency{}
	if cfg.SimulateLatency {
		latency = memstore.Simulated()
	}

	coreSvc := core.NewService(latency)
	coreSvc.Employees.Seed(data.Employees)
	coreSvc.Departments.Seed(data.Departments)

	leaveSvc := leave.NewService(latency)
	leaveSvc.Requests.Seed(data.LeaveRequests)

	performanceSvc := performance.NewService(latency)
	performanceSvc.Reviews.Seed(data.Reviews)

	now := time.Now()
	rng := rand.New(rand.NewSource(cfg.Seed(now)))
	notificationSvc := notifications.NewService(
		notifications.Generate(data.Employees, data.LeaveRequests, now, rng),
		latency,
	)

	collector := metrics.New()

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(collector))
	router.Use(middleware.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		// Stores are seeded before the listener starts, so ready == alive.
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.Route("/api/v1", func(r chi.Router) {
		corehandler.NewHandler(coreSvc).RegisterRoutes(r)
		leavehandler.NewHandler(leaveSvc).RegisterRoutes(r)
		performancehandler.NewHandler(performanceSvc).RegisterRoutes(r)
		notificationshandler.NewHandler(notificationSvc).RegisterRoutes(r)
		reportshandler.NewHandler(coreSvc, leaveSvc).RegisterRoutes(r)

		if cfg.MetricsEnabled {
			r.Get("/metrics", func(w http.ResponseWriter, req *http.Request) {
				api.Success(w, collector.Snapshot(), middleware.GetRequestID(req.Context()))
			})
		}
	})

	router.Mount("/", spaHandler{staticPath: cfg.FrontendDir, indexPath: "index.html"})

	return &App{Config: cfg, Router: router, Metrics: collector}, nil
}

func Run() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	app, err := New(cfg)
	if err != nil {
		log.Fatalf("startup failed: %v", err)
	}

	log.Printf("HR console listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, app.Router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

type spaHandler struct {
	staticPath string
	indexPath  string
}

func (h spaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	path := filepath.Join(h.staticPath, r.URL.Path)
	_, err := os.Stat(path)
	if err == nil {
		http.FileServer(http.Dir(h.staticPath)).ServeHTTP(w, r)
		return
	}

	if os.IsNotExist(err) {
		http.ServeFile(w, r, filepath.Join(h.staticPath, h.indexPath))
		return
	}

	http.NotFound(w, r)
}
