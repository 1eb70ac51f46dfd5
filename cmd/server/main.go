package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"caredocs/internal/audit"
	auditHandler "caredocs/internal/audit/handler"
	complianceMetrics "caredocs/internal/compliance/metrics"
	"caredocs/internal/document"
	documentHandler "caredocs/internal/document/handler"
	documentService "caredocs/internal/document/service"
	"caredocs/internal/override"
	overrideHandler "caredocs/internal/override/handler"
	overrideService "caredocs/internal/override/service"
	"caredocs/internal/platform/config"
	"caredocs/internal/platform/httpserver"
	"caredocs/internal/platform/logger"
	"caredocs/internal/platform/metrics"
	"caredocs/internal/platform/middleware"
	"caredocs/internal/platform/redis"
	"caredocs/internal/status"
	statusHandler "caredocs/internal/status/handler"
	"caredocs/internal/taxonomy"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	catalog, err := taxonomy.Load(cfg.TaxonomyPath)
	if err != nil {
		log.Error("failed to load taxonomy catalog", "path", cfg.TaxonomyPath, "error", err)
		os.Exit(1)
	}
	log.Info("taxonomy catalog loaded", "version", catalog.Version, "folders", len(catalog.Folders))

	stores, cleanup, err := buildStores(cfg, log)
	if err != nil {
		log.Error("failed to initialize stores", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	httpMetrics := metrics.New()
	compMetrics := complianceMetrics.New()
	recorder := audit.NewRecorder(stores.audit)

	docSvc, err := documentService.New(stores.documents, catalog,
		documentService.WithLogger(log),
		documentService.WithAuditRecorder(recorder),
	)
	if err != nil {
		log.Error("failed to build document service", "error", err)
		os.Exit(1)
	}
	ovSvc, err := overrideService.New(stores.overrides, catalog,
		overrideService.WithLogger(log),
		overrideService.WithAuditRecorder(recorder),
	)
	if err != nil {
		log.Error("failed to build override service", "error", err)
		os.Exit(1)
	}
	statusSvc, err := status.New(stores.documents, stores.overrides, catalog,
		status.WithLogger(log),
		status.WithMetrics(compMetrics),
	)
	if err != nil {
		log.Error("failed to build status service", "error", err)
		os.Exit(1)
	}

	var validator middleware.JWTValidator
	if !cfg.Server.AuthDisabled {
		validator = middleware.NewHMACValidator(cfg.Server.JWTSigningKey)
	}

	router := buildRouter(log, stores, httpMetrics, validator, docSvc, ovSvc, statusSvc)

	srv := httpserver.New(cfg.Server.Addr, router)

	log.Info("starting caredocs server", "addr", cfg.Server.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}

// buildRouter composes every handler onto one router. The shared middleware
// chain runs once at the top; handlers add only their own middleware when
// they register.
func buildRouter(
	log *slog.Logger,
	stores *storeSet,
	httpMetrics *metrics.Metrics,
	validator middleware.JWTValidator,
	docSvc documentHandler.Service,
	ovSvc overrideHandler.Service,
	statusSvc statusHandler.Service,
) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recovery(log))
	router.Use(middleware.RequestID)
	router.Use(middleware.RequestTime)
	router.Use(middleware.Logger(log))
	router.Use(middleware.Timeout(30 * time.Second))

	documentHandler.New(docSvc, log, httpMetrics, validator).Register(router)
	overrideHandler.New(ovSvc, log, httpMetrics, validator).Register(router)
	statusHandler.New(statusSvc, log, httpMetrics, validator).Register(router)
	auditHandler.New(stores.audit, log, httpMetrics, validator).Register(router)
	router.Handle("/metrics", promhttp.Handler())
	router.Get("/healthz", healthHandler(stores))
	return router
}

type storeSet struct {
	documents document.Store
	overrides override.Store
	audit     audit.Store

	db          *sql.DB
	redisClient *redis.Client
}

// buildStores selects backends from configuration: Postgres when a URL is
// configured, in-memory otherwise. Overrides move to Redis when it is
// configured, independently of the primary store choice.
func buildStores(cfg config.Config, log *slog.Logger) (*storeSet, func(), error) {
	stores := &storeSet{
		documents: document.NewInMemoryStore(),
		overrides: override.NewInMemoryStore(),
		audit:     audit.NewInMemoryStore(),
	}

	if cfg.Postgres.URL != "" {
		db, err := sql.Open("postgres", cfg.Postgres.URL)
		if err != nil {
			return nil, nil, err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}

		docStore := document.NewPostgres(db)
		if err := docStore.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		ovStore := override.NewPostgres(db)
		if err := ovStore.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		auditStore := audit.NewPostgres(db)
		if err := auditStore.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}

		stores.db = db
		stores.documents = docStore
		stores.overrides = ovStore
		stores.audit = auditStore
		log.Info("using postgres stores")
	}

	redisClient, err := redis.New(cfg.Redis)
	if err != nil {
		if stores.db != nil {
			stores.db.Close()
		}
		return nil, nil, err
	}
	if redisClient != nil {
		stores.redisClient = redisClient
		stores.overrides = override.NewRedisStore(redisClient.Client)
		log.Info("using redis override store")
	}

	cleanup := func() {
		if stores.redisClient != nil {
			stores.redisClient.Close()
		}
		if stores.db != nil {
			stores.db.Close()
		}
	}
	return stores, cleanup, nil
}

func healthHandler(stores *storeSet) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if stores.db != nil {
			if err := stores.db.PingContext(ctx); err != nil {
				http.Error(w, "postgres unavailable", http.StatusServiceUnavailable)
				return
			}
		}
		if stores.redisClient != nil {
			if err := stores.redisClient.Health(ctx); err != nil {
				http.Error(w, "redis unavailable", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}
}
