package main

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/noah-isme/sma-dashboard-api/internal/handler"
	internalmiddleware "github.com/noah-isme/sma-dashboard-api/internal/middleware"
	"github.com/noah-isme/sma-dashboard-api/internal/models"
	"github.com/noah-isme/sma-dashboard-api/internal/repository"
	"github.com/noah-isme/sma-dashboard-api/internal/seed"
	"github.com/noah-isme/sma-dashboard-api/internal/service"
	"github.com/noah-isme/sma-dashboard-api/pkg/cache"
	"github.com/noah-isme/sma-dashboard-api/pkg/config"
	"github.com/noah-isme/sma-dashboard-api/pkg/database"
	"github.com/noah-isme/sma-dashboard-api/pkg/jobs"
	"github.com/noah-isme/sma-dashboard-api/pkg/storage"
)

type recordRepo interface {
	List(ctx context.Context, resource string) ([]models.RecordRow, error)
	FindByID(ctx context.Context, resource, id string) (*models.RecordRow, error)
	UpdateStatus(ctx context.Context, params repository.UpdateStatusParams) error
	Upsert(ctx context.Context, rows []models.RecordRow) error
}

type auditRepo interface {
	Create(ctx context.Context, entry *models.AuditLog) error
	ListByRecord(ctx context.Context, resource, id string) ([]models.AuditLog, error)
}

type exportJobRepo interface {
	Create(ctx context.Context, job *models.ExportJob) error
	GetByID(ctx context.Context, id string) (*models.ExportJob, error)
	Update(ctx context.Context, id string, params repository.UpdateExportJobParams) error
	ListQueued(ctx context.Context, limit int) ([]models.ExportJob, error)
	ListFinishedBefore(ctx context.Context, cutoff time.Time, limit int) ([]models.ExportJob, error)
	ListByCreator(ctx context.Context, createdBy string, limit int) ([]models.ExportJob, error)
}

type stores struct {
	records recordRepo
	audit   auditRepo
	exports exportJobRepo
	db      *sqlx.DB
}

type app struct {
	routes  handler.Routes
	metrics *service.MetricsService
	closers []func()
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

func buildApp(ctx context.Context, cfg *config.Config, logr *zap.Logger) (*app, error) {
	a := &app{metrics: service.NewMetricsService()}
	checks := map[string]handler.ReadinessCheck{}

	st, err := openStores(ctx, cfg, logr)
	if err != nil {
		return nil, err
	}
	if st.db != nil {
		db := st.db
		a.closers = append(a.closers, func() { _ = db.Close() })
		checks["postgres"] = db.PingContext
	}

	opts := []service.RecordServiceOption{service.WithRecordMetrics(a.metrics)}
	if cfg.Lists.CacheEnabled {
		cacheSvc, ping, closeFn := buildListCache(cfg, a.metrics, logr)
		opts = append(opts, service.WithListCache(cacheSvc, cfg.Lists.CacheTTL))
		if ping != nil {
			checks["redis"] = ping
		}
		if closeFn != nil {
			a.closers = append(a.closers, closeFn)
		}
	}

	catalog := service.NewCatalog()
	if err := service.RegisterResources(catalog, st.records, st.audit, cfg.Lists.DefaultPageSize, logr, opts...); err != nil {
		a.Close()
		return nil, fmt.Errorf("register resources: %w", err)
	}

	tokens := service.NewTokenService(service.TokenConfig{
		Secret:     cfg.JWT.Secret,
		Issuer:     cfg.JWT.Issuer,
		Expiration: cfg.JWT.Expiration,
	})
	auth := internalmiddleware.OptionalJWT(tokens)
	if cfg.JWT.Required {
		auth = internalmiddleware.JWT(tokens)
	}

	a.routes = handler.Routes{
		Resources: handler.NewResourceHandler(catalog),
		Metrics:   handler.NewMetricsHandler(a.metrics, checks),
		Auth:      auth,
	}

	if cfg.Exports.Enabled {
		exportHandler, stopExports, err := buildExports(ctx, cfg, catalog, st.exports, a.metrics, logr)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.routes.Exports = exportHandler
		a.closers = append(a.closers, stopExports)
	}

	return a, nil
}

func openStores(ctx context.Context, cfg *config.Config, logr *zap.Logger) (*stores, error) {
	if cfg.Store.Driver != config.StoreDriverPostgres {
		mem := repository.OpenMemoryDB()
		st := &stores{
			records: repository.NewMemoryRecordRepository(mem),
			audit:   repository.NewMemoryAuditRepository(mem),
			exports: repository.NewMemoryExportJobRepository(mem),
		}
		if _, err := seed.Apply(ctx, st.records, time.Now().UTC(), true); err != nil {
			return nil, fmt.Errorf("seed memory store: %w", err)
		}
		logr.Info("using in-memory store")
		return st, nil
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := database.Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate postgres: %w", err)
	}
	st := &stores{
		records: repository.NewRecordRepository(db),
		audit:   repository.NewAuditRepository(db),
		exports: repository.NewExportJobRepository(db),
		db:      db,
	}
	if cfg.Store.SeedOnStart {
		written, err := seed.Apply(ctx, st.records, time.Now().UTC(), false)
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("seed postgres: %w", err)
		}
		logr.Info("seed applied", zap.Any("rows", written))
	}
	return st, nil
}

// buildListCache prefers Redis and falls back to an in-process cache when it
// cannot be reached.
func buildListCache(cfg *config.Config, metrics *service.MetricsService, logr *zap.Logger) (*service.CacheService, handler.ReadinessCheck, func()) {
	client, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Warn("redis unavailable, using in-memory list cache", zap.Error(err))
		return service.NewCacheService(repository.NewMemoryCache(cfg.Lists.CacheMaxEntries, cfg.Lists.CacheTTL), metrics, cfg.Lists.CacheTTL, logr, true), nil, nil
	}
	repo := repository.NewCacheRepository(client, logr)
	return service.NewCacheService(repo, metrics, cfg.Lists.CacheTTL, logr, true),
		repo.Ping,
		func() { _ = client.Close() }
}

func buildExports(ctx context.Context, cfg *config.Config, catalog *service.Catalog, repo exportJobRepo, metrics *service.MetricsService, logr *zap.Logger) (*handler.ExportHandler, func(), error) {
	files, err := storage.NewLocalStorage(cfg.Exports.StorageDir)
	if err != nil {
		return nil, nil, fmt.Errorf("export storage: %w", err)
	}
	signer := storage.NewSignedURLSigner(cfg.Exports.SignedURLSecret, cfg.Exports.SignedURLTTL)
	exporter := service.NewExportService(catalog, files, signer, service.ExportConfig{
		APIPrefix: cfg.APIPrefix,
		ResultTTL: cfg.Exports.SignedURLTTL,
	}, logr, nil, nil)

	worker := service.NewExportWorker(repo, exporter, metrics, cfg.Exports.WorkerRetries, logr)
	queue := jobs.NewQueue("exports", worker.Handle, jobs.QueueConfig{
		Workers:    cfg.Exports.WorkerConcurrency,
		MaxRetries: cfg.Exports.WorkerRetries,
		Logger:     logr,
	})
	queue.Start(ctx)

	jobsSvc := service.NewExportJobService(repo, catalog, queue, exporter, validator.New(), logr, service.ExportJobServiceConfig{
		ResultTTL:       cfg.Exports.SignedURLTTL,
		CleanupInterval: cfg.Exports.CleanupInterval,
	})
	jobsSvc.RecoverPendingJobs(ctx)
	jobsSvc.StartCleanup(ctx)

	return handler.NewExportHandler(jobsSvc), queue.Stop, nil
}
