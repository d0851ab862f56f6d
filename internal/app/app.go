// Package app assembles the relay's dependencies from configuration. Both
// the HTTP server and the serverless entrypoint build through here.
package app

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/Mr-Jayed/TracON-Project1/internal/config"
	"github.com/Mr-Jayed/TracON-Project1/internal/db"
	"github.com/Mr-Jayed/TracON-Project1/internal/metrics"
	"github.com/Mr-Jayed/TracON-Project1/internal/provider"
	"github.com/Mr-Jayed/TracON-Project1/internal/ratelimiter"
	"github.com/Mr-Jayed/TracON-Project1/internal/repository"
	"github.com/Mr-Jayed/TracON-Project1/internal/service"
)

// MigrationsDir is where golang-migrate looks for SQL files.
const MigrationsDir = "migrations"

// App holds the wired relay and the resources that must be released on exit.
type App struct {
	Service  *service.RelayService
	Registry *prometheus.Registry
	pool     *pgxpool.Pool
}

// New connects optional storage and builds the relay service.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	var (
		repo repository.DeliveryRepository = repository.NopDeliveryRepository{}
		pool *pgxpool.Pool
	)
	if cfg.PersistenceEnabled() {
		var err error
		pool, err = db.Connect(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("connect delivery log: %w", err)
		}
		if err := db.Migrate(cfg.DatabaseURL, MigrationsDir); err != nil {
			pool.Close()
			return nil, err
		}
		logger.Info("delivery log enabled, migrations applied")
		repo = repository.NewPgDeliveryRepository(pool)
	}

	tpl := provider.AlarmTemplate{
		AppID:            cfg.OneSignalAppID,
		AndroidChannelID: cfg.AndroidChannelID,
		Sound:            cfg.AlarmSound,
		Priority:         cfg.AlarmPriority,
		Message:          cfg.AlarmMessage,
		Location:         cfg.AlarmLocation,
	}
	prov := provider.NewOneSignalProvider(cfg.OneSignalURL, cfg.OneSignalAPIKey, cfg.ProviderTimeout)

	onOutcome, onProvider := m.RelayHooks()
	svc := service.NewRelayService(prov, repo, tpl, logger,
		service.WithLimiter(ratelimiter.New(cfg.ProviderRateLimit)),
		service.WithMetrics(service.MetricHooks{OnOutcome: onOutcome, OnProvider: onProvider}),
	)

	return &App{Service: svc, Registry: reg, pool: pool}, nil
}

// Close releases the database pool, if any.
func (a *App) Close() {
	if a.pool != nil {
		a.pool.Close()
	}
}
