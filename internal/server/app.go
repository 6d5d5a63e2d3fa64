// Package server wires the mirror server: Postgres with migrations, the
// services, the gRPC ingestion API and the HTTP share endpoints.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/gophsafe/internal/logging"
	"github.com/dmitrijs2005/gophsafe/internal/server/config"
	"github.com/dmitrijs2005/gophsafe/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophsafe/internal/server/rest"
	"github.com/dmitrijs2005/gophsafe/internal/server/services"

	gs "github.com/dmitrijs2005/gophsafe/internal/server/grpc"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// runner is a server that blocks until ctx is cancelled.
type runner interface {
	Run(ctx context.Context) error
}

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	servers map[string]runner
}

// sqlOpen is a seam for tests.
var sqlOpen = sql.Open

// NewApp connects to Postgres, applies migrations and builds both servers.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	db, err := sqlOpen("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db migration error: %w", err)
	}

	us := services.NewUserService(db, rm, c)
	ms := services.NewMirrorService(db, rm, logger)
	es := services.NewExportService(c)

	return &App{
		config: c,
		logger: logger,
		db:     db,
		servers: map[string]runner{
			"grpc": gs.NewGRPCServer(c.EndpointAddrGRPC, logger, us, ms, es, c.SecretKey),
			"http": rest.NewServer(c.EndpointAddrHTTP, logger, ms, c.SecretKey),
		},
	}, nil
}

// Run starts every server and blocks until ctx is cancelled or one of them
// fails, which stops the others. The database is closed on return.
func (app *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	app.logger.Info(ctx, "Starting app...")

	var wg sync.WaitGroup
	for name, srv := range app.servers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := srv.Run(ctx); err != nil {
				app.logger.Error(ctx, "server stopped", "server", name, "error", err)
				cancel()
			}
		}()
	}

	wg.Wait()

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Warn(ctx, "error closing database", "error", err)
		}
	}
	app.logger.Info(ctx, "App stopped")
}
