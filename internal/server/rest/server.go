// Package rest serves the HTTP side of the mirror: shared safety plans for
// people holding a share link, and bearer-authenticated read endpoints for
// the account owner.
package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	cm "github.com/dmitrijs2005/gophsafe/internal/client/models"
	"github.com/dmitrijs2005/gophsafe/internal/logging"
	"github.com/dmitrijs2005/gophsafe/internal/server/models"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const shutdownTimeout = 5 * time.Second

// MirrorReader reads back what clients mirrored.
type MirrorReader interface {
	PlanByShareToken(ctx context.Context, token string) (*cm.SafetyPlan, error)
	TriageLog(ctx context.Context, userID string) ([]models.TriageRecord, error)
	Contacts(ctx context.Context, userID string) ([]cm.SafetyContact, error)
	Journal(ctx context.Context, userID string, limit int) ([]cm.JournalEntry, error)
}

type Server struct {
	address   string
	echo      *echo.Echo
	mirror    MirrorReader
	logger    logging.Logger
	jwtSecret []byte
	now       func() time.Time
}

func NewServer(addr string, l logging.Logger, mirror MirrorReader, secretKey string) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())

	s := &Server{
		address:   addr,
		echo:      e,
		mirror:    mirror,
		logger:    l.With("module", "http_server"),
		jwtSecret: []byte(secretKey),
		now:       time.Now,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.echo.GET("/healthz", s.health)
	s.echo.GET("/safety-plan/share/:token", s.sharedPlan)

	api := s.echo.Group("/api/v1", s.requireBearer)
	api.GET("/triage/export.xlsx", s.triageWorkbook)
	api.GET("/contacts", s.contacts)
	api.GET("/journal", s.journal)
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "Starting HTTP server", "address", s.address)
		if err := s.echo.Start(s.address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info(ctx, "Stopping HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.echo.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
