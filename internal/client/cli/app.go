package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophsafe/internal/client/client"
	"github.com/dmitrijs2005/gophsafe/internal/client/config"
	"github.com/dmitrijs2005/gophsafe/internal/client/mirror"
	"github.com/dmitrijs2005/gophsafe/internal/client/resources"
	"github.com/dmitrijs2005/gophsafe/internal/client/services"
	"github.com/dmitrijs2005/gophsafe/internal/client/session"
	"github.com/dmitrijs2005/gophsafe/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// pingTimeout bounds one liveness probe of the watcher.
const pingTimeout = 3 * time.Second

type App struct {
	config *config.Config
	logger logging.Logger

	authService     services.AuthService
	planService     services.SafetyPlanService
	triageService   services.TriageService
	contactsService services.ContactsService
	journalService  services.JournalService

	api        client.Client
	httpClient *http.Client
	syncer     mirror.Syncer
	directory  resources.Directory
	country    resources.Country
	now        func() time.Time

	closers []func() error

	mu       sync.Mutex
	userName string
	Mode     Mode

	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens the local database, dials the mirror server and wires every
// service. The gRPC connection is lazy, so an unreachable server is not an
// error here.
func NewApp(c *config.Config, logger logging.Logger) (*App, error) {
	ctx := context.Background()

	repos, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
		return nil, err
	}

	sessions := session.NewStore(repos.KV, c.Keys.Session)

	api, err := client.NewMirrorClient(c.ServerEndpointAddr, sessions.UpdateTokens)
	if err != nil {
		_ = repos.Close()
		return nil, err
	}

	syncer := mirror.NewBestEffort(sessions, api, logger, mirror.WithTimeout(c.MirrorTimeout))

	country := resources.ParseCountry(c.Country)
	if c.Country == "" {
		country = resources.Detect(resources.EnvResolver{})
	}

	a := &App{
		config:          c,
		logger:          logger.With("module", "cli"),
		authService:     services.NewAuthService(api, sessions),
		planService:     services.NewSafetyPlanService(repos.KV, c.Keys.SafetyPlan, syncer, logger, nil),
		triageService:   services.NewTriageService(repos.KV, c.Keys.Triage, syncer, logger, nil),
		contactsService: services.NewContactsService(repos.KV, c.Keys.Contacts, logger),
		journalService:  services.NewJournalService(repos.Journal, c.Keys.JournalPrefix, syncer, logger, nil),
		api:             api,
		httpClient:      &http.Client{},
		syncer:          syncer,
		country:         country,
		now:             time.Now,
		closers:         []func() error{repos.Close},
		reader:          bufio.NewReader(os.Stdin),
		out:             os.Stdout,
	}
	return a, nil
}

func (a *App) setMode(ctx context.Context, mode Mode) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.Mode == mode {
		return false
	}
	a.Mode = mode
	a.logger.Info(ctx, "connectivity changed", "mode", string(mode))
	return true
}

func (a *App) setUser(name string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.userName = name
}

func (a *App) isLoggedIn() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.userName != ""
}

func (a *App) getStatus() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	s := ""
	if a.userName != "" {
		s = a.userName + " "
	}
	if a.Mode != "" {
		s = s + string(a.Mode)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Run restores a stored session, starts the connectivity watcher and blocks
// in the REPL until the user exits. Pending mirror attempts are drained
// before the transport and database are closed.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer func() {
		cancel()
		a.syncer.Wait()
		if err := a.authService.Close(ctx); err != nil {
			a.logger.Warn(ctx, "error closing mirror client", "error", err)
		}
		for _, c := range a.closers {
			if err := c(); err != nil {
				a.logger.Warn(ctx, "error closing local store", "error", err)
			}
		}
	}()

	fmt.Fprintln(a.out, "Welcome to GophSafe (type 'help' for commands)")
	emergency := a.directory.Emergency(a.country)
	fmt.Fprintf(a.out, "If you are in immediate danger, call %s (%s)\n", strings.TrimPrefix(emergency.Href, "tel:"), emergency.Label)

	if sess, err := a.authService.Restore(ctx); err != nil {
		a.logger.Warn(ctx, "could not restore session", "error", err)
	} else if sess != nil {
		a.setUser(sess.Username)
	}

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.getStatus, a.reader)
}

// StartOnlineStatusWatcher pings the server every interval and flips Mode.
// Coming back online with a session retries journal entries that were not
// mirrored yet.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	a.checkOnline(ctx)
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) checkOnline(ctx context.Context) {
	pctx, cancel := context.WithTimeout(ctx, pingTimeout)
	err := a.authService.Ping(pctx)
	cancel()

	if err != nil {
		a.setMode(ctx, ModeOffline)
		return
	}
	if a.setMode(ctx, ModeOnline) && a.isLoggedIn() {
		a.flushJournal(ctx)
	}
}

func (a *App) flushJournal(ctx context.Context) {
	n, err := a.journalService.Flush(ctx)
	if err != nil {
		a.logger.Warn(ctx, "journal flush failed", "error", err)
		return
	}
	if n > 0 {
		a.logger.Info(ctx, "journal entries mirrored", "count", n)
	}
}
