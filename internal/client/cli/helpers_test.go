package cli

import (
	"bufio"
	"bytes"
	"context"
	"net/http"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophsafe/internal/client/client"
	"github.com/dmitrijs2005/gophsafe/internal/client/config"
	"github.com/dmitrijs2005/gophsafe/internal/client/mirror"
	"github.com/dmitrijs2005/gophsafe/internal/client/repositories/kv"
	"github.com/dmitrijs2005/gophsafe/internal/client/resources"
	"github.com/dmitrijs2005/gophsafe/internal/client/services"
	"github.com/dmitrijs2005/gophsafe/internal/client/session"
	"github.com/dmitrijs2005/gophsafe/internal/logging"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 4, 5, 6, 0, 0, time.UTC)

type fakeAuth struct {
	services.AuthService

	loginSess *session.Session
	loginErr  error
	regErr    error
	pingErr   error

	registered string
	loggedOut  bool
}

func (f *fakeAuth) Register(_ context.Context, username, _ string) error {
	f.registered = username
	return f.regErr
}

func (f *fakeAuth) Login(_ context.Context, _, _ string) (*session.Session, error) {
	return f.loginSess, f.loginErr
}

func (f *fakeAuth) Logout(context.Context) error {
	f.loggedOut = true
	return nil
}

func (f *fakeAuth) Ping(context.Context) error { return f.pingErr }

type fakeAPI struct {
	client.Client

	presigned *client.PresignedExport
	fileName  string
}

func (f *fakeAPI) PresignExport(_ context.Context, fileName string) (*client.PresignedExport, error) {
	f.fileName = fileName
	return f.presigned, nil
}

type testApp struct {
	*App
	buf  *bytes.Buffer
	auth *fakeAuth
	api  *fakeAPI
}

// newTestApp wires real services over a temporary SQLite file, with a fake
// transport and input fed from the given string.
func newTestApp(t *testing.T, input string) *testApp {
	t.Helper()

	repos, err := client.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "app.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.Close() })

	keys := kv.DefaultKeys()
	syncer := mirror.Noop{}
	logger := logging.Nop()
	clock := services.Clock(func() time.Time { return testNow })

	buf := &bytes.Buffer{}
	auth := &fakeAuth{}
	api := &fakeAPI{}

	a := &App{
		config: &config.Config{
			ShareOrigin: "https://safe.example/",
			ExportDir:   t.TempDir(),
			Keys:        keys,
		},
		logger:          logger,
		authService:     auth,
		planService:     services.NewSafetyPlanService(repos.KV, keys.SafetyPlan, syncer, logger, clock),
		triageService:   services.NewTriageService(repos.KV, keys.Triage, syncer, logger, clock),
		contactsService: services.NewContactsService(repos.KV, keys.Contacts, logger),
		journalService:  services.NewJournalService(repos.Journal, keys.JournalPrefix, syncer, logger, clock),
		api:             api,
		httpClient:      http.DefaultClient,
		syncer:          syncer,
		country:         resources.GB,
		now:             func() time.Time { return testNow },
		reader:          bufio.NewReader(strings.NewReader(input)),
		out:             buf,
	}

	return &testApp{App: a, buf: buf, auth: auth, api: api}
}

// stubTerminal makes GetPassword read from the line reader.
func stubTerminal(t *testing.T) {
	t.Helper()
	orig := isTerminal
	isTerminal = func(int) bool { return false }
	t.Cleanup(func() { isTerminal = orig })
}

func silencePrintln(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}
