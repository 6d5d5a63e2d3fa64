package grpc

import (
	"context"

	cm "github.com/dmitrijs2005/gophsafe/internal/client/models"
	"github.com/dmitrijs2005/gophsafe/internal/logging"
	"github.com/dmitrijs2005/gophsafe/internal/server/models"
	"github.com/dmitrijs2005/gophsafe/internal/server/services"
)

const testSecret = "secret"

type fakeUsers struct {
	regOut *models.User
	regErr error

	loginOut *services.LoginResult
	loginErr error

	refreshOut *services.TokenPair
	refreshErr error

	gotPassword string
}

func (f *fakeUsers) Register(_ context.Context, username, password string) (*models.User, error) {
	f.gotPassword = password
	if f.regErr != nil {
		return nil, f.regErr
	}
	if f.regOut != nil {
		return f.regOut, nil
	}
	return &models.User{ID: "u1", UserName: username}, nil
}

func (f *fakeUsers) Login(_ context.Context, _, password string) (*services.LoginResult, error) {
	f.gotPassword = password
	return f.loginOut, f.loginErr
}

func (f *fakeUsers) RefreshToken(context.Context, string) (*services.TokenPair, error) {
	return f.refreshOut, f.refreshErr
}

type fakeMirror struct {
	err error

	userID   string
	triage   []cm.TriageResult
	plans    []cm.SafetyPlan
	contacts []cm.SafetyContact
	journal  []cm.JournalEntry
}

func (f *fakeMirror) RecordTriage(_ context.Context, userID string, r cm.TriageResult) error {
	f.userID = userID
	f.triage = append(f.triage, r)
	return f.err
}

func (f *fakeMirror) UpsertPlan(_ context.Context, userID string, p cm.SafetyPlan) error {
	f.userID = userID
	f.plans = append(f.plans, p)
	return f.err
}

func (f *fakeMirror) UpsertContacts(_ context.Context, userID string, cs []cm.SafetyContact) error {
	f.userID = userID
	f.contacts = append(f.contacts, cs...)
	return f.err
}

func (f *fakeMirror) AppendJournal(_ context.Context, userID string, e cm.JournalEntry) error {
	f.userID = userID
	f.journal = append(f.journal, e)
	return f.err
}

type fakeExports struct {
	out      *services.PresignedExport
	err      error
	userID   string
	fileName string
}

func (f *fakeExports) PresignExport(_ context.Context, userID, fileName string) (*services.PresignedExport, error) {
	f.userID, f.fileName = userID, fileName
	return f.out, f.err
}

type testServer struct {
	*GRPCServer
	users   *fakeUsers
	mirror  *fakeMirror
	exports *fakeExports
}

func newTestServer() *testServer {
	us, ms, es := &fakeUsers{}, &fakeMirror{}, &fakeExports{}
	return &testServer{
		GRPCServer: NewGRPCServer("127.0.0.1:0", logging.Nop(), us, ms, es, testSecret),
		users:      us,
		mirror:     ms,
		exports:    es,
	}
}
