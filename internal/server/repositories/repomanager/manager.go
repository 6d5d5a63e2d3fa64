package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/gophsafe/internal/dbx"
	"github.com/dmitrijs2005/gophsafe/internal/server/repositories/contacts"
	"github.com/dmitrijs2005/gophsafe/internal/server/repositories/journal"
	"github.com/dmitrijs2005/gophsafe/internal/server/repositories/plans"
	"github.com/dmitrijs2005/gophsafe/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/gophsafe/internal/server/repositories/triage"
	"github.com/dmitrijs2005/gophsafe/internal/server/repositories/users"
)

// RepositoryManager hands out repositories bound to a DB or a transaction,
// so services can group writes with dbx.WithTx.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Triage(db dbx.DBTX) triage.Repository
	Contacts(db dbx.DBTX) contacts.Repository
	Plans(db dbx.DBTX) plans.Repository
	Journal(db dbx.DBTX) journal.Repository
}
