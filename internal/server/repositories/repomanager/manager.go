package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/gophcontacts/internal/dbx"
	"github.com/dmitrijs2005/gophcontacts/internal/server/repositories/images"
	"github.com/dmitrijs2005/gophcontacts/internal/server/repositories/people"
)

// RepositoryManager vends repositories bound to a *sql.DB or *sql.Tx and
// owns schema migrations.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	People(db dbx.DBTX) people.Repository
	Images(db dbx.DBTX) images.Repository
}
