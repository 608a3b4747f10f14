package seed

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/gophcontacts/internal/client/repositories/people"
	"github.com/dmitrijs2005/gophcontacts/internal/dbx"
	"github.com/dmitrijs2005/gophcontacts/internal/logging"
)

// DatabaseSeeder fills an empty local cache with the roster, without photos.
type DatabaseSeeder struct {
	db     *sql.DB
	seed   *Seed
	logger logging.Logger
}

func NewDatabaseSeeder(db *sql.DB, s *Seed, l logging.Logger) *DatabaseSeeder {
	return &DatabaseSeeder{db: db, seed: s, logger: l.With("module", "database_seeder")}
}

// SeedPeople reports whether the roster was inserted.
func (d *DatabaseSeeder) SeedPeople(ctx context.Context) bool {
	count, err := people.NewSQLiteRepository(d.db).Count(ctx)
	if err != nil {
		d.logger.Error(ctx, "local people not counted", "error", err)
		return false
	}
	if count > 0 {
		d.logger.Debug(ctx, "local cache already seeded", "count", count)
		return false
	}

	roster := d.seed.CreatePeople(ctx, false)
	err = dbx.WithTx(ctx, d.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return people.NewSQLiteRepository(tx).InsertAll(ctx, roster)
	})
	if err != nil {
		d.logger.Error(ctx, "local seeding failed", "error", err)
		return false
	}

	d.logger.Info(ctx, "local cache seeded", "count", len(roster))
	return true
}
