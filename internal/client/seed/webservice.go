package seed

import (
	"context"
	"time"

	"github.com/dmitrijs2005/gophcontacts/internal/client/models"
	"github.com/dmitrijs2005/gophcontacts/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/gophcontacts/internal/logging"
	"github.com/dmitrijs2005/gophcontacts/internal/outcome"
)

// RemotePeople is the server's person collection.
type RemotePeople interface {
	Fetch(ctx context.Context) outcome.Outcome[[]models.Person]
	Post(ctx context.Context, p models.Person) outcome.Outcome[models.Person]
}

// RemoteImages is the server's image store.
type RemoteImages interface {
	Post(ctx context.Context, localPath string) outcome.Outcome[string]
	Delete(ctx context.Context, remoteRef string) outcome.Outcome[bool]
}

// WebserviceSeeder fills an empty server with the demo roster.
type WebserviceSeeder struct {
	seed   *Seed
	people RemotePeople
	images RemoteImages
	files  ImageFiles
	meta   metadata.Repository
	logger logging.Logger
	delay  time.Duration
}

// NewWebserviceSeeder wires the seeder; meta may be nil.
func NewWebserviceSeeder(s *Seed, people RemotePeople, images RemoteImages, files ImageFiles,
	meta metadata.Repository, l logging.Logger, delay time.Duration) *WebserviceSeeder {
	return &WebserviceSeeder{
		seed:   s,
		people: people,
		images: images,
		files:  files,
		meta:   meta,
		logger: l.With("module", "webservice_seeder"),
		delay:  delay,
	}
}

// SeedPeople posts the roster when the server holds no people yet. It
// reports whether the roster was processed.
func (w *WebserviceSeeder) SeedPeople(ctx context.Context) (seeded bool) {
	defer func() {
		if r := recover(); r != nil {
			w.logger.Error(ctx, "seeding aborted", "error", &outcome.PanicError{Value: r})
			seeded = false
		}
	}()

	existing, err := w.people.Fetch(ctx).Get()
	if err != nil {
		w.logger.Error(ctx, "remote people not listed", "error", err)
		return false
	}
	if len(existing) > 0 {
		w.logger.Info(ctx, "remote store already seeded", "count", len(existing))
		return false
	}

	roster := w.seed.CreatePeople(ctx, true)
	ops := w.ops(ctx)

	for _, p := range roster {
		if _, err := SeedPerson(ctx, p, ops); err != nil {
			w.logger.Warn(ctx, "seeding interrupted", "person", p.ID, "error", err)
			return false
		}
	}

	if w.meta != nil {
		if err := w.meta.SetTime(ctx, metadata.KeyRemoteSeededAt, time.Now()); err != nil {
			w.logger.Warn(ctx, "seed time not saved", "error", err)
		}
	}
	w.logger.Info(ctx, "remote store seeded", "count", len(roster))
	return true
}

func (w *WebserviceSeeder) ops(ctx context.Context) PersonOps {
	return PersonOps{
		DeleteLocalImage:  w.files.DeleteFile,
		DeleteRemoteImage: w.images.Delete,
		PostImage:         w.images.Post,
		PostPerson: func(ctx context.Context, p models.Person) error {
			_, err := w.people.Post(ctx, p).Get()
			return err
		},
		HandleError: func(err error) {
			w.logger.Error(ctx, "seeding step failed", "error", err)
		},
		Delay: w.delay,
	}
}
