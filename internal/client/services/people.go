package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/dmitrijs2005/gophcontacts/internal/client/client"
	"github.com/dmitrijs2005/gophcontacts/internal/client/models"
	"github.com/dmitrijs2005/gophcontacts/internal/client/repositories/people"
	"github.com/dmitrijs2005/gophcontacts/internal/common"
	"github.com/dmitrijs2005/gophcontacts/internal/dbx"
	"github.com/dmitrijs2005/gophcontacts/internal/logging"
	"github.com/dmitrijs2005/gophcontacts/internal/outcome"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
)

// PersonRepository is the single entry point for people: the local cache
// for reads and edits, the server for Post/Put/Fetch/Pull.
type PersonRepository struct {
	client client.Client
	db     *sql.DB
	logger logging.Logger
}

func NewPersonRepository(c client.Client, db *sql.DB, l logging.Logger) *PersonRepository {
	return &PersonRepository{client: c, db: db, logger: l.With("module", "people")}
}

func (r *PersonRepository) local() people.Repository {
	return people.NewSQLiteRepository(r.db)
}

func (r *PersonRepository) GetAll(ctx context.Context) outcome.Outcome[[]models.Person] {
	return outcome.Catch(func() ([]models.Person, error) {
		return r.local().SelectAll(ctx)
	})
}

func (r *PersonRepository) GetByID(ctx context.Context, id string) outcome.Outcome[models.Person] {
	return outcome.Catch(func() (models.Person, error) {
		p, err := r.local().FindByID(ctx, id)
		if err != nil {
			return models.Person{}, err
		}
		return *p, nil
	})
}

func (r *PersonRepository) Count(ctx context.Context) outcome.Outcome[int64] {
	return outcome.Catch(func() (int64, error) {
		return r.local().Count(ctx)
	})
}

// Create assigns an id when p has none, validates and inserts p.
func (r *PersonRepository) Create(ctx context.Context, p models.Person) outcome.Outcome[models.Person] {
	return outcome.Catch(func() (models.Person, error) {
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		if err := p.Validate(); err != nil {
			return models.Person{}, err
		}
		if err := r.local().Insert(ctx, p); err != nil {
			return models.Person{}, err
		}
		return p, nil
	})
}

func (r *PersonRepository) Update(ctx context.Context, p models.Person) outcome.Outcome[models.Person] {
	return outcome.Catch(func() (models.Person, error) {
		if err := p.Validate(); err != nil {
			return models.Person{}, err
		}
		if err := r.local().Update(ctx, p); err != nil {
			return models.Person{}, err
		}
		return p, nil
	})
}

func (r *PersonRepository) Remove(ctx context.Context, id string) outcome.Outcome[bool] {
	return outcome.Catch(func() (bool, error) {
		if err := r.local().Remove(ctx, id); err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return false, nil
			}
			return false, err
		}
		return true, nil
	})
}

// Watch observes the local cache. The channel receives Loading first, then
// the current list, then a new list whenever it changes. It is closed when
// ctx is done.
func (r *PersonRepository) Watch(ctx context.Context, interval time.Duration) <-chan outcome.Outcome[[]models.Person] {
	ch := make(chan outcome.Outcome[[]models.Person], 1)

	go func() {
		defer close(ch)

		send := func(o outcome.Outcome[[]models.Person]) bool {
			select {
			case ch <- o:
				return true
			case <-ctx.Done():
				return false
			}
		}

		if !send(outcome.Loading[[]models.Person]()) {
			return
		}

		var last outcome.Outcome[[]models.Person]
		emit := func() bool {
			cur := r.GetAll(ctx)
			if ctx.Err() != nil {
				return false
			}
			if cur.Kind() == last.Kind() && cmp.Equal(cur.Value(), last.Value()) && cur.IsSuccess() {
				return true
			}
			last = cur
			return send(cur)
		}

		if !emit() {
			return
		}

		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if !emit() {
					return
				}
			}
		}
	}()

	return ch
}

// Post creates or replaces p on the server.
func (r *PersonRepository) Post(ctx context.Context, p models.Person) outcome.Outcome[models.Person] {
	return outcome.Catch(func() (models.Person, error) {
		saved, err := r.client.PostPerson(ctx, p)
		if err != nil {
			return models.Person{}, err
		}
		return *saved, nil
	})
}

// Put updates an existing person on the server.
func (r *PersonRepository) Put(ctx context.Context, p models.Person) outcome.Outcome[models.Person] {
	return outcome.Catch(func() (models.Person, error) {
		saved, err := r.client.PutPerson(ctx, p)
		if err != nil {
			return models.Person{}, err
		}
		return *saved, nil
	})
}

// DeleteRemote removes the person from the server.
func (r *PersonRepository) DeleteRemote(ctx context.Context, id string) outcome.Outcome[bool] {
	return outcome.Catch(func() (bool, error) {
		return r.client.DeletePerson(ctx, id)
	})
}

// Fetch lists the people held by the server.
func (r *PersonRepository) Fetch(ctx context.Context) outcome.Outcome[[]models.Person] {
	return outcome.Catch(func() ([]models.Person, error) {
		return r.client.ListPeople(ctx)
	})
}

// Pull copies the server's people into the local cache in one transaction
// and returns them as stored. Local image paths already on the device are
// kept; people that exist only locally are left alone.
func (r *PersonRepository) Pull(ctx context.Context) outcome.Outcome[[]models.Person] {
	return outcome.Catch(func() ([]models.Person, error) {
		remote, err := r.client.ListPeople(ctx)
		if err != nil {
			return nil, err
		}

		stored := make([]models.Person, 0, len(remote))
		err = dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
			repo := people.NewSQLiteRepository(tx)
			for _, p := range remote {
				existing, err := repo.FindByID(ctx, p.ID)
				switch {
				case err == nil:
					p.LocalImage = existing.LocalImage
				case !errors.Is(err, common.ErrorNotFound):
					return err
				}
				if err := repo.Upsert(ctx, p); err != nil {
					return err
				}
				stored = append(stored, p)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}

		r.logger.Info(ctx, "pulled people", "count", len(stored))
		return stored, nil
	})
}
