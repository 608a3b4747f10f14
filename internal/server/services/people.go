package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/gophcontacts/internal/logging"
	"github.com/dmitrijs2005/gophcontacts/internal/server/cache"
	"github.com/dmitrijs2005/gophcontacts/internal/server/models"
	"github.com/dmitrijs2005/gophcontacts/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophcontacts/internal/validation"
)

// PeopleService is the remote person store. The full listing is served from
// the cache when present and the cache is dropped on every write.
type PeopleService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	cache       cache.PeopleCache
	logger      logging.Logger
}

func NewPeopleService(db *sql.DB, rm repomanager.RepositoryManager, c cache.PeopleCache, logger logging.Logger) *PeopleService {
	if c == nil {
		c = cache.NopCache{}
	}
	return &PeopleService{
		db:          db,
		repomanager: rm,
		cache:       c,
		logger:      logger.With("module", "people_service"),
	}
}

func (s *PeopleService) List(ctx context.Context) ([]*models.Person, error) {
	if people, ok, err := s.cache.GetPeople(ctx); err != nil {
		s.logger.Warn(ctx, "people cache read failed", "error", err)
	} else if ok {
		return people, nil
	}

	people, err := s.repomanager.People(s.db).List(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetPeople(ctx, people); err != nil {
		s.logger.Warn(ctx, "people cache write failed", "error", err)
	}
	return people, nil
}

func (s *PeopleService) Count(ctx context.Context) (int64, error) {
	return s.repomanager.People(s.db).Count(ctx)
}

func (s *PeopleService) Get(ctx context.Context, id string) (*models.Person, error) {
	return s.repomanager.People(s.db).Get(ctx, id)
}

// Post creates the person or replaces the stored one with the same id.
func (s *PeopleService) Post(ctx context.Context, p *models.Person) (*models.Person, error) {
	if err := validation.Struct(p); err != nil {
		return nil, err
	}
	saved, err := s.repomanager.People(s.db).Upsert(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("post person: %w", err)
	}
	s.invalidate(ctx)
	return saved, nil
}

// Put updates an existing person; ErrorNotFound when the id is unknown.
func (s *PeopleService) Put(ctx context.Context, p *models.Person) (*models.Person, error) {
	if err := validation.Struct(p); err != nil {
		return nil, err
	}
	saved, err := s.repomanager.People(s.db).Update(ctx, p)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return saved, nil
}

func (s *PeopleService) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := s.repomanager.People(s.db).Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		s.invalidate(ctx)
	}
	return deleted, nil
}

func (s *PeopleService) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn(ctx, "people cache invalidation failed", "error", err)
	}
}
