package seed

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophcontacts/internal/client/models"
	"github.com/dmitrijs2005/gophcontacts/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/gophcontacts/internal/filex"
	"github.com/dmitrijs2005/gophcontacts/internal/logging"
	"github.com/dmitrijs2005/gophcontacts/internal/outcome"
	"golang.org/x/sync/errgroup"
)

const pullDownloads = 4

// PeopleStore is the local cache plus the remote collection.
type PeopleStore interface {
	RemotePeople
	GetAll(ctx context.Context) outcome.Outcome[[]models.Person]
	Update(ctx context.Context, p models.Person) outcome.Outcome[models.Person]
	Pull(ctx context.Context) outcome.Outcome[[]models.Person]
}

// ImageStore is the remote image store with downloads.
type ImageStore interface {
	RemoteImages
	Get(ctx context.Context, remoteRef string) outcome.Outcome[string]
}

// PersonSync pushes the local cache to the server and pulls it back.
type PersonSync struct {
	people PeopleStore
	images ImageStore
	files  ImageFiles
	meta   metadata.Repository
	logger logging.Logger
	delay  time.Duration
}

func NewPersonSync(people PeopleStore, images ImageStore, files ImageFiles,
	meta metadata.Repository, l logging.Logger, delay time.Duration) *PersonSync {
	return &PersonSync{
		people: people,
		images: images,
		files:  files,
		meta:   meta,
		logger: l.With("module", "sync"),
		delay:  delay,
	}
}

// SyncResult summarizes a push or pull.
type SyncResult struct {
	People int
	Images int
	Failed int
}

// Push runs every local person through SeedPerson and stores the resulting
// image fields locally.
func (s *PersonSync) Push(ctx context.Context) (SyncResult, error) {
	var res SyncResult

	local, err := s.people.GetAll(ctx).Get()
	if err != nil {
		return res, fmt.Errorf("list local people: %w", err)
	}

	ops := PersonOps{
		DeleteLocalImage:  s.files.DeleteFile,
		DeleteRemoteImage: s.images.Delete,
		PostImage:         s.images.Post,
		PostPerson: func(ctx context.Context, p models.Person) error {
			_, err := s.people.Post(ctx, p).Get()
			return err
		},
		HandleError: func(err error) {
			res.Failed++
			s.logger.Warn(ctx, "push step failed", "error", err)
		},
		Delay: s.delay,
	}

	for _, p := range local {
		pushed, err := SeedPerson(ctx, p, ops)
		if pushed.ImageState() != p.ImageState() || models.Deref(pushed.RemoteImage) != models.Deref(p.RemoteImage) {
			res.Images++
			if _, uerr := s.people.Update(ctx, pushed).Get(); uerr != nil {
				s.logger.Error(ctx, "pushed person not saved locally", "id", p.ID, "error", uerr)
			}
		}
		if err != nil {
			return res, err
		}
		res.People++
	}

	s.stamp(ctx, metadata.KeyLastPush)
	return res, nil
}

// Pull refreshes the local cache from the server and downloads the photos
// that are not on the device.
func (s *PersonSync) Pull(ctx context.Context) (SyncResult, error) {
	var res SyncResult

	pulled, err := s.people.Pull(ctx).Get()
	if err != nil {
		return res, fmt.Errorf("pull people: %w", err)
	}
	res.People = len(pulled)

	var (
		mu      sync.Mutex
		updated []models.Person
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(pullDownloads)

	for _, p := range pulled {
		if !p.HasRemoteImage() || (p.HasLocalImage() && filex.Exists(*p.LocalImage)) {
			continue
		}
		g.Go(func() error {
			path, err := s.images.Get(gctx, *p.RemoteImage).Get()
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				res.Failed++
				s.logger.Warn(gctx, "photo not downloaded", "id", p.ID, "error", err)
				return nil
			}
			updated = append(updated, p.WithLocalImage(path))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return res, err
	}
	if err := ctx.Err(); err != nil {
		return res, err
	}

	for _, p := range updated {
		if _, err := s.people.Update(ctx, p).Get(); err != nil {
			res.Failed++
			s.logger.Error(ctx, "downloaded photo not saved", "id", p.ID, "error", err)
			continue
		}
		res.Images++
	}

	s.stamp(ctx, metadata.KeyLastPull)
	return res, nil
}

func (s *PersonSync) stamp(ctx context.Context, key string) {
	if s.meta == nil {
		return
	}
	if err := s.meta.SetTime(ctx, key, time.Now()); err != nil {
		s.logger.Warn(ctx, "sync time not saved", "key", key, "error", err)
	}
}
