package cli

import (
	"bufio"
	"context"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophcontacts/internal/client/client"
	"github.com/dmitrijs2005/gophcontacts/internal/client/config"
	"github.com/dmitrijs2005/gophcontacts/internal/client/models"
	"github.com/dmitrijs2005/gophcontacts/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/gophcontacts/internal/client/seed"
	"github.com/dmitrijs2005/gophcontacts/internal/client/services"
	"github.com/dmitrijs2005/gophcontacts/internal/client/storage"
	"github.com/dmitrijs2005/gophcontacts/internal/logging"
	"github.com/dmitrijs2005/gophcontacts/internal/outcome"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// peopleStore is the part of services.PersonRepository the commands use.
type peopleStore interface {
	GetAll(ctx context.Context) outcome.Outcome[[]models.Person]
	GetByID(ctx context.Context, id string) outcome.Outcome[models.Person]
	Count(ctx context.Context) outcome.Outcome[int64]
	Create(ctx context.Context, p models.Person) outcome.Outcome[models.Person]
	Update(ctx context.Context, p models.Person) outcome.Outcome[models.Person]
	Remove(ctx context.Context, id string) outcome.Outcome[bool]
	DeleteRemote(ctx context.Context, id string) outcome.Outcome[bool]
}

type fileStore interface {
	CopyFile(ctx context.Context, path string) outcome.Outcome[string]
	DeleteFile(ctx context.Context, path string) outcome.Outcome[bool]
}

type seeder interface {
	SeedPeople(ctx context.Context) bool
}

type syncer interface {
	Push(ctx context.Context) (seed.SyncResult, error)
	Pull(ctx context.Context) (seed.SyncResult, error)
}

type App struct {
	config      *config.Config
	logger      logging.Logger
	authService services.AuthService
	people      peopleStore
	files       fileStore
	meta        metadata.Repository
	roster      *seed.Seed
	localSeeder seeder
	webSeeder   seeder
	sync        syncer
	closers     []func() error

	mu     sync.RWMutex
	mode   Mode
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(ctx context.Context, c *config.Config, l logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		l.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	files, err := storage.NewLocalStorage(c.ImagesDir)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	apiClient, err := client.NewContactsClientService(c.ServerEndpointAddr)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	people := services.NewPersonRepository(apiClient, db, l)
	images := services.NewImageRepository(apiClient, files, l)
	meta := metadata.NewSQLiteRepository(db)
	roster := seed.New(files, l)

	return &App{
		config:      c,
		logger:      l.With("module", "cli"),
		authService: services.NewAuthService(apiClient),
		people:      people,
		files:       files,
		meta:        meta,
		roster:      roster,
		localSeeder: seed.NewDatabaseSeeder(db, roster, l),
		webSeeder:   seed.NewWebserviceSeeder(roster, people, images, files, meta, l, c.SeedDelay),
		sync:        seed.NewPersonSync(people, images, files, meta, l, c.SeedDelay),
		closers:     []func() error{db.Close},
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
	}, nil
}

func (a *App) Mode() Mode {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.mode
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.logger.Info(context.Background(), "switched mode", "mode", mode)
	}
}

func (a *App) Run(ctx context.Context) {
	defer a.close(ctx)
	a.Root(ctx)
}

func (a *App) close(ctx context.Context) {
	if a.roster != nil {
		a.roster.DisposeImages(ctx)
	}
	if err := a.authService.Close(ctx); err != nil {
		a.logger.Warn(ctx, "client not closed", "error", err)
	}
	for _, c := range a.closers {
		if err := c(); err != nil {
			a.logger.Warn(ctx, "resource not closed", "error", err)
		}
	}
}

func (a *App) isLoggedIn() bool {
	return a.authService.LoggedIn()
}

// pingTimeout bounds a single connectivity probe.
var pingTimeout = 3 * time.Second

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
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
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}
