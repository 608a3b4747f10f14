// Package metadata keeps client bookkeeping values (sync timestamps) in a
// key/value table of the local database.
package metadata

import (
	"context"
	"time"
)

const (
	KeyLastPush       = "last_push"
	KeyLastPull       = "last_pull"
	KeyRemoteSeededAt = "remote_seeded_at"
)

type Repository interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
	GetTime(ctx context.Context, key string) (time.Time, bool, error)
	SetTime(ctx context.Context, key string, t time.Time) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string]string, error)
	Clear(ctx context.Context) error
}
