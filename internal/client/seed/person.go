package seed

import (
	"context"
	"time"

	"github.com/dmitrijs2005/gophcontacts/internal/client/models"
	"github.com/dmitrijs2005/gophcontacts/internal/outcome"
)

// DefaultDelay is the pause after each person is posted.
const DefaultDelay = 300 * time.Millisecond

// PersonOps are the collaborators of SeedPerson.
type PersonOps struct {
	DeleteLocalImage  func(ctx context.Context, path string) outcome.Outcome[bool]
	DeleteRemoteImage func(ctx context.Context, ref string) outcome.Outcome[bool]
	PostImage         func(ctx context.Context, path string) outcome.Outcome[string]
	PostPerson        func(ctx context.Context, p models.Person) error
	HandleError       func(err error)
	Delay             time.Duration
}

// SeedPerson moves p's local photo to the remote image store, posts p and
// waits ops.Delay. Photo, file and post failures are passed to
// ops.HandleError and do not stop the routine. The returned person carries
// the resulting image fields; the error is non-nil only when ctx ended.
func SeedPerson(ctx context.Context, p models.Person, ops PersonOps) (models.Person, error) {
	if err := ctx.Err(); err != nil {
		return p, err
	}

	if p.HasLocalImage() {
		local := *p.LocalImage

		if p.HasRemoteImage() {
			stale := *p.RemoteImage
			if _, err := supervise(ctx, func(ctx context.Context) outcome.Outcome[bool] {
				return ops.DeleteRemoteImage(ctx, stale)
			}).Get(); err != nil {
				ops.HandleError(err)
			}
		}

		ref, err := supervise(ctx, func(ctx context.Context) outcome.Outcome[string] {
			return ops.PostImage(ctx, local)
		}).Get()
		if err != nil {
			ops.HandleError(err)
		} else {
			if _, err := supervise(ctx, func(ctx context.Context) outcome.Outcome[bool] {
				return ops.DeleteLocalImage(ctx, local)
			}).Get(); err != nil {
				ops.HandleError(err)
			}
			p = p.WithLocalImage("").WithRemoteImage(ref)
		}
	}

	if err := ctx.Err(); err != nil {
		return p, err
	}
	if err := ops.PostPerson(ctx, p); err != nil {
		ops.HandleError(err)
	}

	return p, sleep(ctx, ops.Delay)
}

// supervise runs fn on its own goroutine and waits for it. A panic inside
// fn becomes an Error outcome.
func supervise[T any](ctx context.Context, fn func(ctx context.Context) outcome.Outcome[T]) outcome.Outcome[T] {
	done := make(chan outcome.Outcome[T], 1)
	go func() {
		var res outcome.Outcome[T]
		defer func() {
			if r := recover(); r != nil {
				res = outcome.Failure[T](&outcome.PanicError{Value: r})
			}
			done <- res
		}()
		res = fn(ctx)
	}()
	return <-done
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
