// Package storage is the device's local file store for person photos.
// Every operation reports its result as an outcome.Outcome; failures and
// panics never escape.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"os"
	"path/filepath"

	_ "image/png"

	"github.com/dmitrijs2005/gophcontacts/internal/filex"
	"github.com/dmitrijs2005/gophcontacts/internal/outcome"
	"github.com/google/uuid"
)

const jpegQuality = 100

// LocalStorage keeps files under a single root directory and returns
// absolute paths.
type LocalStorage struct {
	root string
}

// NewLocalStorage creates root if needed.
func NewLocalStorage(root string) (*LocalStorage, error) {
	abs, err := filex.EnsureDir(root)
	if err != nil {
		return nil, err
	}
	return &LocalStorage{root: abs}, nil
}

func (s *LocalStorage) Root() string { return s.root }

func (s *LocalStorage) path(fileName string) string {
	return filepath.Join(s.root, filepath.Base(fileName))
}

// ReadImage decodes the JPEG or PNG file at path.
func (s *LocalStorage) ReadImage(ctx context.Context, path string) outcome.Outcome[image.Image] {
	return outcome.Catch(func() (image.Image, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		img, _, err := image.Decode(f)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		return img, nil
	})
}

// WriteImage encodes img as a JPEG under a fresh <uuid>.jpg name.
func (s *LocalStorage) WriteImage(ctx context.Context, img image.Image) outcome.Outcome[string] {
	return outcome.Catch(func() (string, error) {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
			return "", fmt.Errorf("encode jpeg: %w", err)
		}
		return s.write(buf.Bytes(), uuid.NewString()+".jpg")
	})
}

// WriteStream copies r into fileName inside the root.
func (s *LocalStorage) WriteStream(ctx context.Context, r io.Reader, fileName string) outcome.Outcome[string] {
	return outcome.Catch(func() (string, error) {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		target := s.path(fileName)
		f, err := os.Create(target)
		if err != nil {
			return "", err
		}
		if _, err := io.Copy(f, r); err != nil {
			_ = f.Close()
			_ = os.Remove(target)
			return "", err
		}
		if err := f.Close(); err != nil {
			return "", err
		}
		return target, nil
	})
}

// WriteBytes stores data as fileName inside the root.
func (s *LocalStorage) WriteBytes(ctx context.Context, data []byte, fileName string) outcome.Outcome[string] {
	return outcome.Catch(func() (string, error) {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		return s.write(data, fileName)
	})
}

func (s *LocalStorage) write(data []byte, fileName string) (string, error) {
	target := s.path(fileName)
	if err := os.WriteFile(target, data, 0o640); err != nil {
		return "", err
	}
	return target, nil
}

// DeleteFile removes path; Success(false) when it was already gone.
func (s *LocalStorage) DeleteFile(ctx context.Context, path string) outcome.Outcome[bool] {
	return outcome.Catch(func() (bool, error) {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		return filex.Remove(path)
	})
}

// CopyFile copies path into the root under a new uuid name that keeps the
// extension.
func (s *LocalStorage) CopyFile(ctx context.Context, path string) outcome.Outcome[string] {
	return outcome.Catch(func() (string, error) {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		src, err := os.Open(path)
		if err != nil {
			return "", err
		}
		defer src.Close()

		return s.WriteStream(ctx, src, uuid.NewString()+filepath.Ext(path)).Get()
	})
}
