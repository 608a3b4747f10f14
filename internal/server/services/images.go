package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophcontacts/internal/common"
	"github.com/dmitrijs2005/gophcontacts/internal/logging"
	"github.com/dmitrijs2005/gophcontacts/internal/server/models"
	"github.com/dmitrijs2005/gophcontacts/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophcontacts/internal/server/storage"
	"github.com/google/uuid"
)

// ImageService is the remote image store. Uploads are two-phase: the client
// asks for a presigned PUT, sends the bytes to the bucket, then completes.
type ImageService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	store       storage.ObjectStore
	logger      logging.Logger
}

func NewImageService(db *sql.DB, rm repomanager.RepositoryManager, store storage.ObjectStore, logger logging.Logger) *ImageService {
	return &ImageService{
		db:          db,
		repomanager: rm,
		store:       store,
		logger:      logger.With("module", "image_service"),
	}
}

// GetRandomStorageKey returns a fresh object key with a date prefix.
func GetRandomStorageKey(ext string) string {
	d := time.Now()
	return fmt.Sprintf("%s%d/%d/%d/%v%s", common.ImageKeyPrefix, d.Year(), d.Month(), d.Day(), uuid.New(), ext)
}

// CreateUpload registers a pending image and returns its key and a presigned
// PUT URL. An empty contentType is derived from fileName.
func (s *ImageService) CreateUpload(ctx context.Context, fileName, contentType string) (string, string, error) {
	if contentType == "" {
		ct, err := common.ImageContentType(fileName)
		if err != nil {
			return "", "", err
		}
		contentType = ct
	}
	ext, err := common.ImageExtension(contentType)
	if err != nil {
		return "", "", err
	}

	key := GetRandomStorageKey(ext)
	img := &models.Image{Key: key, FileName: fileName, ContentType: contentType, UploadStatus: models.UploadPending}
	if err := s.repomanager.Images(s.db).Create(ctx, img); err != nil {
		return "", "", fmt.Errorf("create image record: %w", err)
	}

	url, err := s.store.PresignPut(ctx, key, contentType)
	if err != nil {
		return "", "", err
	}
	return key, url, nil
}

// CompleteUpload marks the image uploaded once the object is in the bucket
// and returns the remote reference handed to clients.
func (s *ImageService) CompleteUpload(ctx context.Context, ref string) (string, error) {
	key := common.RemoteImageKey(ref)
	repo := s.repomanager.Images(s.db)

	if _, err := repo.Get(ctx, key); err != nil {
		return "", err
	}

	exists, err := s.store.Exists(ctx, key)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", common.ErrorUploadIncomplete
	}

	if err := repo.MarkUploaded(ctx, key); err != nil {
		return "", err
	}
	return key, nil
}

// GetURL returns a presigned GET URL and the content type of an uploaded image.
func (s *ImageService) GetURL(ctx context.Context, ref string) (string, string, error) {
	key := common.RemoteImageKey(ref)

	img, err := s.repomanager.Images(s.db).Get(ctx, key)
	if err != nil {
		return "", "", err
	}
	if img.UploadStatus != models.UploadComplete {
		return "", "", common.ErrorNotFound
	}

	url, err := s.store.PresignGet(ctx, key)
	if err != nil {
		return "", "", err
	}
	return url, img.ContentType, nil
}

// Delete removes the object and its record. Unknown keys report false.
func (s *ImageService) Delete(ctx context.Context, ref string) (bool, error) {
	key := common.RemoteImageKey(ref)
	repo := s.repomanager.Images(s.db)

	if _, err := repo.Get(ctx, key); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return false, nil
		}
		return false, err
	}

	if err := s.store.Delete(ctx, key); err != nil {
		return false, err
	}

	deleted, err := repo.Delete(ctx, key)
	if err != nil {
		return false, err
	}
	s.logger.Info(ctx, "image deleted", "key", key)
	return deleted, nil
}
