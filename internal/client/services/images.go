package services

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/gophcontacts/internal/client/client"
	"github.com/dmitrijs2005/gophcontacts/internal/client/storage"
	"github.com/dmitrijs2005/gophcontacts/internal/common"
	"github.com/dmitrijs2005/gophcontacts/internal/filex"
	"github.com/dmitrijs2005/gophcontacts/internal/logging"
	"github.com/dmitrijs2005/gophcontacts/internal/netx"
	"github.com/dmitrijs2005/gophcontacts/internal/outcome"
	"github.com/google/uuid"
)

// ImageRepository moves photos between the local file store and the remote
// image store. Bytes travel through presigned URLs, never over gRPC.
type ImageRepository struct {
	client client.Client
	store  *storage.LocalStorage
	logger logging.Logger
}

func NewImageRepository(c client.Client, store *storage.LocalStorage, l logging.Logger) *ImageRepository {
	return &ImageRepository{client: c, store: store, logger: l.With("module", "images")}
}

// Get downloads the remote image into the local store and returns the
// local path.
func (r *ImageRepository) Get(ctx context.Context, remoteRef string) outcome.Outcome[string] {
	return outcome.Catch(func() (string, error) {
		key := common.RemoteImageKey(remoteRef)

		url, contentType, err := r.client.GetImageURL(ctx, key)
		if err != nil {
			return "", fmt.Errorf("get image url: %w", err)
		}

		ext, err := common.ImageExtension(contentType)
		if err != nil {
			ext = filepath.Ext(key)
		}

		var buf bytes.Buffer
		if _, err := netx.DownloadFromPresignedURL(ctx, url, &buf); err != nil {
			return "", err
		}

		path, err := r.store.WriteBytes(ctx, buf.Bytes(), uuid.NewString()+ext).Get()
		if err != nil {
			return "", err
		}
		r.logger.Debug(ctx, "image downloaded", "ref", remoteRef, "path", path)
		return path, nil
	})
}

// Post uploads the file at localPath and returns its remote reference.
func (r *ImageRepository) Post(ctx context.Context, localPath string) outcome.Outcome[string] {
	return outcome.Catch(func() (string, error) {
		contentType, err := common.ImageContentType(localPath)
		if err != nil {
			return "", err
		}
		if !filex.Exists(localPath) {
			return "", fmt.Errorf("%w: %s", common.ErrorFileNotExist, localPath)
		}

		data, err := os.ReadFile(localPath)
		if err != nil {
			return "", err
		}

		key, url, err := r.client.CreateImageUpload(ctx, filepath.Base(localPath), contentType)
		if err != nil {
			return "", fmt.Errorf("create upload: %w", err)
		}
		if err := netx.UploadToPresignedURL(ctx, url, contentType, data); err != nil {
			return "", err
		}
		ref, err := r.client.CompleteImageUpload(ctx, key)
		if err != nil {
			return "", fmt.Errorf("complete upload: %w", err)
		}

		r.logger.Debug(ctx, "image uploaded", "path", localPath, "ref", ref)
		return ref, nil
	})
}

// Delete removes the remote image; Success(false) when the server did not
// know it.
func (r *ImageRepository) Delete(ctx context.Context, remoteRef string) outcome.Outcome[bool] {
	return outcome.Catch(func() (bool, error) {
		return r.client.DeleteImage(ctx, common.RemoteImageKey(remoteRef))
	})
}
