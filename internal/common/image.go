package common

import (
	"path/filepath"
	"strings"
)

var imageContentTypes = map[string]string{
	"jpeg": "image/jpeg",
	"jpg":  "image/jpeg",
	"png":  "image/png",
	"bmp":  "image/bmp",
	"webp": "image/webp",
	"tiff": "image/tiff",
	"tif":  "image/tiff",
	"heif": "image/heif",
	"heic": "image/heif",
}

// ImageContentType returns the MIME type for a photo file name based on its
// extension, or ErrorUnsupportedImage.
func ImageContentType(fileName string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(fileName), "."))
	ct, ok := imageContentTypes[ext]
	if !ok {
		return "", ErrorUnsupportedImage
	}
	return ct, nil
}

// ImageExtension returns the canonical file extension (with dot) for a
// supported content type.
func ImageExtension(contentType string) (string, error) {
	switch contentType {
	case "image/jpeg":
		return ".jpg", nil
	case "image/png":
		return ".png", nil
	case "image/bmp":
		return ".bmp", nil
	case "image/webp":
		return ".webp", nil
	case "image/tiff":
		return ".tiff", nil
	case "image/heif":
		return ".heic", nil
	}
	return "", ErrorUnsupportedImage
}

// RemoteImageKey extracts the object key from a remote image reference. The
// reference is either a bare key ("images/2024/5/1/x.jpg") or a URL whose
// path contains the key.
func RemoteImageKey(ref string) string {
	if i := strings.Index(ref, "?"); i >= 0 {
		ref = ref[:i]
	}
	if i := strings.Index(ref, ImageKeyPrefix); i >= 0 {
		return ref[i:]
	}
	if i := strings.LastIndex(ref, "/"); i >= 0 {
		return ref[i+1:]
	}
	return ref
}
