// Package media stores product images in object storage and hands back
// public URLs for the catalog.
package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
)

// Uploader puts image bytes somewhere publicly retrievable.
type Uploader interface {
	Upload(ctx context.Context, filename, contentType string, r io.Reader) (string, error)
}

// GCSUploader writes product images under products/ in one bucket. The
// bucket is expected to grant allUsers object-viewer access so uploaded
// objects are publicly readable without per-object ACLs.
type GCSUploader struct {
	Client *storage.Client
	Bucket string
	// PublicBaseURL defaults to https://storage.googleapis.com.
	PublicBaseURL string
}

func NewGCSUploader(client *storage.Client, bucket string) *GCSUploader {
	return &GCSUploader{
		Client:        client,
		Bucket:        strings.TrimSpace(bucket),
		PublicBaseURL: "https://storage.googleapis.com",
	}
}

// Upload writes the object and returns its public URL. Object names are
// prefixed with a UUID so re-uploads of the same filename never collide.
func (u *GCSUploader) Upload(ctx context.Context, filename, contentType string, r io.Reader) (string, error) {
	if u == nil || u.Client == nil {
		return "", errors.New("media: storage client is nil")
	}
	if u.Bucket == "" {
		return "", errors.New("media: bucket is empty")
	}

	name := strings.TrimSpace(path.Base(filename))
	if name == "" || name == "." || name == "/" {
		return "", errors.New("media: invalid filename")
	}
	objectPath := fmt.Sprintf("products/%s-%s", uuid.New().String(), name)

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	w := u.Client.Bucket(u.Bucket).Object(objectPath).NewWriter(ctx)
	if contentType != "" {
		w.ContentType = contentType
	}
	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	return fmt.Sprintf("%s/%s/%s", u.PublicBaseURL, u.Bucket, objectPath), nil
}
