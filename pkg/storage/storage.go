// Package storage uploads post images to a cloud storage bucket.
package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"cloud.google.com/go/storage"
)

// Uploader stores an object and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, key, contentType string, r io.Reader) (string, error)
}

// BucketUploader implements Uploader on top of a Cloud Storage bucket.
type BucketUploader struct {
	client *storage.Client
	bucket string
}

// NewBucketUploader creates a new BucketUploader
func NewBucketUploader(client *storage.Client, bucket string) *BucketUploader {
	return &BucketUploader{client: client, bucket: bucket}
}

// Upload writes the object and returns the public URL it is served from.
func (u *BucketUploader) Upload(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
	w := u.client.Bucket(u.bucket).Object(key).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return "", fmt.Errorf("write object: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("close object writer: %w", err)
	}
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", u.bucket, key), nil
}

// PostImageKey derives a unique object key for an uploaded post image,
// keeping the original file extension.
func PostImageKey(filename string) string {
	return fmt.Sprintf("posts/%d%s", time.Now().UnixNano(), path.Ext(filename))
}
