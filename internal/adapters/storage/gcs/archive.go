// Package gcs archives raw statement files in a Google Cloud Storage bucket.
package gcs

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/SscSPs/cashmap/internal/core/ports/integrations"
	"google.golang.org/api/option"
)

const uploadTimeout = 2 * time.Minute

// Archive stores statements under <owner>/<upload>/<filename>.
type Archive struct {
	client *storage.Client
	bucket string
}

var _ integrations.StatementArchive = (*Archive)(nil)

// NewArchive creates a storage client for bucket. With an empty
// credentialsFile Application Default Credentials are used.
func NewArchive(ctx context.Context, bucket, credentialsFile string) (*Archive, error) {
	if bucket == "" {
		return nil, fmt.Errorf("gcs: bucket name is required")
	}
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("gcs: create storage client: %w", err)
	}
	return &Archive{client: client, bucket: bucket}, nil
}

// Archive uploads content and returns its gs:// URI.
func (a *Archive) Archive(ctx context.Context, ownerID, uploadID, filename string, content []byte) (string, error) {
	object := ObjectName(ownerID, uploadID, filename)

	ctx, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()

	w := a.client.Bucket(a.bucket).Object(object).NewWriter(ctx)
	w.ContentType = "text/csv"
	w.Metadata = map[string]string{"owner_id": ownerID, "upload_id": uploadID}

	if _, err := w.Write(content); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("gcs: write %s: %w", object, err)
	}
	// Close finalises the upload.
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("gcs: finalize %s: %w", object, err)
	}
	return URI(a.bucket, object), nil
}

// Close releases the storage client.
func (a *Archive) Close() error {
	return a.client.Close()
}

// ObjectName builds the object path for an upload. The filename is reduced to
// its base name so client-supplied paths cannot escape the owner prefix.
func ObjectName(ownerID, uploadID, filename string) string {
	name := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	if name == "." || name == "/" || name == ".." {
		name = "statement.csv"
	}
	return path.Join(ownerID, uploadID, name)
}

// URI formats a gs:// URI for an object.
func URI(bucket, object string) string {
	return "gs://" + bucket + "/" + object
}
