// Package invoice keeps order invoice files in a blob bucket.
package invoice

import (
	"context"
	"io"
	"strings"

	"github.com/go-faster/errors"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets

	"github.com/xenking/storefront/internal/domain/order"
)

var _ order.InvoiceStore = (*Store)(nil)

// Store writes invoices to a bucket and exposes them under a public base URL.
type Store struct {
	bucket  *blob.Bucket
	baseURL string
}

// Open opens the bucket at bucketURL, e.g. "file:///var/lib/storefront/invoices".
// Stored files are addressed as publicBaseURL + "/" + key.
func Open(ctx context.Context, bucketURL, publicBaseURL string) (*Store, error) {
	b, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %q", bucketURL)
	}
	return New(b, publicBaseURL), nil
}

// New wraps an opened bucket.
func New(b *blob.Bucket, publicBaseURL string) *Store {
	return &Store{bucket: b, baseURL: strings.TrimRight(publicBaseURL, "/")}
}

// Put stores the file and returns its public URL.
func (s *Store) Put(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "open writer")
	}
	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return "", errors.Wrap(err, "write invoice")
	}
	if err := w.Close(); err != nil {
		return "", errors.Wrap(err, "close writer")
	}
	return s.baseURL + "/" + key, nil
}

// Delete removes a file by the URL Put returned. URLs outside the base are
// ignored.
func (s *Store) Delete(ctx context.Context, url string) error {
	key, ok := strings.CutPrefix(url, s.baseURL+"/")
	if !ok || key == "" {
		return nil
	}
	if err := s.bucket.Delete(ctx, key); err != nil {
		return errors.Wrapf(err, "delete %q", key)
	}
	return nil
}

// Open returns a reader for the stored key.
func (s *Store) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	r, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		return nil, "", errors.Wrapf(err, "open %q", key)
	}
	return r, r.ContentType(), nil
}

// Close releases the bucket.
func (s *Store) Close() error {
	return s.bucket.Close()
}
