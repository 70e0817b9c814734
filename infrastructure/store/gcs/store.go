// ABOUTME: Cloud Storage slot store; each slot is one object under a prefix
// ABOUTME: Lets several instances share bookmarks and preferences

package gcs

import (
	"context"
	"errors"
	"fmt"
	"io"

	"gistfm-api/core/interfaces"
	"gistfm-api/pkg/config"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// Store implements the Store interface on a Cloud Storage bucket
type Store struct {
	client *storage.Client
	bucket *storage.BucketHandle
	prefix string
}

// NewStore connects to Cloud Storage using application default credentials
func NewStore(ctx context.Context, cfg config.GCSConfig, opts ...option.ClientOption) (*Store, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("gcs bucket cannot be empty")
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	return &Store{
		client: client,
		bucket: client.Bucket(cfg.Bucket),
		prefix: cfg.Prefix,
	}, nil
}

func (s *Store) objectName(key string) string {
	return s.prefix + key
}

// Get reads the object holding a slot
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	r, err := s.bucket.Object(s.objectName(key)).NewReader(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil, interfaces.ErrKeyNotFound
		}
		return nil, fmt.Errorf("failed to open object: %w", err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read object: %w", err)
	}
	return data, nil
}

// Set overwrites the object holding a slot
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	w := s.bucket.Object(s.objectName(key)).NewWriter(ctx)
	w.ContentType = "application/json"

	if _, err := w.Write(value); err != nil {
		w.Close()
		return fmt.Errorf("failed to write object: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finalize object: %w", err)
	}
	return nil
}

// Delete removes the object holding a slot; a missing object is not an error
func (s *Store) Delete(ctx context.Context, key string) error {
	err := s.bucket.Object(s.objectName(key)).Delete(ctx)
	if err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}

// Close releases the storage client
func (s *Store) Close() error {
	return s.client.Close()
}
