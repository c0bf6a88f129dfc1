package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// LocalService implements StagingService on a local directory, for
// deployments without object storage. The bucket parameter becomes a
// subdirectory.
type LocalService struct {
	dir         string
	maxFileSize int64
}

// NewLocalService creates a staging service backed by dir.
func NewLocalService(dir string, maxFileSize int64) (*LocalService, error) {
	if dir == "" {
		dir = "uploads"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir %s: %w", dir, err)
	}
	return &LocalService{dir: dir, maxFileSize: maxFileSize}, nil
}

// EnsureBucketExists creates the bucket subdirectory.
func (s *LocalService) EnsureBucketExists(_ context.Context, bucket string) error {
	if err := os.MkdirAll(filepath.Join(s.dir, bucket), 0o755); err != nil {
		return fmt.Errorf("failed to create bucket dir %s: %w", bucket, err)
	}
	return nil
}

// StoreUpload writes the upload to disk and returns the file key.
func (s *LocalService) StoreUpload(_ context.Context, bucket, fileName, contentType string, data []byte) (string, error) {
	if err := s.ValidateContentType(contentType); err != nil {
		return "", err
	}
	if err := s.ValidateFileSize(int64(len(data))); err != nil {
		return "", err
	}

	key := uuid.New().String() + filepath.Ext(fileName)
	target := filepath.Join(s.dir, bucket, key)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fmt.Errorf("failed to create bucket dir: %w", err)
	}
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write upload %s: %w", key, err)
	}

	return key, nil
}

// Remove deletes a staged file.
func (s *LocalService) Remove(_ context.Context, bucket, key string) error {
	if err := os.Remove(filepath.Join(s.dir, bucket, key)); err != nil {
		return fmt.Errorf("failed to remove upload %s: %w", key, err)
	}
	return nil
}

// ValidateContentType checks if the content type is allowed.
func (s *LocalService) ValidateContentType(contentType string) error {
	return validateContentType(contentType)
}

// ValidateFileSize checks if the file size is within limits.
func (s *LocalService) ValidateFileSize(sizeBytes int64) error {
	return validateFileSize(sizeBytes, s.maxFileSize)
}
