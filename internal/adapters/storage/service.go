// Package storage stages uploaded label images for the duration of one
// analysis request. Staged objects are request-scoped: the orchestrator
// removes them on every exit path.
package storage

import "context"

// StagingService defines the interface for request-scoped upload staging.
type StagingService interface {
	// EnsureBucketExists creates the bucket if it doesn't exist.
	EnsureBucketExists(ctx context.Context, bucket string) error

	// StoreUpload writes the upload and returns the object key.
	StoreUpload(ctx context.Context, bucket, fileName, contentType string, data []byte) (string, error)

	// Remove deletes a staged object.
	Remove(ctx context.Context, bucket, key string) error

	// ValidateContentType checks if the content type is allowed.
	ValidateContentType(contentType string) error

	// ValidateFileSize checks if the file size is within limits.
	ValidateFileSize(sizeBytes int64) error
}

// Config defines the configuration interface for MinIO staging.
type Config interface {
	GetMinIOEndpoint() string
	GetMinIOAccessKey() string
	GetMinIOSecretKey() string
	GetMinIOUseSSL() bool
	GetMaxUploadBytes() int64
	IsMinIOEnabled() bool
}
