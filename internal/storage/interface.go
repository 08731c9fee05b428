package storage

import (
	"context"
	"time"
)

// StorageClient defines the storage operations used for explorer snapshots
type StorageClient interface {
	// Close closes the storage client
	Close() error

	// StoreFile stores a file inside the snapshot folder for timestamp
	StoreFile(ctx context.Context, fileData []byte, filename string, timestamp time.Time) error

	// GetFile retrieves a file by its path relative to the storage root
	GetFile(ctx context.Context, filePath string) ([]byte, error)

	// ListSnapshots lists snapshot folders, newest first
	ListSnapshots(ctx context.Context, limit int) ([]string, error)
}
