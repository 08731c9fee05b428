package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// ManifestFile marks a completed snapshot folder
const ManifestFile = "manifest.json"

// LocalStorageClient handles local file system storage operations
type LocalStorageClient struct {
	baseDir string
}

// NewLocalStorageClient creates a new local storage client rooted at baseDir
func NewLocalStorageClient(baseDir string) (*LocalStorageClient, error) {
	if baseDir == "" {
		baseDir = "snapshots"
	}
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create base directory %s: %w", baseDir, err)
	}

	return &LocalStorageClient{
		baseDir: baseDir,
	}, nil
}

// Close is a no-op for local storage
func (l *LocalStorageClient) Close() error {
	return nil
}

// SnapshotDir returns the folder used for timestamp
func (l *LocalStorageClient) SnapshotDir(timestamp time.Time) string {
	return filepath.Join(l.baseDir, GenerateSnapshotFolderPath(timestamp))
}

// StoreFile writes fileData as filename inside the snapshot folder for timestamp
func (l *LocalStorageClient) StoreFile(ctx context.Context, fileData []byte, filename string, timestamp time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !validFilename(filename) {
		return fmt.Errorf("invalid snapshot file name %q", filename)
	}

	dir := l.SnapshotDir(timestamp)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	filePath := filepath.Join(dir, filename)
	if err := os.WriteFile(filePath, fileData, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filePath, err)
	}

	return nil
}

// GetFile reads a file by its path relative to the storage root
func (l *LocalStorageClient) GetFile(ctx context.Context, filePath string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	clean := filepath.Clean(filePath)
	if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return nil, fmt.Errorf("path %q escapes the storage root", filePath)
	}

	data, err := os.ReadFile(filepath.Join(l.baseDir, clean))
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filePath, err)
	}
	return data, nil
}

// ListSnapshots lists folders holding a manifest, newest first
func (l *LocalStorageClient) ListSnapshots(ctx context.Context, limit int) ([]string, error) {
	var folders []string

	err := filepath.WalkDir(l.baseDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil // Skip unreadable entries
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if !d.IsDir() && d.Name() == ManifestFile {
			rel, relErr := filepath.Rel(l.baseDir, filepath.Dir(path))
			if relErr == nil {
				folders = append(folders, filepath.ToSlash(rel))
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk snapshot directory: %w", err)
	}

	// Folder names sort chronologically
	sort.Sort(sort.Reverse(sort.StringSlice(folders)))

	if limit > 0 && limit < len(folders) {
		folders = folders[:limit]
	}

	return folders, nil
}

func validFilename(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`)
}
