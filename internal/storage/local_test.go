package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewLocalStorageClient(t *testing.T) {
	baseDir := filepath.Join(t.TempDir(), "nested", "snapshots")

	client, err := NewLocalStorageClient(baseDir)
	if err != nil {
		t.Fatalf("Failed to create LocalStorageClient: %v", err)
	}
	defer client.Close()

	if info, err := os.Stat(baseDir); err != nil || !info.IsDir() {
		t.Errorf("Expected base directory %s to be created", baseDir)
	}
}

func TestLocalStorageClient_StoreAndGetFile(t *testing.T) {
	client, err := NewLocalStorageClient(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create LocalStorageClient: %v", err)
	}
	ctx := context.Background()
	ts := time.Date(2025, 2, 9, 20, 0, 0, 0, time.UTC)

	data := []byte(`{"title":"Orion Nebula"}`)
	if err := client.StoreFile(ctx, data, "today.json", ts); err != nil {
		t.Fatalf("StoreFile() error = %v", err)
	}

	expectedPath := filepath.Join(client.SnapshotDir(ts), "today.json")
	if _, err := os.Stat(expectedPath); err != nil {
		t.Errorf("Expected file at %s: %v", expectedPath, err)
	}

	got, err := client.GetFile(ctx, GenerateSnapshotFolderPath(ts)+"/today.json")
	if err != nil {
		t.Fatalf("GetFile() error = %v", err)
	}
	if string(got) != string(data) {
		t.Errorf("GetFile() = %q, want %q", got, data)
	}
}

func TestLocalStorageClient_RejectsUnsafeNames(t *testing.T) {
	client, err := NewLocalStorageClient(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create LocalStorageClient: %v", err)
	}
	ctx := context.Background()
	ts := time.Now()

	for _, name := range []string{"", "..", "../escape.json", "sub/file.json", `sub\file.json`} {
		if err := client.StoreFile(ctx, []byte("x"), name, ts); err == nil {
			t.Errorf("Expected StoreFile to reject %q", name)
		}
	}

	if _, err := client.GetFile(ctx, "../outside.txt"); err == nil {
		t.Error("Expected GetFile to reject a path outside the root")
	}
}

func TestLocalStorageClient_CancelledContext(t *testing.T) {
	client, err := NewLocalStorageClient(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create LocalStorageClient: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := client.StoreFile(ctx, []byte("x"), "a.json", time.Now()); err == nil {
		t.Error("Expected StoreFile to fail with a cancelled context")
	}
}

func TestLocalStorageClient_ListSnapshots(t *testing.T) {
	client, err := NewLocalStorageClient(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create LocalStorageClient: %v", err)
	}
	ctx := context.Background()

	older := time.Date(2025, 2, 8, 10, 0, 0, 0, time.UTC)
	newer := time.Date(2025, 2, 9, 10, 0, 0, 0, time.UTC)
	incomplete := time.Date(2025, 2, 10, 10, 0, 0, 0, time.UTC)

	for _, ts := range []time.Time{older, newer} {
		if err := client.StoreFile(ctx, []byte("{}"), ManifestFile, ts); err != nil {
			t.Fatalf("StoreFile() error = %v", err)
		}
	}
	if err := client.StoreFile(ctx, []byte("{}"), "weather.json", incomplete); err != nil {
		t.Fatalf("StoreFile() error = %v", err)
	}

	folders, err := client.ListSnapshots(ctx, 0)
	if err != nil {
		t.Fatalf("ListSnapshots() error = %v", err)
	}
	if len(folders) != 2 {
		t.Fatalf("Expected 2 snapshots, got %d: %v", len(folders), folders)
	}
	if folders[0] != GenerateSnapshotFolderPath(newer) {
		t.Errorf("Expected newest snapshot first, got %v", folders)
	}

	limited, err := client.ListSnapshots(ctx, 1)
	if err != nil {
		t.Fatalf("ListSnapshots() error = %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("Expected limit to apply, got %v", limited)
	}
}

func TestLocalStorageClient_ImplementsInterface(t *testing.T) {
	var _ StorageClient = (*LocalStorageClient)(nil)
}
