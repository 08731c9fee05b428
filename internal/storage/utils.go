package storage

import (
	"fmt"
	"time"
)

// GenerateSnapshotFolderPath generates a consistent folder path for snapshots
// Format: YYYY/MM/DD/SpaceSnapshot-YYYY-MM-DD-HH-MM-SS
func GenerateSnapshotFolderPath(timestamp time.Time) string {
	t := timestamp.UTC()
	return fmt.Sprintf("%04d/%02d/%02d/SpaceSnapshot-%04d-%02d-%02d-%02d-%02d-%02d",
		t.Year(), t.Month(), t.Day(),
		t.Year(), t.Month(), t.Day(),
		t.Hour(), t.Minute(), t.Second())
}
