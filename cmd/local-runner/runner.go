package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"spaceexplorer/internal/charts"
	"spaceexplorer/internal/logger"
	"spaceexplorer/internal/models"
	"spaceexplorer/internal/server"
	"spaceexplorer/internal/storage"
)

// Manifest summarizes one snapshot run
type Manifest struct {
	Timestamp time.Time                   `json:"timestamp"`
	Folder    string                      `json:"folder"`
	Keyword   string                      `json:"keyword,omitempty"`
	Question  string                      `json:"question,omitempty"`
	Files     []string                    `json:"files"`
	Failures  map[string]models.ErrorKind `json:"failures,omitempty"`
	Duration  string                      `json:"duration"`
}

// SnapshotRunner queries each component once and stores the results
type SnapshotRunner struct {
	components *server.Components
	charts     *charts.KpChartGenerator
	store      storage.StorageClient
	now        func() time.Time
	log        *logger.Logger
}

// NewSnapshotRunner creates a runner writing into store
func NewSnapshotRunner(components *server.Components, store storage.StorageClient) *SnapshotRunner {
	return &SnapshotRunner{
		components: components,
		charts:     charts.NewKpChartGenerator(),
		store:      store,
		now:        time.Now,
		log:        logger.WithComponent("local-runner"),
	}
}

// Run takes one snapshot. Component failures are recorded in the manifest;
// only storage failures abort the run.
func (r *SnapshotRunner) Run(ctx context.Context, keyword, question string) (*Manifest, error) {
	start := r.now().UTC()
	m := &Manifest{
		Timestamp: start,
		Folder:    storage.GenerateSnapshotFolderPath(start),
		Keyword:   strings.TrimSpace(keyword),
		Question:  strings.TrimSpace(question),
		Failures:  map[string]models.ErrorKind{},
	}

	r.log.Info("🚀 Starting snapshot", map[string]interface{}{"folder": m.Folder})

	if today, err := r.components.Images.Today(ctx); r.record(m, "today", err) {
		if err := r.storeJSON(ctx, m, "today.json", today); err != nil {
			return m, err
		}
	}

	if m.Keyword != "" {
		if results, err := r.components.Images.Search(ctx, m.Keyword); r.record(m, "search", err) {
			if err := r.storeJSON(ctx, m, "search.json", results); err != nil {
				return m, err
			}
		}
	}

	if recent, err := r.components.Images.Recent(ctx); r.record(m, "recent", err) {
		if err := r.storeJSON(ctx, m, "recent.json", recent); err != nil {
			return m, err
		}
	}

	if snapshot, err := r.components.Weather.Report(ctx); r.record(m, "weather", err) {
		if err := r.storeJSON(ctx, m, "weather.json", snapshot); err != nil {
			return m, err
		}
	}

	if points, err := r.components.Weather.KpHistory(ctx); r.record(m, "kp_history", err) {
		if err := r.storeKpHistory(ctx, m, points); err != nil {
			return m, err
		}
	}

	if m.Question != "" {
		if turn, err := r.components.Chat.Respond(ctx, m.Question); r.record(m, "chat", err) {
			payload := map[string]interface{}{"turn": turn, "message": turn.Message()}
			if err := r.storeJSON(ctx, m, "chat.json", payload); err != nil {
				return m, err
			}
		}
	}

	m.Duration = r.now().UTC().Sub(start).String()
	if err := r.storeJSON(ctx, m, storage.ManifestFile, m); err != nil {
		return m, err
	}

	r.log.Info("🎉 Snapshot completed", map[string]interface{}{
		"folder":   m.Folder,
		"files":    len(m.Files),
		"failures": len(m.Failures),
		"duration": m.Duration,
	})
	return m, nil
}

// record logs a component failure and reports whether the step succeeded
func (r *SnapshotRunner) record(m *Manifest, step string, err error) bool {
	if err == nil {
		return true
	}
	m.Failures[step] = models.KindOf(err)
	r.log.Error("Snapshot step failed", err, map[string]interface{}{"step": step, "kind": models.KindOf(err)})
	return false
}

func (r *SnapshotRunner) storeKpHistory(ctx context.Context, m *Manifest, points []models.KpPoint) error {
	if err := r.storeJSON(ctx, m, "kp_history.json", points); err != nil {
		return err
	}

	var png bytes.Buffer
	if err := r.charts.RenderPNG(&png, points); err != nil {
		r.log.Warn("Skipping Kp PNG chart", map[string]interface{}{"error": err.Error()})
	} else if err := r.save(ctx, m, "kp.png", png.Bytes()); err != nil {
		return err
	}

	var page bytes.Buffer
	if err := r.charts.RenderInteractive(&page, points); err != nil {
		r.log.Warn("Skipping interactive Kp chart", map[string]interface{}{"error": err.Error()})
		return nil
	}
	return r.save(ctx, m, "kp_chart.html", page.Bytes())
}

func (r *SnapshotRunner) storeJSON(ctx context.Context, m *Manifest, filename string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", filename, err)
	}
	return r.save(ctx, m, filename, data)
}

func (r *SnapshotRunner) save(ctx context.Context, m *Manifest, filename string, data []byte) error {
	if filename != storage.ManifestFile {
		m.Files = append(m.Files, filename)
	}
	if err := r.store.StoreFile(ctx, data, filename, m.Timestamp); err != nil {
		return fmt.Errorf("failed to store %s: %w", filename, err)
	}
	r.log.Debug("Stored snapshot file", map[string]interface{}{"file": filename, "bytes": len(data)})
	return nil
}
