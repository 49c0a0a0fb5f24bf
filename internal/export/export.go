// Package export writes the end-of-wizard snapshot to disk.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/copyforge/copyforge/internal/api"
)

// Snapshot is the exported bundle: everything the user entered plus the
// generated week.
type Snapshot struct {
	Brand    any                   `json:"brand"`
	Campaign any                   `json:"campaign"`
	Results  *api.GenerationResult `json:"results"`
}

// Filename derives the deterministic export name from the brand name and a
// date: lowercased, whitespace collapsed to single dashes.
func Filename(brandName string, day time.Time) string {
	slug := strings.Join(strings.Fields(strings.ToLower(brandName)), "-")
	if slug == "" {
		slug = "campaign"
	}
	return fmt.Sprintf("%s-posts-%s.json", slug, day.Format("2006-01-02"))
}

// Write serializes the snapshot into dir and returns the written path.
func Write(dir string, brandName string, snap Snapshot) (string, error) {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", fmt.Errorf("export: %w", err)
	}
	path := filepath.Join(dir, Filename(brandName, time.Now()))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("export: %w", err)
	}
	return path, nil
}
