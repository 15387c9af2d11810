package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pmla-casebook/internal/registry"
)

// DefaultPath is where ingestion writes the consolidated snapshot and where
// the explorer and dashboard look for it.
const DefaultPath = "master_cases.json"

// Save writes the snapshot as indented JSON. The write goes through a temp
// file and rename so a crashing run never leaves a half-written snapshot for
// the dashboard to choke on.
func Save(path string, snap registry.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}
	return nil
}

// Load reads a previously saved snapshot.
func Load(path string) (registry.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var snap registry.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot %s: %w", path, err)
	}
	return snap, nil
}
