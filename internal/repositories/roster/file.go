package roster

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/trenirovka/rosterbot/internal/models"
)

// FileConfig holds configuration for the file-backed roster repository.
type FileConfig struct {
	// Path is the location of the roster data file
	Path string
}

// fileRepository implements the Repository interface on a single JSON file.
type fileRepository struct {
	path string
}

// NewFile creates a new file-backed roster repository.
func NewFile(cfg *FileConfig) (*fileRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Path == "" {
		return nil, errors.New("file path cannot be empty")
	}

	return &fileRepository{
		path: cfg.Path,
	}, nil
}

// Load reads the roster file. A missing file is replaced with a fresh
// empty one; unreadable or corrupt content falls back to empty defaults.
func (r *fileRepository) Load(ctx context.Context) (*models.Roster, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Printf("Roster file %s not found, creating a new one", r.path)
			empty := models.NewRoster()
			if saveErr := r.Save(ctx, empty); saveErr != nil {
				log.Printf("Failed to create roster file %s: %v", r.path, saveErr)
			}
			return empty, nil
		}

		log.Printf("Failed to read roster file %s: %v, falling back to empty state", r.path, err)
		return models.NewRoster(), nil
	}

	if len(bytes.TrimSpace(data)) == 0 {
		log.Printf("Roster file %s is empty, falling back to empty state", r.path)
		return models.NewRoster(), nil
	}

	var s snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		log.Printf("Roster file %s is corrupt: %v, falling back to empty state", r.path, err)
		return models.NewRoster(), nil
	}

	return s.toRoster(), nil
}

// Save writes the full roster snapshot to the file.
func (r *fileRepository) Save(ctx context.Context, roster *models.Roster) error {
	if roster == nil {
		return errors.New("roster cannot be nil")
	}

	data, err := json.MarshalIndent(toSnapshot(roster), "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal roster: %w", err)
	}

	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write roster file: %w", err)
	}

	return nil
}
