package actionlog

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

// FileConfig holds configuration for the file-backed action log.
type FileConfig struct {
	// Path is the location of the action log file
	Path string
}

// fileRepository implements the Repository interface on a single JSON
// array file, rewritten in full on each append.
type fileRepository struct {
	path string
}

// NewFile creates a new file-backed action log repository.
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

// Append reads the current log, appends the entry and rewrites the file.
func (r *fileRepository) Append(ctx context.Context, entry models.ActionEntry) error {
	records := r.readRecords()
	records = append(records, toRecord(entry))

	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal action log: %w", err)
	}

	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write action log file: %w", err)
	}

	return nil
}

// List returns all logged entries in file order.
func (r *fileRepository) List(ctx context.Context) ([]models.ActionEntry, error) {
	records := r.readRecords()

	entries := make([]models.ActionEntry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, rec.toEntry())
	}

	return entries, nil
}

// readRecords loads the persisted log, tolerating a missing, empty or
// corrupt file by starting over with an empty one.
func (r *fileRepository) readRecords() []record {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("Failed to read action log file %s: %v, starting an empty log", r.path, err)
		}
		return []record{}
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return []record{}
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		log.Printf("Action log file %s is corrupt: %v, starting an empty log", r.path, err)
		return []record{}
	}

	return records
}
