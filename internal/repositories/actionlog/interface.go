package actionlog

import (
	"context"

	"github.com/trenirovka/rosterbot/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/trenirovka/rosterbot/internal/repositories/actionlog Repository

// Repository persists the append-only action log. Entries are never
// trimmed, deduplicated or rewritten; a roster reset does not touch them.
type Repository interface {
	// Append adds one entry to the end of the log
	Append(ctx context.Context, entry models.ActionEntry) error

	// List returns all entries in chronological order
	List(ctx context.Context) ([]models.ActionEntry, error)
}
