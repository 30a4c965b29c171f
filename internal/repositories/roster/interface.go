package roster

import (
	"context"

	"github.com/trenirovka/rosterbot/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/trenirovka/rosterbot/internal/repositories/roster Repository

// Repository persists the roster snapshot.
//
// Load is expected to recover from missing or corrupt storage by returning
// an empty roster; storage problems at load time are an operator-log
// concern, never fatal.
type Repository interface {
	// Load retrieves the persisted roster, or an empty one if nothing
	// usable is stored
	Load(ctx context.Context) (*models.Roster, error)

	// Save persists the full roster snapshot
	Save(ctx context.Context, roster *models.Roster) error
}
