package repair

import (
	"context"

	"github.com/EverGlassServices/rdv-tracker/internal/models"
)

type Repository interface {
	// -------- Create --------
	CreateRepair(
		ctx context.Context,
		r *models.Repair,
	) error

	// -------- Reads --------

	// GetOpenByToken returns the repair only if it exists and is open.
	// A closed repair is ErrNotFound: closure and absence must be
	// indistinguishable to public readers.
	GetOpenByToken(
		ctx context.Context,
		token string,
	) (*models.Repair, error)

	ListOpen(
		ctx context.Context,
	) ([]models.Repair, error)

	// -------- Mutation --------

	// MutateRepair loads the row under an exclusive lock, applies fn and
	// persists the result in one transaction. A close that committed
	// first is therefore always observed by a concurrent update.
	MutateRepair(
		ctx context.Context,
		token string,
		fn func(*models.Repair) error,
	) (*models.Repair, error)
}
