package repair

import (
	"context"

	"github.com/EverGlassServices/rdv-tracker/internal/cache"
	"github.com/EverGlassServices/rdv-tracker/internal/clock"
	domain "github.com/EverGlassServices/rdv-tracker/internal/domain/repair"
	"github.com/EverGlassServices/rdv-tracker/internal/models"
)

type CloseRepair struct {
	repo  domain.Repository
	cache *cache.StatusCache
}

func NewCloseRepair(
	repo domain.Repository,
	cache *cache.StatusCache,
) *CloseRepair {
	return &CloseRepair{
		repo:  repo,
		cache: cache,
	}
}

// Execute closes a repair. Only an unknown token fails; closing an
// already closed repair succeeds again and still advances updated_at.
func (uc *CloseRepair) Execute(
	ctx context.Context,
	tok string,
) (*models.Repair, error) {

	rec, err := uc.repo.MutateRepair(ctx, tok, func(r *models.Repair) error {
		domain.Close(r, clock.UTCNow())
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, tok)
	return rec, nil
}
