package repair

import (
	"context"

	"github.com/EverGlassServices/rdv-tracker/internal/cache"
	"github.com/EverGlassServices/rdv-tracker/internal/clock"
	domain "github.com/EverGlassServices/rdv-tracker/internal/domain/repair"
	"github.com/EverGlassServices/rdv-tracker/internal/models"
)

type UpdateStage struct {
	repo  domain.Repository
	cache *cache.StatusCache
}

func NewUpdateStage(
	repo domain.Repository,
	cache *cache.StatusCache,
) *UpdateStage {
	return &UpdateStage{
		repo:  repo,
		cache: cache,
	}
}

func (uc *UpdateStage) Execute(
	ctx context.Context,
	tok string,
	status int,
) (*models.Repair, error) {

	// Range is checked before the lookup: an out-of-range status on an
	// unknown token fails validation, not not-found.
	if !domain.ValidStage(status) {
		return nil, domain.ErrInvalidStage
	}

	rec, err := uc.repo.MutateRepair(ctx, tok, func(r *models.Repair) error {
		return domain.SetStage(r, domain.Stage(status), clock.UTCNow())
	})
	if err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, tok)
	return rec, nil
}
