package repair

import (
	"context"

	"github.com/EverGlassServices/rdv-tracker/internal/cache"
	domain "github.com/EverGlassServices/rdv-tracker/internal/domain/repair"
	"github.com/EverGlassServices/rdv-tracker/internal/dto"
)

type GetStatus struct {
	repo  domain.Repository
	cache *cache.StatusCache
}

func NewGetStatus(
	repo domain.Repository,
	cache *cache.StatusCache,
) *GetStatus {
	return &GetStatus{
		repo:  repo,
		cache: cache,
	}
}

// Execute returns the public projection of an open repair. A closed
// repair answers exactly like a missing one: a dead link reveals
// nothing about prior existence.
func (uc *GetStatus) Execute(
	ctx context.Context,
	tok string,
) (*dto.RepairStatusDTO, error) {

	if d, ok := uc.cache.Get(ctx, tok); ok {
		return d, nil
	}

	rec, err := uc.repo.GetOpenByToken(ctx, tok)
	if err != nil {
		return nil, err
	}

	d := &dto.RepairStatusDTO{
		Token:     rec.Token,
		Plate:     rec.Plate,
		Status:    rec.Status,
		UpdatedAt: rec.UpdatedAt,
	}

	uc.cache.Set(ctx, d)
	return d, nil
}
