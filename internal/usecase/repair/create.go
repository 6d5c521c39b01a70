package repair

import (
	"context"

	"github.com/EverGlassServices/rdv-tracker/internal/clock"
	domain "github.com/EverGlassServices/rdv-tracker/internal/domain/repair"
	"github.com/EverGlassServices/rdv-tracker/internal/models"
	"github.com/EverGlassServices/rdv-tracker/internal/plate"
	"github.com/EverGlassServices/rdv-tracker/internal/token"
)

type CreateRepair struct {
	repo domain.Repository
}

func NewCreateRepair(repo domain.Repository) *CreateRepair {
	return &CreateRepair{repo: repo}
}

func (uc *CreateRepair) Execute(
	ctx context.Context,
	rawPlate string,
) (*models.Repair, error) {

	tok, err := token.New()
	if err != nil {
		return nil, err
	}

	now := clock.UTCNow()
	rec := &models.Repair{
		Token:     tok,
		Plate:     plate.Normalize(rawPlate),
		Status:    int(domain.InitialStage()),
		IsClosed:  false,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.repo.CreateRepair(ctx, rec); err != nil {
		return nil, err
	}

	return rec, nil
}
