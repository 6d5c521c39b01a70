package repair

import (
	"context"

	domain "github.com/EverGlassServices/rdv-tracker/internal/domain/repair"
	"github.com/EverGlassServices/rdv-tracker/internal/dto"
)

type ListOpen struct {
	repo domain.Repository
}

func NewListOpen(repo domain.Repository) *ListOpen {
	return &ListOpen{repo: repo}
}

// Execute lists every open repair, most recently touched first.
func (uc *ListOpen) Execute(
	ctx context.Context,
) ([]dto.RepairListDTO, error) {

	recs, err := uc.repo.ListOpen(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.RepairListDTO, 0, len(recs))
	for _, rec := range recs {
		out = append(out, dto.RepairListDTO{
			Token:     rec.Token,
			Plate:     rec.Plate,
			Status:    rec.Status,
			CreatedAt: rec.CreatedAt,
			UpdatedAt: rec.UpdatedAt,
		})
	}

	return out, nil
}
