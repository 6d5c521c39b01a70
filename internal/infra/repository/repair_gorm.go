package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/EverGlassServices/rdv-tracker/internal/domain/repair"
	"github.com/EverGlassServices/rdv-tracker/internal/httperr"
	"github.com/EverGlassServices/rdv-tracker/internal/models"
)

type RepairGormRepository struct {
	db *gorm.DB
}

func NewRepairGormRepository(db *gorm.DB) *RepairGormRepository {
	return &RepairGormRepository{db: db}
}

// --------------------------------------------------
// Create
// --------------------------------------------------

func (r *RepairGormRepository) CreateRepair(
	ctx context.Context,
	rec *models.Repair,
) error {

	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			// 256-bit tokens make this vanishingly rare; never overwrite.
			return domain.ErrTokenCollision
		}
		return err
	}
	return nil
}

// --------------------------------------------------
// Reads
// --------------------------------------------------

func (r *RepairGormRepository) GetOpenByToken(
	ctx context.Context,
	token string,
) (*models.Repair, error) {

	var rec models.Repair
	if err := r.db.WithContext(ctx).
		Where("token = ? AND is_closed = false", token).
		First(&rec).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (r *RepairGormRepository) ListOpen(
	ctx context.Context,
) ([]models.Repair, error) {

	var recs []models.Repair
	if err := r.db.WithContext(ctx).
		Where("is_closed = false").
		Order("updated_at DESC").
		Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

// --------------------------------------------------
// Mutation (row-locked read-modify-write)
// --------------------------------------------------

func (r *RepairGormRepository) MutateRepair(
	ctx context.Context,
	token string,
	fn func(*models.Repair) error,
) (*models.Repair, error) {

	var rec models.Repair

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("token = ?", token).
			First(&rec).Error; err != nil {

			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}

		if err := fn(&rec); err != nil {
			return err
		}

		return tx.Save(&rec).Error
	})

	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Compile-time check
var _ domain.Repository = (*RepairGormRepository)(nil)
