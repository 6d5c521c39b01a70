package repair

import (
	"time"

	"github.com/EverGlassServices/rdv-tracker/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// SetStage moves an open repair to the given stage. Any valid stage is
// accepted, including an earlier one: a technician correcting a mis-tap
// is allowed to move backward. A closed repair rejects every change.
func SetStage(r *models.Repair, s Stage, now time.Time) error {
	if r.IsClosed {
		return ErrClosed
	}
	if !ValidStage(int(s)) {
		return ErrInvalidStage
	}

	r.Status = int(s)
	r.UpdatedAt = now
	return nil
}

// Close marks a repair as finished. Idempotent: closing an already
// closed repair succeeds and still refreshes updated_at.
func Close(r *models.Repair, now time.Time) {
	r.IsClosed = true
	r.UpdatedAt = now
}
