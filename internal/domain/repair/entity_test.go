package repair

import (
	"testing"
	"time"

	"github.com/EverGlassServices/rdv-tracker/internal/httperr"
	"github.com/EverGlassServices/rdv-tracker/internal/models"
)

func TestValidStage(t *testing.T) {
	for v := 0; v <= 3; v++ {
		if !ValidStage(v) {
			t.Fatalf("expected %d valid", v)
		}
	}
	for _, v := range []int{-1, 4, 99} {
		if ValidStage(v) {
			t.Fatalf("expected %d invalid", v)
		}
	}
}

func TestSetStage(t *testing.T) {
	created := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	now := created.Add(time.Hour)

	r := &models.Repair{Status: int(StageReceived), CreatedAt: created, UpdatedAt: created}

	if err := SetStage(r, StageGlassFitted, now); err != nil {
		t.Fatalf("SetStage: %v", err)
	}
	if r.Status != 2 {
		t.Fatalf("expected status 2, got %d", r.Status)
	}
	if !r.UpdatedAt.Equal(now) {
		t.Fatalf("expected updated_at %v, got %v", now, r.UpdatedAt)
	}

	// Moving backward is allowed: any in-range stage is accepted.
	if err := SetStage(r, StageWorkStarted, now.Add(time.Minute)); err != nil {
		t.Fatalf("backward SetStage: %v", err)
	}
	if r.Status != 1 {
		t.Fatalf("expected status 1, got %d", r.Status)
	}
}

func TestSetStageClosed(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	r := &models.Repair{Status: 1, IsClosed: true, UpdatedAt: now}

	err := SetStage(r, StageWorkFinished, now.Add(time.Hour))
	if !httperr.IsBusiness(err, "repair_closed") {
		t.Fatalf("expected repair_closed, got %v", err)
	}
	if r.Status != 1 || !r.UpdatedAt.Equal(now) {
		t.Fatalf("closed repair was mutated: %+v", r)
	}
}

func TestCloseIdempotent(t *testing.T) {
	t0 := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	t1 := t0.Add(time.Hour)

	r := &models.Repair{Status: 3, UpdatedAt: t0}

	Close(r, t0)
	if !r.IsClosed {
		t.Fatalf("expected closed")
	}

	// Closing again succeeds silently and still advances updated_at.
	Close(r, t1)
	if !r.IsClosed || !r.UpdatedAt.Equal(t1) {
		t.Fatalf("second close: %+v", r)
	}
}

func TestStageLabels(t *testing.T) {
	if StageReceived.Label() == "" || StageWorkFinished.Label() == "" {
		t.Fatalf("expected labels for every stage")
	}
	if Stage(42).Label() != "" {
		t.Fatalf("expected empty label for invalid stage")
	}
}
