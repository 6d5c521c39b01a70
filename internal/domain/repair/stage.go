package repair

import "github.com/EverGlassServices/rdv-tracker/internal/httperr"

// ===============================
// Repair Stages
// ===============================

// Stage is the position in the fixed repair sequence.
type Stage int

const (
	StageReceived     Stage = 0 // vehicle received
	StageWorkStarted  Stage = 1
	StageGlassFitted  Stage = 2 // windshield in place
	StageWorkFinished Stage = 3
)

var labels = map[Stage]string{
	StageReceived:     "RÉCEPTION VÉHICULE",
	StageWorkStarted:  "DÉBUT DES TRAVAUX",
	StageGlassFitted:  "PARE BRISE POSE",
	StageWorkFinished: "FIN DES TRAVAUX",
}

// Label returns the display name of a stage, or "" for an invalid one.
func (s Stage) Label() string {
	return labels[s]
}

// ValidStage reports whether v denotes one of the four stages.
func ValidStage(v int) bool {
	return v >= int(StageReceived) && v <= int(StageWorkFinished)
}

// ===============================
// Errors
// ===============================

var (
	ErrInvalidStage   = httperr.ErrBusiness("invalid_status")
	ErrNotFound       = httperr.ErrBusiness("repair_not_found")
	ErrClosed         = httperr.ErrBusiness("repair_closed")
	ErrTokenCollision = httperr.ErrBusiness("token_collision")
)

// InitialStage is the stage every repair starts in.
func InitialStage() Stage {
	return StageReceived
}
