package examination

import "github.com/ThriveAssessments/case-manager/internal/httperr"

// ===============================
// Examination Status
// ===============================

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// CanCancel defines whether an examination can be cancelled.
func CanCancel(current Status) error {
	if current != StatusScheduled {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanComplete defines whether an examination can be marked completed.
func CanComplete(current Status) error {
	if current != StatusScheduled {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusScheduled
}
