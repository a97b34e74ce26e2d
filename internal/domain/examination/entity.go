package examination

import (
	"time"

	"github.com/ThriveAssessments/case-manager/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Cancel(ex *models.Examination, now time.Time) error {
	if err := CanCancel(Status(ex.Status)); err != nil {
		return err
	}

	ex.Status = string(StatusCancelled)
	ex.CancelledAt = &now
	return nil
}

func Complete(ex *models.Examination, now time.Time) error {
	if err := CanComplete(Status(ex.Status)); err != nil {
		return err
	}

	ex.Status = string(StatusCompleted)
	ex.CompletedAt = &now
	return nil
}
