package contract

import (
	"time"

	"github.com/ThriveAssessments/case-manager/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Sign(ct *models.Contract, signerName string, now time.Time) error {
	if err := CanSign(Status(ct.Status)); err != nil {
		return err
	}

	ct.Status = string(StatusSigned)
	ct.SignerName = signerName
	ct.SignedAt = &now
	return nil
}

func Review(ct *models.Contract, now time.Time) error {
	if err := CanReview(Status(ct.Status)); err != nil {
		return err
	}

	ct.Status = string(StatusReviewed)
	ct.ReviewDate = &now
	return nil
}
