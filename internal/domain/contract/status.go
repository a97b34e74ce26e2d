package contract

import "github.com/ThriveAssessments/case-manager/internal/httperr"

// ===============================
// Contract Status
// ===============================

type Status string

// Contracts are born awaiting signature; drafting happens on the referral
// wizard side, not here.
const (
	StatusPendingSignature Status = "pending_signature"
	StatusSigned           Status = "signed"
	StatusReviewed         Status = "reviewed"
)

// CanSign defines whether a contract can receive a signature.
func CanSign(current Status) error {
	if current != StatusPendingSignature {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanReview defines whether a contract can enter the review stage.
func CanReview(current Status) error {
	if current != StatusSigned {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusPendingSignature
}
