package referral

import (
	"context"

	"github.com/ThriveAssessments/case-manager/internal/models"
)

type Repository interface {
	// SubmitDraft persists a completed draft atomically: the claimant row is
	// found by phone or created, then the referral row is created, all inside
	// one transaction.
	SubmitDraft(
		ctx context.Context,
		organizationID uint,
		state DraftState,
	) (*models.Referral, error)

	GetReferral(
		ctx context.Context,
		organizationID uint,
		referralID uint,
	) (*models.Referral, error)

	ListReferrals(
		ctx context.Context,
		organizationID uint,
		status string,
	) ([]models.Referral, error)
}
