package referral

import (
	"context"
	"errors"
	"time"

	"github.com/ThriveAssessments/case-manager/internal/audit"
	domain "github.com/ThriveAssessments/case-manager/internal/domain/referral"
	"github.com/ThriveAssessments/case-manager/internal/httperr"
	"github.com/ThriveAssessments/case-manager/internal/models"
	"github.com/ThriveAssessments/case-manager/internal/notify"
)

// Matches the transaction budget of the original intake flow.
const submitTimeout = 60 * time.Second

// ======================================================
// USE CASE
// ======================================================

type SubmitReferral struct {
	repo     domain.Repository
	store    domain.DraftStore
	audit    *audit.Dispatcher
	notifier notify.Notifier
}

func NewSubmitReferral(
	repo domain.Repository,
	store domain.DraftStore,
	audit *audit.Dispatcher,
	notifier notify.Notifier,
) *SubmitReferral {
	return &SubmitReferral{
		repo:     repo,
		store:    store,
		audit:    audit,
		notifier: notifier,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *SubmitReferral) Execute(
	ctx context.Context,
	organizationID uint,
	userID *uint,
	draftID string,
) (*models.Referral, error) {

	state, err := uc.store.Get(ctx, draftID)
	if errors.Is(err, domain.ErrDraftNotFound) {
		return nil, httperr.ErrBusiness("draft_not_found")
	}
	if err != nil {
		return nil, err
	}

	if !state.Complete() {
		return nil, httperr.ErrBusiness("draft_incomplete")
	}

	txCtx, cancel := context.WithTimeout(ctx, submitTimeout)
	defer cancel()

	ref, err := uc.repo.SubmitDraft(txCtx, organizationID, state)
	if err != nil {
		return nil, err
	}

	// The draft is spent; expiry would clean it up anyway.
	_ = uc.store.Delete(ctx, draftID)

	uc.audit.Dispatch(audit.Event{
		OrganizationID: organizationID,
		UserID:         userID,
		Action:         "referral_submitted",
		Entity:         "referral",
		EntityID:       &ref.ID,
	})

	uc.notifier.ReferralSubmitted(ctx, ref)

	return ref, nil
}
