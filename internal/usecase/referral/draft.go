package referral

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	domain "github.com/ThriveAssessments/case-manager/internal/domain/referral"
	"github.com/ThriveAssessments/case-manager/internal/httperr"
)

// ======================================================
// INPUT
// ======================================================

type UpdateDraftInput struct {
	// Empty DraftID starts a new draft.
	DraftID string

	Step string // claimant | insurance | legal | examination

	Claimant    *domain.ClaimantStep
	Insurance   *domain.InsuranceStep
	Legal       *domain.LegalStep
	Examination *domain.ExaminationStep
}

// ======================================================
// USE CASE
// ======================================================

// DraftWizard applies step inputs to the serializable draft state through the
// pure reducers and keeps the result in the draft store.
type DraftWizard struct {
	store domain.DraftStore
	ttl   time.Duration
}

func NewDraftWizard(store domain.DraftStore, ttl time.Duration) *DraftWizard {
	return &DraftWizard{store: store, ttl: ttl}
}

func (uc *DraftWizard) Update(
	ctx context.Context,
	in UpdateDraftInput,
) (string, domain.DraftState, error) {

	id := in.DraftID
	var state domain.DraftState

	if id == "" {
		id = uuid.NewString()
	} else {
		loaded, err := uc.store.Get(ctx, id)
		if errors.Is(err, domain.ErrDraftNotFound) {
			return "", domain.DraftState{}, httperr.ErrBusiness("draft_not_found")
		}
		if err != nil {
			return "", domain.DraftState{}, err
		}
		state = loaded
		state.Hydrated = true
	}

	switch in.Step {
	case "claimant":
		if in.Claimant == nil {
			return "", domain.DraftState{}, httperr.ErrBusiness("invalid_step_payload")
		}
		state = domain.ApplyClaimant(state, *in.Claimant)
	case "insurance":
		if in.Insurance == nil {
			return "", domain.DraftState{}, httperr.ErrBusiness("invalid_step_payload")
		}
		state = domain.ApplyInsurance(state, *in.Insurance)
	case "legal":
		if in.Legal == nil {
			return "", domain.DraftState{}, httperr.ErrBusiness("invalid_step_payload")
		}
		state = domain.ApplyLegal(state, *in.Legal)
	case "examination":
		if in.Examination == nil {
			return "", domain.DraftState{}, httperr.ErrBusiness("invalid_step_payload")
		}
		state = domain.ApplyExamination(state, *in.Examination)
	default:
		return "", domain.DraftState{}, httperr.ErrBusiness("unknown_step")
	}

	if err := uc.store.Save(ctx, id, state, uc.ttl); err != nil {
		return "", domain.DraftState{}, err
	}

	return id, state, nil
}

func (uc *DraftWizard) Get(
	ctx context.Context,
	id string,
) (domain.DraftState, error) {

	state, err := uc.store.Get(ctx, id)
	if errors.Is(err, domain.ErrDraftNotFound) {
		return domain.DraftState{}, httperr.ErrBusiness("draft_not_found")
	}
	if err != nil {
		return domain.DraftState{}, err
	}

	state.Hydrated = true
	return state, nil
}
