package referral

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ThriveAssessments/case-manager/internal/audit"
	domain "github.com/ThriveAssessments/case-manager/internal/domain/referral"
	"github.com/ThriveAssessments/case-manager/internal/httperr"
	"github.com/ThriveAssessments/case-manager/internal/models"
	"github.com/ThriveAssessments/case-manager/internal/notify"
)

// ======================================================
// FAKES
// ======================================================

type fakeStore struct {
	drafts map[string]domain.DraftState
}

var _ domain.DraftStore = (*fakeStore)(nil)

func newFakeStore() *fakeStore {
	return &fakeStore{drafts: map[string]domain.DraftState{}}
}

func (s *fakeStore) Save(_ context.Context, id string, state domain.DraftState, _ time.Duration) error {
	s.drafts[id] = state
	return nil
}

func (s *fakeStore) Get(_ context.Context, id string) (domain.DraftState, error) {
	state, ok := s.drafts[id]
	if !ok {
		return domain.DraftState{}, domain.ErrDraftNotFound
	}
	return state, nil
}

func (s *fakeStore) Delete(_ context.Context, id string) error {
	delete(s.drafts, id)
	return nil
}

type fakeRepo struct {
	submitted *domain.DraftState
}

var _ domain.Repository = (*fakeRepo)(nil)

func (r *fakeRepo) SubmitDraft(
	_ context.Context,
	organizationID uint,
	state domain.DraftState,
) (*models.Referral, error) {
	r.submitted = &state
	ref := &models.Referral{
		OrganizationID: organizationID,
		Status:         "submitted",
	}
	ref.ID = 1
	return ref, nil
}

func (r *fakeRepo) GetReferral(_ context.Context, _ uint, _ uint) (*models.Referral, error) {
	return nil, nil
}

func (r *fakeRepo) ListReferrals(_ context.Context, _ uint, _ string) ([]models.Referral, error) {
	return nil, nil
}

func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(nil))
}

// ======================================================
// DRAFT WIZARD
// ======================================================

func TestWizardUpdate_StartsNewDraft(t *testing.T) {
	store := newFakeStore()
	wizard := NewDraftWizard(store, time.Hour)

	id, state, err := wizard.Update(context.Background(), UpdateDraftInput{
		Step:     "claimant",
		Claimant: &domain.ClaimantStep{Name: "Jordan Miles", Phone: "416-555-0101"},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, id)
	assert.True(t, state.Claimant.Done)
	assert.Contains(t, store.drafts, id)
}

func TestWizardUpdate_UnknownDraft(t *testing.T) {
	wizard := NewDraftWizard(newFakeStore(), time.Hour)

	_, _, err := wizard.Update(context.Background(), UpdateDraftInput{
		DraftID:  "missing",
		Step:     "claimant",
		Claimant: &domain.ClaimantStep{Name: "Jordan Miles"},
	})

	assert.True(t, httperr.IsBusiness(err, "draft_not_found"))
}

func TestWizardUpdate_PayloadMustMatchStep(t *testing.T) {
	wizard := NewDraftWizard(newFakeStore(), time.Hour)

	_, _, err := wizard.Update(context.Background(), UpdateDraftInput{
		Step:      "claimant",
		Insurance: &domain.InsuranceStep{Company: "Maple Mutual"},
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_step_payload"))

	_, _, err = wizard.Update(context.Background(), UpdateDraftInput{
		Step:     "shipping",
		Claimant: &domain.ClaimantStep{Name: "Jordan Miles"},
	})
	assert.True(t, httperr.IsBusiness(err, "unknown_step"))
}

func TestWizardUpdate_AccumulatesSteps(t *testing.T) {
	store := newFakeStore()
	wizard := NewDraftWizard(store, time.Hour)
	ctx := context.Background()

	id, _, err := wizard.Update(ctx, UpdateDraftInput{
		Step:     "claimant",
		Claimant: &domain.ClaimantStep{Name: "Jordan Miles", Phone: "416-555-0101"},
	})
	require.NoError(t, err)

	_, state, err := wizard.Update(ctx, UpdateDraftInput{
		DraftID:   id,
		Step:      "insurance",
		Insurance: &domain.InsuranceStep{Company: "Maple Mutual"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Jordan Miles", state.Claimant.Name)
	assert.Equal(t, "Maple Mutual", state.Insurance.Company)
	assert.True(t, state.Hydrated)
}

func TestWizardGet_MarksHydrated(t *testing.T) {
	store := newFakeStore()
	store.drafts["d1"] = domain.DraftState{}

	wizard := NewDraftWizard(store, time.Hour)

	state, err := wizard.Get(context.Background(), "d1")
	require.NoError(t, err)
	assert.True(t, state.Hydrated)

	_, err = wizard.Get(context.Background(), "gone")
	assert.True(t, httperr.IsBusiness(err, "draft_not_found"))
}

// ======================================================
// SUBMIT
// ======================================================

func completeDraft() domain.DraftState {
	s := domain.DraftState{}
	s = domain.ApplyClaimant(s, domain.ClaimantStep{Name: "Jordan Miles", Phone: "416-555-0101"})
	s = domain.ApplyInsurance(s, domain.InsuranceStep{Company: "Maple Mutual"})
	s = domain.ApplyLegal(s, domain.LegalStep{LawFirm: "Harper & Quinn LLP"})
	s = domain.ApplyExamination(s, domain.ExaminationStep{ExamTypeID: 3})
	return s
}

func TestSubmitReferral_DeletesDraft(t *testing.T) {
	store := newFakeStore()
	store.drafts["d1"] = completeDraft()
	repo := &fakeRepo{}

	uc := NewSubmitReferral(repo, store, testDispatcher(), notify.NewLogNotifier())

	ref, err := uc.Execute(context.Background(), 1, nil, "d1")
	require.NoError(t, err)

	assert.Equal(t, "submitted", ref.Status)
	assert.NotContains(t, store.drafts, "d1")
	require.NotNil(t, repo.submitted)
	assert.Equal(t, "Jordan Miles", repo.submitted.Claimant.Name)
}

func TestSubmitReferral_IncompleteDraft(t *testing.T) {
	store := newFakeStore()
	incomplete := domain.ApplyClaimant(domain.DraftState{}, domain.ClaimantStep{Name: "Jordan Miles"})
	store.drafts["d1"] = incomplete
	repo := &fakeRepo{}

	uc := NewSubmitReferral(repo, store, testDispatcher(), notify.NewLogNotifier())

	_, err := uc.Execute(context.Background(), 1, nil, "d1")

	assert.True(t, httperr.IsBusiness(err, "draft_incomplete"))
	assert.Nil(t, repo.submitted)
	assert.Contains(t, store.drafts, "d1")
}

func TestSubmitReferral_MissingDraft(t *testing.T) {
	uc := NewSubmitReferral(&fakeRepo{}, newFakeStore(), testDispatcher(), notify.NewLogNotifier())

	_, err := uc.Execute(context.Background(), 1, nil, "gone")
	assert.True(t, httperr.IsBusiness(err, "draft_not_found"))
}
