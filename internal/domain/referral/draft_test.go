package referral

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyClaimant_PureAndMarksDone(t *testing.T) {
	original := DraftState{}

	next := ApplyClaimant(original, ClaimantStep{
		Name:  "Jordan Miles",
		Phone: "416-555-0101",
	})

	assert.True(t, next.Claimant.Done)
	assert.Equal(t, "Jordan Miles", next.Claimant.Name)

	// The input state is a value; the reducer must not have touched it.
	assert.False(t, original.Claimant.Done)
	assert.Empty(t, original.Claimant.Name)
}

func TestReducers_PreserveOtherSteps(t *testing.T) {
	s := DraftState{}
	s = ApplyClaimant(s, ClaimantStep{Name: "Jordan Miles"})
	s = ApplyInsurance(s, InsuranceStep{Company: "Maple Mutual"})

	s = ApplyLegal(s, LegalStep{LawFirm: "Harper & Quinn LLP", Side: "plaintiff"})

	assert.Equal(t, "Jordan Miles", s.Claimant.Name)
	assert.Equal(t, "Maple Mutual", s.Insurance.Company)
	assert.Equal(t, "Harper & Quinn LLP", s.Legal.LawFirm)
}

func TestComplete(t *testing.T) {
	s := DraftState{}
	assert.False(t, s.Complete())

	s = ApplyClaimant(s, ClaimantStep{Name: "Jordan Miles", Phone: "416-555-0101"})
	s = ApplyInsurance(s, InsuranceStep{Company: "Maple Mutual"})
	s = ApplyLegal(s, LegalStep{LawFirm: "Harper & Quinn LLP"})
	assert.False(t, s.Complete())

	s = ApplyExamination(s, ExaminationStep{ExamTypeID: 3})
	assert.True(t, s.Complete())
}

func TestReducers_DoNotSetHydrated(t *testing.T) {
	// Hydrated marks a store load, never a reducer application.
	s := ApplyClaimant(DraftState{}, ClaimantStep{Name: "Jordan Miles"})
	assert.False(t, s.Hydrated)

	s = DraftState{Hydrated: true}
	s = ApplyInsurance(s, InsuranceStep{Company: "Maple Mutual"})
	assert.True(t, s.Hydrated)
}
