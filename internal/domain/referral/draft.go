package referral

// DraftState is the serializable draft of the multi-step referral intake
// wizard. It is an explicit value passed through reducers, never ambient
// state: each step reducer is a pure function from (state, input) to state.
type DraftState struct {
	// Hydrated is set when the state was loaded from the draft store, so the
	// client can tell a restored draft from a fresh one.
	Hydrated bool `json:"hydrated"`

	Claimant    ClaimantStep    `json:"claimant"`
	Insurance   InsuranceStep   `json:"insurance"`
	Legal       LegalStep       `json:"legal"`
	Examination ExaminationStep `json:"examination"`
}

type ClaimantStep struct {
	Done        bool   `json:"done"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	DateOfBirth string `json:"date_of_birth"`
	Address     string `json:"address"`
}

type InsuranceStep struct {
	Done          bool   `json:"done"`
	Company       string `json:"company"`
	ClaimNumber   string `json:"claim_number"`
	AdjusterName  string `json:"adjuster_name"`
	AdjusterEmail string `json:"adjuster_email"`
}

type LegalStep struct {
	Done       bool   `json:"done"`
	LawFirm    string `json:"law_firm"`
	FileNumber string `json:"file_number"`
	LawyerName string `json:"lawyer_name"`
	Side       string `json:"side"`
}

type ExaminationStep struct {
	Done                bool   `json:"done"`
	ExamTypeID          uint   `json:"exam_type_id"`
	PreferredDate       string `json:"preferred_date"`
	InterpreterLanguage string `json:"interpreter_language"`
	NeedsChaperone      bool   `json:"needs_chaperone"`
	NeedsTransport      bool   `json:"needs_transport"`
	Notes               string `json:"notes"`
}

// Step reducers. DraftState is passed and returned by value, so the input
// state is never mutated.

func ApplyClaimant(s DraftState, in ClaimantStep) DraftState {
	in.Done = true
	s.Claimant = in
	return s
}

func ApplyInsurance(s DraftState, in InsuranceStep) DraftState {
	in.Done = true
	s.Insurance = in
	return s
}

func ApplyLegal(s DraftState, in LegalStep) DraftState {
	in.Done = true
	s.Legal = in
	return s
}

func ApplyExamination(s DraftState, in ExaminationStep) DraftState {
	in.Done = true
	s.Examination = in
	return s
}

// Complete reports whether every step has been filled in, which is the gate
// for submission.
func (s DraftState) Complete() bool {
	return s.Claimant.Done && s.Insurance.Done && s.Legal.Done && s.Examination.Done
}
