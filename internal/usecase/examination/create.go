package examination

import (
	"context"
	"time"

	"github.com/ThriveAssessments/case-manager/internal/audit"
	domain "github.com/ThriveAssessments/case-manager/internal/domain/examination"
	"github.com/ThriveAssessments/case-manager/internal/httperr"
	"github.com/ThriveAssessments/case-manager/internal/models"
	"github.com/ThriveAssessments/case-manager/internal/timezone"
	ucavailability "github.com/ThriveAssessments/case-manager/internal/usecase/availability"
)

// ======================================================
// INPUT
// ======================================================

type CreateExaminationInput struct {
	OrganizationID uint
	UserID         uint

	ReferralID uint
	ExaminerID uint
	ExamTypeID uint

	InterpreterID *uint
	ChaperoneID   *uint
	TransporterID *uint

	Date  string // YYYY-MM-DD
	Time  string // HH:mm
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateExamination struct {
	repo         domain.Repository
	availability *ucavailability.CheckWindow
	audit        *audit.Dispatcher
}

func NewCreateExamination(
	repo domain.Repository,
	availability *ucavailability.CheckWindow,
	audit *audit.Dispatcher,
) *CreateExamination {
	return &CreateExamination{
		repo:         repo,
		availability: availability,
		audit:        audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateExamination) Execute(
	ctx context.Context,
	in CreateExaminationInput,
) (*models.Examination, error) {

	org, err := uc.repo.GetOrganizationByID(ctx, in.OrganizationID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(org.Timezone)

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		loc,
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	minAdvance := org.MinAdvanceMinutes
	if minAdvance <= 0 {
		minAdvance = 1440
	}

	now := timezone.NowIn(org.Timezone)
	if start.Before(now.Add(time.Duration(minAdvance) * time.Minute)) {
		return nil, httperr.ErrBusiness("too_soon")
	}

	examType, err := uc.repo.GetExamType(ctx, in.OrganizationID, in.ExamTypeID)
	if err != nil {
		return nil, httperr.ErrBusiness("exam_type_not_found")
	}

	end := start.Add(time.Duration(examType.DurationMin) * time.Minute)

	available, err := uc.availability.Execute(ctx, ucavailability.CheckWindowInput{
		ProviderType: models.ProviderExaminer,
		RefID:        in.ExaminerID,
		Start:        start.UTC(),
		End:          end.UTC(),
		Location:     loc,
	})
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, httperr.ErrBusiness("outside_availability")
	}

	if err := uc.repo.AssertNoTimeConflict(ctx, in.ExaminerID, start, end); err != nil {
		return nil, err
	}

	ex := &models.Examination{
		OrganizationID: in.OrganizationID,
		ReferralID:     in.ReferralID,
		ExaminerID:     in.ExaminerID,
		ExamTypeID:     examType.ID,
		InterpreterID:  in.InterpreterID,
		ChaperoneID:    in.ChaperoneID,
		TransporterID:  in.TransporterID,
		StartTime:      start,
		EndTime:        end,
		Status:         string(domain.StatusScheduled),
		Notes:          in.Notes,
	}

	if err := uc.repo.CreateExamination(ctx, ex); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		OrganizationID: in.OrganizationID,
		UserID:         &in.UserID,
		Action:         "examination_created",
		Entity:         "examination",
		EntityID:       &ex.ID,
	})

	return ex, nil
}
