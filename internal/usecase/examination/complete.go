package examination

import (
	"context"

	"github.com/ThriveAssessments/case-manager/internal/audit"
	domain "github.com/ThriveAssessments/case-manager/internal/domain/examination"
	"github.com/ThriveAssessments/case-manager/internal/httperr"
	"github.com/ThriveAssessments/case-manager/internal/models"
	"github.com/ThriveAssessments/case-manager/internal/timezone"
)

type CompleteExamination struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCompleteExamination(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CompleteExamination {
	return &CompleteExamination{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CompleteExamination) Execute(
	ctx context.Context,
	organizationID uint,
	userID uint,
	examinationID uint,
) (*models.Examination, error) {

	org, err := uc.repo.GetOrganizationByID(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	ex, err := uc.repo.GetExaminationForOrg(ctx, examinationID, organizationID)
	if err != nil {
		return nil, httperr.ErrBusiness("examination_not_found")
	}

	now := timezone.NowIn(org.Timezone)
	if err := domain.Complete(ex, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateExamination(ctx, ex); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		OrganizationID: organizationID,
		UserID:         &userID,
		Action:         "examination_completed",
		Entity:         "examination",
		EntityID:       &ex.ID,
	})

	return ex, nil
}
