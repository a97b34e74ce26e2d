package examination

import (
	"context"
	"time"

	"github.com/ThriveAssessments/case-manager/internal/models"
)

type Repository interface {
	// -------- Organization --------
	GetOrganizationByID(
		ctx context.Context,
		id uint,
	) (*models.Organization, error)

	// -------- Exam type --------
	GetExamType(
		ctx context.Context,
		organizationID uint,
		examTypeID uint,
	) (*models.ExamType, error)

	// -------- Examination (create / conflict) --------
	CreateExamination(
		ctx context.Context,
		ex *models.Examination,
	) error

	AssertNoTimeConflict(
		ctx context.Context,
		examinerID uint,
		start time.Time,
		end time.Time,
	) error

	// -------- Examination (state change) --------
	GetExaminationForOrg(
		ctx context.Context,
		examinationID uint,
		organizationID uint,
	) (*models.Examination, error)

	UpdateExamination(
		ctx context.Context,
		ex *models.Examination,
	) error

	ListExaminationsForPeriod(
		ctx context.Context,
		organizationID uint,
		start time.Time,
		end time.Time,
	) ([]models.Examination, error)
}
