package dto

import (
	"time"

	"github.com/ThriveAssessments/case-manager/internal/models"
)

// ExaminationListItem is the calendar row shape: times are rendered in the
// organization's timezone so the client does no conversion.
type ExaminationListItem struct {
	ID uint `json:"id"`

	ReferralID   uint   `json:"referral_id"`
	ClaimantName string `json:"claimant_name"`

	ExaminerID   uint   `json:"examiner_id"`
	ExaminerName string `json:"examiner_name"`

	ExamTypeID   uint   `json:"exam_type_id"`
	ExamTypeName string `json:"exam_type_name"`

	Date      string `json:"date"`       // YYYY-MM-DD
	StartTime string `json:"start_time"` // HH:mm
	EndTime   string `json:"end_time"`   // HH:mm

	Status string `json:"status"`
	Notes  string `json:"notes"`
}

func ExaminationListFromModels(
	exams []models.Examination,
	loc *time.Location,
) []ExaminationListItem {

	out := make([]ExaminationListItem, 0, len(exams))
	for _, ex := range exams {
		start := ex.StartTime.In(loc)
		end := ex.EndTime.In(loc)

		out = append(out, ExaminationListItem{
			ID:           ex.ID,
			ReferralID:   ex.ReferralID,
			ClaimantName: ex.Referral.Claimant.Name,
			ExaminerID:   ex.ExaminerID,
			ExaminerName: ex.Examiner.Name,
			ExamTypeID:   ex.ExamTypeID,
			ExamTypeName: ex.ExamType.Name,
			Date:         start.Format("2006-01-02"),
			StartTime:    start.Format("15:04"),
			EndTime:      end.Format("15:04"),
			Status:       ex.Status,
			Notes:        ex.Notes,
		})
	}

	return out
}
