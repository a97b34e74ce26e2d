package models

import "time"

type Examination struct {
	ID uint `gorm:"primaryKey" json:"id"`

	OrganizationID uint         `json:"organization_id"`
	Organization   Organization `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"organization"`

	ReferralID uint     `json:"referral_id"`
	Referral   Referral `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"referral"`

	ExaminerID uint     `json:"examiner_id"`
	Examiner   Provider `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"examiner"`

	ExamTypeID uint     `json:"exam_type_id"`
	ExamType   ExamType `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"exam_type"`

	InterpreterID *uint `json:"interpreter_id"`
	ChaperoneID   *uint `json:"chaperone_id"`
	TransporterID *uint `json:"transporter_id"`

	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	Status string `gorm:"size:20;default:'scheduled'" json:"status"`

	Notes       string     `gorm:"size:255" json:"notes"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
