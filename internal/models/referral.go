package models

import "time"

type Referral struct {
	ID             uint `gorm:"primaryKey" json:"id"`
	OrganizationID uint `json:"organization_id"`

	ClaimantID uint     `json:"claimant_id"`
	Claimant   Claimant `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"claimant"`

	// Insurance section
	InsuranceCompany string `gorm:"size:100" json:"insurance_company"`
	ClaimNumber      string `gorm:"size:50" json:"claim_number"`
	AdjusterName     string `gorm:"size:100" json:"adjuster_name"`
	AdjusterEmail    string `gorm:"size:100" json:"adjuster_email"`

	// Legal section
	LawFirm    string `gorm:"size:100" json:"law_firm"`
	FileNumber string `gorm:"size:50" json:"file_number"`
	LawyerName string `gorm:"size:100" json:"lawyer_name"`
	Side       string `gorm:"size:20" json:"side"`

	// Examination section
	ExamTypeID          uint   `json:"exam_type_id"`
	PreferredDate       string `gorm:"size:10" json:"preferred_date"`
	InterpreterLanguage string `gorm:"size:50" json:"interpreter_language"`
	NeedsChaperone      bool   `json:"needs_chaperone"`
	NeedsTransport      bool   `json:"needs_transport"`

	Status string `gorm:"size:20;default:'submitted'" json:"status"`
	Notes  string `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
