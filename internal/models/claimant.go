package models

import "time"

// Claimant is the examinee a referral is about. No login; scoped to the
// organization and deduplicated by phone on intake.
type Claimant struct {
	ID             uint `gorm:"primaryKey" json:"id"`
	OrganizationID uint `json:"organization_id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Phone       string `gorm:"size:20" json:"phone"`
	Email       string `gorm:"size:100" json:"email"`
	DateOfBirth string `gorm:"size:10" json:"date_of_birth"`
	Address     string `gorm:"size:255" json:"address"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
