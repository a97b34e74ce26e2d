package models

import "time"

type ContractTemplate struct {
	ID             uint `gorm:"primaryKey" json:"id"`
	OrganizationID uint `json:"organization_id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	HTMLContent string `gorm:"type:text" json:"html_content"`

	DefaultFeeStructureID *uint `json:"default_fee_structure_id"`

	Active bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
