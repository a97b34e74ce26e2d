package models

import "time"

type Contract struct {
	ID uint `gorm:"primaryKey" json:"id"`

	OrganizationID uint `json:"organization_id"`

	TemplateID uint             `json:"template_id"`
	Template   ContractTemplate `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"template"`

	// Nil when the template references no fee variables.
	FeeStructureID *uint         `json:"fee_structure_id"`
	FeeStructure   *FeeStructure `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"fee_structure"`

	ReferralID uint     `json:"referral_id"`
	Referral   Referral `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"referral"`

	Status string `gorm:"size:20;default:'pending_signature'" json:"status"`

	VariableValues JSONMap `gorm:"type:jsonb" json:"variable_values"`

	DocumentKey  string `gorm:"size:255" json:"document_key"`
	SignatureKey string `gorm:"size:255" json:"signature_key"`
	SignerName   string `gorm:"size:100" json:"signer_name"`

	SignedAt   *time.Time `json:"signed_at"`
	ReviewDate *time.Time `json:"review_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
