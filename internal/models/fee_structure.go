package models

import "time"

type FeeVariableType string

const (
	FeeVarMoney     FeeVariableType = "MONEY"
	FeeVarNumber    FeeVariableType = "NUMBER"
	FeeVarText      FeeVariableType = "TEXT"
	FeeVarBoolean   FeeVariableType = "BOOLEAN"
	FeeVarComposite FeeVariableType = "COMPOSITE"
)

type FeeStructure struct {
	ID             uint `gorm:"primaryKey" json:"id"`
	OrganizationID uint `json:"organization_id"`

	Name   string `gorm:"size:100;not null" json:"name"`
	Active bool   `gorm:"default:true" json:"active"`

	Variables []FeeVariable `gorm:"constraint:OnDelete:CASCADE;" json:"variables"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type FeeVariable struct {
	ID             uint `gorm:"primaryKey" json:"id"`
	FeeStructureID uint `gorm:"index;not null" json:"fee_structure_id"`

	Key   string          `gorm:"size:100;not null" json:"key"`
	Label string          `gorm:"size:100" json:"label"`
	Type  FeeVariableType `gorm:"size:20;not null" json:"type"`

	// Required must be filled before a contract renders; Included values are
	// auto-populated and never shown as editable fields.
	Required bool `json:"required"`
	Included bool `json:"included"`

	SubFields SubFieldList `gorm:"type:jsonb" json:"sub_fields"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
