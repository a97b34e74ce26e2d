package models

import "time"

type ProviderType string

const (
	ProviderInterpreter ProviderType = "INTERPRETER"
	ProviderChaperone   ProviderType = "CHAPERONE"
	ProviderTransporter ProviderType = "TRANSPORTER"
	ProviderExaminer    ProviderType = "EXAMINER"
)

func (t ProviderType) Valid() bool {
	switch t {
	case ProviderInterpreter, ProviderChaperone, ProviderTransporter, ProviderExaminer:
		return true
	}
	return false
}

// Provider covers interpreters, chaperones, transporters and examiners; the
// type-specific fields stay empty for the types they do not apply to.
type Provider struct {
	ID             uint `gorm:"primaryKey" json:"id"`
	OrganizationID uint `json:"organization_id"`

	Type  ProviderType `gorm:"size:20;not null;index" json:"type"`
	Name  string       `gorm:"size:100;not null" json:"name"`
	Email string       `gorm:"size:100" json:"email"`
	Phone string       `gorm:"size:20" json:"phone"`

	Languages    StringList `gorm:"type:jsonb" json:"languages"`
	VehicleType  string     `gorm:"size:50" json:"vehicle_type"`
	Specialty    string     `gorm:"size:100" json:"specialty"`
	ServiceAreas StringList `gorm:"type:jsonb" json:"service_areas"`

	Active bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
