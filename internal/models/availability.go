package models

import "time"

// AvailabilityProvider is the lazily created anchor row for a provider's
// schedule, looked up by (provider type, backing entity id).
type AvailabilityProvider struct {
	ID             uint `gorm:"primaryKey" json:"id"`
	OrganizationID uint `json:"organization_id"`

	ProviderType ProviderType `gorm:"size:20;not null;uniqueIndex:idx_provider_ref" json:"provider_type"`
	RefID        uint         `gorm:"not null;uniqueIndex:idx_provider_ref" json:"ref_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type WeeklyHour struct {
	ID                     uint `gorm:"primaryKey" json:"id"`
	AvailabilityProviderID uint `gorm:"index;not null" json:"availability_provider_id"`

	DayOfWeek string       `gorm:"size:10;not null" json:"day_of_week"`
	Enabled   bool         `json:"enabled"`
	TimeSlots TimeSlotList `gorm:"type:jsonb" json:"time_slots"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type OverrideHour struct {
	ID                     uint `gorm:"primaryKey" json:"id"`
	AvailabilityProviderID uint `gorm:"index;not null" json:"availability_provider_id"`

	Date      time.Time    `gorm:"type:date;not null" json:"date"`
	TimeSlots TimeSlotList `gorm:"type:jsonb" json:"time_slots"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
