package models

import (
	"time"

	"github.com/google/uuid"
)

type Appointment struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	PublicID uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"public_id"`

	DentistID uint    `gorm:"index" json:"dentist_id"`
	Dentist   Dentist `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"dentist"`

	PatientID uint    `gorm:"index" json:"patient_id"`
	Patient   Patient `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"patient"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	StartsAt time.Time `json:"starts_at"`
	EndsAt   time.Time `json:"ends_at"`

	Notes string `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Finished is derived from the end instant, never stored.
func (a *Appointment) Finished(now time.Time) bool {
	return !a.EndsAt.After(now)
}
