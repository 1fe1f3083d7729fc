package models

import "time"

// User is a login for clinic staff or for a patient. Patient logins carry
// the patient record they may act for.
type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`
	Role         string `gorm:"size:20;default:'receptionist'" json:"role"`

	PatientID *uint    `json:"patient_id"`
	Patient   *Patient `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"patient,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
