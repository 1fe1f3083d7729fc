package dto

import (
	"time"

	"github.com/google/uuid"
)

type AppointmentListDTO struct {
	ID          uint      `json:"id"`
	PublicID    uuid.UUID `json:"public_id"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	Finished    bool      `json:"finished"`
	DentistName string    `json:"dentist_name"`
	PatientName string    `json:"patient_name"`
	ServiceName string    `json:"service_name"`
}
