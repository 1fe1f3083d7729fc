package appointment

import (
	"time"

	"github.com/NovaDentalSystems/clinic-scheduler/internal/dto"
	"github.com/NovaDentalSystems/clinic-scheduler/internal/models"
)

func toListDTOs(aps []models.Appointment, now time.Time) []dto.AppointmentListDTO {
	out := make([]dto.AppointmentListDTO, 0, len(aps))
	for i := range aps {
		ap := &aps[i]
		out = append(out, dto.AppointmentListDTO{
			ID:          ap.ID,
			PublicID:    ap.PublicID,
			StartsAt:    ap.StartsAt,
			EndsAt:      ap.EndsAt,
			Finished:    ap.Finished(now),
			DentistName: ap.Dentist.Name,
			PatientName: ap.Patient.Name,
			ServiceName: ap.Service.Name,
		})
	}
	return out
}
