package scheduling

import (
	"context"
	"time"

	"github.com/NovaDentalSystems/clinic-scheduler/internal/models"
)

// GuardFunc decides whether a booking may proceed, given the union of both
// parties' booked intervals fetched under lock inside the same transaction
// as the write. Returning an error aborts the write.
type GuardFunc func(existing []BookedInterval) error

// ListFilter narrows calendar reads. Finished appointments (end before Now)
// are excluded unless IncludeFinished is set.
type ListFilter struct {
	Day             *time.Time
	IncludeFinished bool
	Now             time.Time
}

type Repository interface {
	// -------- Identity resolution --------
	GetDentist(ctx context.Context, id uint) (*models.Dentist, error)
	GetPatient(ctx context.Context, id uint) (*models.Patient, error)
	GetService(ctx context.Context, id uint) (*models.Service, error)

	// -------- Appointment (write) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
		guard GuardFunc,
	) error

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
		excludeSelf bool,
		guard GuardFunc,
	) error

	DeleteAppointment(ctx context.Context, id uint) error

	// -------- Appointment (read) --------
	GetAppointment(ctx context.Context, id uint) (*models.Appointment, error)

	ListByDentist(
		ctx context.Context,
		dentistID uint,
		filter ListFilter,
	) ([]models.Appointment, error)

	ListByPatient(
		ctx context.Context,
		patientID uint,
		filter ListFilter,
	) ([]models.Appointment, error)

	ListByDay(
		ctx context.Context,
		dayStart time.Time,
		dayEnd time.Time,
	) ([]models.Appointment, error)
}
