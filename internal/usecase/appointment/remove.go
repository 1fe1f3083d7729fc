package appointment

import (
	"context"

	"github.com/NovaDentalSystems/clinic-scheduler/internal/audit"
	"github.com/NovaDentalSystems/clinic-scheduler/internal/authz"
	"github.com/NovaDentalSystems/clinic-scheduler/internal/domain/scheduling"
	"github.com/NovaDentalSystems/clinic-scheduler/internal/httperr"
	"github.com/NovaDentalSystems/clinic-scheduler/internal/models"
)

type RemoveAppointment struct {
	repo  scheduling.Repository
	audit *audit.Dispatcher
}

func NewRemoveAppointment(
	repo scheduling.Repository,
	audit *audit.Dispatcher,
) *RemoveAppointment {
	return &RemoveAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute hard-deletes an appointment. Deleting an id that no longer exists
// reports not_found, never a silent success.
func (uc *RemoveAppointment) Execute(
	ctx context.Context,
	actor authz.Actor,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("not_found")
	}

	if err := authz.Gate(actor, authz.OpRemoveAppointment, ap.PatientID); err != nil {
		return nil, err
	}

	if err := uc.repo.DeleteAppointment(ctx, appointmentID); err != nil {
		return nil, httperr.ErrBusiness("not_found")
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.UserID,
		Action:   "appointment_removed",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
