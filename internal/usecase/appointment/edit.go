package appointment

import (
	"context"
	"time"

	"github.com/NovaDentalSystems/clinic-scheduler/internal/audit"
	"github.com/NovaDentalSystems/clinic-scheduler/internal/authz"
	"github.com/NovaDentalSystems/clinic-scheduler/internal/domain/scheduling"
	"github.com/NovaDentalSystems/clinic-scheduler/internal/httperr"
	"github.com/NovaDentalSystems/clinic-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type EditAppointmentInput struct {
	AppointmentID uint

	DentistID uint
	PatientID uint
	ServiceID uint

	StartsAt string
	EndsAt   string
	Notes    string
}

// ======================================================
// USE CASE
// ======================================================

type EditAppointment struct {
	repo  scheduling.Repository
	hours scheduling.BusinessHours
	audit *audit.Dispatcher
	loc   *time.Location

	// excludeOwn removes the edited appointment's current slot from its own
	// conflict set. The original rule keeps it in, so moving an appointment
	// within its own window is rejected; that behavior stays the default.
	excludeOwn bool
}

func NewEditAppointment(
	repo scheduling.Repository,
	hours scheduling.BusinessHours,
	audit *audit.Dispatcher,
	loc *time.Location,
	excludeOwn bool,
) *EditAppointment {
	return &EditAppointment{
		repo:       repo,
		hours:      hours,
		audit:      audit,
		loc:        loc,
		excludeOwn: excludeOwn,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute re-runs the full booking pipeline for an existing appointment.
func (uc *EditAppointment) Execute(
	ctx context.Context,
	actor authz.Actor,
	in EditAppointmentInput,
) (*models.Appointment, error) {

	current, err := uc.repo.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("not_found")
	}

	if err := authz.Gate(actor, authz.OpEditAppointment, current.PatientID); err != nil {
		return nil, err
	}

	// Reassigning to another patient still requires acting rights on the
	// target patient.
	if in.PatientID != current.PatientID && !actor.CanActFor(in.PatientID) {
		return nil, httperr.ErrBusiness("unauthorized")
	}

	candidate, err := parseInterval(in.StartsAt, in.EndsAt, uc.loc)
	if err != nil {
		return nil, err
	}

	if _, err := uc.repo.GetDentist(ctx, in.DentistID); err != nil {
		return nil, httperr.ErrBusiness("invalid_reference")
	}

	if _, err := uc.repo.GetPatient(ctx, in.PatientID); err != nil {
		return nil, httperr.ErrBusiness("invalid_reference")
	}

	if _, err := uc.repo.GetService(ctx, in.ServiceID); err != nil {
		return nil, httperr.ErrBusiness("invalid_reference")
	}

	current.DentistID = in.DentistID
	current.PatientID = in.PatientID
	current.ServiceID = in.ServiceID
	current.StartsAt = candidate.Start()
	current.EndsAt = candidate.End()
	current.Notes = in.Notes

	guard := func(existing []scheduling.BookedInterval) error {
		if err := scheduling.CheckConflict(candidate, existing); err != nil {
			return err
		}
		return uc.hours.Validate(candidate)
	}

	if err := uc.repo.UpdateAppointment(ctx, current, uc.excludeOwn, guard); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.UserID,
		Action:   "appointment_rescheduled",
		Entity:   "appointment",
		EntityID: &current.ID,
	})

	return current, nil
}
