package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/NovaDentalSystems/clinic-scheduler/internal/audit"
	"github.com/NovaDentalSystems/clinic-scheduler/internal/authz"
	"github.com/NovaDentalSystems/clinic-scheduler/internal/domain/scheduling"
	"github.com/NovaDentalSystems/clinic-scheduler/internal/httperr"
	"github.com/NovaDentalSystems/clinic-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
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

type CreateAppointment struct {
	repo  scheduling.Repository
	hours scheduling.BusinessHours
	audit *audit.Dispatcher
	loc   *time.Location
}

func NewCreateAppointment(
	repo scheduling.Repository,
	hours scheduling.BusinessHours,
	audit *audit.Dispatcher,
	loc *time.Location,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		hours: hours,
		audit: audit,
		loc:   loc,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute runs the booking pipeline: authorization, interval parsing,
// reference resolution, then conflict and business-hours checks inside the
// same transaction as the insert. First failure wins; nothing is persisted
// on any failure.
func (uc *CreateAppointment) Execute(
	ctx context.Context,
	actor authz.Actor,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	if err := authz.Gate(actor, authz.OpCreateAppointment, in.PatientID); err != nil {
		return nil, err
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

	ap := &models.Appointment{
		PublicID:  uuid.New(),
		DentistID: in.DentistID,
		PatientID: in.PatientID,
		ServiceID: in.ServiceID,
		StartsAt:  candidate.Start(),
		EndsAt:    candidate.End(),
		Notes:     in.Notes,
	}

	guard := func(existing []scheduling.BookedInterval) error {
		if err := scheduling.CheckConflict(candidate, existing); err != nil {
			return err
		}
		return uc.hours.Validate(candidate)
	}

	if err := uc.repo.CreateAppointment(ctx, ap, guard); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.UserID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
