package appointment

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/NovaDentalSystems/clinic-scheduler/internal/authz"
	"github.com/NovaDentalSystems/clinic-scheduler/internal/domain/scheduling"
	"github.com/NovaDentalSystems/clinic-scheduler/internal/models"
)

// Compile-time check
var _ scheduling.Repository = (*fakeRepository)(nil)

// fakeRepository is an in-memory scheduling.Repository. Writes run the
// guard over the stored calendar the same way the real repository does
// inside its transaction.
type fakeRepository struct {
	dentists map[uint]*models.Dentist
	patients map[uint]*models.Patient
	services map[uint]*models.Service

	appointments map[uint]*models.Appointment
	nextID       uint
}

func newFakeRepository() *fakeRepository {
	f := &fakeRepository{
		dentists:     map[uint]*models.Dentist{},
		patients:     map[uint]*models.Patient{},
		services:     map[uint]*models.Service{},
		appointments: map[uint]*models.Appointment{},
	}

	f.dentists[1] = &models.Dentist{ID: 1, Name: "Dr. Helena Prado"}
	f.dentists[2] = &models.Dentist{ID: 2, Name: "Dr. Rafael Lins"}

	f.patients[10] = &models.Patient{ID: 10, Name: "Carlos Mota"}
	f.patients[11] = &models.Patient{ID: 11, Name: "Ana Beatriz"}

	f.services[100] = &models.Service{ID: 100, Name: "Cleaning", DurationMin: 60, Active: true}

	return f
}

func (f *fakeRepository) GetDentist(_ context.Context, id uint) (*models.Dentist, error) {
	if d, ok := f.dentists[id]; ok {
		return d, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepository) GetPatient(_ context.Context, id uint) (*models.Patient, error) {
	if p, ok := f.patients[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepository) GetService(_ context.Context, id uint) (*models.Service, error) {
	if s, ok := f.services[id]; ok && s.Active {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepository) calendar(dentistID, patientID, excludeID uint) []scheduling.BookedInterval {
	var out []scheduling.BookedInterval
	for _, ap := range f.appointments {
		if ap.ID == excludeID {
			continue
		}
		if ap.DentistID != dentistID && ap.PatientID != patientID {
			continue
		}
		iv, err := scheduling.NewInterval(ap.StartsAt, ap.EndsAt)
		if err != nil {
			continue
		}
		out = append(out, scheduling.BookedInterval{
			AppointmentID: ap.ID,
			Interval:      iv,
		})
	}
	return out
}

func (f *fakeRepository) CreateAppointment(
	_ context.Context,
	ap *models.Appointment,
	guard scheduling.GuardFunc,
) error {

	if err := guard(f.calendar(ap.DentistID, ap.PatientID, 0)); err != nil {
		return err
	}

	f.nextID++
	ap.ID = f.nextID

	stored := *ap
	f.appointments[ap.ID] = &stored
	return nil
}

func (f *fakeRepository) UpdateAppointment(
	_ context.Context,
	ap *models.Appointment,
	excludeSelf bool,
	guard scheduling.GuardFunc,
) error {

	if _, ok := f.appointments[ap.ID]; !ok {
		return gorm.ErrRecordNotFound
	}

	excludeID := uint(0)
	if excludeSelf {
		excludeID = ap.ID
	}

	if err := guard(f.calendar(ap.DentistID, ap.PatientID, excludeID)); err != nil {
		return err
	}

	stored := *ap
	f.appointments[ap.ID] = &stored
	return nil
}

func (f *fakeRepository) DeleteAppointment(_ context.Context, id uint) error {
	if _, ok := f.appointments[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.appointments, id)
	return nil
}

func (f *fakeRepository) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	ap, ok := f.appointments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}

	found := *ap
	return &found, nil
}

func (f *fakeRepository) matchesFilter(ap *models.Appointment, filter scheduling.ListFilter) bool {
	if !filter.IncludeFinished && !ap.EndsAt.After(filter.Now) {
		return false
	}
	if filter.Day != nil {
		day := *filter.Day
		dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
		dayEnd := dayStart.Add(24 * time.Hour)
		if ap.StartsAt.Before(dayStart) || !ap.StartsAt.Before(dayEnd) {
			return false
		}
	}
	return true
}

func (f *fakeRepository) decorate(ap models.Appointment) models.Appointment {
	if d, ok := f.dentists[ap.DentistID]; ok {
		ap.Dentist = *d
	}
	if p, ok := f.patients[ap.PatientID]; ok {
		ap.Patient = *p
	}
	if s, ok := f.services[ap.ServiceID]; ok {
		ap.Service = *s
	}
	return ap
}

func (f *fakeRepository) ListByDentist(
	_ context.Context,
	dentistID uint,
	filter scheduling.ListFilter,
) ([]models.Appointment, error) {

	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.DentistID == dentistID && f.matchesFilter(ap, filter) {
			out = append(out, f.decorate(*ap))
		}
	}
	return out, nil
}

func (f *fakeRepository) ListByPatient(
	_ context.Context,
	patientID uint,
	filter scheduling.ListFilter,
) ([]models.Appointment, error) {

	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.PatientID == patientID && f.matchesFilter(ap, filter) {
			out = append(out, f.decorate(*ap))
		}
	}
	return out, nil
}

func (f *fakeRepository) ListByDay(
	_ context.Context,
	dayStart time.Time,
	dayEnd time.Time,
) ([]models.Appointment, error) {

	var out []models.Appointment
	for _, ap := range f.appointments {
		if !ap.StartsAt.Before(dayStart) && ap.StartsAt.Before(dayEnd) {
			out = append(out, f.decorate(*ap))
		}
	}
	return out, nil
}

// --------------------------------------------------
// Test actors
// --------------------------------------------------

func staffActor() authz.Actor {
	return authz.Actor{UserID: 1, Role: authz.RoleReceptionist}
}

func patientActor(patientID uint) authz.Actor {
	return authz.Actor{UserID: 2, Role: authz.RolePatient, PatientID: &patientID}
}
