package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/NovaDentalSystems/clinic-scheduler/internal/domain/scheduling"
	"github.com/NovaDentalSystems/clinic-scheduler/internal/httperr"
	"github.com/NovaDentalSystems/clinic-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Identity resolution
// --------------------------------------------------

func (r *AppointmentGormRepository) GetDentist(
	ctx context.Context,
	id uint,
) (*models.Dentist, error) {

	var dentist models.Dentist
	if err := r.db.WithContext(ctx).First(&dentist, id).Error; err != nil {
		return nil, err
	}
	return &dentist, nil
}

func (r *AppointmentGormRepository) GetPatient(
	ctx context.Context,
	id uint,
) (*models.Patient, error) {

	var patient models.Patient
	if err := r.db.WithContext(ctx).First(&patient, id).Error; err != nil {
		return nil, err
	}
	return &patient, nil
}

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND active = ?", id, true).
		First(&service).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

// --------------------------------------------------
// Conflict window
// --------------------------------------------------

// lockedCalendars fetches the union of both parties' booked intervals with
// row locks, so concurrent bookings touching either calendar serialize on
// the store. One row per appointment even when both parties match.
func lockedCalendars(
	tx *gorm.DB,
	dentistID uint,
	patientID uint,
	excludeID uint,
) ([]scheduling.BookedInterval, error) {

	q := tx.
		Model(&models.Appointment{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id", "starts_at", "ends_at").
		Where("dentist_id = ? OR patient_id = ?", dentistID, patientID)

	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var rows []models.Appointment
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	booked := make([]scheduling.BookedInterval, 0, len(rows))
	for _, row := range rows {
		iv, err := scheduling.NewInterval(row.StartsAt, row.EndsAt)
		if err != nil {
			return nil, err
		}
		booked = append(booked, scheduling.BookedInterval{
			AppointmentID: row.ID,
			Interval:      iv,
		})
	}

	return booked, nil
}

// --------------------------------------------------
// Appointment (write)
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
	guard scheduling.GuardFunc,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := lockedCalendars(tx, ap.DentistID, ap.PatientID, 0)
		if err != nil {
			return err
		}

		if err := guard(existing); err != nil {
			return err
		}

		if err := tx.Create(ap).Error; err != nil {
			if httperr.IsExclusionConflict(err) {
				return httperr.ErrBusiness("schedule_conflict")
			}
			return err
		}

		return nil
	})
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
	excludeSelf bool,
	guard scheduling.GuardFunc,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		excludeID := uint(0)
		if excludeSelf {
			excludeID = ap.ID
		}

		existing, err := lockedCalendars(tx, ap.DentistID, ap.PatientID, excludeID)
		if err != nil {
			return err
		}

		if err := guard(existing); err != nil {
			return err
		}

		if err := tx.Save(ap).Error; err != nil {
			if httperr.IsExclusionConflict(err) {
				return httperr.ErrBusiness("schedule_conflict")
			}
			return err
		}

		return nil
	})
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Appointment{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// --------------------------------------------------
// Appointment (read)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Dentist").
		Preload("Patient").
		Preload("Service").
		First(&ap, id).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) ListByDentist(
	ctx context.Context,
	dentistID uint,
	filter scheduling.ListFilter,
) ([]models.Appointment, error) {

	q := r.listQuery(ctx, filter).Where("dentist_id = ?", dentistID)
	return runList(q)
}

func (r *AppointmentGormRepository) ListByPatient(
	ctx context.Context,
	patientID uint,
	filter scheduling.ListFilter,
) ([]models.Appointment, error) {

	q := r.listQuery(ctx, filter).Where("patient_id = ?", patientID)
	return runList(q)
}

func (r *AppointmentGormRepository) ListByDay(
	ctx context.Context,
	dayStart time.Time,
	dayEnd time.Time,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Dentist").
		Preload("Patient").
		Preload("Service").
		Where("starts_at >= ? AND starts_at < ?", dayStart, dayEnd)

	return runList(q)
}

func (r *AppointmentGormRepository) listQuery(
	ctx context.Context,
	filter scheduling.ListFilter,
) *gorm.DB {

	q := r.db.WithContext(ctx).
		Preload("Dentist").
		Preload("Patient").
		Preload("Service")

	if !filter.IncludeFinished {
		q = q.Where("ends_at > ?", filter.Now)
	}

	if filter.Day != nil {
		day := *filter.Day
		dayStart := time.Date(
			day.Year(), day.Month(), day.Day(),
			0, 0, 0, 0,
			day.Location(),
		)
		dayEnd := dayStart.Add(24 * time.Hour)
		q = q.Where("starts_at >= ? AND starts_at < ?", dayStart, dayEnd)
	}

	return q
}

func runList(q *gorm.DB) ([]models.Appointment, error) {
	var aps []models.Appointment
	if err := q.
		Order("starts_at ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

// Compile-time check
var _ scheduling.Repository = (*AppointmentGormRepository)(nil)
