package db

import (
	"log"
	"time"

	"github.com/NovaDentalSystems/clinic-scheduler/internal/config"
	"github.com/NovaDentalSystems/clinic-scheduler/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Dentist{},
		&models.Patient{},
		&models.Service{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Store-level backstop for the conflict checker: overlapping intervals
	// for the same dentist or the same patient are rejected by Postgres even
	// if a write slips past the application check.
	db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`)

	db.Exec(`
        DO $$ BEGIN
            IF NOT EXISTS (
                SELECT 1 FROM pg_constraint WHERE conname = 'appointments_dentist_no_overlap'
            ) THEN
                ALTER TABLE appointments
                    ADD CONSTRAINT appointments_dentist_no_overlap
                    EXCLUDE USING gist (
                        dentist_id WITH =,
                        tstzrange(starts_at, ends_at) WITH &&
                    );
            END IF;
        END $$
    `)

	db.Exec(`
        DO $$ BEGIN
            IF NOT EXISTS (
                SELECT 1 FROM pg_constraint WHERE conname = 'appointments_patient_no_overlap'
            ) THEN
                ALTER TABLE appointments
                    ADD CONSTRAINT appointments_patient_no_overlap
                    EXCLUDE USING gist (
                        patient_id WITH =,
                        tstzrange(starts_at, ends_at) WITH &&
                    );
            END IF;
        END $$
    `)

	return db
}
