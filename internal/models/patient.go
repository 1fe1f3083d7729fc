package models

import (
	"time"

	"gorm.io/gorm"
)

type Patient struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name      string     `gorm:"size:100;not null" json:"name"`
	Email     string     `gorm:"size:100" json:"email"`
	Phone     string     `gorm:"size:20" json:"phone"`
	BirthDate *time.Time `json:"birth_date"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
