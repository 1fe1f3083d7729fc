package models

import (
	"time"

	"gorm.io/gorm"
)

type Dentist struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name      string `gorm:"size:100;not null" json:"name"`
	Email     string `gorm:"size:100;uniqueIndex" json:"email"`
	Phone     string `gorm:"size:20" json:"phone"`
	CRO       string `gorm:"size:20" json:"cro"`
	Specialty string `gorm:"size:50" json:"specialty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
