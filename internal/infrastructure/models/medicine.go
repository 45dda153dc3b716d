package models

import (
	"time"

	"github.com/google/uuid"
)

type Medicine struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Dosage      string    `gorm:"type:varchar(100)"`
	Frequency   string    `gorm:"type:varchar(100)"`
	Duration    string    `gorm:"type:varchar(100)"`
	SideEffects string    `gorm:"type:text"`
	GuideText   string    `gorm:"type:text"`
	GuideSource string    `gorm:"type:varchar(255)"`
	DoctorID    uuid.UUID `gorm:"type:uuid;not null;index"`
	IsActive    bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
