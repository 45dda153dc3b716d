package models

import (
	"time"

	"github.com/google/uuid"
)

type Prescription struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code            string    `gorm:"type:varchar(16);uniqueIndex;not null"`
	DoctorID        uuid.UUID `gorm:"type:uuid;not null;index"`
	PatientName     string    `gorm:"type:varchar(100);not null"`
	PatientContact  string    `gorm:"type:varchar(255);not null"`
	AdditionalNotes string    `gorm:"type:text"`
	ClaimedBy       *uuid.UUID `gorm:"type:uuid"`
	AccessedAt      *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type PrescriptionMedicine struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	PrescriptionID     uuid.UUID `gorm:"type:uuid;not null;index"`
	MedicineID         uuid.UUID `gorm:"type:uuid;not null"`
	CustomDosage       *string   `gorm:"type:varchar(100)"`
	CustomInstructions string    `gorm:"type:text"`
}
