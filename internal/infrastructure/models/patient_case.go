package models

import (
	"time"

	"github.com/google/uuid"
)

type PatientCase struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	PatientID        uuid.UUID `gorm:"type:uuid;not null;index"`
	PatientName      string    `gorm:"type:varchar(100);not null"`
	PatientContact   string    `gorm:"type:varchar(255)"`
	Title            string    `gorm:"type:varchar(255);not null"`
	Description      string    `gorm:"type:text"`
	MedicalCondition string    `gorm:"type:text"`
	RequiredAmount   int64     `gorm:"not null"`
	Documents        string    `gorm:"type:text"`
	Urgency          string    `gorm:"type:varchar(20);not null"`
	Status           string    `gorm:"type:varchar(20);not null;index"`
	ReviewedAt       *time.Time
	ReviewedBy       *uuid.UUID `gorm:"type:uuid"`
	AdminNotes       *string    `gorm:"type:text"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
