package models

import (
	"time"

	"github.com/google/uuid"
)

type VerificationRequest struct {
	ID                      uuid.UUID `gorm:"type:uuid;primaryKey"`
	RequesterID             uuid.UUID `gorm:"type:uuid;not null;index"`
	Type                    string    `gorm:"type:varchar(20);not null;index"`
	InstitutionName         string    `gorm:"type:varchar(255);not null"`
	InstitutionWebsite      string    `gorm:"type:varchar(255)"`
	LicenseAuthority        string    `gorm:"type:varchar(255)"`
	LicenseAuthorityWebsite string    `gorm:"type:varchar(255)"`
	LicenseNumber           string    `gorm:"type:varchar(100)"`
	Documents               string    `gorm:"type:text"`
	Status                  string    `gorm:"type:varchar(20);not null;index"`
	SubmittedAt             time.Time `gorm:"not null"`
	ProcessedAt             *time.Time
	ProcessedBy             *uuid.UUID `gorm:"type:uuid"`
	AdminNotes              *string    `gorm:"type:text"`
	CreatedAt               time.Time
	UpdatedAt               time.Time
}
