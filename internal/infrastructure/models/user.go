package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID                    uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name                  string     `gorm:"type:varchar(100);not null"`
	Email                 string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash          string     `gorm:"type:varchar(255);not null"`
	Role                  string     `gorm:"type:varchar(20);not null;index"`
	LicenseNumber         string     `gorm:"type:varchar(100)"`
	VerificationStatus    string     `gorm:"type:varchar(20);not null;index"`
	VerificationRequestID *uuid.UUID `gorm:"type:uuid"`
	LastActiveAt          *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
	DeletedAt             gorm.DeletedAt `gorm:"index"`
}

type SystemFlag struct {
	Name      string `gorm:"type:varchar(50);primaryKey"`
	Value     bool   `gorm:"not null"`
	UpdatedAt time.Time
}
