package models

import (
	"time"

	"github.com/google/uuid"
)

type ContributionPool struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	CaseID            uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	NGOID             uuid.UUID `gorm:"column:ngo_id;type:uuid;not null;index"`
	NGOName           string    `gorm:"column:ngo_name;type:varchar(100)"`
	Title             string    `gorm:"type:varchar(255);not null"`
	Description       string    `gorm:"type:text"`
	TargetAmount      int64     `gorm:"not null"`
	CurrentAmount     int64     `gorm:"not null;default:0"`
	ContributorsCount int       `gorm:"not null;default:0"`
	Deadline          *time.Time
	IsActive          bool `gorm:"not null;default:true;index"`
	IsCompleted       bool `gorm:"not null;default:false;index"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type Contribution struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	PoolID        uuid.UUID `gorm:"type:uuid;not null;index"`
	ContributorID uuid.UUID `gorm:"type:uuid;not null;index"`
	Amount        int64     `gorm:"not null"`
	Message       *string   `gorm:"type:text"`
	IsAnonymous   bool      `gorm:"not null;default:false"`
	ContributedAt time.Time `gorm:"not null"`
	CreatedAt     time.Time
}
