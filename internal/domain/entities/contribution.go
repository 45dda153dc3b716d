package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// ContributionPool aggregates contributions against one approved case.
// CurrentAmount only ever grows; IsCompleted flips to true exactly once, the
// first time CurrentAmount reaches TargetAmount, and never reverts.
type ContributionPool struct {
	ID                uuid.UUID `json:"id"`
	CaseID            uuid.UUID `json:"caseId"`
	NGOID             uuid.UUID `json:"ngoId"`
	NGOName           string    `json:"ngoName"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	TargetAmount      int64     `json:"targetAmount"`
	CurrentAmount     int64     `json:"currentAmount"`
	ContributorsCount int       `json:"contributorsCount"`
	Deadline          null.Time `json:"deadline,omitempty"`
	IsActive          bool      `json:"isActive"`
	IsCompleted       bool      `json:"isCompleted"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// Contribution is an immutable record of funds pledged to a pool.
// Amounts are bookkeeping integers, not settled currency.
type Contribution struct {
	ID            uuid.UUID   `json:"id"`
	PoolID        uuid.UUID   `json:"poolId"`
	ContributorID uuid.UUID   `json:"contributorId"`
	Amount        int64       `json:"amount"`
	Message       null.String `json:"message,omitempty"`
	IsAnonymous   bool        `json:"isAnonymous"`
	ContributedAt time.Time   `json:"contributedAt"`
}

// CreatePoolInput represents input for opening a contribution pool
type CreatePoolInput struct {
	CaseID       uuid.UUID `json:"caseId" binding:"required"`
	Title        string    `json:"title" binding:"required"`
	Description  string    `json:"description"`
	TargetAmount int64     `json:"targetAmount" binding:"required,gt=0"`
	DeadlineDays *int      `json:"deadlineDays"`
}

// ContributeInput represents input for contributing to a pool
type ContributeInput struct {
	Amount      int64  `json:"amount" binding:"required,gt=0"`
	Message     string `json:"message"`
	IsAnonymous bool   `json:"isAnonymous"`
}
