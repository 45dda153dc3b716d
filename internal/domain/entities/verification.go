package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// VerificationType distinguishes doctor and NGO credential reviews
type VerificationType string

const (
	VerificationTypeDoctor VerificationType = "DOCTOR"
	VerificationTypeNGO    VerificationType = "NGO"
)

// VerificationRequest represents a credential verification submitted by a
// doctor or NGO and adjudicated by an admin.
type VerificationRequest struct {
	ID                      uuid.UUID          `json:"id"`
	RequesterID             uuid.UUID          `json:"requesterId"`
	Type                    VerificationType   `json:"type"`
	InstitutionName         string             `json:"institutionName"`
	InstitutionWebsite      string             `json:"institutionWebsite"`
	LicenseAuthority        string             `json:"licenseAuthority"`
	LicenseAuthorityWebsite string             `json:"licenseAuthorityWebsite"`
	LicenseNumber           string             `json:"licenseNumber"`
	Documents               []string           `json:"documents"`
	Status                  VerificationStatus `json:"status"`
	SubmittedAt             time.Time          `json:"submittedAt"`
	ProcessedAt             null.Time          `json:"processedAt,omitempty"`
	ProcessedBy             *uuid.UUID         `json:"processedBy,omitempty"`
	AdminNotes              null.String        `json:"adminNotes,omitempty"`
}

// SubmitVerificationInput represents input for submitting a verification request
type SubmitVerificationInput struct {
	InstitutionName         string   `json:"institutionName" binding:"required"`
	InstitutionWebsite      string   `json:"institutionWebsite"`
	LicenseAuthority        string   `json:"licenseAuthority" binding:"required"`
	LicenseAuthorityWebsite string   `json:"licenseAuthorityWebsite"`
	LicenseNumber           string   `json:"licenseNumber" binding:"required"`
	Documents               []string `json:"documents"`
}

// ProcessVerificationInput represents an admin decision on a request
type ProcessVerificationInput struct {
	Status     VerificationStatus `json:"status" binding:"required,oneof=APPROVED REJECTED"`
	AdminNotes []string           `json:"adminNotes"`
}
