package entities

import (
	"time"

	"github.com/google/uuid"
)

// UserRole represents user roles
type UserRole string

const (
	UserRoleDoctor  UserRole = "DOCTOR"
	UserRolePatient UserRole = "PATIENT"
	UserRoleAdmin   UserRole = "ADMIN"
	UserRoleNGO     UserRole = "NGO"
)

// VerificationStatus represents credential verification status
type VerificationStatus string

const (
	VerificationPending     VerificationStatus = "PENDING"
	VerificationApproved    VerificationStatus = "APPROVED"
	VerificationRejected    VerificationStatus = "REJECTED"
	VerificationNotRequired VerificationStatus = "NOT_REQUIRED"
)

// User represents a user entity
type User struct {
	ID                  uuid.UUID            `json:"id"`
	Name                string               `json:"name"`
	Email               string               `json:"email"`
	PasswordHash        string               `json:"-"`
	Role                UserRole             `json:"role"`
	LicenseNumber       string               `json:"licenseNumber,omitempty"`
	VerificationStatus  VerificationStatus   `json:"verificationStatus"`
	VerificationRequest *VerificationRequest `json:"verificationRequest,omitempty"`
	LastActiveAt        *time.Time           `json:"lastActiveAt,omitempty"`
	CreatedAt           time.Time            `json:"createdAt"`
	UpdatedAt           time.Time            `json:"updatedAt"`
}

// CreateUserInput represents input for registering a user
type CreateUserInput struct {
	Name          string   `json:"name" binding:"required,min=2,max=100"`
	Email         string   `json:"email" binding:"required,email"`
	Password      string   `json:"password" binding:"required,min=8"`
	Role          UserRole `json:"role" binding:"required,oneof=DOCTOR PATIENT ADMIN NGO"`
	LicenseNumber string   `json:"licenseNumber"`
}

// LoginInput represents input for user login
type LoginInput struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	UseSession bool   `json:"useSession"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	AccessToken  string `json:"accessToken,omitempty"`
	RefreshToken string `json:"refreshToken,omitempty"`
	SessionID    string `json:"sessionId,omitempty"`
	User         *User  `json:"user"`
}

// ChangePasswordInput represents input for changing user password.
type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" binding:"required,min=8"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}

// UserStats summarizes a single user's activity for the admin dashboard
type UserStats struct {
	UserID             uuid.UUID          `json:"userId"`
	Name               string             `json:"name"`
	Email              string             `json:"email"`
	Role               UserRole           `json:"role"`
	VerificationStatus VerificationStatus `json:"verificationStatus"`
	LastActiveAt       *time.Time         `json:"lastActiveAt,omitempty"`
	TotalPrescriptions int64              `json:"totalPrescriptions"`
	TotalMedicines     int64              `json:"totalMedicines"`
	CreatedAt          time.Time          `json:"createdAt"`
}

// SystemOverview aggregates platform-wide counts for the admin dashboard
type SystemOverview struct {
	TotalDoctors         int64 `json:"totalDoctors"`
	TotalPatients        int64 `json:"totalPatients"`
	TotalNGOs            int64 `json:"totalNgos"`
	VerifiedDoctors      int64 `json:"verifiedDoctors"`
	PendingVerifications int64 `json:"pendingVerifications"`
	TotalCases           int64 `json:"totalCases"`
	TotalPools           int64 `json:"totalPools"`
}
