package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"medseal.backend/internal/domain/entities"
	domainerrors "medseal.backend/internal/domain/errors"
	"medseal.backend/internal/domain/repositories"
	"medseal.backend/pkg/crypto"
	"medseal.backend/pkg/jwt"
	"medseal.backend/pkg/redis"
	"medseal.backend/pkg/utils"
)

// AuthUsecase handles registration and authentication
type AuthUsecase struct {
	userRepo     repositories.UserRepository
	flagRepo     repositories.SystemFlagRepository
	uow          repositories.UnitOfWork
	jwtService   *jwt.JWTService
	sessionStore *redis.SessionStore
	sessionTTL   time.Duration
}

// NewAuthUsecase creates a new auth usecase. sessionStore may be nil when
// Redis-backed sessions are disabled.
func NewAuthUsecase(
	userRepo repositories.UserRepository,
	flagRepo repositories.SystemFlagRepository,
	uow repositories.UnitOfWork,
	jwtService *jwt.JWTService,
	sessionStore *redis.SessionStore,
	sessionTTL time.Duration,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:     userRepo,
		flagRepo:     flagRepo,
		uow:          uow,
		jwtService:   jwtService,
		sessionStore: sessionStore,
		sessionTTL:   sessionTTL,
	}
}

// Register creates a user. The first and only admin registration flips the
// admin-exists flag; any later admin registration fails. Doctors and NGOs
// start with a pending verification status, patients never need one.
func (u *AuthUsecase) Register(ctx context.Context, input *entities.CreateUserInput) (*entities.User, error) {
	if (input.Role == entities.UserRoleDoctor || input.Role == entities.UserRoleNGO) && input.LicenseNumber == "" {
		return nil, domainerrors.BadRequest("License number is required for doctors and NGOs")
	}

	_, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err == nil {
		return nil, domainerrors.Conflict("Email already registered")
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entities.User{
		ID:            utils.GenerateUUIDv7(),
		Name:          input.Name,
		Email:         input.Email,
		PasswordHash:  passwordHash,
		Role:          input.Role,
		LicenseNumber: input.LicenseNumber,
		LastActiveAt:  &now,
	}

	switch input.Role {
	case entities.UserRoleAdmin:
		user.VerificationStatus = entities.VerificationApproved
	case entities.UserRolePatient:
		user.VerificationStatus = entities.VerificationNotRequired
	default:
		user.VerificationStatus = entities.VerificationPending
	}

	// The admin-exists check and the user insert share one transaction so
	// two concurrent admin registrations cannot both pass the check.
	if err := u.uow.Do(ctx, func(txCtx context.Context) error {
		if input.Role == entities.UserRoleAdmin {
			exists, err := u.flagRepo.AdminExists(txCtx)
			if err != nil {
				return err
			}
			if exists {
				return domainerrors.Conflict("Admin already exists")
			}
			if err := u.flagRepo.SetAdminExists(txCtx, true); err != nil {
				return err
			}
		}
		return u.userRepo.Create(txCtx, user)
	}); err != nil {
		return nil, err
	}

	return user, nil
}

// Login authenticates by email and password and returns a token pair. When
// the caller asks for a session the tokens are additionally stored encrypted
// in Redis under a fresh session ID.
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	tokens, err := u.jwtService.GenerateTokenPair(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}

	_ = u.userRepo.TouchLastActive(ctx, user.ID)

	resp := &entities.AuthResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		User:         user,
	}

	if input.UseSession && u.sessionStore != nil {
		sessionID, err := crypto.GenerateRandomToken(16)
		if err != nil {
			return nil, err
		}
		if err := u.sessionStore.CreateSession(ctx, sessionID, &redis.SessionData{
			AccessToken:  tokens.AccessToken,
			RefreshToken: tokens.RefreshToken,
		}, u.sessionTTL); err != nil {
			return nil, err
		}
		resp.SessionID = sessionID
	}

	return resp, nil
}

// GetMe returns the caller's own user record
func (u *AuthUsecase) GetMe(ctx context.Context, callerID uuid.UUID) (*entities.User, error) {
	user, err := u.userRepo.GetByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.Unauthenticated("User not found")
		}
		return nil, err
	}
	return user, nil
}

// ChangePassword verifies the current password and replaces it
func (u *AuthUsecase) ChangePassword(ctx context.Context, callerID uuid.UUID, input *entities.ChangePasswordInput) error {
	user, err := u.userRepo.GetByID(ctx, callerID)
	if err != nil {
		return err
	}

	if !crypto.CheckPassword(input.CurrentPassword, user.PasswordHash) {
		return domainerrors.ErrInvalidCredentials
	}

	hash, err := crypto.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}

	user.PasswordHash = hash
	return u.userRepo.Update(ctx, user)
}
