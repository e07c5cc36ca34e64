package services

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cvgen_backend/internal/auth"
	"cvgen_backend/internal/logger"
	"cvgen_backend/internal/models"
	"cvgen_backend/internal/repositories"
	"cvgen_backend/internal/services/dto"
	"cvgen_backend/pkg/apperrors"
)

// AuthService issues and rotates session tokens. Access tokens are
// stateless JWTs; refresh tokens are stored server-side so they can be
// revoked.
type AuthService struct {
	userRepo   repositories.UserRepository
	jwtTTL     time.Duration
	refreshTTL time.Duration
}

func NewAuthService(userRepo repositories.UserRepository, jwtTTL, refreshTTL time.Duration) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtTTL:     jwtTTL,
		refreshTTL: refreshTTL,
	}
}

// Register creates an account and opens a session for it.
func (s *AuthService) Register(ctx context.Context, db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	birthDate, err := time.Parse(time.DateOnly, req.BirthDate)
	if err != nil {
		return nil, apperrors.ValidationError(map[string]string{"birth_date": "invalid date"})
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		FirstName:    req.FirstName,
		MiddleName:   req.MiddleName,
		LastName:     req.LastName,
		BirthDate:    birthDate,
		Email:        req.Email,
		Tel:          req.Tel,
		PasswordHash: hash,
		CityID:       req.CityID,
	}

	if err := s.userRepo.Create(db, user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ConflictError("auth", "Email or phone number already registered")
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "user registered", "user_id", user.ID, "email", user.Email)
	return s.openSession(db, user)
}

// Login verifies credentials and opens a session.
func (s *AuthService) Login(ctx context.Context, db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, invalidCredentials()
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, invalidCredentials()
	}

	logger.CtxInfo(ctx, "user logged in", "user_id", user.ID)
	return s.openSession(db, user)
}

// Refresh rotates a refresh token: the presented token is consumed and
// a fresh pair is issued.
func (s *AuthService) Refresh(ctx context.Context, db *gorm.DB, refreshToken string) (*dto.AuthResponse, error) {
	stored, err := s.userRepo.FindRefreshToken(db, refreshToken)
	if err != nil {
		if errors.Is(err, repositories.ErrRefreshTokenNotFound) {
			return nil, apperrors.New(apperrors.CodeInvalidToken, "auth", "Invalid refresh token", http.StatusUnauthorized)
		}
		return nil, apperrors.InternalError(err)
	}

	if time.Now().After(stored.ExpiresAt) {
		_ = s.userRepo.DeleteRefreshToken(db, refreshToken)
		return nil, apperrors.New(apperrors.CodeTokenExpired, "auth", "Refresh token expired", http.StatusUnauthorized)
	}

	user, err := s.userRepo.FindByID(db, stored.UserID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.userRepo.DeleteRefreshToken(db, refreshToken); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxDebug(ctx, "refresh token rotated", "user_id", user.ID)
	return s.openSession(db, user)
}

// Logout revokes a refresh token. Revoking an unknown token is not an
// error: the session is gone either way.
func (s *AuthService) Logout(ctx context.Context, db *gorm.DB, refreshToken string) error {
	if err := s.userRepo.DeleteRefreshToken(db, refreshToken); err != nil {
		return apperrors.InternalError(err)
	}
	logger.CtxDebug(ctx, "user logged out")
	return nil
}

func (s *AuthService) openSession(db *gorm.DB, user *models.User) (*dto.AuthResponse, error) {
	accessToken, err := auth.GenerateToken(user.ID, user.IsSuperuser, s.jwtTTL)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refresh := &models.RefreshToken{
		UserID:    user.ID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(s.refreshTTL),
	}
	if err := s.userRepo.CreateRefreshToken(db, refresh); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refresh.Token,
		User:         dto.NewUserDTO(user),
	}, nil
}

func invalidCredentials() *apperrors.AppError {
	return apperrors.New(apperrors.CodeInvalidCredentials, "auth", "Invalid email or password", http.StatusUnauthorized)
}
