package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"cvgen_backend/internal/logger"
	"cvgen_backend/internal/models"
	"cvgen_backend/internal/repositories"
	"cvgen_backend/internal/services/dto"
	"cvgen_backend/pkg/apperrors"
)

// UserService manages accounts outside the auth flow.
type UserService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) GetByID(ctx context.Context, db *gorm.DB, userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NotFoundError("user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

func (s *UserService) Update(ctx context.Context, db *gorm.DB, userID string, req *dto.UpdateUserRequest) (*models.User, error) {
	birthDate, err := time.Parse(time.DateOnly, req.BirthDate)
	if err != nil {
		return nil, apperrors.ValidationError(map[string]string{"birth_date": "invalid date"})
	}

	user := &models.User{
		BaseModel:  models.BaseModel{ID: userID},
		FirstName:  req.FirstName,
		MiddleName: req.MiddleName,
		LastName:   req.LastName,
		BirthDate:  birthDate,
		Email:      req.Email,
		Tel:        req.Tel,
		CityID:     req.CityID,
	}

	if err := s.userRepo.Update(db, user); err != nil {
		switch {
		case errors.Is(err, repositories.ErrUserNotFound):
			return nil, apperrors.NotFoundError("user", "User not found")
		case repositories.IsDuplicate(err):
			return nil, apperrors.ConflictError("user", "Email or phone number already in use")
		default:
			return nil, apperrors.InternalError(err)
		}
	}

	logger.CtxInfo(ctx, "user updated", "user_id", userID)
	return s.GetByID(ctx, db, userID)
}

// Delete removes the account and, through cascades, every owned facet
// and session. Generated documents already delivered are unaffected.
func (s *UserService) Delete(ctx context.Context, db *gorm.DB, userID string) error {
	if err := s.userRepo.Delete(db, userID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.NotFoundError("user", "User not found")
		}
		return apperrors.InternalError(err)
	}
	logger.CtxInfo(ctx, "user deleted", "user_id", userID)
	return nil
}

func (s *UserService) List(ctx context.Context, db *gorm.DB, limit, offset int) ([]models.User, int64, error) {
	users, err := s.userRepo.FindAll(db, limit, offset)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	total, err := s.userRepo.CountAll(db)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	return users, total, nil
}
