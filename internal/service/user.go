package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"

	"golang.org/x/crypto/bcrypt"

	"shopbook-backend/internal/domain"
	"shopbook-backend/internal/repository"
)

// Store contact numbers must be exactly ten digits for the profile to
// count as complete.
var storeContactPattern = regexp.MustCompile(`^\d{10}$`)

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetProfile(ctx context.Context, userID int32) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID int32, params UpdateProfileParams) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	user.Name = params.Name
	user.StoreName = params.StoreName
	user.StoreAddress = params.StoreAddress
	user.StoreContact = params.StoreContact
	user.StoreCountryCode = params.StoreCountryCode
	user.ProfilePhoto = params.ProfilePhoto
	user.EmailVerified = params.EmailVerified
	user.PhoneVerified = params.PhoneVerified
	user.ProfileComplete = params.Name != "" &&
		params.StoreName != "" &&
		params.StoreAddress != "" &&
		storeContactPattern.MatchString(params.StoreContact) &&
		params.EmailVerified &&
		params.PhoneVerified

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

func (s *userService) ChangePassword(ctx context.Context, userID int32, currentPassword, newPassword string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrUserNotFound
	}
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.userRepo.UpdatePassword(ctx, userID, string(hash))
}
