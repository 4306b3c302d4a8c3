package services

import (
	"fmt"

	"github.com/yukikurage/triager/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// AccountService handles self-service account operations.
type AccountService struct {
	userRepo repository.UserRepository
}

// NewAccountService creates a new AccountService.
func NewAccountService(userRepo repository.UserRepository) *AccountService {
	return &AccountService{
		userRepo: userRepo,
	}
}

// ChangePassword replaces the stored hash after verifying the old
// password and the confirmation.
func (s *AccountService) ChangePassword(userID uint64, oldPassword, newPassword, confirmPassword string) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return fmt.Errorf("failed to find user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(oldPassword)) != nil {
		return ErrWrongPassword
	}
	if newPassword == "" {
		return ErrMissingFields
	}
	if newPassword != confirmPassword {
		return ErrPasswordMismatch
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return ErrFailedToHashPassword
	}

	if err := s.userRepo.UpdatePassword(userID, string(hash)); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

// DeleteAccount removes the user after a password check. Tasks the user
// owned are detached, not deleted, inside the same transaction.
func (s *AccountService) DeleteAccount(userID uint64, confirmPassword string) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return fmt.Errorf("failed to find user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(confirmPassword)) != nil {
		return ErrWrongPassword
	}

	if err := s.userRepo.DeleteAndDetachTasks(userID); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	return nil
}
