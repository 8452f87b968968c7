package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/model"
	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/repository"
	apperrors "github.com/Freddy0703/Projet-d-etude-JUNIA/pkg/errors"
	"github.com/Freddy0703/Projet-d-etude-JUNIA/pkg/security"
)

// Service verifies credentials and owns password changes. Session handling
// and connection-history rows belong to the caller.
type Service struct {
	users  repository.UserRepository
	hasher security.PasswordHasher
}

func NewService(users repository.UserRepository, hasher security.PasswordHasher) *Service {
	return &Service{
		users:  users,
		hasher: hasher,
	}
}

// Authenticate checks the login/password pair and returns the principal to
// bind to a new session. The two failure kinds stay distinguishable by error
// code.
func (s *Service) Authenticate(ctx context.Context, login, password string) (*model.Principal, error) {
	user, err := s.users.GetByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewUserNotFound(login)
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return nil, apperrors.NewBadPassword()
	}

	if err := s.users.TouchDateConnexion(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("failed to record connection date: %w", err)
	}

	return model.NewPrincipal(user), nil
}

// ChangePassword verifies the current password against a fresh read of the
// stored hash, never against session state, then persists the new hash.
// Other live sessions stay valid.
func (s *Service) ChangePassword(ctx context.Context, userID int64, req *model.ChangePasswordRequest) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to fetch user: %w", err)
	}

	if err := s.hasher.Compare(user.PasswordHash, req.CurrentPassword); err != nil {
		return apperrors.NewBadPassword()
	}

	if req.NewPassword != req.ConfirmPassword {
		return apperrors.NewValidation("new passwords do not match", nil)
	}

	hash, err := s.hasher.Hash(req.NewPassword)
	if err != nil {
		return apperrors.NewValidation("invalid new password", err)
	}

	if err := s.users.UpdatePassword(ctx, userID, hash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}
