package user

import (
	"context"
	"fmt"

	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/model"
	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/repository"
	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/service/scope"
	apperrors "github.com/Freddy0703/Projet-d-etude-JUNIA/pkg/errors"
	"github.com/Freddy0703/Projet-d-etude-JUNIA/pkg/security"
)

// Service owns account management. The administrateur sees every account;
// the secretaire namespace only ever reaches Medecin rows, pinned by the
// role clause in the repository statements, not just by the route gate.
type Service struct {
	repo   repository.UserRepository
	hasher security.PasswordHasher
}

func NewService(repo repository.UserRepository, hasher security.PasswordHasher) *Service {
	return &Service{
		repo:   repo,
		hasher: hasher,
	}
}

func (s *Service) Create(ctx context.Context, caller *model.Principal, req *model.CreateUserRequest, photo string) (*model.User, error) {
	if err := scope.Require(caller, model.RoleAdministrateur); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, apperrors.NewValidation("invalid password", err)
	}

	if photo == "" {
		photo = model.DefaultPhoto
	}

	user := &model.User{
		Prenom:       req.Prenom,
		Nom:          req.Nom,
		Login:        req.Login,
		PasswordHash: hash,
		Role:         req.Role,
		PhotoProfil:  photo,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

func (s *Service) List(ctx context.Context, caller *model.Principal) ([]*model.User, error) {
	if err := scope.Require(caller, model.RoleAdministrateur); err != nil {
		return nil, err
	}

	return s.repo.List(ctx)
}

func (s *Service) ListMedecins(ctx context.Context, caller *model.Principal) ([]*model.Medecin, error) {
	if err := scope.Require(caller, model.RoleSecretaire); err != nil {
		return nil, err
	}

	return s.repo.ListByRole(ctx, model.RoleMedecin)
}

func (s *Service) CreateMedecin(ctx context.Context, caller *model.Principal, req *model.CreateMedecinRequest) (*model.User, error) {
	if err := scope.Require(caller, model.RoleSecretaire); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, apperrors.NewValidation("invalid password", err)
	}

	// The role is forced here: a secretaire can never mint anything but a
	// Medecin account.
	user := &model.User{
		Prenom:       req.Prenom,
		Nom:          req.Nom,
		Login:        req.Login,
		PasswordHash: hash,
		Role:         model.RoleMedecin,
		PhotoProfil:  model.DefaultPhoto,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create medecin: %w", err)
	}

	return user, nil
}

func (s *Service) UpdateMedecin(ctx context.Context, caller *model.Principal, id int64, req *model.UpdateMedecinRequest) error {
	if err := scope.Require(caller, model.RoleSecretaire); err != nil {
		return err
	}

	// No-op on a missing id or on a row that is not a Medecin.
	return s.repo.UpdateWithRole(ctx, id, model.RoleMedecin, req.Prenom, req.Nom, req.Login)
}

func (s *Service) DeleteMedecin(ctx context.Context, caller *model.Principal, id int64) error {
	if err := scope.Require(caller, model.RoleSecretaire); err != nil {
		return err
	}

	return s.repo.DeleteWithRole(ctx, id, model.RoleMedecin)
}

// UpdateProfile applies the settings form to the caller's own row. Blank form
// fields keep the current value; callers pass the stored photo ref, or empty
// to keep the existing one. Returns the refreshed principal for the session
// write-back.
func (s *Service) UpdateProfile(ctx context.Context, caller *model.Principal, req *model.UpdateProfileRequest, photo string) (*model.Principal, error) {
	if err := scope.Require(caller, model.RoleAdministrateur, model.RoleMedecin); err != nil {
		return nil, err
	}

	prenom := req.Prenom
	if prenom == "" {
		prenom = caller.Prenom
	}
	nom := req.Nom
	if nom == "" {
		nom = caller.Nom
	}
	login := req.Login
	if login == "" {
		login = caller.Login
	}
	if photo == "" {
		photo = caller.PhotoProfil
	}
	if photo == "" {
		photo = model.DefaultPhoto
	}

	if err := s.repo.UpdateProfile(ctx, caller.ID, prenom, nom, login, photo); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return &model.Principal{
		ID:          caller.ID,
		Role:        caller.Role,
		Prenom:      prenom,
		Nom:         nom,
		Login:       login,
		PhotoProfil: photo,
	}, nil
}
