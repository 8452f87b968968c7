package patient

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/model"
	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/repository"
	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/service/scope"
	apperrors "github.com/Freddy0703/Projet-d-etude-JUNIA/pkg/errors"
)

// Every role may read patients; only the administrateur and the secretaire
// mutate them.
var (
	readers = []string{model.RoleAdministrateur, model.RoleSecretaire, model.RoleMedecin}
	writers = []string{model.RoleAdministrateur, model.RoleSecretaire}
)

type Service struct {
	repo repository.PatientRepository
}

func NewService(repo repository.PatientRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, caller *model.Principal, req *model.CreatePatientRequest) (*model.Patient, error) {
	if err := scope.Require(caller, writers...); err != nil {
		return nil, err
	}

	patient := &model.Patient{
		Nom:         req.Nom,
		Prenom:      req.Prenom,
		Age:         req.Age,
		Tel:         req.Tel,
		Sexe:        req.Sexe,
		Nationalite: req.Nationalite,
	}

	if err := s.repo.Create(ctx, patient); err != nil {
		return nil, fmt.Errorf("failed to create patient: %w", err)
	}

	return patient, nil
}

func (s *Service) Get(ctx context.Context, caller *model.Principal, id int64) (*model.Patient, error) {
	if err := scope.Require(caller, readers...); err != nil {
		return nil, err
	}

	patient, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFound("patient")
		}
		return nil, err
	}

	return patient, nil
}

func (s *Service) List(ctx context.Context, caller *model.Principal) ([]*model.Patient, error) {
	if err := scope.Require(caller, readers...); err != nil {
		return nil, err
	}

	return s.repo.List(ctx)
}

func (s *Service) Update(ctx context.Context, caller *model.Principal, id int64, req *model.UpdatePatientRequest) error {
	if err := scope.Require(caller, writers...); err != nil {
		return err
	}

	patient := &model.Patient{
		ID:          id,
		Nom:         req.Nom,
		Prenom:      req.Prenom,
		Age:         req.Age,
		Tel:         req.Tel,
		Sexe:        req.Sexe,
		Nationalite: req.Nationalite,
	}

	// Updating an id that no longer exists is a silent no-op.
	return s.repo.Update(ctx, patient)
}

func (s *Service) Delete(ctx context.Context, caller *model.Principal, id int64) error {
	if err := scope.Require(caller, writers...); err != nil {
		return err
	}

	return s.repo.Delete(ctx, id)
}
