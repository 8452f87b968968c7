package dossier

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/model"
	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/repository"
	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/service/scope"
	apperrors "github.com/Freddy0703/Projet-d-etude-JUNIA/pkg/errors"
)

// Form dates arrive as yyyy-mm-dd.
const dateLayout = "2006-01-02"

// The administrateur reads dossiers; the medecin owns their lifecycle.
var readers = []string{model.RoleAdministrateur, model.RoleMedecin}

type Service struct {
	repo repository.DossierRepository
}

func NewService(repo repository.DossierRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, caller *model.Principal, req *model.CreateDossierRequest) (*model.Dossier, error) {
	if err := scope.Require(caller, model.RoleMedecin); err != nil {
		return nil, err
	}

	date, err := time.Parse(dateLayout, req.DateCreation)
	if err != nil {
		return nil, apperrors.NewValidation("invalid creation date", err)
	}

	dossier := &model.Dossier{
		DateCreation: date,
		IDPatient:    req.IDPatient,
	}

	if err := s.repo.Create(ctx, dossier); err != nil {
		return nil, fmt.Errorf("failed to create dossier: %w", err)
	}

	return dossier, nil
}

func (s *Service) ListWithPatient(ctx context.Context, caller *model.Principal) ([]*model.DossierWithPatient, error) {
	if err := scope.Require(caller, readers...); err != nil {
		return nil, err
	}

	return s.repo.ListWithPatient(ctx)
}

func (s *Service) ListByPatient(ctx context.Context, caller *model.Principal, idPatient int64) ([]*model.Dossier, error) {
	if err := scope.Require(caller, readers...); err != nil {
		return nil, err
	}

	return s.repo.ListByPatient(ctx, idPatient)
}

// Update changes the creation date and returns the parent patient id, which
// the route needs to send the caller back to the right listing.
func (s *Service) Update(ctx context.Context, caller *model.Principal, id int64, req *model.UpdateDossierRequest) (int64, error) {
	if err := scope.Require(caller, model.RoleMedecin); err != nil {
		return 0, err
	}

	date, err := time.Parse(dateLayout, req.DateCreation)
	if err != nil {
		return 0, apperrors.NewValidation("invalid creation date", err)
	}

	dossier, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, apperrors.NewNotFound("dossier")
		}
		return 0, err
	}

	if err := s.repo.UpdateDateCreation(ctx, id, &model.Dossier{DateCreation: date}); err != nil {
		return 0, fmt.Errorf("failed to update dossier: %w", err)
	}

	return dossier.IDPatient, nil
}

// Delete removes the dossier together with its examens and returns the parent
// patient id. Deleting a missing dossier is a no-op reported as not found
// only through the zero patient id.
func (s *Service) Delete(ctx context.Context, caller *model.Principal, id int64) (int64, error) {
	if err := scope.Require(caller, model.RoleMedecin); err != nil {
		return 0, err
	}

	var idPatient int64
	if dossier, err := s.repo.GetByID(ctx, id); err == nil {
		idPatient = dossier.IDPatient
	}

	if err := s.repo.DeleteCascade(ctx, id); err != nil {
		return 0, fmt.Errorf("failed to delete dossier: %w", err)
	}

	return idPatient, nil
}
