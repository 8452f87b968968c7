package examen

import (
	"context"
	"fmt"
	"time"

	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/model"
	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/repository"
	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/service/scope"
	apperrors "github.com/Freddy0703/Projet-d-etude-JUNIA/pkg/errors"
)

const dateLayout = "2006-01-02"

// Examens are read and edited by the administrateur and the medecin alike.
var editors = []string{model.RoleAdministrateur, model.RoleMedecin}

type Service struct {
	repo repository.ExamenRepository
}

func NewService(repo repository.ExamenRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, caller *model.Principal, req *model.CreateExamenRequest) (*model.Examen, error) {
	if err := scope.Require(caller, editors...); err != nil {
		return nil, err
	}

	date, err := time.Parse(dateLayout, req.DateResultat)
	if err != nil {
		return nil, apperrors.NewValidation("invalid result date", err)
	}

	examen := &model.Examen{
		Nom:          req.Nom,
		DateResultat: date,
		IDDossier:    req.IDDossier,
	}

	if err := s.repo.Create(ctx, examen); err != nil {
		return nil, fmt.Errorf("failed to create examen: %w", err)
	}

	return examen, nil
}

func (s *Service) ListByDossier(ctx context.Context, caller *model.Principal, idDossier int64) ([]*model.Examen, error) {
	if err := scope.Require(caller, editors...); err != nil {
		return nil, err
	}

	return s.repo.ListByDossier(ctx, idDossier)
}

func (s *Service) Update(ctx context.Context, caller *model.Principal, id int64, req *model.UpdateExamenRequest) error {
	if err := scope.Require(caller, editors...); err != nil {
		return err
	}

	date, err := time.Parse(dateLayout, req.DateResultat)
	if err != nil {
		return apperrors.NewValidation("invalid result date", err)
	}

	// Updating an examen that no longer exists changes nothing.
	return s.repo.Update(ctx, &model.Examen{
		ID:           id,
		Nom:          req.Nom,
		DateResultat: date,
	})
}

func (s *Service) Delete(ctx context.Context, caller *model.Principal, id int64) error {
	if err := scope.Require(caller, editors...); err != nil {
		return err
	}

	return s.repo.Delete(ctx, id)
}
