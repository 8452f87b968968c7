package historique

import (
	"context"

	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/model"
	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/repository"
	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/service/scope"
)

type Service struct {
	repo repository.ConnexionRepository
}

func NewService(repo repository.ConnexionRepository) *Service {
	return &Service{repo: repo}
}

// RecordLogin appends a connexion row. The auth flow calls it after the
// credentials check, before any principal exists, so there is no role gate.
func (s *Service) RecordLogin(ctx context.Context, idUser int64) error {
	return s.repo.Append(ctx, idUser, model.ActionLogin)
}

func (s *Service) RecordLogout(ctx context.Context, idUser int64) error {
	return s.repo.Append(ctx, idUser, model.ActionLogout)
}

// List returns the full history, newest first. Administrateur only.
func (s *Service) List(ctx context.Context, caller *model.Principal) ([]*model.ConnexionWithUser, error) {
	if err := scope.Require(caller, model.RoleAdministrateur); err != nil {
		return nil, err
	}

	return s.repo.ListWithUser(ctx)
}
