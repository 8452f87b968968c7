package stats

import (
	"context"
	"fmt"

	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/model"
	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/repository"
	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/service/scope"
)

// The admin and medecin dashboards show the three most recent accounts and
// dossiers; the secretaire one shows the five most recent patients.
const (
	recentUsers    = 3
	recentDossiers = 3
	recentPatients = 5
)

// Service aggregates the per-role dashboard payloads from the entity
// repositories. It owns no table of its own.
type Service struct {
	users    repository.UserRepository
	patients repository.PatientRepository
	dossiers repository.DossierRepository
	examens  repository.ExamenRepository
}

func NewService(users repository.UserRepository, patients repository.PatientRepository, dossiers repository.DossierRepository, examens repository.ExamenRepository) *Service {
	return &Service{
		users:    users,
		patients: patients,
		dossiers: dossiers,
		examens:  examens,
	}
}

func (s *Service) AdminDashboard(ctx context.Context, caller *model.Principal) (*model.AdminDashboard, error) {
	if err := scope.Require(caller, model.RoleAdministrateur); err != nil {
		return nil, err
	}

	var (
		dash model.AdminDashboard
		err  error
	)
	dash.User = caller

	if dash.Stats.TotalPatients, err = s.patients.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count patients: %w", err)
	}
	if dash.Stats.TotalMedecins, err = s.users.CountByRole(ctx, model.RoleMedecin); err != nil {
		return nil, fmt.Errorf("failed to count medecins: %w", err)
	}
	if dash.Stats.TotalSecretaires, err = s.users.CountByRole(ctx, model.RoleSecretaire); err != nil {
		return nil, fmt.Errorf("failed to count secretaires: %w", err)
	}
	if dash.Stats.TotalDossiers, err = s.dossiers.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count dossiers: %w", err)
	}

	if dash.Medecins, err = s.users.LastByRole(ctx, model.RoleMedecin, recentUsers); err != nil {
		return nil, fmt.Errorf("failed to list recent medecins: %w", err)
	}
	if dash.Secretaires, err = s.users.LastByRole(ctx, model.RoleSecretaire, recentUsers); err != nil {
		return nil, fmt.Errorf("failed to list recent secretaires: %w", err)
	}

	return &dash, nil
}

func (s *Service) MedecinDashboard(ctx context.Context, caller *model.Principal) (*model.MedecinDashboard, error) {
	if err := scope.Require(caller, model.RoleMedecin); err != nil {
		return nil, err
	}

	var (
		dash model.MedecinDashboard
		err  error
	)

	if dash.Stats.TotalPatients, err = s.patients.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count patients: %w", err)
	}
	if dash.Stats.TotalDossiers, err = s.dossiers.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count dossiers: %w", err)
	}
	if dash.Stats.TotalExamens, err = s.examens.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count examens: %w", err)
	}
	if dash.Stats.Hommes, err = s.patients.CountBySexe(ctx, model.SexeHomme); err != nil {
		return nil, fmt.Errorf("failed to count patients: %w", err)
	}
	if dash.Stats.Femmes, err = s.patients.CountBySexe(ctx, model.SexeFemme); err != nil {
		return nil, fmt.Errorf("failed to count patients: %w", err)
	}

	if dash.LastPatients, err = s.dossiers.LastWithPatient(ctx, recentDossiers); err != nil {
		return nil, fmt.Errorf("failed to list recent dossiers: %w", err)
	}

	return &dash, nil
}

func (s *Service) SecretaireDashboard(ctx context.Context, caller *model.Principal) (*model.SecretaireDashboard, error) {
	if err := scope.Require(caller, model.RoleSecretaire); err != nil {
		return nil, err
	}

	var (
		dash model.SecretaireDashboard
		err  error
	)

	if dash.Stats.TotalPatients, err = s.patients.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count patients: %w", err)
	}
	if dash.Stats.TotalMedecins, err = s.users.CountByRole(ctx, model.RoleMedecin); err != nil {
		return nil, fmt.Errorf("failed to count medecins: %w", err)
	}
	if dash.Stats.TotalDossiers, err = s.dossiers.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count dossiers: %w", err)
	}
	if dash.Stats.Hommes, err = s.patients.CountBySexe(ctx, model.SexeHomme); err != nil {
		return nil, fmt.Errorf("failed to count patients: %w", err)
	}
	if dash.Stats.Femmes, err = s.patients.CountBySexe(ctx, model.SexeFemme); err != nil {
		return nil, fmt.Errorf("failed to count patients: %w", err)
	}

	if dash.LastPatients, err = s.patients.Last(ctx, recentPatients); err != nil {
		return nil, fmt.Errorf("failed to list recent patients: %w", err)
	}

	return &dash, nil
}
