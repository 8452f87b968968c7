package repository

import (
	"context"

	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/model"
)

// UserRepository is the credential store. Password hashes never leave the
// User struct and the struct never serializes them.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByLogin(ctx context.Context, login string) (*model.User, error)
	List(ctx context.Context) ([]*model.User, error)
	ListByRole(ctx context.Context, role string) ([]*model.Medecin, error)
	UpdateProfile(ctx context.Context, id int64, prenom, nom, login, photo string) error
	// UpdateWithRole only touches rows carrying the given role; the
	// secretaire namespace uses it to pin its writes to Medecin accounts.
	UpdateWithRole(ctx context.Context, id int64, role, prenom, nom, login string) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	TouchDateConnexion(ctx context.Context, id int64) error
	DeleteWithRole(ctx context.Context, id int64, role string) error
	CountByRole(ctx context.Context, role string) (int, error)
	LastByRole(ctx context.Context, role string, n int) ([]*model.UserSummary, error)
}

type PatientRepository interface {
	Create(ctx context.Context, patient *model.Patient) error
	GetByID(ctx context.Context, id int64) (*model.Patient, error)
	List(ctx context.Context) ([]*model.Patient, error)
	Update(ctx context.Context, patient *model.Patient) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
	CountBySexe(ctx context.Context, sexe string) (int, error)
	Last(ctx context.Context, n int) ([]*model.Patient, error)
}

type DossierRepository interface {
	Create(ctx context.Context, dossier *model.Dossier) error
	GetByID(ctx context.Context, id int64) (*model.Dossier, error)
	ListWithPatient(ctx context.Context) ([]*model.DossierWithPatient, error)
	ListByPatient(ctx context.Context, idPatient int64) ([]*model.Dossier, error)
	UpdateDateCreation(ctx context.Context, id int64, dossier *model.Dossier) error
	// DeleteCascade removes the dossier and every examen referencing it in
	// one transaction.
	DeleteCascade(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
	LastWithPatient(ctx context.Context, n int) ([]*model.RecentDossier, error)
}

type ExamenRepository interface {
	Create(ctx context.Context, examen *model.Examen) error
	ListByDossier(ctx context.Context, idDossier int64) ([]*model.Examen, error)
	Update(ctx context.Context, examen *model.Examen) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
	CountByDossier(ctx context.Context, idDossier int64) (int, error)
}

// ConnexionRepository is append-only: history rows are never mutated.
type ConnexionRepository interface {
	Append(ctx context.Context, idUser int64, action string) error
	ListWithUser(ctx context.Context) ([]*model.ConnexionWithUser, error)
}
