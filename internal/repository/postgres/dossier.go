package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/model"
	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/repository"
)

type dossierRepository struct {
	BaseRepository
}

func NewDossierRepository(base BaseRepository) repository.DossierRepository {
	return &dossierRepository{base}
}

func (r *dossierRepository) Create(ctx context.Context, dossier *model.Dossier) error {
	query := `
		INSERT INTO dossiers (date_creation, id_patient)
		VALUES ($1, $2)
		RETURNING id_dossier
	`

	if err := r.db.QueryRowContext(ctx, query,
		dossier.DateCreation,
		dossier.IDPatient,
	).Scan(&dossier.ID); err != nil {
		return fmt.Errorf("failed to create dossier: %w", err)
	}

	return nil
}

func (r *dossierRepository) GetByID(ctx context.Context, id int64) (*model.Dossier, error) {
	query := `
		SELECT * FROM dossiers
		WHERE id_dossier = $1
	`

	var dossier model.Dossier
	if err := r.db.GetContext(ctx, &dossier, query, id); err != nil {
		return nil, fmt.Errorf("failed to get dossier: %w", err)
	}

	return &dossier, nil
}

func (r *dossierRepository) ListWithPatient(ctx context.Context) ([]*model.DossierWithPatient, error) {
	query := `
		SELECT d.id_dossier, d.date_creation, p.nom, p.prenom
		FROM dossiers d
		INNER JOIN patients p ON d.id_patient = p.id_patient
		ORDER BY d.id_dossier
	`

	var dossiers []*model.DossierWithPatient
	if err := r.db.SelectContext(ctx, &dossiers, query); err != nil {
		return nil, fmt.Errorf("failed to list dossiers: %w", err)
	}

	return dossiers, nil
}

func (r *dossierRepository) ListByPatient(ctx context.Context, idPatient int64) ([]*model.Dossier, error) {
	query := `
		SELECT * FROM dossiers
		WHERE id_patient = $1
		ORDER BY id_dossier
	`

	var dossiers []*model.Dossier
	if err := r.db.SelectContext(ctx, &dossiers, query, idPatient); err != nil {
		return nil, fmt.Errorf("failed to list dossiers for patient: %w", err)
	}

	return dossiers, nil
}

func (r *dossierRepository) UpdateDateCreation(ctx context.Context, id int64, dossier *model.Dossier) error {
	query := `
		UPDATE dossiers SET date_creation = $1
		WHERE id_dossier = $2
	`

	if _, err := r.db.ExecContext(ctx, query, dossier.DateCreation, id); err != nil {
		return fmt.Errorf("failed to update dossier: %w", err)
	}

	return nil
}

// DeleteCascade removes the examens of a dossier and then the dossier itself.
// The store does not cascade on its own, so both statements run in one
// transaction.
func (r *dossierRepository) DeleteCascade(ctx context.Context, id int64) error {
	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM examens WHERE id_dossier = $1`, id); err != nil {
			return fmt.Errorf("failed to delete examens of dossier: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM dossiers WHERE id_dossier = $1`, id); err != nil {
			return fmt.Errorf("failed to delete dossier: %w", err)
		}

		return nil
	})
}

func (r *dossierRepository) Count(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM dossiers`

	var count int
	if err := r.db.GetContext(ctx, &count, query); err != nil {
		return 0, fmt.Errorf("failed to count dossiers: %w", err)
	}

	return count, nil
}

func (r *dossierRepository) LastWithPatient(ctx context.Context, n int) ([]*model.RecentDossier, error) {
	query := `
		SELECT p.nom, p.prenom, p.age, p.tel, d.id_dossier, d.date_creation
		FROM patients p
		INNER JOIN dossiers d ON p.id_patient = d.id_patient
		ORDER BY d.id_dossier DESC
		LIMIT $1
	`

	var dossiers []*model.RecentDossier
	if err := r.db.SelectContext(ctx, &dossiers, query, n); err != nil {
		return nil, fmt.Errorf("failed to list recent dossiers: %w", err)
	}

	return dossiers, nil
}
