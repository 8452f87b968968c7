package postgres

import (
	"context"
	"fmt"

	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/model"
	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/repository"
)

type examenRepository struct {
	BaseRepository
}

func NewExamenRepository(base BaseRepository) repository.ExamenRepository {
	return &examenRepository{base}
}

func (r *examenRepository) Create(ctx context.Context, examen *model.Examen) error {
	query := `
		INSERT INTO examens (nom, date_resultat, id_dossier)
		VALUES ($1, $2, $3)
		RETURNING id_examen
	`

	if err := r.db.QueryRowContext(ctx, query,
		examen.Nom,
		examen.DateResultat,
		examen.IDDossier,
	).Scan(&examen.ID); err != nil {
		return fmt.Errorf("failed to create examen: %w", err)
	}

	return nil
}

func (r *examenRepository) ListByDossier(ctx context.Context, idDossier int64) ([]*model.Examen, error) {
	query := `
		SELECT * FROM examens
		WHERE id_dossier = $1
		ORDER BY id_examen
	`

	var examens []*model.Examen
	if err := r.db.SelectContext(ctx, &examens, query, idDossier); err != nil {
		return nil, fmt.Errorf("failed to list examens: %w", err)
	}

	return examens, nil
}

func (r *examenRepository) Update(ctx context.Context, examen *model.Examen) error {
	query := `
		UPDATE examens SET
			nom = $1,
			date_resultat = $2
		WHERE id_examen = $3
	`

	if _, err := r.db.ExecContext(ctx, query, examen.Nom, examen.DateResultat, examen.ID); err != nil {
		return fmt.Errorf("failed to update examen: %w", err)
	}

	return nil
}

func (r *examenRepository) Delete(ctx context.Context, id int64) error {
	query := `
		DELETE FROM examens
		WHERE id_examen = $1
	`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete examen: %w", err)
	}

	return nil
}

func (r *examenRepository) Count(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM examens`

	var count int
	if err := r.db.GetContext(ctx, &count, query); err != nil {
		return 0, fmt.Errorf("failed to count examens: %w", err)
	}

	return count, nil
}

func (r *examenRepository) CountByDossier(ctx context.Context, idDossier int64) (int, error) {
	query := `SELECT COUNT(*) FROM examens WHERE id_dossier = $1`

	var count int
	if err := r.db.GetContext(ctx, &count, query, idDossier); err != nil {
		return 0, fmt.Errorf("failed to count examens of dossier: %w", err)
	}

	return count, nil
}
