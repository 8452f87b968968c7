package postgres

import (
	"context"
	"fmt"

	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/model"
	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/repository"
)

type connexionRepository struct {
	BaseRepository
}

func NewConnexionRepository(base BaseRepository) repository.ConnexionRepository {
	return &connexionRepository{base}
}

func (r *connexionRepository) Append(ctx context.Context, idUser int64, action string) error {
	query := `
		INSERT INTO historique_connexions (id_user, action, date_action)
		VALUES ($1, $2, NOW())
	`

	if _, err := r.db.ExecContext(ctx, query, idUser, action); err != nil {
		return fmt.Errorf("failed to append connection history: %w", err)
	}

	return nil
}

func (r *connexionRepository) ListWithUser(ctx context.Context) ([]*model.ConnexionWithUser, error) {
	query := `
		SELECT u.prenom, u.nom, u.role, h.action, h.date_action
		FROM historique_connexions h
		INNER JOIN utilisateurs u ON h.id_user = u.id_user
		ORDER BY h.date_action DESC
	`

	var entries []*model.ConnexionWithUser
	if err := r.db.SelectContext(ctx, &entries, query); err != nil {
		return nil, fmt.Errorf("failed to list connection history: %w", err)
	}

	return entries, nil
}
