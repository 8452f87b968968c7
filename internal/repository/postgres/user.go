package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/model"
	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/repository"
)

type userRepository struct {
	BaseRepository
}

func NewUserRepository(base BaseRepository) repository.UserRepository {
	return &userRepository{base}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	query := `
		INSERT INTO utilisateurs (
			prenom, nom, login, password_hash, role, photo_profil
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id_user
	`

	if err := r.db.QueryRowContext(ctx, query,
		user.Prenom,
		user.Nom,
		user.Login,
		user.PasswordHash,
		user.Role,
		user.PhotoProfil,
	).Scan(&user.ID); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	query := `
		SELECT * FROM utilisateurs
		WHERE id_user = $1
	`

	var user model.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

func (r *userRepository) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	query := `
		SELECT * FROM utilisateurs
		WHERE login = $1
	`

	var user model.User
	if err := r.db.GetContext(ctx, &user, query, login); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get user by login: %w", err)
	}

	return &user, nil
}

func (r *userRepository) List(ctx context.Context) ([]*model.User, error) {
	query := `
		SELECT * FROM utilisateurs
		ORDER BY id_user
	`

	var users []*model.User
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}

func (r *userRepository) ListByRole(ctx context.Context, role string) ([]*model.Medecin, error) {
	query := `
		SELECT id_user, prenom, nom, login FROM utilisateurs
		WHERE role = $1
		ORDER BY id_user
	`

	var users []*model.Medecin
	if err := r.db.SelectContext(ctx, &users, query, role); err != nil {
		return nil, fmt.Errorf("failed to list users by role: %w", err)
	}

	return users, nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, id int64, prenom, nom, login, photo string) error {
	query := `
		UPDATE utilisateurs SET
			prenom = $1,
			nom = $2,
			login = $3,
			photo_profil = $4
		WHERE id_user = $5
	`

	if _, err := r.db.ExecContext(ctx, query, prenom, nom, login, photo, id); err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}

	return nil
}

func (r *userRepository) UpdateWithRole(ctx context.Context, id int64, role, prenom, nom, login string) error {
	query := `
		UPDATE utilisateurs SET
			prenom = $1,
			nom = $2,
			login = $3
		WHERE id_user = $4 AND role = $5
	`

	// Zero rows means either no such user or a row outside the caller's
	// reach; both are a silent no-op.
	if _, err := r.db.ExecContext(ctx, query, prenom, nom, login, id, role); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	return nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	query := `
		UPDATE utilisateurs SET password_hash = $1
		WHERE id_user = $2
	`

	if _, err := r.db.ExecContext(ctx, query, passwordHash, id); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

func (r *userRepository) TouchDateConnexion(ctx context.Context, id int64) error {
	query := `
		UPDATE utilisateurs SET date_connexion = NOW()
		WHERE id_user = $1
	`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to update connection date: %w", err)
	}

	return nil
}

func (r *userRepository) DeleteWithRole(ctx context.Context, id int64, role string) error {
	query := `
		DELETE FROM utilisateurs
		WHERE id_user = $1 AND role = $2
	`

	if _, err := r.db.ExecContext(ctx, query, id, role); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}

func (r *userRepository) CountByRole(ctx context.Context, role string) (int, error) {
	query := `SELECT COUNT(*) FROM utilisateurs WHERE role = $1`

	var count int
	if err := r.db.GetContext(ctx, &count, query, role); err != nil {
		return 0, fmt.Errorf("failed to count users by role: %w", err)
	}

	return count, nil
}

func (r *userRepository) LastByRole(ctx context.Context, role string, n int) ([]*model.UserSummary, error) {
	query := `
		SELECT prenom, nom, login, date_connexion FROM utilisateurs
		WHERE role = $1
		ORDER BY id_user DESC
		LIMIT $2
	`

	var users []*model.UserSummary
	if err := r.db.SelectContext(ctx, &users, query, role, n); err != nil {
		return nil, fmt.Errorf("failed to list recent users: %w", err)
	}

	return users, nil
}
