package auth

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/model"
	apperrors "github.com/Freddy0703/Projet-d-etude-JUNIA/pkg/errors"
	"github.com/Freddy0703/Projet-d-etude-JUNIA/pkg/security"
)

type fakeUserRepo struct {
	users map[string]*model.User
}

func newFakeUserRepo(users ...*model.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[string]*model.User)}
	for _, u := range users {
		repo.users[u.Login] = u
	}
	return repo
}

func (r *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	r.users[user.Login] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*model.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			copy := *u
			return &copy, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (r *fakeUserRepo) GetByLogin(_ context.Context, login string) (*model.User, error) {
	u, ok := r.users[login]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copy := *u
	return &copy, nil
}

func (r *fakeUserRepo) List(context.Context) ([]*model.User, error) { return nil, nil }

func (r *fakeUserRepo) ListByRole(context.Context, string) ([]*model.Medecin, error) {
	return nil, nil
}

func (r *fakeUserRepo) UpdateProfile(context.Context, int64, string, string, string, string) error {
	return nil
}

func (r *fakeUserRepo) UpdateWithRole(context.Context, int64, string, string, string, string) error {
	return nil
}

func (r *fakeUserRepo) UpdatePassword(_ context.Context, id int64, hash string) error {
	for _, u := range r.users {
		if u.ID == id {
			u.PasswordHash = hash
		}
	}
	return nil
}

func (r *fakeUserRepo) TouchDateConnexion(context.Context, int64) error { return nil }

func (r *fakeUserRepo) DeleteWithRole(context.Context, int64, string) error { return nil }

func (r *fakeUserRepo) CountByRole(context.Context, string) (int, error) { return 0, nil }

func (r *fakeUserRepo) LastByRole(context.Context, string, int) ([]*model.UserSummary, error) {
	return nil, nil
}

func seedUser(t *testing.T, login, password, role string) *model.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return &model.User{
		ID:           1,
		Prenom:       "Paul",
		Nom:          "Martin",
		Login:        login,
		PasswordHash: string(hash),
		Role:         role,
	}
}

func TestAuthenticateSuccess(t *testing.T) {
	user := seedUser(t, "paul@hopital.fr", "motdepasse", model.RoleMedecin)
	svc := NewService(newFakeUserRepo(user), security.NewBcryptHasher(bcrypt.MinCost))

	principal, err := svc.Authenticate(context.Background(), "paul@hopital.fr", "motdepasse")
	require.NoError(t, err)

	assert.Equal(t, int64(1), principal.ID)
	assert.Equal(t, model.RoleMedecin, principal.Role)
	assert.Equal(t, "paul@hopital.fr", principal.Login)
	assert.Equal(t, model.DefaultPhoto, principal.PhotoProfil)
}

func TestAuthenticateLegacyHashTag(t *testing.T) {
	user := seedUser(t, "paul@hopital.fr", "motdepasse", model.RoleAdministrateur)
	user.PasswordHash = "$2y$" + user.PasswordHash[4:]
	svc := NewService(newFakeUserRepo(user), security.NewBcryptHasher(bcrypt.MinCost))

	principal, err := svc.Authenticate(context.Background(), "paul@hopital.fr", "motdepasse")
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdministrateur, principal.Role)
}

func TestAuthenticateUnknownLogin(t *testing.T) {
	svc := NewService(newFakeUserRepo(), security.NewBcryptHasher(bcrypt.MinCost))

	_, err := svc.Authenticate(context.Background(), "absent@hopital.fr", "motdepasse")
	assert.True(t, apperrors.IsCode(err, apperrors.ErrUserNotFound))
}

func TestAuthenticateWrongPassword(t *testing.T) {
	user := seedUser(t, "paul@hopital.fr", "motdepasse", model.RoleMedecin)
	svc := NewService(newFakeUserRepo(user), security.NewBcryptHasher(bcrypt.MinCost))

	_, err := svc.Authenticate(context.Background(), "paul@hopital.fr", "mauvais")
	assert.True(t, apperrors.IsCode(err, apperrors.ErrBadPassword))
}

func TestChangePassword(t *testing.T) {
	user := seedUser(t, "paul@hopital.fr", "motdepasse", model.RoleMedecin)
	repo := newFakeUserRepo(user)
	hasher := security.NewBcryptHasher(bcrypt.MinCost)
	svc := NewService(repo, hasher)

	err := svc.ChangePassword(context.Background(), 1, &model.ChangePasswordRequest{
		CurrentPassword: "motdepasse",
		NewPassword:     "nouveaumdp1",
		ConfirmPassword: "nouveaumdp1",
	})
	require.NoError(t, err)

	_, err = svc.Authenticate(context.Background(), "paul@hopital.fr", "nouveaumdp1")
	assert.NoError(t, err)
}

func TestChangePasswordBadCurrent(t *testing.T) {
	user := seedUser(t, "paul@hopital.fr", "motdepasse", model.RoleMedecin)
	svc := NewService(newFakeUserRepo(user), security.NewBcryptHasher(bcrypt.MinCost))

	err := svc.ChangePassword(context.Background(), 1, &model.ChangePasswordRequest{
		CurrentPassword: "mauvais",
		NewPassword:     "nouveaumdp1",
		ConfirmPassword: "nouveaumdp1",
	})
	assert.True(t, apperrors.IsCode(err, apperrors.ErrBadPassword))
}

func TestChangePasswordMismatchKeepsOldHash(t *testing.T) {
	user := seedUser(t, "paul@hopital.fr", "motdepasse", model.RoleMedecin)
	repo := newFakeUserRepo(user)
	svc := NewService(repo, security.NewBcryptHasher(bcrypt.MinCost))

	err := svc.ChangePassword(context.Background(), 1, &model.ChangePasswordRequest{
		CurrentPassword: "motdepasse",
		NewPassword:     "nouveaumdp1",
		ConfirmPassword: "autrechose1",
	})
	assert.True(t, apperrors.IsCode(err, apperrors.ErrValidation))

	// The old password must still work.
	_, err = svc.Authenticate(context.Background(), "paul@hopital.fr", "motdepasse")
	assert.NoError(t, err)
}
