package user

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

// fakeUserRepo mirrors the role clause the real statements carry: writes in
// the WithRole variants only land on rows with a matching role.
type fakeUserRepo struct {
	nextID int64
	users  map[int64]*model.User
}

func newFakeUserRepo(users ...*model.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[int64]*model.User)}
	for _, u := range users {
		copy := *u
		repo.users[u.ID] = &copy
		if u.ID > repo.nextID {
			repo.nextID = u.ID
		}
	}
	return repo
}

func (r *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	r.nextID++
	user.ID = r.nextID
	copy := *user
	r.users[user.ID] = &copy
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copy := *u
	return &copy, nil
}

func (r *fakeUserRepo) GetByLogin(_ context.Context, login string) (*model.User, error) {
	for _, u := range r.users {
		if u.Login == login {
			copy := *u
			return &copy, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (r *fakeUserRepo) List(context.Context) ([]*model.User, error) { return nil, nil }

func (r *fakeUserRepo) ListByRole(_ context.Context, role string) ([]*model.Medecin, error) {
	var out []*model.Medecin
	for _, u := range r.users {
		if u.Role == role {
			out = append(out, &model.Medecin{ID: u.ID, Prenom: u.Prenom, Nom: u.Nom, Login: u.Login})
		}
	}
	return out, nil
}

func (r *fakeUserRepo) UpdateProfile(_ context.Context, id int64, prenom, nom, login, photo string) error {
	if u, ok := r.users[id]; ok {
		u.Prenom, u.Nom, u.Login, u.PhotoProfil = prenom, nom, login, photo
	}
	return nil
}

func (r *fakeUserRepo) UpdateWithRole(_ context.Context, id int64, role, prenom, nom, login string) error {
	if u, ok := r.users[id]; ok && u.Role == role {
		u.Prenom, u.Nom, u.Login = prenom, nom, login
	}
	return nil
}

func (r *fakeUserRepo) UpdatePassword(context.Context, int64, string) error { return nil }

func (r *fakeUserRepo) TouchDateConnexion(context.Context, int64) error { return nil }

func (r *fakeUserRepo) DeleteWithRole(_ context.Context, id int64, role string) error {
	if u, ok := r.users[id]; ok && u.Role == role {
		delete(r.users, id)
	}
	return nil
}

func (r *fakeUserRepo) CountByRole(_ context.Context, role string) (int, error) {
	n := 0
	for _, u := range r.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

func (r *fakeUserRepo) LastByRole(context.Context, string, int) ([]*model.UserSummary, error) {
	return nil, nil
}

func newTestService(users ...*model.User) (*Service, *fakeUserRepo) {
	repo := newFakeUserRepo(users...)
	return NewService(repo, security.NewBcryptHasher(bcrypt.MinCost)), repo
}

func admin() *model.Principal {
	return &model.Principal{ID: 1, Role: model.RoleAdministrateur, Login: "admin@hopital.fr"}
}

func secretaire() *model.Principal {
	return &model.Principal{ID: 2, Role: model.RoleSecretaire, Login: "claire@hopital.fr"}
}

func TestCreateHashesPassword(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(context.Background(), admin(), &model.CreateUserRequest{
		Prenom:   "Paul",
		Nom:      "Martin",
		Login:    "paul@hopital.fr",
		Password: "motdepasse",
		Role:     model.RoleMedecin,
	}, "")
	require.NoError(t, err)

	assert.NotEqual(t, "motdepasse", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("motdepasse")))
	assert.Equal(t, model.DefaultPhoto, created.PhotoProfil)
}

func TestCreateRequiresAdministrateur(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), secretaire(), &model.CreateUserRequest{
		Prenom:   "Paul",
		Nom:      "Martin",
		Login:    "paul@hopital.fr",
		Password: "motdepasse",
		Role:     model.RoleMedecin,
	}, "")
	assert.True(t, apperrors.IsCode(err, apperrors.ErrWrongRole))
}

func TestCreateMedecinForcesRole(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.CreateMedecin(context.Background(), secretaire(), &model.CreateMedecinRequest{
		Prenom:   "Paul",
		Nom:      "Martin",
		Login:    "paul@hopital.fr",
		Password: "motdepasse",
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleMedecin, created.Role)
}

func TestUpdateMedecinCannotTouchAdministrateur(t *testing.T) {
	adminRow := &model.User{ID: 1, Prenom: "Root", Nom: "Admin", Login: "admin@hopital.fr", Role: model.RoleAdministrateur}
	svc, repo := newTestService(adminRow)

	err := svc.UpdateMedecin(context.Background(), secretaire(), 1, &model.UpdateMedecinRequest{
		Prenom: "Pwned",
		Nom:    "Pwned",
		Login:  "pwned@hopital.fr",
	})
	require.NoError(t, err)

	// The administrateur row is untouched: the role clause excluded it.
	got, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "admin@hopital.fr", got.Login)
	assert.Equal(t, "Root", got.Prenom)
}

func TestDeleteMedecinCannotTouchAdministrateur(t *testing.T) {
	adminRow := &model.User{ID: 1, Login: "admin@hopital.fr", Role: model.RoleAdministrateur}
	medecinRow := &model.User{ID: 3, Login: "paul@hopital.fr", Role: model.RoleMedecin}
	svc, repo := newTestService(adminRow, medecinRow)

	require.NoError(t, svc.DeleteMedecin(context.Background(), secretaire(), 1))
	require.NoError(t, svc.DeleteMedecin(context.Background(), secretaire(), 3))

	_, err := repo.GetByID(context.Background(), 1)
	assert.NoError(t, err)
	_, err = repo.GetByID(context.Background(), 3)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestUpdateProfileKeepsBlankFields(t *testing.T) {
	row := &model.User{ID: 1, Prenom: "Root", Nom: "Admin", Login: "admin@hopital.fr", Role: model.RoleAdministrateur, PhotoProfil: "abc.png"}
	svc, repo := newTestService(row)

	caller := &model.Principal{ID: 1, Role: model.RoleAdministrateur, Prenom: "Root", Nom: "Admin", Login: "admin@hopital.fr", PhotoProfil: "abc.png"}
	refreshed, err := svc.UpdateProfile(context.Background(), caller, &model.UpdateProfileRequest{
		Prenom: "Renaud",
	}, "")
	require.NoError(t, err)

	assert.Equal(t, "Renaud", refreshed.Prenom)
	assert.Equal(t, "Admin", refreshed.Nom)
	assert.Equal(t, "admin@hopital.fr", refreshed.Login)
	assert.Equal(t, "abc.png", refreshed.PhotoProfil)

	got, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Renaud", got.Prenom)
	assert.Equal(t, "abc.png", got.PhotoProfil)
}

func TestUpdateProfileRejectsSecretaire(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.UpdateProfile(context.Background(), secretaire(), &model.UpdateProfileRequest{}, "")
	assert.True(t, apperrors.IsCode(err, apperrors.ErrWrongRole))
}
