package patient

import (
	"context"
	"database/sql"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/model"
	apperrors "github.com/Freddy0703/Projet-d-etude-JUNIA/pkg/errors"
)

type fakePatientRepo struct {
	nextID   int64
	patients map[int64]*model.Patient
}

func newFakePatientRepo() *fakePatientRepo {
	return &fakePatientRepo{patients: make(map[int64]*model.Patient)}
}

func (r *fakePatientRepo) Create(_ context.Context, patient *model.Patient) error {
	r.nextID++
	patient.ID = r.nextID
	copy := *patient
	r.patients[patient.ID] = &copy
	return nil
}

func (r *fakePatientRepo) GetByID(_ context.Context, id int64) (*model.Patient, error) {
	p, ok := r.patients[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copy := *p
	return &copy, nil
}

func (r *fakePatientRepo) List(context.Context) ([]*model.Patient, error) {
	out := make([]*model.Patient, 0, len(r.patients))
	for _, p := range r.patients {
		copy := *p
		out = append(out, &copy)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakePatientRepo) Update(_ context.Context, patient *model.Patient) error {
	if _, ok := r.patients[patient.ID]; !ok {
		return nil
	}
	copy := *patient
	r.patients[patient.ID] = &copy
	return nil
}

func (r *fakePatientRepo) Delete(_ context.Context, id int64) error {
	delete(r.patients, id)
	return nil
}

func (r *fakePatientRepo) Count(context.Context) (int, error) { return len(r.patients), nil }

func (r *fakePatientRepo) CountBySexe(_ context.Context, sexe string) (int, error) {
	n := 0
	for _, p := range r.patients {
		if p.Sexe == sexe {
			n++
		}
	}
	return n, nil
}

func (r *fakePatientRepo) Last(context.Context, int) ([]*model.Patient, error) { return nil, nil }

func secretaire() *model.Principal {
	return &model.Principal{ID: 2, Role: model.RoleSecretaire, Login: "claire@hopital.fr"}
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	svc := NewService(newFakePatientRepo())
	caller := secretaire()

	created, err := svc.Create(context.Background(), caller, &model.CreatePatientRequest{
		Nom:         "Durand",
		Prenom:      "Alice",
		Age:         34,
		Tel:         "0601020304",
		Sexe:        model.SexeFemme,
		Nationalite: "Française",
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := svc.Get(context.Background(), caller, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestUpdateMissingPatientIsNoOp(t *testing.T) {
	repo := newFakePatientRepo()
	svc := NewService(repo)

	err := svc.Update(context.Background(), secretaire(), 42, &model.UpdatePatientRequest{
		Nom:    "Durand",
		Prenom: "Alice",
		Sexe:   model.SexeFemme,
	})
	assert.NoError(t, err)
	assert.Empty(t, repo.patients)
}

func TestDeleteTwiceIsIdempotent(t *testing.T) {
	svc := NewService(newFakePatientRepo())
	caller := secretaire()

	created, err := svc.Create(context.Background(), caller, &model.CreatePatientRequest{
		Nom:    "Durand",
		Prenom: "Alice",
		Sexe:   model.SexeFemme,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), caller, created.ID))
	assert.NoError(t, svc.Delete(context.Background(), caller, created.ID))

	list, err := svc.List(context.Background(), caller)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestMedecinCannotMutatePatients(t *testing.T) {
	svc := NewService(newFakePatientRepo())
	medecin := &model.Principal{ID: 3, Role: model.RoleMedecin}

	_, err := svc.Create(context.Background(), medecin, &model.CreatePatientRequest{
		Nom:    "Durand",
		Prenom: "Alice",
		Sexe:   model.SexeFemme,
	})
	assert.True(t, apperrors.IsCode(err, apperrors.ErrWrongRole))

	err = svc.Delete(context.Background(), medecin, 1)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrWrongRole))

	// Reading stays open to the medecin.
	_, err = svc.List(context.Background(), medecin)
	assert.NoError(t, err)
}

func TestAnonymousCallerIsRejected(t *testing.T) {
	svc := NewService(newFakePatientRepo())

	_, err := svc.List(context.Background(), nil)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrUnauthenticated))
}
