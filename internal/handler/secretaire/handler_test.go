package secretaire

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/middleware"
	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/model"
	patientService "github.com/Freddy0703/Projet-d-etude-JUNIA/internal/service/patient"
	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/session"
)

const cookieName = "hopital_session"

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

func (r *fakePatientRepo) CountBySexe(context.Context, string) (int, error) { return 0, nil }

func (r *fakePatientRepo) Last(context.Context, int) ([]*model.Patient, error) { return nil, nil }

func newTestServer(t *testing.T) (*gin.Engine, session.Store, *fakePatientRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	middleware.RegisterValidations()

	store := session.NewMemoryStore(time.Hour)
	mw := middleware.NewSessionMiddleware(store, cookieName)
	repo := newFakePatientRepo()
	h := NewHandler(nil, nil, patientService.NewService(repo))

	r := gin.New()
	r.Use(middleware.ErrorHandler(), mw.Resolve())
	group := r.Group("/api/secretaire", mw.RequireRole(middleware.APIKind, model.RoleSecretaire))
	h.RegisterRoutes(group)

	return r, store, repo
}

func openSession(t *testing.T, store session.Store, role string) string {
	t.Helper()

	token, err := store.Create(context.Background(), &model.Principal{ID: 2, Role: role, Login: "claire@hopital.fr"})
	require.NoError(t, err)
	return token
}

func postForm(r *gin.Engine, path, token string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if token != "" {
		req.AddCookie(&http.Cookie{Name: cookieName, Value: token})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAddPatientRedirectsToListing(t *testing.T) {
	r, store, repo := newTestServer(t)
	token := openSession(t, store, model.RoleSecretaire)

	w := postForm(r, "/api/secretaire/patient/add", token, url.Values{
		"nom":         {"Durand"},
		"prenom":      {"Alice"},
		"age":         {"34"},
		"tel":         {"0601020304"},
		"sexe":        {model.SexeFemme},
		"nationalite": {"Française"},
	})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/secretaire/patients", w.Header().Get("Location"))

	require.Len(t, repo.patients, 1)
	created := repo.patients[1]
	assert.Equal(t, "Durand", created.Nom)
	assert.Equal(t, model.SexeFemme, created.Sexe)
}

func TestAddPatientRejectsInvalidSexe(t *testing.T) {
	r, store, repo := newTestServer(t)
	token := openSession(t, store, model.RoleSecretaire)

	w := postForm(r, "/api/secretaire/patient/add", token, url.Values{
		"nom":    {"Durand"},
		"prenom": {"Alice"},
		"sexe":   {"Autre"},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, repo.patients)
}

func TestAddPatientRejectsMedecinSession(t *testing.T) {
	r, store, repo := newTestServer(t)
	token := openSession(t, store, model.RoleMedecin)

	w := postForm(r, "/api/secretaire/patient/add", token, url.Values{
		"nom":    {"Durand"},
		"prenom": {"Alice"},
		"sexe":   {model.SexeFemme},
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, repo.patients)
}

func TestDeletePatientIsIdempotent(t *testing.T) {
	r, store, repo := newTestServer(t)
	token := openSession(t, store, model.RoleSecretaire)

	require.NoError(t, repo.Create(context.Background(), &model.Patient{Nom: "Durand", Prenom: "Alice", Sexe: model.SexeFemme}))

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/secretaire/patient/delete/1", nil)
		req.AddCookie(&http.Cookie{Name: cookieName, Value: token})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/secretaire/patients", w.Header().Get("Location"))
	}

	assert.Empty(t, repo.patients)
}
