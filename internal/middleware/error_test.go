package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	apperrors "github.com/Freddy0703/Projet-d-etude-JUNIA/pkg/errors"
)

func newErrorRouter(attached error) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/boom", func(c *gin.Context) {
		c.Error(attached)
	})
	return r
}

func TestErrorHandlerHidesWrappedDriverError(t *testing.T) {
	driverErr := fmt.Errorf("failed to list patients: %w",
		fmt.Errorf(`pq: password authentication failed for user "hopital"`))
	r := newErrorRouter(driverErr)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
	assert.NotContains(t, w.Body.String(), "pq:")
	assert.NotContains(t, w.Body.String(), "hopital")
}

func TestErrorHandlerHidesInternalErrorDetail(t *testing.T) {
	r := newErrorRouter(apperrors.NewInternal(fmt.Errorf("dial tcp 10.0.0.4:5432: connection refused")))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "dial tcp")
}

func TestErrorHandlerSurfacesTypedMessageOnly(t *testing.T) {
	r := newErrorRouter(apperrors.NewValidation("invalid request payload",
		fmt.Errorf("Key: 'CreatePatientRequest.Sexe' Error:Field validation")))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request payload")
	assert.NotContains(t, w.Body.String(), "CreatePatientRequest")
}

func TestErrorHandlerMapsNotFound(t *testing.T) {
	r := newErrorRouter(apperrors.NewNotFound("patient"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "patient not found")
}
