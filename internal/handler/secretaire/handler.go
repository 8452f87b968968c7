package secretaire

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/handler"
	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/middleware"
	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/model"
	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/service/patient"
	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/service/stats"
	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/service/user"
)

// Handler serves the secretaire API namespace: patients and Medecin-role
// accounts only.
type Handler struct {
	stats    *stats.Service
	users    *user.Service
	patients *patient.Service
}

func NewHandler(statsSvc *stats.Service, userSvc *user.Service, patientSvc *patient.Service) *Handler {
	return &Handler{
		stats:    statsSvc,
		users:    userSvc,
		patients: patientSvc,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/profile", h.Profile)
	r.GET("/dashboard", h.Dashboard)
	r.GET("/patients", h.ListPatients)
	r.POST("/patient/add", h.AddPatient)
	r.POST("/patient/edit/:idPatient", h.EditPatient)
	r.GET("/patient/delete/:idPatient", h.DeletePatient)
	r.GET("/medecins", h.ListMedecins)
	r.POST("/medecin/add", h.AddMedecin)
	r.POST("/medecin/edit/:idUser", h.EditMedecin)
	r.GET("/medecin/delete/:idUser", h.DeleteMedecin)
}

func (h *Handler) Profile(c *gin.Context) {
	c.JSON(http.StatusOK, middleware.Principal(c))
}

func (h *Handler) Dashboard(c *gin.Context) {
	dashboard, err := h.stats.SecretaireDashboard(c.Request.Context(), middleware.Principal(c))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

func (h *Handler) ListPatients(c *gin.Context) {
	patients, err := h.patients.List(c.Request.Context(), middleware.Principal(c))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, patients)
}

func (h *Handler) AddPatient(c *gin.Context) {
	var req model.CreatePatientRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	if _, err := h.patients.Create(c.Request.Context(), middleware.Principal(c), &req); err != nil {
		c.Error(err)
		return
	}

	c.Redirect(http.StatusFound, "/secretaire/patients")
}

func (h *Handler) EditPatient(c *gin.Context) {
	id, err := handler.IDParam(c, "idPatient")
	if err != nil {
		c.Error(err)
		return
	}

	var req model.UpdatePatientRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	if err := h.patients.Update(c.Request.Context(), middleware.Principal(c), id, &req); err != nil {
		c.Error(err)
		return
	}

	c.Redirect(http.StatusFound, "/secretaire/patients")
}

func (h *Handler) DeletePatient(c *gin.Context) {
	id, err := handler.IDParam(c, "idPatient")
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.patients.Delete(c.Request.Context(), middleware.Principal(c), id); err != nil {
		c.Error(err)
		return
	}

	c.Redirect(http.StatusFound, "/secretaire/patients")
}

func (h *Handler) ListMedecins(c *gin.Context) {
	medecins, err := h.users.ListMedecins(c.Request.Context(), middleware.Principal(c))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, medecins)
}

func (h *Handler) AddMedecin(c *gin.Context) {
	var req model.CreateMedecinRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	if _, err := h.users.CreateMedecin(c.Request.Context(), middleware.Principal(c), &req); err != nil {
		c.Error(err)
		return
	}

	c.Redirect(http.StatusFound, "/secretaire/medecins")
}

func (h *Handler) EditMedecin(c *gin.Context) {
	id, err := handler.IDParam(c, "idUser")
	if err != nil {
		c.Error(err)
		return
	}

	var req model.UpdateMedecinRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	if err := h.users.UpdateMedecin(c.Request.Context(), middleware.Principal(c), id, &req); err != nil {
		c.Error(err)
		return
	}

	c.Redirect(http.StatusFound, "/secretaire/medecins")
}

func (h *Handler) DeleteMedecin(c *gin.Context) {
	id, err := handler.IDParam(c, "idUser")
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.users.DeleteMedecin(c.Request.Context(), middleware.Principal(c), id); err != nil {
		c.Error(err)
		return
	}

	c.Redirect(http.StatusFound, "/secretaire/medecins")
}
