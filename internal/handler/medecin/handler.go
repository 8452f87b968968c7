package medecin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/handler"
	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/middleware"
	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/model"
	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/service/auth"
	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/service/dossier"
	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/service/examen"
	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/service/patient"
	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/service/stats"
	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/service/user"
	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/session"
	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/upload"
)

// Handler serves the medecin API namespace: dossiers and examens, read-only
// patients, plus the medecin's own settings.
type Handler struct {
	stats    *stats.Service
	users    *user.Service
	auth     *auth.Service
	patients *patient.Service
	dossiers *dossier.Service
	examens  *examen.Service
	uploads  *upload.Storage
	sessions session.Store
}

func NewHandler(
	statsSvc *stats.Service,
	userSvc *user.Service,
	authSvc *auth.Service,
	patientSvc *patient.Service,
	dossierSvc *dossier.Service,
	examenSvc *examen.Service,
	uploads *upload.Storage,
	sessions session.Store,
) *Handler {
	return &Handler{
		stats:    statsSvc,
		users:    userSvc,
		auth:     authSvc,
		patients: patientSvc,
		dossiers: dossierSvc,
		examens:  examenSvc,
		uploads:  uploads,
		sessions: sessions,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/profile", h.Profile)
	r.GET("/dashboard", h.Dashboard)
	r.GET("/patients", h.ListPatients)
	r.GET("/dossiers", h.ListDossiers)
	r.GET("/dossiers/:idPatient", h.ListDossiersByPatient)
	r.POST("/dossier/add", h.AddDossier)
	r.POST("/dossier/update/:idDossier", h.UpdateDossier)
	r.GET("/dossier/delete/:idDossier", h.DeleteDossier)
	r.GET("/examens/:idDossier", h.ListExamens)
	r.POST("/examen/add", h.AddExamen)
	r.POST("/examen/edit/:id", h.EditExamen)
	r.GET("/examen/delete/:id", h.DeleteExamen)
	r.POST("/update", h.UpdateProfile)
	r.POST("/change-password", h.ChangePassword)
}

func (h *Handler) Profile(c *gin.Context) {
	c.JSON(http.StatusOK, middleware.Principal(c))
}

func (h *Handler) Dashboard(c *gin.Context) {
	dashboard, err := h.stats.MedecinDashboard(c.Request.Context(), middleware.Principal(c))
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

func (h *Handler) ListDossiers(c *gin.Context) {
	dossiers, err := h.dossiers.ListWithPatient(c.Request.Context(), middleware.Principal(c))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dossiers)
}

func (h *Handler) ListDossiersByPatient(c *gin.Context) {
	idPatient, err := handler.IDParam(c, "idPatient")
	if err != nil {
		c.Error(err)
		return
	}

	dossiers, err := h.dossiers.ListByPatient(c.Request.Context(), middleware.Principal(c), idPatient)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dossiers)
}

func (h *Handler) AddDossier(c *gin.Context) {
	var req model.CreateDossierRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	if _, err := h.dossiers.Create(c.Request.Context(), middleware.Principal(c), &req); err != nil {
		c.Error(err)
		return
	}

	c.Redirect(http.StatusFound, dossiersPage(req.IDPatient))
}

func (h *Handler) UpdateDossier(c *gin.Context) {
	idDossier, err := handler.IDParam(c, "idDossier")
	if err != nil {
		c.Error(err)
		return
	}

	var req model.UpdateDossierRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	idPatient, err := h.dossiers.Update(c.Request.Context(), middleware.Principal(c), idDossier, &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.Redirect(http.StatusFound, dossiersPage(idPatient))
}

func (h *Handler) DeleteDossier(c *gin.Context) {
	idDossier, err := handler.IDParam(c, "idDossier")
	if err != nil {
		c.Error(err)
		return
	}

	idPatient, err := h.dossiers.Delete(c.Request.Context(), middleware.Principal(c), idDossier)
	if err != nil {
		c.Error(err)
		return
	}

	c.Redirect(http.StatusFound, dossiersPage(idPatient))
}

func (h *Handler) ListExamens(c *gin.Context) {
	idDossier, err := handler.IDParam(c, "idDossier")
	if err != nil {
		c.Error(err)
		return
	}

	examens, err := h.examens.ListByDossier(c.Request.Context(), middleware.Principal(c), idDossier)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, examens)
}

func (h *Handler) AddExamen(c *gin.Context) {
	var req model.CreateExamenRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	if _, err := h.examens.Create(c.Request.Context(), middleware.Principal(c), &req); err != nil {
		c.Error(err)
		return
	}

	c.Redirect(http.StatusFound, examensPage(req.IDDossier))
}

func (h *Handler) EditExamen(c *gin.Context) {
	id, err := handler.IDParam(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	var req model.UpdateExamenRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	if err := h.examens.Update(c.Request.Context(), middleware.Principal(c), id, &req); err != nil {
		c.Error(err)
		return
	}

	c.Redirect(http.StatusFound, examensPage(req.IDDossier))
}

// DeleteExamen takes the parent dossier id through the "dossier" query
// parameter and routes the caller back to that dossier's examens.
func (h *Handler) DeleteExamen(c *gin.Context) {
	id, err := handler.IDParam(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	idDossier, err := strconv.ParseInt(c.Query("dossier"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid dossier"))
		return
	}

	if err := h.examens.Delete(c.Request.Context(), middleware.Principal(c), id); err != nil {
		c.Error(err)
		return
	}

	c.Redirect(http.StatusFound, examensPage(idDossier))
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	var req model.UpdateProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	photo := ""
	if fh, err := c.FormFile(upload.Field); err == nil {
		stored, err := h.uploads.Store(fh)
		if err != nil {
			log.Error().Err(err).Msg("failed to store profile photo")
			c.JSON(http.StatusInternalServerError, handler.NewErrorResponse("failed to store file"))
			return
		}
		photo = stored.Name
	}

	refreshed, err := h.users.UpdateProfile(c.Request.Context(), middleware.Principal(c), &req, photo)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.sessions.Update(c.Request.Context(), middleware.SessionToken(c), refreshed); err != nil {
		c.Error(err)
		return
	}

	c.Redirect(http.StatusFound, "/medecin/parametres")
}

func (h *Handler) ChangePassword(c *gin.Context) {
	var req model.ChangePasswordRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	if err := h.auth.ChangePassword(c.Request.Context(), middleware.Principal(c).ID, &req); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(nil))
}

func dossiersPage(idPatient int64) string {
	return "/medecin/dossiers?patient=" + strconv.FormatInt(idPatient, 10)
}

func examensPage(idDossier int64) string {
	return "/medecin/examens/" + strconv.FormatInt(idDossier, 10)
}
