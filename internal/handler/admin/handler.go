package admin

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
	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/service/historique"
	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/service/patient"
	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/service/stats"
	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/service/user"
	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/session"
	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/upload"
)

// Handler serves the administrateur API namespace. Every route is behind the
// Administrateur session gate; the services check the role a second time.
type Handler struct {
	stats    *stats.Service
	users    *user.Service
	auth     *auth.Service
	patients *patient.Service
	dossiers *dossier.Service
	examens  *examen.Service
	history  *historique.Service
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
	historySvc *historique.Service,
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
		history:  historySvc,
		uploads:  uploads,
		sessions: sessions,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/dashboard", h.Dashboard)
	r.GET("/profile", h.Profile)
	r.POST("/update", h.UpdateProfile)
	r.POST("/change-password", h.ChangePassword)
	r.POST("/add-user", h.AddUser)
	r.GET("/users", h.ListUsers)
	r.GET("/patients", h.ListPatients)
	r.GET("/patient/:id", h.GetPatient)
	r.POST("/patient/edit/:id", h.EditPatient)
	r.GET("/patient/delete/:id", h.DeletePatient)
	r.GET("/dossiers", h.ListDossiers)
	r.GET("/examens/:idDossier", h.ListExamens)
	r.POST("/examen/edit/:id", h.EditExamen)
	r.GET("/examen/delete/:id", h.DeleteExamen)
	r.GET("/historique", h.Historique)
}

func (h *Handler) Dashboard(c *gin.Context) {
	dashboard, err := h.stats.AdminDashboard(c.Request.Context(), middleware.Principal(c))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

func (h *Handler) Profile(c *gin.Context) {
	c.JSON(http.StatusOK, middleware.Principal(c))
}

// UpdateProfile applies the settings form, stores the optional photo and
// writes the refreshed principal back to the session store before bouncing to
// the settings page.
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

	c.Redirect(http.StatusFound, "/administrateur/parametres")
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

func (h *Handler) AddUser(c *gin.Context) {
	var req model.CreateUserRequest
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

	if _, err := h.users.Create(c.Request.Context(), middleware.Principal(c), &req, photo); err != nil {
		c.Error(err)
		return
	}

	c.Redirect(http.StatusFound, "/administrateur/utilisateurs")
}

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.users.List(c.Request.Context(), middleware.Principal(c))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *Handler) ListPatients(c *gin.Context) {
	patients, err := h.patients.List(c.Request.Context(), middleware.Principal(c))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, patients)
}

func (h *Handler) GetPatient(c *gin.Context) {
	id, err := handler.IDParam(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	p, err := h.patients.Get(c.Request.Context(), middleware.Principal(c), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) EditPatient(c *gin.Context) {
	id, err := handler.IDParam(c, "id")
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

	c.Redirect(http.StatusFound, "/administrateur/patients")
}

func (h *Handler) DeletePatient(c *gin.Context) {
	id, err := handler.IDParam(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.patients.Delete(c.Request.Context(), middleware.Principal(c), id); err != nil {
		c.Error(err)
		return
	}

	c.Redirect(http.StatusFound, "/administrateur/patients")
}

func (h *Handler) ListDossiers(c *gin.Context) {
	dossiers, err := h.dossiers.ListWithPatient(c.Request.Context(), middleware.Principal(c))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dossiers)
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

	c.Redirect(http.StatusFound, "/administrateur/examens?idDossier="+strconv.FormatInt(req.IDDossier, 10))
}

func (h *Handler) DeleteExamen(c *gin.Context) {
	id, err := handler.IDParam(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.examens.Delete(c.Request.Context(), middleware.Principal(c), id); err != nil {
		c.Error(err)
		return
	}

	c.Redirect(http.StatusFound, "/administrateur/dossiers")
}

func (h *Handler) Historique(c *gin.Context) {
	history, err := h.history.List(c.Request.Context(), middleware.Principal(c))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, history)
}
