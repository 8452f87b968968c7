package auth

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/config"
	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/handler"
	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/middleware"
	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/model"
	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/service/auth"
	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/service/historique"
	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/session"
)

// Handler owns the login and logout entry points. They are the only routes
// that create or destroy sessions.
type Handler struct {
	authSvc    *auth.Service
	history    *historique.Service
	sessions   session.Store
	sessionCfg config.SessionConfig
	publicDir  string
}

func NewHandler(authSvc *auth.Service, history *historique.Service, sessions session.Store, sessionCfg config.SessionConfig, publicDir string) *Handler {
	return &Handler{
		authSvc:    authSvc,
		history:    history,
		sessions:   sessions,
		sessionCfg: sessionCfg,
		publicDir:  publicDir,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/connexion")
	})
	r.GET("/connexion", h.ShowLogin)
	r.POST("/connexion", h.Login)
	r.GET("/deconnexion", h.Logout)
}

func (h *Handler) ShowLogin(c *gin.Context) {
	c.File(filepath.Join(h.publicDir, "connexion.html"))
}

// Login checks the form credentials, opens a session and bounces the browser
// to the caller's dashboard.
func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	principal, err := h.authSvc.Authenticate(c.Request.Context(), req.Login, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	token, err := h.sessions.Create(c.Request.Context(), principal)
	if err != nil {
		c.Error(err)
		return
	}

	c.SetCookie(
		h.sessionCfg.CookieName,
		token,
		int(h.sessionCfg.TTL().Seconds()),
		h.sessionCfg.CookiePath,
		"",
		h.sessionCfg.Secure,
		true,
	)

	if err := h.history.RecordLogin(c.Request.Context(), principal.ID); err != nil {
		// The session is already open; losing one audit row must not block
		// the login.
		log.Error().Err(err).Int64("id_user", principal.ID).Msg("failed to record login")
	}

	switch principal.Role {
	case model.RoleAdministrateur:
		c.Redirect(http.StatusFound, "/administrateur/dashboard")
	case model.RoleSecretaire:
		c.Redirect(http.StatusFound, "/secretaire/dashboard")
	case model.RoleMedecin:
		c.Redirect(http.StatusFound, "/medecin/dashboard")
	default:
		c.Redirect(http.StatusFound, "/connexion")
	}
}

// Logout destroys the session, expires the cookie and serves the logout page.
// It accepts anonymous requests: logging out twice is harmless.
func (h *Handler) Logout(c *gin.Context) {
	if token := middleware.SessionToken(c); token != "" {
		principal := middleware.Principal(c)

		if err := h.sessions.Destroy(c.Request.Context(), token); err != nil {
			log.Error().Err(err).Msg("failed to destroy session")
		}

		if principal != nil {
			if err := h.history.RecordLogout(c.Request.Context(), principal.ID); err != nil {
				log.Error().Err(err).Int64("id_user", principal.ID).Msg("failed to record logout")
			}
		}
	}

	c.SetCookie(h.sessionCfg.CookieName, "", -1, h.sessionCfg.CookiePath, "", h.sessionCfg.Secure, true)
	c.File(filepath.Join(h.publicDir, "deconnexion.html"))
}
