package router

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	authhandler "github.com/Freddy0703/Projet-d-etude-JUNIA/internal/handler/auth"
	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/handler/health"
	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/middleware"
	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/model"
)

// Handler registers its routes on an already-guarded group.
type Handler interface {
	RegisterRoutes(*gin.RouterGroup)
}

type Router struct {
	engine      *gin.Engine
	sessions    *middleware.SessionMiddleware
	authH       *authhandler.Handler
	adminH      Handler
	medecinH    Handler
	secretaireH Handler
	healthH     *health.Handler
	metrics     *routerMetrics
	config      Config
}

type Config struct {
	RateLimit     rate.Limit
	RateBurst     int
	MetricsPrefix string
	PublicDir     string
	UploadsDir    string
}

func NewRouter(
	sessions *middleware.SessionMiddleware,
	authH *authhandler.Handler,
	adminH Handler,
	medecinH Handler,
	secretaireH Handler,
	healthH *health.Handler,
	config Config,
) *Router {
	gin.SetMode(gin.ReleaseMode)
	middleware.RegisterValidations()

	r := &Router{
		engine:      gin.New(),
		sessions:    sessions,
		authH:       authH,
		adminH:      adminH,
		medecinH:    medecinH,
		secretaireH: secretaireH,
		healthH:     healthH,
		metrics:     initRouterMetrics(config.MetricsPrefix),
		config:      config,
	}

	rateLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		Rate:  config.RateLimit,
		Burst: config.RateBurst,
	})

	r.engine.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.ErrorHandler(),
		r.metricsMiddleware(),
		rateLimiter.RateLimit(),
		middleware.NoStore(),
		sessions.Resolve(),
	)

	return r
}

func (r *Router) Setup() {
	r.authH.RegisterRoutes(r.engine)

	// Uploaded photos, then every unrouted path falls through to the public
	// assets (stylesheets, scripts, images of the static pages).
	r.engine.Static("/images", r.config.UploadsDir)
	r.engine.NoRoute(func(c *gin.Context) {
		c.File(filepath.Join(r.config.PublicDir, filepath.Clean(c.Request.URL.Path)))
	})

	r.setupPages()

	api := r.engine.Group("/api")
	r.healthH.RegisterRoutes(api)

	r.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	admin := api.Group("/admin", r.sessions.RequireRole(middleware.APIKind, model.RoleAdministrateur))
	r.adminH.RegisterRoutes(admin)

	medecin := api.Group("/medecin", r.sessions.RequireRole(middleware.APIKind, model.RoleMedecin))
	r.medecinH.RegisterRoutes(medecin)

	secretaire := api.Group("/secretaire", r.sessions.RequireRole(middleware.APIKind, model.RoleSecretaire))
	r.secretaireH.RegisterRoutes(secretaire)
}

// setupPages registers the static role namespaces. Pages use the redirecting
// guard: an anonymous or mis-roled browser lands back on the login form.
func (r *Router) setupPages() {
	admin := r.engine.Group("/administrateur", r.sessions.RequireRole(middleware.PageKind, model.RoleAdministrateur))
	r.registerPages(admin, "administrateur",
		"dashboard", "parametres", "utilisateurs", "patients", "dossiers", "examens", "historique")

	medecin := r.engine.Group("/medecin", r.sessions.RequireRole(middleware.PageKind, model.RoleMedecin))
	r.registerPages(medecin, "medecin",
		"dashboard", "parametres", "patients", "dossiers")
	medecin.GET("/examens/:idDossier", r.pageFile("medecin", "examens"))

	secretaire := r.engine.Group("/secretaire", r.sessions.RequireRole(middleware.PageKind, model.RoleSecretaire))
	r.registerPages(secretaire, "secretaire",
		"dashboard", "patients", "medecins")
}

func (r *Router) registerPages(rg *gin.RouterGroup, dir string, pages ...string) {
	for _, page := range pages {
		rg.GET("/"+page, r.pageFile(dir, page))
	}
}

func (r *Router) pageFile(dir, page string) gin.HandlerFunc {
	path := filepath.Join(r.config.PublicDir, dir, page+".html")
	return func(c *gin.Context) {
		c.File(path)
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

type routerMetrics struct {
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	errorTotal      *prometheus.CounterVec
}

func initRouterMetrics(prefix string) *routerMetrics {
	m := &routerMetrics{
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: prefix + "_request_duration_seconds",
				Help: "Duration of HTTP requests in seconds",
			},
			[]string{"method", "path", "status"},
		),
		requestTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		errorTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_errors_total",
				Help: "Total number of HTTP errors",
			},
			[]string{"method", "path", "type"},
		),
	}

	prometheus.MustRegister(m.requestDuration, m.requestTotal, m.errorTotal)
	return m
}

func (r *Router) metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()

		c.Next()

		status := fmt.Sprintf("%d", c.Writer.Status())
		duration := time.Since(start).Seconds()

		r.metrics.requestDuration.WithLabelValues(c.Request.Method, path, status).Observe(duration)
		r.metrics.requestTotal.WithLabelValues(c.Request.Method, path, status).Inc()

		if c.Writer.Status() >= 400 {
			r.metrics.errorTotal.WithLabelValues(c.Request.Method, path, "http").Inc()
		}
	}
}
