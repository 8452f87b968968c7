package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/time/rate"

	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/config"
	adminHandler "github.com/Freddy0703/Projet-d-etude-JUNIA/internal/handler/admin"
	authHandler "github.com/Freddy0703/Projet-d-etude-JUNIA/internal/handler/auth"
	healthHandler "github.com/Freddy0703/Projet-d-etude-JUNIA/internal/handler/health"
	medecinHandler "github.com/Freddy0703/Projet-d-etude-JUNIA/internal/handler/medecin"
	secretaireHandler "github.com/Freddy0703/Projet-d-etude-JUNIA/internal/handler/secretaire"
	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/middleware"
	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/repository/postgres"
	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/router"
	authService "github.com/Freddy0703/Projet-d-etude-JUNIA/internal/service/auth"
	dossierService "github.com/Freddy0703/Projet-d-etude-JUNIA/internal/service/dossier"
	examenService "github.com/Freddy0703/Projet-d-etude-JUNIA/internal/service/examen"
	historiqueService "github.com/Freddy0703/Projet-d-etude-JUNIA/internal/service/historique"
	patientService "github.com/Freddy0703/Projet-d-etude-JUNIA/internal/service/patient"
	statsService "github.com/Freddy0703/Projet-d-etude-JUNIA/internal/service/stats"
	userService "github.com/Freddy0703/Projet-d-etude-JUNIA/internal/service/user"
	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/session"
	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/upload"
	"github.com/Freddy0703/Projet-d-etude-JUNIA/pkg/logger"
	"github.com/Freddy0703/Projet-d-etude-JUNIA/pkg/security"
)

const publicDir = "public"

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLog := newAppLogger(cfg.Log.Level)

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		appLog.Fatal(err, "failed to connect to database")
	}
	defer db.Close()

	base := postgres.NewBaseRepository(db)
	userRepo := postgres.NewUserRepository(base)
	patientRepo := postgres.NewPatientRepository(base)
	dossierRepo := postgres.NewDossierRepository(base)
	examenRepo := postgres.NewExamenRepository(base)
	connexionRepo := postgres.NewConnexionRepository(base)

	hasher := security.NewBcryptHasher(bcrypt.DefaultCost)

	authSvc := authService.NewService(userRepo, hasher)
	userSvc := userService.NewService(userRepo, hasher)
	patientSvc := patientService.NewService(patientRepo)
	dossierSvc := dossierService.NewService(dossierRepo)
	examenSvc := examenService.NewService(examenRepo)
	historySvc := historiqueService.NewService(connexionRepo)
	statsSvc := statsService.NewService(userRepo, patientRepo, dossierRepo, examenRepo)

	sessions := newSessionStore(cfg, appLog)

	uploads, err := upload.NewStorage(cfg.Uploads.Dir, cfg.Uploads.MaxSizeBytes)
	if err != nil {
		appLog.Fatal(err, "failed to initialize upload storage")
	}

	sessionMW := middleware.NewSessionMiddleware(sessions, cfg.Session.CookieName)

	authH := authHandler.NewHandler(authSvc, historySvc, sessions, cfg.Session, publicDir)
	adminH := adminHandler.NewHandler(statsSvc, userSvc, authSvc, patientSvc, dossierSvc, examenSvc, historySvc, uploads, sessions)
	medecinH := medecinHandler.NewHandler(statsSvc, userSvc, authSvc, patientSvc, dossierSvc, examenSvc, uploads, sessions)
	secretaireH := secretaireHandler.NewHandler(statsSvc, userSvc, patientSvc)
	healthH := healthHandler.NewHandler(db)

	r := router.NewRouter(sessionMW, authH, adminH, medecinH, secretaireH, healthH, router.Config{
		RateLimit:     rate.Limit(cfg.RateLimit.RequestsPerSecond),
		RateBurst:     cfg.RateLimit.Burst,
		MetricsPrefix: "hopital",
		PublicDir:     publicDir,
		UploadsDir:    uploads.Dir(),
	})
	r.Setup()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	appLog.Info("server listening", "port", cfg.Server.Port)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.Fatal(err, "failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLog.Fatal(err, "server forced to shutdown")
	}

	appLog.Info("server exited properly")
}

// newAppLogger builds the process logger at the configured level.
func newAppLogger(level string) *logger.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	return logger.NewLogger(&logger.Config{
		Level:      lvl,
		TimeFormat: time.RFC3339,
		Output:     os.Stdout,
	})
}

// newSessionStore picks redis when a url is configured, otherwise the
// in-process store.
func newSessionStore(cfg *config.Config, appLog *logger.Logger) session.Store {
	if cfg.Redis.URL == "" {
		appLog.Info("no redis url configured, using in-memory sessions")
		return session.NewMemoryStore(cfg.Session.TTL())
	}

	store, err := session.NewRedisStore(cfg.Redis.URL, cfg.Session.TTL())
	if err != nil {
		appLog.Fatal(err, "failed to connect to redis")
	}
	return store
}
