package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	playgroundvalidator "github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"cvgen_backend/database"
	"cvgen_backend/internal/auth"
	"cvgen_backend/internal/config"
	"cvgen_backend/internal/email"
	"cvgen_backend/internal/events"
	"cvgen_backend/internal/handlers"
	"cvgen_backend/internal/i18n"
	"cvgen_backend/internal/logger"
	"cvgen_backend/internal/middleware"
	"cvgen_backend/internal/models"
	"cvgen_backend/internal/renderer"
	"cvgen_backend/internal/routes"
	"cvgen_backend/internal/services"
	"cvgen_backend/internal/validator"
	"cvgen_backend/internal/workers"
)

// Run boots the whole application: config, logging, database,
// rendering pipeline, event dispatcher, HTTP server. Blocks until
// SIGINT/SIGTERM, then shuts down gracefully.
func Run() error {
	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)
	auth.InitJWT(cfg.JWT.Secret)

	db, err := database.ConnectGorm()
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(db); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	if err := Seed(db, cfg); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	translator := i18n.New(cfg.I18n.DefaultLocale)

	template, err := renderer.NewCVTemplate(translator)
	if err != nil {
		return fmt.Errorf("template parsing failed: %w", err)
	}

	pdf := renderer.NewChromedpRenderer(
		cfg.Renderer.ChromePath,
		time.Duration(cfg.Renderer.TimeoutSeconds)*time.Second,
	)

	provider, err := buildEmailProvider(cfg)
	if err != nil {
		return fmt.Errorf("email provider setup failed: %w", err)
	}
	defer provider.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dispatcher := events.NewDispatcher(32)
	dispatcher.Subscribe(events.NewEmailListener(provider, translator))
	go dispatcher.Run(ctx)

	sc := services.NewServiceContainer(services.ContainerDeps{
		JWTTTL:     time.Duration(cfg.JWT.TTL) * time.Minute,
		RefreshTTL: time.Duration(cfg.JWT.RefreshTTL) * time.Hour,
		Template:   template,
		PDF:        pdf,
		Dispatcher: dispatcher,
	})

	cleanup := workers.NewTokenCleanupWorker(db, time.Hour)
	go cleanup.Run(ctx)

	router := SetupRouter(db, handlers.NewAppHandlers(sc), cfg.Server.Env)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", addr, "env", cfg.Server.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// SetupRouter builds the gin engine with the full middleware chain. The
// integration harness calls this with a transaction-injecting db.
func SetupRouter(db *gorm.DB, h *handlers.AppHandlers, env string) *gin.Engine {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	registerBindingRules()

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.CORSMiddleware(),
		middleware.DBMiddleware(db),
	)

	routes.Register(router, h)
	return router
}

// registerBindingRules installs the custom validation tags on gin's
// binding engine so DTO binding tags like tel_digits work.
func registerBindingRules() {
	if v, ok := binding.Validator.Engine().(*playgroundvalidator.Validate); ok {
		validator.RegisterCustomRules(v)
	}
}

func buildEmailProvider(cfg *config.Config) (email.Provider, error) {
	if !cfg.Email.Enabled {
		logger.Info("email delivery disabled")
		return email.NoopProvider{}, nil
	}
	return email.NewSMTPProvider(email.Config{
		Host:      cfg.Email.SMTPHost,
		Port:      cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
	})
}

// Seed inserts the baseline data: the output languages and, when
// configured, the first administrator account.
func Seed(db *gorm.DB, cfg *config.Config) error {
	if err := seedCVLanguages(db); err != nil {
		return err
	}
	return seedFirstAdmin(db, cfg)
}

func seedCVLanguages(db *gorm.DB) error {
	defaults := []models.CVLanguage{
		{Language: "en-us", Name: "English"},
		{Language: "pt-br", Name: "Português"},
	}
	for _, lang := range defaults {
		var existing models.CVLanguage
		err := db.Where(models.CVLanguage{Language: lang.Language}).
			Attrs(models.CVLanguage{Name: lang.Name}).
			FirstOrCreate(&existing).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.FirstAdminEmail == "" || cfg.FirstAdminPassword == "" {
		return nil
	}

	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", cfg.FirstAdminEmail).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(cfg.FirstAdminPassword)
	if err != nil {
		return err
	}

	admin := &models.User{
		FirstName:    "Admin",
		LastName:     "User",
		BirthDate:    time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
		Email:        cfg.FirstAdminEmail,
		Tel:          "00000000000",
		PasswordHash: hash,
		IsSuperuser:  true,
	}
	if err := db.Create(admin).Error; err != nil {
		return err
	}
	logger.Info("first admin account created", "email", cfg.FirstAdminEmail)
	return nil
}
