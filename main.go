package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/aveslog/backend/internal/config"
	"github.com/aveslog/backend/internal/db"
	"github.com/aveslog/backend/internal/handler"
	"github.com/aveslog/backend/internal/link"
	"github.com/aveslog/backend/internal/locale"
	"github.com/aveslog/backend/internal/mail"
	"github.com/aveslog/backend/internal/service"
)

// @title Aveslog API
// @version 1.0
// @description Bird sighting service with account registration and token authentication.
// @BasePath /
func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg := config.Load()
	ctx := context.Background()

	pool, err := db.NewPostgresPool(ctx)
	if err != nil {
		logger.Fatal("connect postgres", zap.Error(err))
	}
	defer pool.Close()

	store := &db.Postgres{Pool: pool}
	if err := store.EnsureSchema(ctx); err != nil {
		logger.Fatal("ensure schema", zap.Error(err))
	}

	tokens, err := service.NewTokenService(cfg.Auth)
	if err != nil {
		logger.Fatal("token service", zap.Error(err))
	}

	var dispatcher mail.Dispatcher
	if cfg.Mail.Host != "" {
		dispatcher = &mail.SMTPDispatcher{
			Host:     cfg.Mail.Host,
			Port:     cfg.Mail.Port,
			Username: cfg.Mail.Username,
			Password: cfg.Mail.Password,
			Sender:   cfg.Mail.Sender,
		}
	} else {
		logger.Info("SMTP_HOST unset, mail goes to the log")
		dispatcher = &mail.LogDispatcher{Logger: logger}
	}

	links := link.NewFactory(cfg.Links.FrontendHost, cfg.Links.ExternalHost)
	loader := locale.NewLoader(cfg.Locales.Path, &locale.LogMissSink{Logger: logger})
	locales := locale.NewRepository(cfg.Locales.Path, store, loader)

	auth := service.NewAuthService(store, tokens)
	registrations := service.NewRegistrationService(store, dispatcher, links, logger)
	resets := service.NewPasswordResetService(store, dispatcher, links, logger)
	sightings := service.NewSightingService(store)

	registrationHandler := handler.NewRegistrationHandler(registrations, store, locales)
	authHandler := handler.NewAuthHandler(auth, resets, locales)
	accountHandler := handler.NewAccountHandler(store)
	birdHandler := handler.NewBirdHandler(store)
	sightingHandler := handler.NewSightingHandler(sightings)
	localeHandler := handler.NewLocaleHandler(locales)
	healthHandler := handler.NewHealthHandler()

	router := gin.Default()
	router.Use(handler.RequestID())

	authenticated := handler.RequireAuthentication(auth)

	router.GET("/health", healthHandler.Ping)
	router.GET("/openapi.json", handler.OpenAPIDoc)
	router.GET("/locales", localeHandler.GetLocales)

	router.POST("/registration-requests", registrationHandler.PostRegistrationRequest)
	router.GET("/registration-requests/:token", registrationHandler.GetRegistrationRequest)
	router.POST("/accounts", registrationHandler.CreateAccount)

	router.POST("/authentication/refresh-token", authHandler.PostRefreshToken)
	router.DELETE("/authentication/refresh-token/:id", authenticated, authHandler.DeleteRefreshToken)
	router.GET("/authentication/access-token", authHandler.GetAccessToken)
	router.POST("/authentication/password-reset", authHandler.PostPasswordResetEmail)
	router.POST("/authentication/password-reset/:token", authHandler.PostPasswordReset)
	router.POST("/authentication/password", authenticated, authHandler.PostPassword)

	router.GET("/accounts", authenticated, accountHandler.GetAccounts)
	router.GET("/accounts/:username", authenticated, accountHandler.GetAccount)
	router.GET("/account", authenticated, accountHandler.GetAuthenticatedAccount)

	router.GET("/birds", birdHandler.GetBirds)
	router.GET("/birds/:id", birdHandler.GetBird)

	router.GET("/profile/:birderId/sightings", authenticated, sightingHandler.GetBirderSightings)
	router.POST("/sightings", authenticated, sightingHandler.PostSighting)
	router.GET("/sightings/:id", authenticated, sightingHandler.GetSighting)
	router.DELETE("/sightings/:id", authenticated, sightingHandler.DeleteSighting)

	logger.Info("starting http server", zap.String("addr", cfg.HTTP.Addr))
	if err := router.Run(cfg.HTTP.Addr); err != nil {
		logger.Fatal("http server", zap.Error(err))
	}
}
