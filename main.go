// File: medcrew/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medcrew/config"
	"medcrew/cron"
	"medcrew/database"
	accountRepoPkg "medcrew/database/repository/account"
	profileRepoPkg "medcrew/database/repository/profile"
	"medcrew/handlers"
	"medcrew/middleware"
	"medcrew/routes"
	"medcrew/services/account"
	"medcrew/services/notification"
	"medcrew/services/profile"
	"medcrew/services/registration"
	"medcrew/services/storage"
	"medcrew/services/tasks"
	"medcrew/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	documentStore, err := storage.NewDocumentStore()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize document store: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	accountRepo := accountRepoPkg.NewMongoAccountRepo()
	profileRepo := profileRepoPkg.NewMongoProfileRepo()

	// services.
	notifier := notification.NewFCMNotifier(accountRepo)

	accountService := &account.DefaultAccountService{
		Repo: accountRepo,
	}

	// Audit session lifecycle changes; released on shutdown so a stopped
	// process never reacts to a late event.
	unsubscribeSessions := accountService.SubscribeSessionChanges(func(ev account.SessionEvent) {
		kind := "started"
		if ev.Kind == account.SessionEnded {
			kind = "ended"
		}
		logger.Info("session change",
			zap.String("accountId", ev.AccountID), zap.String("kind", kind))
	})

	registrationService := registration.NewDefaultRegistrationService(
		accountService,
		utils.GetAuthCacheClient(),
		notifier,
	)

	profileService := &profile.DefaultProfileService{
		Repo:      profileRepo,
		Store:     documentStore,
		Documents: utils.GetDocumentCacheClient(),
		Notifier:  notifier,
		Reminders: tasks.NewAsynqReminderScheduler(),
	}

	cron.InitReminderWorker(notifier, profileService)

	// Assemble the handler bundle and register routes.
	handlerBundle := &routes.HandlerBundle{
		AccountRepo:         accountRepo,
		RegistrationHandler: handlers.NewRegistrationHandler(registrationService),
		ProfileHandler:      handlers.NewProfileHandler(profileService),
		AccountHandler:      handlers.NewAccountHandler(accountService),
	}
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")
	unsubscribeSessions()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	if err := database.CloseDB(ctx); err != nil {
		logger.Sugar().Warnf("main: failed to close MongoDB connection: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
