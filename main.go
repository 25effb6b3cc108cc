package main

import (
	"context"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"keshwala/config"
	"keshwala/cron"
	"keshwala/database"
	"keshwala/handlers"
	"keshwala/middleware"
	"keshwala/routes"
	"keshwala/services/auth"
	"keshwala/services/catalog"
	"keshwala/services/documents"
	"keshwala/services/forms"
	"keshwala/services/notification"
	"keshwala/services/storage"
	"keshwala/utils"
	"keshwala/web"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("main: %v", err)
	}
	logger, err := utils.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("main: %v", err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	backend, err := database.Connect(ctx, cfg, logger)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect backends: %v", err)
	}

	// Nil handles stay untyped nil so the gateways see them as absent.
	var identity auth.IdentityProvider
	if backend.Identity != nil {
		identity = auth.NewIdentityToolkit(backend.Identity)
	}
	var revoker auth.Revoker
	if backend.Auth != nil {
		revoker = backend.Auth
	}
	var sender notification.Sender
	if backend.Messaging != nil {
		sender = backend.Messaging
	}

	var sessions utils.SessionStore
	if backend.Redis != nil {
		sessions = utils.NewRedisSessionStore(backend.Redis, cfg.SessionTTL)
	} else {
		sessions = utils.NewMemorySessionStore(cfg.SessionTTL)
	}

	// services.
	docService := documents.NewDocumentService(backend.Documents, logger)
	storageService := storage.NewStorageService(backend.Files, logger)
	authService := auth.NewAuthService(identity, revoker, sessions, cfg.PublicBaseURL, logger)
	notificationService := notification.NewNotificationService(sender, cfg.NotifyTopic, logger)

	// With Redis, staff alerts go through the task queue and a worker
	// delivers them with retries.
	var notifyQueue *asynq.Client
	var notifyWorker *cron.NotifyWorker
	if cfg.RedisAddr != "" {
		queueOpt := asynq.RedisClientOpt{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisQueueDB,
		}
		notifyWorker = cron.NewNotifyWorker(queueOpt, notificationService, logger)
		notifyWorker.Start(ctx)
		notifyQueue = asynq.NewClient(queueOpt)
		notificationService = notification.NewQueuedNotificationService(notifyQueue, logger)
	}
	formSet := forms.NewSet(docService, authService, notificationService, forms.NewValidator(), logger)
	formSet.StartPruning(ctx, time.Minute)
	siteCatalog := catalog.NewCatalog(docService, logger)

	monitor := utils.NewHealthMonitor(backend.Redis, backend.Mongo, backend.Documents != nil, backend.Files != nil, identity != nil)
	monitor.Start(ctx, 30*time.Second)

	// handlers.
	pageHandler := handlers.NewPageHandler(siteCatalog, formSet, authService, catalog.SiteContent(cfg.ContactPhone, cfg.WhatsAppNumber), logger)
	handlerBundle := handlers.NewHandlerBundle(
		authService,
		pageHandler,
		handlers.NewFormHandler(formSet, authService, pageHandler, logger),
		handlers.NewAuthHandler(authService, logger),
		handlers.NewCatalogHandler(siteCatalog, docService),
		handlers.NewStorageHandler(storageService, backend.MemoryFiles, logger),
		handlers.HealthHandler(monitor),
	)

	tmpl, err := web.Templates()
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler(logger))
	router.Use(gin.Logger())
	router.Use(middleware.SessionMiddleware(utils.NewTokenIssuer(cfg.JWTSecret), cfg.SessionTTL, cfg.CookieSecure))
	router.SetHTMLTemplate(tmpl)

	routes.RegisterRoutes(router, handlerBundle, []string{cfg.PublicBaseURL}, cfg.MaxRequestsPerMin)

	// Start the HTTP server.
	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.AppPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		// Request contexts end with ctx so open event streams close on shutdown.
		BaseContext:       func(net.Listener) context.Context { return ctx },
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
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	if notifyWorker != nil {
		notifyWorker.Shutdown()
		_ = notifyQueue.Close()
	}
	backend.Close(shutdownCtx)

	logger.Sugar().Info("main: server stopped gracefully")
}
