package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"google.golang.org/api/iterator"

	"nanocart/internal/adapter/api"
	"nanocart/internal/adapter/api/handler"
	apimiddleware "nanocart/internal/adapter/api/middleware"
	"nanocart/internal/adapter/api/router"
	"nanocart/internal/adapter/repository"
	"nanocart/internal/adapter/repository/memory"
	"nanocart/internal/adapter/repository/redisotp"
	domainrepo "nanocart/internal/domain/repository"
	"nanocart/internal/domain/service"
	"nanocart/internal/infrastructure/auth"
	"nanocart/internal/infrastructure/firebase"
	"nanocart/internal/infrastructure/metrics"
	"nanocart/internal/infrastructure/storage"
	"nanocart/internal/usecase"
	"nanocart/pkg/config"
	"nanocart/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration: %v", err)
	}

	logger.Init(logger.Options{
		ServiceName: "nanocart",
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	checks := map[string]handler.HealthCheck{}

	var clients *firebase.Clients
	if cfg.UsesFirebase() {
		clients, err = firebase.NewClients(ctx, cfg.Firebase,
			cfg.Store.Driver == config.StoreFirestore,
			cfg.Storage.Driver == config.StorageGCS)
		if err != nil {
			logger.Fatal("Failed to initialize Firebase: %v", err)
		}
		defer clients.Close()
	}

	var repos domainrepo.Set
	switch cfg.Store.Driver {
	case config.StoreFirestore:
		repos = repository.NewFirestoreSet(clients.Firestore)
		fs := clients.Firestore
		checks["firestore"] = func(ctx context.Context) error {
			_, err := fs.Collections(ctx).Next()
			if err != nil && !errors.Is(err, iterator.Done) {
				return err
			}
			return nil
		}
	default:
		logger.Warn("Using in-memory store, data is lost on restart")
		repos = memory.NewSet()
	}

	var redisClient *redis.Client
	if cfg.OTP.Store == config.OTPStoreRedis {
		redisClient, err = redisotp.NewClient(ctx, cfg.Redis)
		if err != nil {
			logger.Fatal("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		repos.OTPs = redisotp.NewRedisOTPRepository(redisClient)
		checks["redis"] = func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		}
	}

	storageOpts := storage.Options{
		PublicBaseURL: cfg.Storage.PublicBaseURL,
		ChunkSize:     cfg.Storage.ChunkSize,
		MaxCompose:    cfg.Storage.MaxCompose,
		PublicRead:    cfg.Storage.PublicRead,
		Metrics:       metrics.NewStorageMetrics(reg),
	}
	var store service.ObjectStore
	switch cfg.Storage.Driver {
	case config.StorageGCS:
		store = storage.NewCloudStorage(clients.Bucket, clients.BucketName, storageOpts)
		bucket := clients.Bucket
		checks["storage"] = func(ctx context.Context) error {
			_, err := bucket.Attrs(ctx)
			return err
		}
	default:
		logger.Warn("Using in-memory object storage, uploads are lost on restart")
		store = storage.NewMemoryStorage(storage.NewMemoryBucket("nanocart"), storageOpts)
	}

	tokens := auth.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.TTL)

	uc := usecase.NewUseCases(usecase.Dependencies{
		Repos:     repos,
		Store:     store,
		Tokens:    tokens,
		OTPs:      auth.NewRandomOTPGenerator(),
		OTPTTL:    cfg.OTP.TTL,
		ExposeOTP: cfg.OTP.ExposeCode,
	})

	handler.Setup(uc, handler.UploadLimits{
		MaxFileSize: cfg.Upload.MaxFileSize,
		MaxFiles:    cfg.Upload.MaxFiles,
	})
	handler.SetupHealthHandler(checks)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = api.NewValidator()
	e.HTTPErrorHandler = api.HTTPErrorHandler

	// Every file in a request may be at the size limit.
	bodyLimit := cfg.Upload.MaxFileSize*int64(cfg.Upload.MaxFiles) + 1<<20

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(apimiddleware.RequestLogger())
	e.Use(apimiddleware.Metrics(metrics.NewHTTPMetrics(reg)))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:  cfg.Server.AllowedOrigins,
		AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		ExposeHeaders: []string{echo.HeaderAuthorization},
	}))
	e.Use(middleware.BodyLimit(strconv.FormatInt(bodyLimit>>10, 10) + "K"))

	opts := router.Options{
		Metrics: promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
	}

	router.Setup(e, apimiddleware.NewAuthMiddleware(tokens), opts)

	go func() {
		logger.Info("Starting server on port %s (%s)", cfg.Server.Port, cfg.Server.Environment)
		if err := e.Start(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server stopped: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownWait)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed: %v", err)
	}
}
