package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	restctx "github.com/dtroode/travelstory-server/internal/api/rest/context"
	"github.com/dtroode/travelstory-server/internal/api/rest/router"
	restServer "github.com/dtroode/travelstory-server/internal/api/rest/server"
	"github.com/dtroode/travelstory-server/internal/config"
	"github.com/dtroode/travelstory-server/internal/logger"
	"github.com/dtroode/travelstory-server/internal/model"
	"github.com/dtroode/travelstory-server/internal/password"
	"github.com/dtroode/travelstory-server/internal/repository/postgres"
	"github.com/dtroode/travelstory-server/internal/server"
	"github.com/dtroode/travelstory-server/internal/service"
	storage "github.com/dtroode/travelstory-server/internal/storage/minio"
	"github.com/dtroode/travelstory-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	minioClient, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
		Secure: cfg.Storage.UseSSL,
	})
	if err != nil {
		logger.Fatal("failed to create minio client", "error", err)
	}
	storageClient, err := storage.NewClient(ctx, minioClient, cfg.Storage.Bucket, cfg.Storage.PublicURL)
	if err != nil {
		logger.Fatal("failed to initialize storage client", "error", err)
	}

	userRepo := postgres.NewUserRepository(db)
	storyRepo := postgres.NewStoryRepository(db)
	tokenManager := token.NewJWT(cfg.JWT.Secret, cfg.JWT.TTL)
	hasher := password.NewBcrypt(cfg.Password.Cost)

	authService := service.NewAuth(userRepo, hasher, tokenManager, logger)
	tokenService := service.NewTokenService(tokenManager, logger)
	imageService := service.NewImage(storageClient, service.ImageOptions{
		Folder:    cfg.Storage.Folder,
		MaxBytes:  cfg.Image.MaxBytes,
		MaxWidth:  cfg.Image.MaxWidth,
		MaxHeight: cfg.Image.MaxHeight,
		Timeout:   cfg.Storage.Timeout,
	}, logger)
	storyService := service.NewStory(storyRepo, imageService, cfg.Image.PlaceholderURL, logger)

	r := router.New(
		authService,
		storyService,
		imageService,
		tokenService,
		db,
		restctx.NewManager(),
		router.Options{CORSOrigins: cfg.HTTP.CORSOrigins, MaxImageBytes: cfg.Image.MaxBytes},
		logger,
	)
	httpServer := restServer.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port), cfg.HTTP.ReadHeaderTimeout)

	sl := server.NewSecurityLayer(cfg.HTTP.EnableHTTPS, cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address(), "https", cfg.HTTP.EnableHTTPS)
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}(httpServer)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", httpServer.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
