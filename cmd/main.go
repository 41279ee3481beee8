package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	httpServer "github.com/easyeats/easyeats-server/internal/api/http/server"

	httpctx "github.com/easyeats/easyeats-server/internal/api/http/context"
	"github.com/easyeats/easyeats-server/internal/api/http/router"
	"github.com/easyeats/easyeats-server/internal/config"
	"github.com/easyeats/easyeats-server/internal/identity"
	"github.com/easyeats/easyeats-server/internal/logger"
	"github.com/easyeats/easyeats-server/internal/model"
	"github.com/easyeats/easyeats-server/internal/repository/postgres"
	"github.com/easyeats/easyeats-server/internal/server"
	"github.com/easyeats/easyeats-server/internal/service"
	storage "github.com/easyeats/easyeats-server/internal/storage/minio"
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

	accountRepo := postgres.NewAccountRepository(db)
	profileRepo := postgres.NewProfileRepository(db)
	recipeRepo := postgres.NewRecipeRepository(db)

	verifier, err := newVerifier(ctx, cfg.Identity)
	if err != nil {
		logger.Fatal("failed to initialize identity verifier", "error", err)
	}

	minioClient, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
		Secure: cfg.Storage.UseSSL,
	})
	if err != nil {
		logger.Fatal("failed to create minio client", "error", err)
	}
	storageClient, err := storage.NewClient(ctx, minioClient, cfg.Storage.Bucket)
	if err != nil {
		logger.Fatal("failed to initialize storage client", "error", err)
	}

	ctxMgr := httpctx.NewManager()

	reconciler := service.NewReconciler(verifier, profileRepo, accountRepo, cfg.Identity.VerifyTimeout, logger)
	profileService := service.NewProfile(profileRepo, accountRepo, storageClient, logger)
	recipeService := service.NewRecipe(recipeRepo, storageClient, logger)
	accountService := service.NewAccount(accountRepo, logger)

	r := router.New(profileService, recipeService, accountService, reconciler, ctxMgr, logger)
	srv := httpServer.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer

	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(srv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func newVerifier(ctx context.Context, cfg config.Identity) (model.IdentityVerifier, error) {
	switch cfg.Mode {
	case "static":
		return identity.NewStaticVerifier(cfg.Secret), nil
	case "oidc":
		return identity.NewOIDCVerifier(ctx, cfg.IssuerURL, cfg.ClientID)
	default:
		return nil, fmt.Errorf("unknown identity mode %q", cfg.Mode)
	}
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
