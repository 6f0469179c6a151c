package main

import (
	"RecipeBox/internal/config"
	"RecipeBox/internal/handlers"
	"RecipeBox/internal/middleware"
	"RecipeBox/internal/repo"
	"RecipeBox/internal/service"
	"RecipeBox/internal/storage"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, sugar); err != nil {
		sugar.Errorw("Server failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, sugar *zap.SugaredLogger) error {
	policy, err := service.NewAccessPolicy(cfg.AccessPolicy)
	if err != nil {
		return err
	}

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	defer func() {
		if err := repo.CloseDB(gormDB); err != nil {
			sugar.Warnw("failed to close database", "error", err)
		}
	}()

	images, err := newImageStorage(ctx, cfg)
	if err != nil {
		return err
	}

	userService := service.NewUserService(repo.NewUserRepository(gormDB), repo.NewFriendRepository(gormDB), sugar)
	recipeService := service.NewRecipeService(repo.NewRecipeRepository(gormDB), policy, sugar)
	imageService := service.NewImageService(images, sugar)

	h := handlers.NewHandler(userService, recipeService, imageService, sugar, cfg)

	addr := cfg.BaseURL
	srv := &http.Server{
		Addr:              addr,
		Handler:           h.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"DatabaseDSN", cfg.DatabaseDSN,
		"AccessPolicy", policy.Name(),
		"Storage", storageName(cfg),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		sugar.Infow("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// newImageStorage: S3, если задан бакет, иначе локальный каталог.
func newImageStorage(ctx context.Context, cfg *config.Config) (storage.ImageStorage, error) {
	if cfg.UseS3() {
		return storage.NewS3Storage(ctx, storage.S3Options{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			PublicURL: cfg.S3PublicURL,
		})
	}
	return storage.NewLocalStorage(cfg.UploadDir, cfg.PublicBaseURL)
}

func storageName(cfg *config.Config) string {
	if cfg.UseS3() {
		return "s3:" + cfg.S3Bucket
	}
	return "local:" + cfg.UploadDir
}
