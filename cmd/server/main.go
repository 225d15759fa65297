package main

import (
	"context"
	"log/slog"
	"os"

	httpadapter "resume-builder/internal/adapter/http"
	repo "resume-builder/internal/adapter/repository"
	"resume-builder/internal/config"
	"resume-builder/internal/infrastructure/migration"
	"resume-builder/internal/usecase"
	"resume-builder/pkg/assist"
	infra "resume-builder/pkg/infrastructure"
	"resume-builder/pkg/storage/object"
	objlocal "resume-builder/pkg/storage/object/local"
	objs3 "resume-builder/pkg/storage/object/s3"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	ctx := context.Background()
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	cfg, err := config.Load()
	if err != nil {
		log.Error("config load failed", "err", err)
		os.Exit(1)
	}

	pool, err := infra.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("database not available", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := migration.RunMigrations(ctx, pool); err != nil {
		log.Error("migrations failed", "err", err)
		os.Exit(1)
	}

	objects, err := buildObjectStore(ctx, cfg)
	if err != nil {
		log.Error("object store setup failed", "err", err)
		os.Exit(1)
	}

	renderer := infra.NewChromedpRenderer(cfg.ChromePath, cfg.ServerlessChromePath, log)
	resumes := repo.NewResumesRepo(pool)
	delivery := usecase.NewDelivery(renderer, resumes, objects, log)

	suggester := assist.NewSelector(
		assist.NewLocalProvider(cfg.AssistLocalURL),
		assist.NewRemoteProvider(cfg.AssistRemoteURL, cfg.AssistAPIKey),
	)

	app := fiber.New(fiber.Config{
		// PDFs are buffered fully in memory; cap request bodies small
		BodyLimit: 1 << 20,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New())

	if cfg.ObjectStore == "local" {
		app.Static("/files", cfg.LocalStoreDir)
	}

	h := httpadapter.NewHandler(delivery, suggester, log)
	h.Register(app)

	log.Info("server starting", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Error("server failed", "err", err)
		os.Exit(1)
	}
}

func buildObjectStore(ctx context.Context, cfg *config.Config) (object.ObjectStore, error) {
	if cfg.ObjectStore == "s3" {
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
		if err != nil {
			return nil, err
		}
		return objs3.New(awss3.NewFromConfig(awsCfg), cfg.S3Bucket, cfg.S3Prefix), nil
	}
	return objlocal.New(cfg.LocalStoreDir, cfg.PublicBaseURL), nil
}
