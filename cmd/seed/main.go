// Command seed writes the built-in catalog (services, wigs, testimonials and
// blog posts) to the configured document store.
//
//	seed [-prune] [-timeout 2m]
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"keshwala/config"
	"keshwala/database"
	"keshwala/services/catalog"
	"keshwala/services/documents"
	"keshwala/utils"

	"go.uber.org/zap"
)

func main() {
	prune := flag.Bool("prune", false, "delete catalog documents that are not part of the built-in catalog")
	timeout := flag.Duration("timeout", 2*time.Minute, "give up after this long")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("seed: %v", err)
	}
	logger, err := utils.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("seed: %v", err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	backend, err := database.Connect(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Failed to connect backends", zap.Error(err))
	}
	defer backend.Close(context.Background())
	if backend.Documents == nil {
		logger.Fatal("No document store configured", zap.String("backend", cfg.DocumentBackend))
	}

	docs := documents.NewDocumentService(backend.Documents, logger)
	report, err := catalog.Seed(ctx, docs, *prune, logger)
	if err != nil {
		logger.Fatal("Seeding failed", zap.Error(err), zap.Int("added", report.Added), zap.Int("updated", report.Updated))
	}
	logger.Info("Catalog seeded",
		zap.String("backend", cfg.DocumentBackend),
		zap.Int("added", report.Added),
		zap.Int("updated", report.Updated),
		zap.Int("deleted", report.Deleted))
}
