package main

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"time"

	"restops/engine/internal/app"
	"restops/engine/internal/config"
	"restops/engine/internal/export"
	"restops/engine/internal/state"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	var kv state.KV
	if cfg.RedisURL != "" {
		log.Printf("Using Redis for state storage")
		redisKV, err := state.NewRedisKV(cfg.RedisURL)
		if err != nil {
			log.Fatalf("redis connection failed: %v", err)
		}
		defer redisKV.Close()
		kv = redisKV
	} else {
		log.Printf("Using file state storage at %s", cfg.StateFile)
		fileKV, err := state.NewFileKV(cfg.StateFile)
		if err != nil {
			log.Fatalf("state file open failed: %v", err)
		}
		kv = fileKV
	}

	capturer := export.NewChromeCapturer()
	capturer.Scale = cfg.CaptureScale
	capturer.ViewportWidth = cfg.ViewportWidth
	capturer.Timeout = cfg.CaptureTimeout
	capturer.SettleDelay = cfg.SettleDelay
	exporter := export.NewService(capturer, export.PDFComposer{})

	service := app.New(cfg, kv, exporter)
	if err := service.Bootstrap(ctx); err != nil {
		log.Fatalf("bootstrap failed: %v", err)
	}
	log.Printf("RestOps engine ready, today is %s, %d reports archived",
		service.DisplayDate(), len(service.Archive()))

	// One-shot maintenance export when requested via environment. The
	// interactive surface is the embedding UI, not this shell.
	if cfg.ExportMonth >= 1 && cfg.ExportMonth <= 12 && cfg.ExportYear > 0 {
		month := time.Month(cfg.ExportMonth)
		result, err := service.ExportMonth(ctx, month, cfg.ExportYear, func(done, total int) {
			log.Printf("exporting report %d/%d", done, total)
		})
		if err != nil {
			log.Fatalf("bulk export failed: %v", err)
		}
		out := filepath.Join(cfg.ExportDir, result.Filename)
		if err := os.WriteFile(out, result.Data, 0o644); err != nil {
			log.Fatalf("write export: %v", err)
		}
		log.Printf("wrote %s (%d bytes)", out, len(result.Data))
	}
}
