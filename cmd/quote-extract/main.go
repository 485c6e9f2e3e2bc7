package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/Akash-sopho/email-extractor-agent/internal/common"
	"github.com/Akash-sopho/email-extractor-agent/internal/extract"
	"github.com/Akash-sopho/email-extractor-agent/internal/llm/openai"
	repo "github.com/Akash-sopho/email-extractor-agent/internal/repository"
)

// quote-extract runs the extraction pipeline once for a single stored email
// and prints the outcome as JSON. Useful for debugging a specific message
// without going through the daemon.
func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if len(os.Args) < 2 {
		logger.Error("usage: quote-extract <email_id>")
		os.Exit(2)
	}
	emailID, err := uuid.Parse(os.Args[1])
	if err != nil {
		logger.Error("invalid email_id", "arg", os.Args[1], "error", err)
		os.Exit(2)
	}

	cfg := common.LoadConfig()
	if cfg.Database.DSN == "" {
		logger.Error("DB_URL env var is required")
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        5,
		MinConns:        1,
		MaxConnLifetime: 30 * time.Minute,
		MaxConnIdleTime: 5 * time.Minute,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	openaiClient := openai.NewClient(openai.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, logger)

	processor := extract.NewProcessor(entc, openaiClient, logger)

	res, err := processor.ProcessEmail(ctx, emailID)
	if err != nil {
		logger.Error("processing failed", "email_id", emailID, "error", err)
		os.Exit(1)
	}

	out, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		logger.Error("marshal result", "error", err)
		os.Exit(1)
	}
	os.Stdout.Write(append(out, '\n'))
}
