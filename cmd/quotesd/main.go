package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	quotespb "github.com/Akash-sopho/email-extractor-agent/gen/proto/quotes/v1"
	"github.com/Akash-sopho/email-extractor-agent/internal/async"
	"github.com/Akash-sopho/email-extractor-agent/internal/common"
	"github.com/Akash-sopho/email-extractor-agent/internal/extract"
	"github.com/Akash-sopho/email-extractor-agent/internal/ingest"
	"github.com/Akash-sopho/email-extractor-agent/internal/llm/openai"
	repo "github.com/Akash-sopho/email-extractor-agent/internal/repository"
	svc "github.com/Akash-sopho/email-extractor-agent/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	if cfg.LLM.APIKey == "" {
		logger.Warn("OPENAI_API_KEY not set, extraction will degrade to empty results")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	if err := entc.Schema.Create(ctx); err != nil {
		logger.Error("failed to run schema migration", "error", err)
		os.Exit(1)
	}

	emailsRepo := repo.NewEmailRepository(entc, logger)
	quotesRepo := repo.NewQuoteRepository(entc, logger)
	vendorsRepo := repo.NewVendorRepository(entc, logger)

	openaiClient := openai.NewClient(openai.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, logger)

	processor := extract.NewProcessor(entc, openaiClient, logger)

	queue := async.NewProcessorQueue(processor, logger,
		async.WithWorkers(cfg.Worker.Workers),
		async.WithQueueSize(cfg.Worker.QueueSize),
		async.WithProcessTimeout(cfg.Worker.ProcessTimeout),
	)

	ingestor := ingest.NewService(emailsRepo, logger)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	quotesService := svc.NewQuotesService(processor, queue, ingestor, quotesRepo, vendorsRepo, logger)
	quotespb.RegisterQuotesServiceServer(grpcServer, quotesService)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("quotesd listening", "addr", cfg.Server.GRPCAddr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}
