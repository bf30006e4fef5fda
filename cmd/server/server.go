package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/runeforge/codex-api/internal/engine"
	"github.com/runeforge/codex-api/internal/entities/forge"
	"github.com/runeforge/codex-api/internal/orchestrators/codex"
	"github.com/runeforge/codex-api/internal/pkg/idgen"
	"github.com/runeforge/codex-api/internal/redis"
	"github.com/runeforge/codex-api/internal/repositories/composition"
	"github.com/runeforge/codex-api/internal/repositories/parts"
	"github.com/runeforge/codex-api/internal/rules"
)

var (
	grpcPort     int
	redisAddress string
	rulesFile    string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the codex gRPC server with all configured services.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 50051, "gRPC server port")
}

// buildRepos wires the Redis-backed repositories against one endpoint.
func buildRepos() (parts.Repository, composition.Repository, error) {
	client, err := redis.NewClient(redisAddress, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create redis client: %w", err)
	}

	partRepo, err := parts.NewRedis(&parts.RedisConfig{Client: client})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create part repository: %w", err)
	}

	compositionRepo, err := composition.NewRedis(&composition.RedisConfig{Client: client})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create composition repository: %w", err)
	}

	return partRepo, compositionRepo, nil
}

// buildService wires the repositories, engine, and orchestrator. Shared by
// the server and the codex tooling commands.
func buildService() (codex.Service, error) {
	partRepo, compositionRepo, err := buildRepos()
	if err != nil {
		return nil, err
	}

	eng, err := engine.New(&engine.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}

	tiers := rules.DefaultRarityTiers()
	if rulesFile != "" {
		tiers, err = rules.Load(rulesFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load rules: %w", err)
		}
	}

	return codex.NewOrchestrator(&codex.Config{
		PartRepo:        partRepo,
		CompositionRepo: compositionRepo,
		Engine:          eng,
		IDGenerator:     idgen.NewUUID("roll"),
		RarityTiers:     tiers,
	})
}

func runServer(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Println("Received shutdown signal, gracefully stopping...")
		cancel()
	}()

	service, err := buildService()
	if err != nil {
		return err
	}

	// Touch the catalog so a bad Redis endpoint fails at startup instead of
	// on the first request.
	catalogOutput, err := service.ListCatalogParts(ctx, &codex.ListCatalogPartsInput{
		Kind:                forge.PartKind(""),
		IncludeMechanicOnly: true,
	})
	if err != nil {
		return fmt.Errorf("failed to read part catalog: %w", err)
	}
	log.Printf("Part catalog loaded with %d entries", len(catalogOutput.Parts))

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", grpcPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	// Register health service
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus("codex.api.v1.CodexService", grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	errChan := make(chan error, 1)
	go func() {
		log.Printf("gRPC server starting on port %d...", grpcPort)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		log.Println("Shutting down gRPC server...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			log.Println("Graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			log.Println("Server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	log.Printf("[%v] %s %v", level, msg, fields)
}
