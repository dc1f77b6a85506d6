package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/weiawesome/rowid/internal/config"
	"github.com/weiawesome/rowid/internal/generator"
	idgrpc "github.com/weiawesome/rowid/internal/grpc"
	"github.com/weiawesome/rowid/internal/handler"
	pkglog "github.com/weiawesome/rowid/pkg/log"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		l := pkglog.L()
		l.Fatal().Err(err).Msg("failed to load config")
	}

	logger := pkglog.Init(pkglog.Config{
		Level:       cfg.Log.Level,
		Pretty:      cfg.Log.Pretty,
		ServiceName: "rowid-service",
	})

	logger.Info().Msg("starting rowid-service")

	// Initialize RowID
	ids, err := cfg.RowID.Builder().Finalize()
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid rowid configuration")
	}
	logger.Info().
		Int(pkglog.FieldAlphabetLength, len([]rune(ids.Alphabet()))).
		Int(pkglog.FieldRandomnessLength, ids.DefaultRandomnessLength()).
		Msg("rowid initialized")

	gen, err := generator.NewRowIDGenerator(ids, cfg.Batch.MaxCount)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create rowid generator")
	}

	// Start gRPC server
	grpcAddr := fmt.Sprintf("%s:%d", cfg.GRPC.Host, cfg.GRPC.Port)
	grpcServer, err := idgrpc.StartGRPCServer(grpcAddr, gen, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to start grpc server")
	}

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(pkglog.GinMiddleware(logger))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	handler.NewHandler(gen).RegisterRoutes(r)

	httpAddr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Wait for interrupt signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info().Str("addr", httpAddr).Msg("http server listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info().Msg("shutting down rowid-service")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		grpcServer.GracefulStop()
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error().Err(err).Msg("rowid-service stopped with error")
		return
	}
	logger.Info().Msg("rowid-service stopped")
}
