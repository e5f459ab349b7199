package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"sync"
	"time"

	catalogv1 "github.com/dwikikusuma/storefront/api/gen/catalog/v1"
	checkoutv1 "github.com/dwikikusuma/storefront/api/gen/checkout/v1"
	orderv1 "github.com/dwikikusuma/storefront/api/gen/order/v1"
	"github.com/dwikikusuma/storefront/internal/bootstrap"
	cgrpc "github.com/dwikikusuma/storefront/internal/catalog/grpc"
	checkoutgrpc "github.com/dwikikusuma/storefront/internal/checkout/grpc"
	ordergrpc "github.com/dwikikusuma/storefront/internal/order/grpc"
	"github.com/dwikikusuma/storefront/internal/webhook"
	"github.com/dwikikusuma/storefront/pkg/config"
	"github.com/dwikikusuma/storefront/pkg/logger"
	"github.com/dwikikusuma/storefront/pkg/metrics"
	"github.com/dwikikusuma/storefront/pkg/ratelimit"
	"github.com/dwikikusuma/storefront/pkg/shutdown"
	"google.golang.org/grpc"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logger.New(logger.Options{Service: "storefront", Env: cfg.AppEnv, Level: cfg.LogLevel, AddSource: true})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	backend, err := bootstrap.OpenBackend(cfg, log)
	if err != nil {
		log.Error("store open failed", slog.Any("err", err))
		os.Exit(1)
	}
	defer backend.Close()

	publisher, closePublisher := bootstrap.Publisher(cfg, log)
	defer closePublisher()

	reg := metrics.NewRegistry()
	svc := bootstrap.NewServices(backend, cfg, publisher, reg, log)

	intake, err := bootstrap.NewIntake(cfg, reg, log)
	if err != nil {
		log.Error("payment adapters", slog.Any("err", err))
		os.Exit(1)
	}
	hooks := webhook.NewHandler(intake, svc.Engine, log.With("component", "webhook"), reg)
	hooks.SetMaxBody(cfg.WebhookMaxBody)

	limiter := ratelimit.NewPerIP(cfg.RateRPS, cfg.RateBurst)
	go limiter.Run(time.Minute, ctx.Done())

	grpcAddr := fmt.Sprintf(":%d", cfg.GRPCPort)
	lis, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		log.Error("listen failed", slog.Any("err", err), slog.String("addr", grpcAddr))
		os.Exit(1)
	}

	grpcServer := grpc.NewServer()
	catalogv1.RegisterCatalogServiceServer(grpcServer, cgrpc.NewServer(svc.Catalog))
	checkoutv1.RegisterCheckoutServiceServer(grpcServer, checkoutgrpc.NewServer(svc.Checkout))
	orderv1.RegisterOrderServiceServer(grpcServer, ordergrpc.NewServer(svc.Orders))

	httpAddr := fmt.Sprintf(":%d", cfg.HTTPPort)
	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           newRouter(hooks, backend, reg, limiter),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		log.Info("grpc starting", slog.String("addr", grpcAddr))
		if err := grpcServer.Serve(lis); err != nil {
			log.Error("grpc serve error", slog.Any("err", err))
			cancel()
		}
	}()
	go func() {
		defer wg.Done()
		log.Info("http server starting", slog.String("addr", httpAddr))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server error", slog.Any("err", err))
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown requested")

	if !shutdown.Graceful(shutdown.DefaultTimeout, grpcServer.GracefulStop, grpcServer.Stop) {
		log.Warn("graceful stop timeout, forcing grpc stop")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdown.DefaultTimeout)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown error", slog.Any("err", err))
	}

	wg.Wait()
	log.Info("bye")
}
