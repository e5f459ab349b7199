package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	catalogv1 "github.com/dwikikusuma/storefront/api/gen/catalog/v1"
	checkoutv1 "github.com/dwikikusuma/storefront/api/gen/checkout/v1"
	orderv1 "github.com/dwikikusuma/storefront/api/gen/order/v1"
	"github.com/dwikikusuma/storefront/pkg/config"
	"github.com/dwikikusuma/storefront/pkg/logger"
	"github.com/dwikikusuma/storefront/pkg/metrics"
	"github.com/dwikikusuma/storefront/pkg/ratelimit"
	"github.com/dwikikusuma/storefront/pkg/shutdown"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logger.New(logger.Options{
		Service:   "gateway",
		Env:       cfg.AppEnv,
		Level:     cfg.LogLevel,
		AddSource: true,
	})
	if cfg.JWTSecret == "" {
		log.Warn("JWT_SECRET is empty, customer order endpoints will reject every request")
	}

	root := context.Background()
	ctx, cancel := shutdown.WithSignals(root)
	defer cancel()

	conn, err := grpc.NewClient(cfg.OrderServiceAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Error("storefront dial failed", slog.Any("err", err), slog.String("addr", cfg.OrderServiceAddr))
		os.Exit(1)
	}
	defer conn.Close()

	limiter := ratelimit.NewPerIP(cfg.RateRPS, cfg.RateBurst)
	go limiter.Run(time.Minute, ctx.Done())

	a := &api{
		catalog:  catalogv1.NewCatalogServiceClient(conn),
		checkout: checkoutv1.NewCheckoutServiceClient(conn),
		orders:   orderv1.NewOrderServiceClient(conn),
		auth:     newAuthenticator(cfg.JWTSecret),
		metrics:  metrics.NewRegistry(),
		log:      log,
	}

	addr := fmt.Sprintf(":%d", cfg.GatewayPort)
	server := &http.Server{
		Addr:              addr,
		Handler:           a.routes(limiter),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Info("http server starting", slog.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server error", slog.Any("err", err))
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown requested")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdown.DefaultTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown error", slog.Any("err", err))
	}

	wg.Wait()
	log.Info("bye")
}
