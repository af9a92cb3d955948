package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"AtobaraiGateway/config"
	controller "AtobaraiGateway/internal/controller/http"
	"AtobaraiGateway/internal/controller/http/handlers"
	"AtobaraiGateway/internal/domain/payment"
	"AtobaraiGateway/internal/external/atobarai"
	"AtobaraiGateway/pkg/health"
	"AtobaraiGateway/pkg/logger"

	"golang.org/x/sync/errgroup"
)

func Run(cfg config.Config) {
	l := logger.New(cfg.LogLevel)

	// Setup graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	engine := NewGinEngine(l)

	httpClient := &http.Client{Timeout: cfg.HTTPProviderClientTimeout}
	transport := atobarai.NewHTTPTransport(
		cfg.NPBaseURL,
		atobarai.Credentials{
			MerchantCode: cfg.NPMerchantCode,
			SPCode:       cfg.NPSPCode,
			TerminalID:   cfg.NPTerminalID,
		},
		httpClient,
	)
	providerClient := atobarai.NewClient(transport)

	paymentService := payment.NewPaymentService(providerClient, l)

	paymentHandler := handlers.NewPaymentHandler(paymentService)

	healthRegistry := health.NewRegistry(health.NewProviderChecker(cfg.NPBaseURL, httpClient))

	router := controller.NewRouter(paymentHandler, healthRegistry, cfg.HealthCheckTimeout)
	router.SetUp(engine)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: engine,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		l.Info("Starting HTTP server: port=%d provider=%s", cfg.Port, cfg.NPBaseURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		l.Info("Shutting down gracefully...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		l.Fatal(fmt.Errorf("app - Run: %w", err))
	}
}
