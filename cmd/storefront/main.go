package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	otelruntime "go.opentelemetry.io/contrib/instrumentation/runtime"

	"github.com/joao-fontenele/storefront-core/internal/account"
	"github.com/joao-fontenele/storefront-core/internal/analytics"
	"github.com/joao-fontenele/storefront-core/internal/checkout"
	"github.com/joao-fontenele/storefront-core/internal/clock"
	"github.com/joao-fontenele/storefront-core/internal/messaging"
	"github.com/joao-fontenele/storefront-core/internal/page"
	"github.com/joao-fontenele/storefront-core/internal/payment"
	"github.com/joao-fontenele/storefront-core/internal/pricing"
	"github.com/joao-fontenele/storefront-core/internal/shipping"
	"github.com/joao-fontenele/storefront-core/internal/store"
	"github.com/joao-fontenele/storefront-core/internal/telemetry"
	"github.com/joao-fontenele/storefront-core/internal/web"
)

const (
	serviceName    = "storefront"
	serviceVersion = "0.1.0"

	analyticsTopic = "page.viewed"
)

func main() {
	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	shutdownTracer, err := telemetry.InitTracerProvider(ctx, serviceName, serviceVersion)
	if err != nil {
		logger.Error("failed to initialize tracer", "error", err)
		os.Exit(1)
	}
	defer func() { _ = shutdownTracer(ctx) }()

	metricsHandler, shutdownMeter, err := telemetry.InitMeterProvider(serviceName, serviceVersion)
	if err != nil {
		logger.Error("failed to initialize meter", "error", err)
		os.Exit(1)
	}
	defer func() { _ = shutdownMeter(ctx) }()

	if err := otelruntime.Start(); err != nil {
		logger.Error("failed to start runtime metrics", "error", err)
		os.Exit(1)
	}

	rateServiceURL := os.Getenv("RATE_SERVICE_URL")
	if rateServiceURL == "" {
		logger.Error("RATE_SERVICE_URL environment variable is required")
		os.Exit(1)
	}

	emailServiceURL := os.Getenv("EMAIL_SERVICE_URL")
	if emailServiceURL == "" {
		logger.Error("EMAIL_SERVICE_URL environment variable is required")
		os.Exit(1)
	}

	httpClient := &http.Client{
		Timeout:   10 * time.Second,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	// One process-wide time source; everything that reads the clock shares it.
	storeClock := clock.NewSwappable(clock.NewSystem())

	var tracker analytics.Tracker = analytics.NopTracker{}
	kafkaBrokers := os.Getenv("KAFKA_BROKERS")
	if kafkaBrokers != "" {
		producer := messaging.NewProducer(strings.Split(kafkaBrokers, ","), analyticsTopic)
		defer func() { _ = producer.Close() }()
		tracker = analytics.NewKafkaTracker(producer, storeClock)
	}

	renderer := page.NewRenderer(tracker, logger)
	converter := pricing.NewConverter(pricing.NewRateClient(rateServiceURL, httpClient))
	shippingSvc := shipping.NewService(shipping.NewTableSource(shipping.DefaultTable()))
	checkoutSvc := checkout.NewService(payment.NewSandbox(), logger)
	accounts := account.NewService(
		account.NewHTTPEmailSender(emailServiceURL, "Storefront", httpClient),
		account.NewUUIDCodeGenerator(),
		logger,
	)
	hours := store.NewHours(storeClock)

	handler, err := web.NewHandler(renderer, converter, shippingSvc, checkoutSvc, accounts, hours, logger)
	if err != nil {
		logger.Error("failed to create handler", "error", err)
		os.Exit(1)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /home", telemetry.WithHTTPRoute(handler.HandleHome))
	mux.HandleFunc("GET /price", telemetry.WithHTTPRoute(handler.HandlePrice))
	mux.HandleFunc("GET /shipping/{destination}", telemetry.WithHTTPRoute(handler.HandleShipping))
	mux.HandleFunc("POST /orders", telemetry.WithHTTPRoute(handler.HandleSubmitOrder))
	mux.HandleFunc("POST /signup", telemetry.WithHTTPRoute(handler.HandleSignUp))
	mux.HandleFunc("POST /login", telemetry.WithHTTPRoute(handler.HandleLogin))
	mux.HandleFunc("GET /store/status", telemetry.WithHTTPRoute(handler.HandleStoreStatus))
	mux.HandleFunc("GET /healthz", handler.HandleHealthz)
	mux.Handle("GET /metrics", metricsHandler)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr: ":" + port,
		Handler: otelhttp.NewHandler(mux, serviceName,
			otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
				if r.Pattern != "" {
					return r.Pattern
				}
				return r.Method + " " + r.URL.Path
			}),
		),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("starting storefront service", "port", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
		os.Exit(1)
	}
}
