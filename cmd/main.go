package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ferdian3456/tcbridge/internal/config"
	httpmiddleware "github.com/ferdian3456/tcbridge/internal/delivery/http/middleware"
	middleware "github.com/ferdian3456/tcbridge/internal/exception"
	tracemiddleware "github.com/ferdian3456/tcbridge/internal/middleware"
	"github.com/ferdian3456/tcbridge/internal/observability"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2/middleware/compress"
	zapLog "go.uber.org/zap"
)

func main() {
	time.Local = time.UTC
	// Flush zap buffered log first then cancel the context for graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	fiber := config.NewFiber()
	zap := config.NewZap()
	koanf := config.NewKoanf(zap)
	credentials := config.LoadCredentials(koanf, zap)
	httpClient := config.NewHTTPClient()

	observabilityConfig, tracingEnabled := config.LoadObservabilityConfig(koanf, zap)
	if tracingEnabled {
		shutdownTracer, err := observability.Init(context.Background(), observabilityConfig, zap)
		if err != nil {
			zap.Fatal("failed to initialize tracing", zapLog.Error(err))
		}
		defer func() {
			_ = shutdownTracer(ctx)
		}()
	}

	// Custom recovery middleware to handle panics with JSON response
	fiber.Use(middleware.Recovery(zap))

	fiber.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	fiber.Use(httpmiddleware.SetupCORS())

	if tracingEnabled {
		fiber.Use(otelfiber.Middleware())
	}

	fiber.Use(tracemiddleware.TraceLoggerMiddleware(zap))

	config.Server(&config.ServerConfig{
		Router:      fiber,
		HTTPClient:  httpClient,
		Log:         zap,
		Config:      koanf,
		Credentials: credentials,
	})

	GO_SERVER_PORT := koanf.String("GO_SERVER")
	if GO_SERVER_PORT == "" {
		GO_SERVER_PORT = ":8080"
	}

	zap.Info("Server is running on: " + GO_SERVER_PORT)

	var err error
	go func() {
		err = fiber.Listen(GO_SERVER_PORT)
		if err != nil {
			zap.Fatal("error starting server", zapLog.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	<-stop
	zap.Info("got one of stop signals")

	err = fiber.ShutdownWithContext(ctx)
	if err != nil {
		zap.Warn("timeout, forced kill!", zapLog.Error(err))
		_ = zap.Sync()
		os.Exit(1)
	}

	zap.Info("server has shut down gracefully")
	_ = zap.Sync()
}
