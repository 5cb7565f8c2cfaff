package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpdelivery "github.com/breutech/epcqr/internal/delivery/http"
	"github.com/breutech/epcqr/internal/domain/epc"
	"github.com/breutech/epcqr/internal/domain/ogm"
	"github.com/breutech/epcqr/internal/infrastructure/config"
	"github.com/breutech/epcqr/internal/infrastructure/qrgenerator"
	"github.com/breutech/epcqr/internal/usecase/generateogm"
	"github.com/breutech/epcqr/internal/usecase/generateqr"
)

const (
	readHeaderTimeout     = 5 * time.Second
	gracefulShutdownDelay = 5 * time.Second
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load(".")
	if err != nil {
		logger.Error("config load failed", "error", err)
		os.Exit(1)
	}

	registry := epc.DefaultRegistry()
	assembler := epc.NewAssembler(registry)
	qrGen := qrgenerator.NewGenerator(cfg.QRDefaultSize)
	ogmGen := ogm.NewGenerator(ogm.NewRandSource())

	generateQRUC := generateqr.NewUseCase(assembler, qrGen)
	generateOGMUC := generateogm.NewUseCase(ogmGen)

	handler := httpdelivery.NewHandler(generateQRUC, generateOGMUC, registry, cfg.QRMaxSize)
	router := httpdelivery.NewRouter(handler)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		logger.Info("HTTP server starting", "addr", cfg.HTTPAddr)
		if serveErr := srv.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			logger.Error("http serve failed", "error", serveErr)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), gracefulShutdownDelay)
	defer shutdownCancel()
	_ = srv.Shutdown(shutdownCtx)
}
