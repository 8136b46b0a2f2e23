package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/RoGogDBD/items/docs" // регистрация swagger-спецификации
	"github.com/RoGogDBD/items/internal/app"
	"github.com/RoGogDBD/items/internal/config"
	"github.com/RoGogDBD/items/internal/handlers"
	"github.com/RoGogDBD/items/internal/telemetry"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// @title          Items API
// @version        1.0
// @description    CRUD REST API for items with search, filtering, ordering and pagination.
// @BasePath       /api/v1
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	// Флаги переопределяют значения из файла
	addr, dsn := config.ParseFlags()
	config.ApplyFlags(cfg, addr, dsn)

	a, err := app.NewApp(cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.Init(); err != nil {
		return err
	}

	providers, err := telemetry.Init(a.Context(), cfg.Telemetry)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := providers.Shutdown(shutdownCtx); err != nil {
			log.Printf("telemetry shutdown error: %v", err)
		}
	}()

	// Инициализация chi роутера и middlewares
	r := chi.NewRouter()
	config.SetupMiddlewares(r)

	// Инициализация обработчиков
	h := handlers.NewHandler(a.Cache, a.Store)

	r.Get("/healthz", h.HealthHandler)
	r.Get("/swagger/*", httpSwagger.Handler())
	if providers.MetricsHandler != nil {
		r.Handle(cfg.Telemetry.MetricsPath, providers.MetricsHandler)
	}

	r.Route("/api/v1/items", func(r chi.Router) {
		r.Get("/", h.ListItems)
		r.Post("/", h.CreateItem)
		r.Get("/{id}", h.GetItem)
		r.Put("/{id}", h.UpdateItem)
		r.Delete("/{id}", h.DeleteItem)
	})

	// Конфигурация и запуск сервера
	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      otelhttp.NewHandler(r, cfg.Telemetry.ServiceName),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(a.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server listening on %s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
