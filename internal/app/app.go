// Package app содержит сборку зависимостей приложения.
package app

import (
	"context"
	"errors"
	"log"

	"github.com/RoGogDBD/items/internal/config"
	"github.com/RoGogDBD/items/internal/config/db"
	"github.com/RoGogDBD/items/internal/kafka"
	"github.com/RoGogDBD/items/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

// App содержит все зависимости приложения
type App struct {
	Config *config.Config
	DBPool *pgxpool.Pool
	Cache  repository.Cache
	Store  repository.ItemStore
	ctx    context.Context
	cancel context.CancelFunc
}

// NewApp создает новое приложение.
func NewApp(cfg *config.Config) (*App, error) {
	ctx, cancel := context.WithCancel(context.Background())

	app := &App{
		Config: cfg,
		Cache:  newCache(cfg.Cache),
		ctx:    ctx,
		cancel: cancel,
	}

	return app, nil
}

func newCache(cfg config.CacheConfig) repository.Cache {
	if cfg.RedisAddr != "" {
		log.Printf("Using Redis cache at %s", cfg.RedisAddr)
		return repository.NewRedisCache(cfg.RedisAddr, cfg.TTL)
	}
	return repository.NewMemStorageWithConfig(cfg.MaxItems, cfg.TTL)
}

// Init выполняет инициализацию зависимостей приложения.
func (a *App) Init() error {
	log.Printf("Initialized cache with max %d items", a.Config.Cache.MaxItems)
	if a.Config.Cache.TTL > 0 {
		log.Printf("Cache TTL set to %s", a.Config.Cache.TTL)
	}
	a.Cache.StartJanitor(a.ctx, a.Config.Cache.CleanupInterval)

	// Инициализация БД: без хранилища API не работает
	if err := a.initDatabase(a.ctx); err != nil {
		return err
	}

	// Прогрев кеша последними товарами
	if err := a.loadItemsToCache(a.ctx); err != nil {
		log.Printf("Warning: failed to load items from DB: %v", err)
	}

	// Запуск консьюмера импорта товаров
	if len(a.Config.Kafka.Brokers) > 0 && a.Config.Kafka.Topic != "" {
		go kafka.RunConsumer(a.ctx, a.Config.Kafka, a.Store, a.Cache)
	}

	return nil
}

// initDatabase инициализирует подключение к базе данных
func (a *App) initDatabase(ctx context.Context) error {
	if a.Config.Database.DSN == "" {
		return errors.New("no database DSN provided")
	}

	dbPool, err := db.NewPool(ctx, a.Config.Database.DSN)
	if err != nil {
		return err
	}

	a.DBPool = dbPool
	a.Store = repository.NewPostgresStorage(dbPool)
	log.Println("Database initialized successfully")

	return nil
}

// loadItemsToCache загружает последние товары из БД в кеш при старте
func (a *App) loadItemsToCache(ctx context.Context) error {
	log.Println("Loading items from DB to cache...")

	items, total, err := a.Store.ListItems(ctx, repository.ListOptions{
		Limit: a.Config.Cache.MaxItems,
	})
	if err != nil {
		return err
	}

	for i := range items {
		a.Cache.Save(&items[i])
	}

	log.Printf("Loaded %d/%d items into cache", len(items), total)
	return nil
}

// Close освобождает все ресурсы приложения
func (a *App) Close() {
	log.Println("Shutting down application...")

	// Отменяем контекст (остановит консьюмер и janitor)
	if a.cancel != nil {
		a.cancel()
	}

	// Закрываем подключение к БД
	if a.DBPool != nil {
		a.DBPool.Close()
		log.Println("Database connection closed")
	}

	log.Println("Application shutdown complete")
}

// Context возвращает контекст приложения
func (a *App) Context() context.Context {
	return a.ctx
}
