package config

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// SetupMiddlewares регистрирует общие HTTP-мидлвары.
// StripSlashes нужен, чтобы пути с завершающим слешем (/api/v1/items/)
// попадали в те же обработчики.
func SetupMiddlewares(r *chi.Mux) {
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)
}
