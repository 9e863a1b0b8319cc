package main

import (
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"recipebox/internal/config"
	"recipebox/internal/handlers"
	"recipebox/internal/middleware"
	"recipebox/internal/repo"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// newRouter wires repos, handlers, and the middleware chain. Split from main
// so integration tests can run the full router against a mock DB.
func newRouter(db *sql.DB, cfg config.Config) chi.Router {
	userRepo := repo.NewUserRepo(db)
	recipeRepo := repo.NewRecipeRepo(db)

	authHandler := &handlers.AuthHandler{
		UserRepo: userRepo,
		Secret:   []byte(cfg.JWTSecret),
		TokenTTL: time.Duration(cfg.JWTExpireHours) * time.Hour,
	}
	recipeHandler := &handlers.RecipeHandler{Repo: recipeRepo}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.RequestLog)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Prometheus)
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	r.Use(middleware.MaxBytes(middleware.DefaultMaxBodyBytes))

	// Operational endpoints
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "ok")
	})
	r.Get("/ready", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(); err != nil {
			handlers.JSONError(w, "database unreachable", http.StatusServiceUnavailable)
			return
		}
		fmt.Fprintln(w, "ok")
	})
	r.Handle("/metrics", promhttp.Handler())

	// Public
	r.Post("/auth/register", authHandler.Register)
	r.Post("/auth/login", authHandler.Login)
	r.Get("/api/recipes", recipeHandler.ListRecipes)

	// Protected: everything below requires a valid bearer token.
	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTMiddleware([]byte(cfg.JWTSecret)))
		r.Post("/api/add", recipeHandler.AddRecipe)
		r.Get("/api/myrecipes", recipeHandler.ListMyRecipes)
		r.Get("/api/recipes/{id}", recipeHandler.GetRecipe)
		r.Put("/api/recipes/{id}", recipeHandler.UpdateRecipe)
		r.Delete("/api/recipes/{id}", recipeHandler.DeleteRecipe)
	})

	return r
}
