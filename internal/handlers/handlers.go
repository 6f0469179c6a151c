package handlers

import (
	"RecipeBox/internal/config"
	"RecipeBox/internal/middleware"
	"RecipeBox/internal/service"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	recipeService *service.RecipeService,
	imageService *service.ImageService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()
	policy := recipeService.Policy()

	r.Use(cors.New(cors.Options{
		AllowedOrigins: config.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", middleware.HeaderUser},
	}).Handler)
	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)

	// Handlers
	userHandler := NewUserHandler(userService, logger, config)
	recipeHandler := NewRecipeHandler(recipeService, logger, config)
	uploadHandler := NewUploadHandler(imageService, logger, config)

	r.Get("/health", Health)
	r.Get("/api/stickers", Stickers)

	// Identity routes: только в режиме owner, в режиме open друзей и пользователей нет
	if policy.IdentityRequired() {
		r.Post("/api/register", userHandler.Register)
		r.Post("/api/login", userHandler.Login)
		r.Group(func(r chi.Router) {
			r.Use(middleware.WithIdentity(userService, true))
			r.Post("/api/friends/add", userHandler.AddFriend)
			r.Get("/api/me", userHandler.Me)
		})
	}

	// Recipe routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.WithIdentity(userService, policy.IdentityRequired()))
		r.Get("/api/recipes", recipeHandler.Search)
		r.Post("/api/recipes", recipeHandler.Create)
		r.Get("/api/recipes/{id}", recipeHandler.Get)
		r.Put("/api/recipes/{id}", recipeHandler.Update)
		r.Delete("/api/recipes/{id}", recipeHandler.Delete)
		r.Post("/api/upload", uploadHandler.Upload)
	})

	// Локальные загрузки раздаём сами, в режиме S3 файлы отдаёт бакет
	if !config.UseS3() {
		fs := http.StripPrefix("/uploads/", http.FileServer(http.Dir(config.UploadDir)))
		r.Get("/uploads/*", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			fs.ServeHTTP(w, r)
		})
	}

	return &Handler{Router: r}
}
