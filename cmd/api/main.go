package main

import (
	"log"
	"net/http"

	_ "github.com/dsikeres1/innopia/docs" // swagger docs

	"github.com/dsikeres1/innopia/internal/cache"
	"github.com/dsikeres1/innopia/internal/config"
	"github.com/dsikeres1/innopia/internal/db"
	"github.com/dsikeres1/innopia/internal/handler"
	"github.com/dsikeres1/innopia/internal/random"
	"github.com/dsikeres1/innopia/internal/repository"
	"github.com/dsikeres1/innopia/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Innopia AI-PMP API
// @version 1.0
// @description Backend de recomendación OTT (películas TMDB/MovieLens + parrilla de TV)
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	// Mongo y Redis
	db.InitMongo(cfg)
	cache.InitRedis(cfg)

	// repos
	userRepo := repository.NewUserRepository()
	movieRepo := repository.NewMovieRepository()
	ratingRepo := repository.NewRatingRepository()
	simRepo := repository.NewSimilarityRepository()
	mlensRepo := repository.NewMovieLensRepository()
	predRepo := repository.NewPredictionRepository()
	recRepo := repository.NewRecommendationRepository()
	scheduleRepo := repository.NewScheduleRepository()
	programRepo := repository.NewProgramRepository()
	viewingLogRepo := repository.NewViewingLogRepository()
	assetRepo := repository.NewAssetRepository()

	rng := random.Default()

	// services
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret)
	movieSvc := service.NewMovieService(movieRepo)
	prefSvc := service.NewPreferenceService(viewingLogRepo, programRepo)
	recSvc := service.NewRecommendService(movieRepo, simRepo, predRepo, ratingRepo, mlensRepo, recRepo, rng)
	patternSvc := service.NewPatternService(scheduleRepo, programRepo, assetRepo, viewingLogRepo, prefSvc, rng)

	// handlers
	authH := handler.NewAuthHandler(authSvc)
	movieH := handler.NewMovieHandler(movieSvc)
	recH := handler.NewRecommendHandler(recSvc)
	patternH := handler.NewPatternHandler(patternSvc, authSvc)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// =============
	// Rutas públicas
	// =============
	r.Get("/health", handler.Health)

	r.Post("/auth/register", authH.Register)
	r.Post("/auth/login", authH.Login)
	r.Get("/users", authH.ListUserIDs)

	r.Get("/ott/movies", movieH.List)
	r.Get("/ott/movies/{pk}", movieH.Detail)

	r.Get("/pattern/schedule", patternH.Schedule)

	// JWT opcional: con token usa predicciones personalizadas,
	// anónimo cae a la tabla de similitud
	r.Group(func(r chi.Router) {
		r.Use(handler.JWTOptional(cfg.JWTSecret))
		r.Get("/ott/movies/{pk}/recommend", recH.MovieRecommend)
	})

	// ===========================
	// Rutas protegidas con JWT
	// ===========================
	r.Group(func(r chi.Router) {
		r.Use(handler.JWTAuth(cfg.JWTSecret))

		r.Route("/me", func(r chi.Router) {
			r.Get("/ott/recommend", recH.UserMovieRecommend)
			r.Get("/ott/recommend/multiple", recH.UserMovieRecommendMultiple)
			r.Get("/ott/recommend/history", recH.History)

			r.Get("/pattern/viewing-history", patternH.ViewingHistory)
			r.Get("/pattern/recommendations", patternH.Recommendations)

			// WebSocket
			r.Get("/pattern/ws/recommendations", patternH.RecommendationsWS)
		})
	})

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	log.Printf("HTTP escuchando en :%s", cfg.HTTPPort)
	log.Fatal(http.ListenAndServe(":"+cfg.HTTPPort, r))
}
