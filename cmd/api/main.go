package main

import (
	"context"
	"net/http"
	"os"

	"github.com/rs/cors"
	"github.com/rs/zerolog"

	"github.com/baki-2025/learning-server-10/internal/auth"
	"github.com/baki-2025/learning-server-10/internal/config"
	"github.com/baki-2025/learning-server-10/internal/database"
	"github.com/baki-2025/learning-server-10/internal/routes"
	"github.com/baki-2025/learning-server-10/internal/service"
	"github.com/baki-2025/learning-server-10/internal/store"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	client, err := database.ConnectMongoDB(cfg.MongoURI)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Error().Err(err).Msg("failed to disconnect from MongoDB")
		}
	}()

	st := store.NewMongo(client, cfg.DatabaseName)
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	router := routes.SetupRouter(routes.Deps{
		Log:         logger,
		Verifier:    tokens,
		Tokens:      tokens,
		Users:       service.NewUserService(st.Users()),
		Courses:     service.NewCourseService(st.Courses()),
		Instructors: service.NewInstructorService(st.Instructors()),
		Enrollments: service.NewEnrollmentService(st.Enrollments()),
	})

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.Origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      c.Handler(router),
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
	}

	logger.Info().Str("port", cfg.Port).Msg("server running")
	if err := srv.ListenAndServe(); err != nil {
		logger.Fatal().Err(err).Msg("failed to start server")
	}
}
