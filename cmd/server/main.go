package main

import (
	"log"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"labrecords/internal/config"
	"labrecords/internal/controllers"
	"labrecords/internal/logger"
	"labrecords/internal/middleware"
	"labrecords/internal/repository"
	"labrecords/internal/routes"
	"labrecords/internal/services"
)

func main() {
	logger.Setup()
	config.Load()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("database setup failed: %v", err)
	}

	// Wiring: repositories -> services -> controllers, all built once here.
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	labRepo := repository.NewLabReportRepository(db)

	tokens := middleware.NewTokenManager(config.JWTSecret())

	// Sweep expired sessions daily so the table does not grow unbounded.
	go func() {
		for range time.Tick(24 * time.Hour) {
			if err := sessionRepo.DeleteExpired(); err != nil {
				logrus.WithError(err).Warn("expired session sweep failed")
			}
		}
	}()

	authService := services.NewAuthService(userRepo, sessionRepo, tokens)
	userService := services.NewUserService(userRepo)
	sessionService := services.NewSessionService(sessionRepo)
	labService := services.NewLabReportService(labRepo, userRepo)

	r := routes.SetupRouter(routes.Deps{
		Auth:     controllers.NewAuthController(authService),
		Users:    controllers.NewUserController(userService),
		Sessions: controllers.NewSessionController(sessionService),
		Lab:      controllers.NewLabController(labService),
		Tokens:   tokens,
	})

	handler := middleware.EnableCORS(r)

	addr := "0.0.0.0:" + config.Getenv("PORT", "8080")
	log.Printf("Server running at %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
