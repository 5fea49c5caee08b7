package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"game_catalog/internal/config"
	"game_catalog/internal/handler"
	"game_catalog/internal/middleware"
	"game_catalog/internal/model"
	"game_catalog/internal/repository"
	"game_catalog/internal/service"
	"game_catalog/internal/session"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found, relying on environment variables")
	}

	// --- Configuration ---
	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load DB config")
	}
	sessCfg := config.LoadSessionConfig()

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "3000" // Default port
	}

	clientOrigin := os.Getenv("CLIENT_ORIGIN")
	if clientOrigin == "" {
		clientOrigin = "http://localhost:3001"
	}

	// Role handed to self-registered accounts. The observed default is
	// "admin"; deployments override it with REGISTER_DEFAULT_ROLE=user.
	registerRole := os.Getenv("REGISTER_DEFAULT_ROLE")
	if registerRole == "" {
		registerRole = model.RoleAdmin
	}
	if registerRole == model.RoleAdmin {
		log.Warn().Msg("Self-registered accounts receive the admin role; set REGISTER_DEFAULT_ROLE=user to change this")
	}

	// --- Database Connection ---
	dbPool, err := config.ConnectDB(dbCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer dbPool.Close()

	// --- Auto Migration ---
	if err := config.AutoMigrate(dbPool); err != nil {
		log.Fatal().Err(err).Msg("Failed to auto-migrate database")
	}

	// --- Session Store ---
	var sessionStore session.Store
	switch sessCfg.Backend {
	case config.SessionBackendRedis:
		client := redis.NewClient(&redis.Options{Addr: sessCfg.RedisAddr, DB: sessCfg.RedisDB})
		if err := client.Ping(context.Background()).Err(); err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to redis")
		}
		defer client.Close()
		sessionStore = session.NewRedisStore(client, sessCfg.TTL)
		log.Info().Str("addr", sessCfg.RedisAddr).Msg("Using redis session store")
	default:
		memStore := session.NewMemoryStore(sessCfg.TTL)
		defer memStore.Close()
		sessionStore = memStore
		log.Info().Msg("Using in-memory session store")
	}

	// --- Initialize Repositories ---
	userRepo := repository.NewUserRepository(dbPool)
	gameRepo := repository.NewGameRepository(dbPool)

	// --- Initialize Services ---
	authService := service.NewAuthService(userRepo, registerRole)
	gameService := service.NewGameService(gameRepo)

	// --- Initialize Handlers ---
	authHandler := handler.NewAuthHandler(authService, sessionStore, int(sessCfg.TTL.Seconds()))
	gameHandler := handler.NewGameHandler(gameService)

	// --- Setup Gin Router ---
	router := gin.Default()
	router.Use(middleware.CORS(clientOrigin))

	// --- Initialize Gates ---
	requireAuth := middleware.RequireAuthenticated(sessionStore)
	requireAdmin := middleware.RequireAdmin()
	requireAnon := middleware.RequireAnonymous(sessionStore)

	// --- Register Routes ---
	root := router.Group("")
	authHandler.RegisterAuthRoutes(root, requireAuth, requireAnon)
	gameHandler.RegisterGameRoutes(root, requireAuth, requireAdmin)

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		if err := dbPool.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "db": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "healthy"})
	})

	// --- Start Server ---
	srv := &http.Server{
		Addr:    ":" + serverPort,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", serverPort).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("listen failed")
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")
}
