package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	handlerHttp "github.com/mikiasgoitom/reactsync/internal/handler/http"
	redisclient "github.com/mikiasgoitom/reactsync/internal/infrastructure/cache"
	"github.com/mikiasgoitom/reactsync/internal/infrastructure/config"
	database "github.com/mikiasgoitom/reactsync/internal/infrastructure/database"
	"github.com/mikiasgoitom/reactsync/internal/infrastructure/jwt"
	"github.com/mikiasgoitom/reactsync/internal/infrastructure/logger"
	passwordservice "github.com/mikiasgoitom/reactsync/internal/infrastructure/password_service"
	randomgenerator "github.com/mikiasgoitom/reactsync/internal/infrastructure/random_generator"
	"github.com/mikiasgoitom/reactsync/internal/infrastructure/repository/mongodb"
	"github.com/mikiasgoitom/reactsync/internal/infrastructure/store"
	"github.com/mikiasgoitom/reactsync/internal/infrastructure/uuidgen"
	"github.com/mikiasgoitom/reactsync/internal/infrastructure/validator"
	"github.com/mikiasgoitom/reactsync/internal/usecase"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Get MongoDB URI and DB name from environment
	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		log.Fatal("MONGODB_URI environment variable not set")
	}
	dbName := os.Getenv("MONGODB_DB_NAME")
	if dbName == "" {
		log.Fatal("MONGODB_DB_NAME environment variable not set")
	}
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable not set")
	}

	// Establish MongoDB connection
	mongoClient, err := database.NewMongoDBClient(mongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect()
	db := mongoClient.Client.Database(dbName)

	appLogger := logger.NewStdLogger()
	appConfig := config.NewConfig()
	uuidGenerator := uuidgen.NewGenerator()

	// Dependency Injection: Repositories
	userRepo := mongodb.NewMongoUserRepository(db.Collection("users"))
	likeRepo := mongodb.NewLikeRepository(db, uuidGenerator)

	indexCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := userRepo.EnsureIndexes(indexCtx); err != nil {
		appLogger.Warnf("%v", err)
	}
	if err := likeRepo.EnsureIndexes(indexCtx); err != nil {
		appLogger.Warnf("%v", err)
	}
	cancel()

	// Dependency Injection: Services
	hasher := passwordservice.NewHasher()
	jwtService := jwt.NewJWTService(jwt.NewJWTManager(jwtSecret, appConfig.GetAccessTokenExpiry()))
	randomGenerator := randomgenerator.NewRandomGenerator()
	appValidator := validator.NewValidator()

	// Dependency Injection: Usecases
	authUsecase := usecase.NewAuthUsecase(userRepo, hasher, jwtService, uuidGenerator, appValidator, appLogger)
	likeUsecase := usecase.NewLikeUsecase(likeRepo, appLogger)

	// Optional Dependency Injection: Redis cache
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		rdb, err := redisclient.NewRedisFromURL(context.Background(), redisURL)
		if err != nil {
			appLogger.Warnf("Redis disabled: %v", err)
		} else {
			defer redisclient.Close(rdb)
			likeUsecase.SetCountCache(store.NewCountCacheStore(rdb, appConfig.GetCountCacheTTL()))
		}
	}

	// Initialize Gin router
	router := gin.Default()
	appRouter := handlerHttp.NewRouter(likeUsecase, authUsecase, appLogger, appConfig, randomGenerator)
	appRouter.SetupRoutes(router)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
