package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"tutor-service/internal/cache"
	"tutor-service/internal/db"
	"tutor-service/internal/event"
	"tutor-service/internal/handlers"
	"tutor-service/internal/repository"
	"tutor-service/internal/service"
	"tutor-service/internal/worker"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("MONGO_URI is required")
	}
	db.InitMongo(mongoURI)
	defer db.Disconnect()

	// RabbitMQ event publisher
	rabbitURL := os.Getenv("RABBITMQ_URI")
	eventExchange := os.Getenv("RABBITMQ_EXCHANGE")
	var publisher *event.EventPublisher
	if rabbitURL != "" && eventExchange != "" {
		var err error
		publisher, err = event.NewEventPublisher(rabbitURL, eventExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, events will not be published")
	}

	// Redis content cache
	var rdb *redis.Client
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: os.Getenv("REDIS_PASSWORD"),
		})
	} else {
		log.Println("Redis not configured, content cache disabled")
	}
	contentCache := cache.NewContentCache(rdb, 5*time.Minute)

	database := db.Client.Database("tutor_service")

	// Repositories
	roadmapRepo := repository.NewRoadmapRepository(database)
	chapterRepo := repository.NewChapterRepository(database)
	quizRepo := repository.NewQuizRepository(database)
	resultRepo := repository.NewResultRepository(database)
	analyticsRepo := repository.NewAnalyticsRepository(database)

	indexCtx, indexCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := analyticsRepo.EnsureIndexes(indexCtx); err != nil {
		log.Printf("Warning: could not create analytics indexes: %v", err)
	}
	indexCancel()

	// Services
	contentService := service.NewContentService(roadmapRepo, chapterRepo, quizRepo, contentCache)
	submissionService := service.NewSubmissionService(resultRepo, analyticsRepo, contentService, publisher)
	progressService := service.NewProgressService(contentService, resultRepo)
	stateService := service.NewStateService(contentService, progressService)
	reviewService := service.NewReviewService(analyticsRepo)

	// Handlers
	roadmapHandler := handlers.NewRoadmapHandler(contentService)
	quizHandler := handlers.NewQuizHandler(contentService)
	submissionHandler := handlers.NewSubmissionHandler(submissionService)
	progressHandler := handlers.NewProgressHandler(progressService)
	stateHandler := handlers.NewStateHandler(stateService)
	reviewHandler := handlers.NewReviewHandler(reviewService)

	// Review reminder sweep
	reminder := worker.NewReminderWorker(analyticsRepo, publisher)
	reminder.Start()
	defer reminder.Stop()

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization", "X-User-ID", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Public routes - content reads and result history
	public := r.Group("/public/tutor")
	{
		public.GET("/roadmap/", roadmapHandler.ListRoadmaps)
		public.GET("/roadmap/:id", roadmapHandler.GetRoadmap)
		public.GET("/quiz/:id", quizHandler.GetQuiz)
		public.GET("/user/:id/results", submissionHandler.GetResultsByUser)
	}

	// Protected routes - everything keyed to the authenticated user
	protected := r.Group("/protected/tutor")
	protected.Use(func(c *gin.Context) {
		userID := c.GetHeader("X-User-ID")
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
				"code":  "MISSING_USER_ID",
			})
			c.Abort()
			return
		}
		c.Next()
	})
	{
		protected.POST("/quiz/:id/submit", submissionHandler.SubmitQuiz)
		protected.GET("/roadmap/:id/progress", progressHandler.GetUserProgress)
		protected.GET("/roadmap/:id/next", progressHandler.RecommendNextChapter)
		protected.GET("/state", stateHandler.GetUserState)
		protected.GET("/reviews", reviewHandler.GetScheduledReviews)
		protected.GET("/reviews/summary", reviewHandler.GetReviewSummary)

		// Authoring endpoints used by the content pipeline
		protected.POST("/roadmap/", roadmapHandler.CreateRoadmap)
		protected.POST("/roadmap/:id/chapters", roadmapHandler.CreateChapter)
		protected.POST("/quiz/", quizHandler.CreateQuiz)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "6667"
	}
	r.Run(":" + port)
}
