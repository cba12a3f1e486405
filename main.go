package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"main/config"
	"main/handler"
	"main/middleware"
	"main/repository"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

const maxRequestBodyBytes = 1 << 20 // 1 MiB

func init() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Printf("No .env file loaded: %v", err)
	}

	requiredEnvVars := []string{
		"MONGO_URI",
		"MONGO_DB",
		"JWT_SECRET_KEY",
		"PORT",
	}
	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" && os.Getenv("GO_ENV") != "test" {
			log.Fatalf("Required environment variable %s is not set", envVar)
		}
	}

	utils.InitValidator()
	utils.InitJWT()
}

func setupRouter(mongoClient *mongo.Client, redisClient *redis.Client, publisher usecase.EventPublisher, coach usecase.Coach) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.EnhancedRecoveryMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestTracingMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.RequestSizeLimiter(maxRequestBodyBytes))

	// Repositories
	pillarRepo := repository.GetPillarRepo(mongoClient)
	areaRepo := repository.GetAreaRepo(mongoClient)
	projectRepo := repository.GetProjectRepo(mongoClient)
	taskRepo := repository.GetTaskRepo(mongoClient)
	journalRepo := repository.GetJournalRepo(mongoClient)
	notificationRepo := repository.GetNotificationRepo(mongoClient)
	attachmentRepo := repository.GetAttachmentRepo(mongoClient)
	preferencesRepo := repository.GetPreferencesRepo(mongoClient)

	// Services
	resolver := &usecase.DependencyResolver{
		Tasks:       taskRepo,
		Projects:    projectRepo,
		Preferences: preferencesRepo,
		Publisher:   publisher,
	}
	hierarchyService := &usecase.HierarchyService{
		Pillars:  pillarRepo,
		Areas:    areaRepo,
		Projects: projectRepo,
		Tasks:    taskRepo,
	}
	pillarService := &usecase.PillarService{Pillars: pillarRepo, Areas: areaRepo}
	areaService := &usecase.AreaService{Areas: areaRepo, Pillars: pillarRepo, Projects: projectRepo}
	projectService := &usecase.ProjectService{Projects: projectRepo, Areas: areaRepo, Tasks: taskRepo}
	taskService := &usecase.TaskService{Tasks: taskRepo, Projects: projectRepo, Resolver: resolver}
	priorityService := &usecase.PriorityService{
		Tasks:       taskRepo,
		Projects:    projectRepo,
		Areas:       areaRepo,
		Preferences: preferencesRepo,
		Coach:       coach,
	}
	journalService := &usecase.JournalService{Journal: journalRepo}
	notificationService := &usecase.NotificationService{Notifications: notificationRepo}
	attachmentService := &usecase.AttachmentService{Attachments: attachmentRepo}
	preferencesService := &usecase.PreferencesService{Preferences: preferencesRepo}
	insightsService := &usecase.InsightsService{
		Hierarchy:   hierarchyService,
		Tasks:       taskRepo,
		Journal:     journalRepo,
		Preferences: preferencesRepo,
	}

	// Handlers
	pillarHandler := handler.NewPillarHandler(pillarService, hierarchyService)
	areaHandler := handler.NewAreaHandler(areaService, hierarchyService)
	projectHandler := handler.NewProjectHandler(projectService, hierarchyService)
	taskHandler := handler.NewTaskHandler(taskService)
	todayHandler := handler.NewTodayHandler(priorityService)
	dashboardHandler := handler.NewDashboardHandler(hierarchyService, priorityService, journalService, notificationService)
	insightsHandler := handler.NewInsightsHandler(insightsService)
	journalHandler := handler.NewJournalHandler(journalService)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	attachmentHandler := handler.NewAttachmentHandler(attachmentService)
	preferencesHandler := handler.NewPreferencesHandler(preferencesService)
	healthHandler := handler.NewHealthHandler(mongoClient, redisClient)

	// Public routes (no authentication required)
	router.GET("/health", healthHandler.GetHealth)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Protected routes (authentication required)
	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		pillars := protected.Group("/pillars")
		{
			pillars.GET("", pillarHandler.GetUserPillars)
			pillars.POST("", pillarHandler.CreatePillar)
			pillars.GET("/:id", pillarHandler.GetPillar)
			pillars.PUT("/:id", pillarHandler.UpdatePillar)
			pillars.DELETE("/:id", pillarHandler.DeletePillar)
		}

		areas := protected.Group("/areas")
		{
			areas.GET("", areaHandler.GetUserAreas)
			areas.POST("", areaHandler.CreateArea)
			areas.GET("/:id", areaHandler.GetArea)
			areas.PUT("/:id", areaHandler.UpdateArea)
			areas.DELETE("/:id", areaHandler.DeleteArea)
		}

		projects := protected.Group("/projects")
		{
			projects.GET("", projectHandler.GetUserProjects)
			projects.POST("", projectHandler.CreateProject)
			projects.GET("/:id", projectHandler.GetProject)
			projects.PUT("/:id", projectHandler.UpdateProject)
			projects.DELETE("/:id", projectHandler.DeleteProject)
		}

		tasks := protected.Group("/tasks")
		{
			tasks.GET("", taskHandler.GetUserTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("/:id", taskHandler.GetTask)
			tasks.PUT("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
			tasks.POST("/:id/complete", taskHandler.ToggleComplete)
			tasks.PUT("/:id/dependencies", taskHandler.SetDependencies)
		}

		protected.GET("/today", todayHandler.GetToday)
		protected.GET("/dashboard", dashboardHandler.GetDashboard)
		protected.GET("/insights", insightsHandler.GetInsights)

		journal := protected.Group("/journal")
		{
			journal.GET("", journalHandler.GetUserEntries)
			journal.POST("", journalHandler.CreateEntry)
			journal.PUT("/:id", journalHandler.UpdateEntry)
			journal.DELETE("/:id", journalHandler.DeleteEntry)
		}

		notifications := protected.Group("/notifications")
		{
			notifications.GET("", notificationHandler.GetUserNotifications)
			notifications.POST("/:id/read", notificationHandler.MarkRead)
			notifications.POST("/read-all", notificationHandler.MarkAllRead)
		}

		attachments := protected.Group("/attachments")
		{
			attachments.GET("", attachmentHandler.GetUserAttachments)
			attachments.POST("", attachmentHandler.CreateAttachment)
			attachments.DELETE("/:id", attachmentHandler.DeleteAttachment)
		}

		preferences := protected.Group("/preferences")
		{
			preferences.GET("", preferencesHandler.GetPreferences)
			preferences.PUT("", preferencesHandler.UpdatePreferences)
		}
	}

	return router
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbConfig := config.LoadDatabaseConfig()
	mongoClient, err := utils.NewMongoClient(dbConfig.URI, dbConfig.MaxPoolSize, dbConfig.MinPoolSize, dbConfig.MaxConnIdleTime)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}()

	if err := repository.SetupIndexes(mongoClient.Database(dbConfig.DatabaseName)); err != nil {
		log.Printf("Warning: index setup failed: %v", err)
	}

	// The event queue is best-effort: without Redis the API still serves,
	// only unblocked notifications are skipped.
	var publisher usecase.EventPublisher
	var redisClient *redis.Client
	redisConfig := config.LoadRedisConfig()
	eventPublisher, err := services.NewRedisEventPublisher(redisConfig.URL, redisConfig.QueueKey)
	if err != nil {
		log.Printf("Warning: event queue unavailable, notifications disabled: %v", err)
	} else {
		publisher = eventPublisher
		redisClient = eventPublisher.Client
		defer eventPublisher.Close()

		dispatcher := &services.Dispatcher{
			Client:        redisClient,
			QueueKey:      redisConfig.QueueKey,
			Notifications: repository.GetNotificationRepo(mongoClient),
		}
		go dispatcher.Run(ctx)
	}

	var coach usecase.Coach
	coachClient := services.NewCoachClient(config.LoadCoachConfig())
	if coachClient.Enabled() {
		coach = coachClient
	} else {
		log.Println("Coaching disabled: COACH_API_KEY not set")
	}

	router := setupRouter(mongoClient, redisClient, publisher, coach)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
