package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushire/talent-hub/adapters/event"
	httpAdapter "github.com/campushire/talent-hub/adapters/http"
	"github.com/campushire/talent-hub/adapters/media_storage"
	"github.com/campushire/talent-hub/adapters/persistence"
	authUC "github.com/campushire/talent-hub/internal/application/usecase/auth"
	directoryUC "github.com/campushire/talent-hub/internal/application/usecase/directory"
	feedUC "github.com/campushire/talent-hub/internal/application/usecase/feed"
	moderationUC "github.com/campushire/talent-hub/internal/application/usecase/moderation"
	notificationUC "github.com/campushire/talent-hub/internal/application/usecase/notification"
	profileUC "github.com/campushire/talent-hub/internal/application/usecase/profile"
	projectUC "github.com/campushire/talent-hub/internal/application/usecase/project"
	skillUC "github.com/campushire/talent-hub/internal/application/usecase/skill"
	"github.com/campushire/talent-hub/internal/config"
	"github.com/campushire/talent-hub/pkg/auth"
	"github.com/campushire/talent-hub/pkg/logger"
	"github.com/campushire/talent-hub/pkg/tracing"
)

func main() {
	fmt.Println("Start Talent Hub API Server...")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	if cfg.Jaeger.OTLPEndpoint != "" {
		tp, err := tracing.NewTracerProvider(cfg, appLogger, "talent-hub-api")
		if err != nil {
			appLogger.Fatal("cannot init tracer", err)
		}
		defer tp.Shutdown(context.Background())
	}

	// Initialize dependencies
	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Postgres", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Redis", err)
	}
	defer redisClient.Close()

	kafkaNotifier, err := event.NewKafkaNotifier(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot init Kafka", err)
	}
	defer kafkaNotifier.Close()

	// Repositories
	userRepo := persistence.NewPostgresUserRepo(dbPool, appLogger)
	talentRepo := persistence.NewPostgresTalentRepo(dbPool, appLogger)
	skillRepo := persistence.NewPostgresSkillRepo(dbPool, appLogger)
	projectRepo := persistence.NewPostgresProjectRepo(dbPool, appLogger)
	notificationRepo := persistence.NewPostgresNotificationRepo(dbPool, appLogger)
	directoryCache := persistence.NewRedisDirectoryCache(redisClient, cfg.Directory.CacheTTL)

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)
	uploader, err := media_storage.NewCloudinaryAdapter(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize uploader", err)
	}

	// Use Cases
	registerUseCase := authUC.NewRegisterUseCase(userRepo, talentRepo, jwtSvc, appLogger)
	loginUseCase := authUC.NewLoginUseCase(userRepo, jwtSvc, appLogger)
	profileUseCase := profileUC.NewProfileUseCase(talentRepo, directoryCache, appLogger)
	uploadAvatarUseCase := profileUC.NewUploadAvatarUseCase(talentRepo, uploader, appLogger)
	getPublicProfileUseCase := profileUC.NewGetPublicProfileUseCase(talentRepo, skillRepo, projectRepo)
	skillUseCase := skillUC.NewSkillUseCase(skillRepo, appLogger)
	createProjectUseCase := projectUC.NewCreateProjectUseCase(projectRepo)
	listProjectsUseCase := projectUC.NewListProjectsUseCase(projectRepo)
	updateProjectUseCase := projectUC.NewUpdateProjectUseCase(projectRepo)
	deleteProjectUseCase := projectUC.NewDeleteProjectUseCase(projectRepo)
	applyDecisionUseCase := moderationUC.NewApplyDecisionUseCase(talentRepo, kafkaNotifier, directoryCache, appLogger)
	listPendingUseCase := moderationUC.NewListPendingUseCase(talentRepo)
	directoryUseCase := directoryUC.NewDirectoryUseCase(talentRepo, directoryCache, appLogger)
	feedUseCase := feedUC.NewFeedUseCase(talentRepo, "http://localhost:"+cfg.App.Port, appLogger)
	notificationUseCase := notificationUC.NewNotificationUseCase(notificationRepo)

	// HTTP Handlers
	authHandler := httpAdapter.NewAuthHandler(registerUseCase, loginUseCase, appLogger)
	profileHandler := httpAdapter.NewProfileHandler(profileUseCase, uploadAvatarUseCase, appLogger)
	skillHandler := httpAdapter.NewSkillHandler(skillUseCase, appLogger)
	projectHandler := httpAdapter.NewProjectHandler(createProjectUseCase, listProjectsUseCase, updateProjectUseCase, deleteProjectUseCase, appLogger)
	adminHandler := httpAdapter.NewAdminHandler(applyDecisionUseCase, listPendingUseCase, appLogger)
	directoryHandler := httpAdapter.NewDirectoryHandler(directoryUseCase, getPublicProfileUseCase, appLogger)
	feedHandler := httpAdapter.NewFeedHandler(feedUseCase, appLogger)
	notificationHandler := httpAdapter.NewNotificationHandler(notificationUseCase, appLogger)

	// Middleware
	authMiddleware := httpAdapter.AuthMiddleware(jwtSvc, appLogger)
	optionalAuthMiddleware := httpAdapter.OptionalAuthMiddleware(jwtSvc)
	adminMiddleware := httpAdapter.AdminMiddleware(appLogger)
	errorMiddleware := httpAdapter.ErrorMiddleware(appLogger)

	// Setup Gin router
	router := gin.Default()
	router.Use(errorMiddleware)

	api := router.Group("/api")
	{

		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}

		me := api.Group("/me")
		me.Use(authMiddleware)
		{
			me.GET("/profile", profileHandler.GetProfile)
			me.PUT("/profile", profileHandler.UpdateProfile)
			me.PUT("/profile/visibility", profileHandler.SetVisibility)
			me.POST("/profile/avatar", profileHandler.UploadAvatar)
			me.GET("/review", profileHandler.GetReviewState)

			skills := me.Group("/skills")
			{
				skills.POST("", skillHandler.CreateSkill)
				skills.GET("", skillHandler.ListSkills)
				skills.PUT("/:id", skillHandler.UpdateSkill)
				skills.DELETE("/:id", skillHandler.DeleteSkill)
			}

			projects := me.Group("/projects")
			{
				projects.POST("", projectHandler.CreateProject)
				projects.GET("", projectHandler.ListProjects)
				projects.PUT("/:id", projectHandler.UpdateProject)
				projects.DELETE("/:id", projectHandler.DeleteProject)
			}

			notifications := me.Group("/notifications")
			{
				notifications.GET("", notificationHandler.ListNotifications)
				notifications.PUT("/:id/read", notificationHandler.MarkRead)
			}
		}

		admin := api.Group("/admin")
		admin.Use(authMiddleware, adminMiddleware)
		{
			admin.GET("/review/pending", adminHandler.ListPending)
			admin.POST("/review/:id/decision", adminHandler.ApplyDecision)
		}

		public := api.Group("/")
		{
			public.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })
			public.GET("/talents", directoryHandler.ListTalents)
			public.GET("/talents/:id", optionalAuthMiddleware, directoryHandler.GetTalent)
			public.GET("/feed.xml", feedHandler.GetFeed)
		}
	}

	appLogger.Info("Server running on port " + cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		appLogger.Fatal("Cannot run server", err)
	}
}
