package main

import (
	"log"
	"os"
	"time"

	"suapa/config"
	"suapa/handler"
	"suapa/middleware"
	"suapa/repository"
	"suapa/services"
	"suapa/usecase"
	"suapa/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func init() {
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Printf("No .env file loaded: %v", err)
	}

	requiredEnvVars := []string{
		"MONGO_URI",
		"JWT_SECRET_KEY",
		"JWT_EXPIRATION_TIME",
		"REFRESH_TOKEN_EXPIRATION_TIME",
	}
	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" && os.Getenv("GO_ENV") != "test" {
			log.Fatalf("Required environment variable %s is not set", envVar)
		}
	}

	utils.InitValidator()
	utils.InitJWT()
	utils.InitMongoClient()
}

func setupRouter() *gin.Engine {
	router := gin.Default()

	dbCfg := config.LoadDatabaseConfig()
	db := utils.MongoClient.Database(dbCfg.DatabaseName)
	if err := repository.SetupIndexes(db); err != nil {
		log.Printf("Index setup failed: %v", err)
	}

	userRepo := repository.GetUserRepo(utils.MongoClient)
	chatsRepo := repository.GetChatsRepo(utils.MongoClient)
	tasksRepo := repository.GetTasksRepo(utils.MongoClient)
	activityRepo := repository.GetActivityRepo(utils.MongoClient)

	redisCfg := config.LoadRedisConfig()
	var statsCache *services.StatsCache
	if redisCfg.URL != "" {
		cache, err := services.NewStatsCache(redisCfg.URL, redisCfg.StatsTTL)
		if err != nil {
			log.Printf("Stats cache disabled: %v", err)
		} else {
			statsCache = cache
		}
	}

	completion := services.NewCompletionClient(config.LoadAIConfig())

	userService := usecase.NewUserService(userRepo, config.LoadAdminConfig(), config.LoadGoogleConfig())
	streakService := usecase.NewStreakService(activityRepo)
	activityService := usecase.NewActivityService(activityRepo, streakService, statsCache)
	chatService := usecase.NewChatService(chatsRepo, activityService, completion)
	companionService := usecase.NewCompanionService(chatsRepo, activityService, completion)
	taskService := usecase.NewTaskService(tasksRepo, activityService, completion)
	dashboardService := usecase.NewDashboardService(chatsRepo, tasksRepo, activityRepo, statsCache)

	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.MetricsMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	public := router.Group("/api")
	{
		auth := public.Group("/auth")
		{
			auth.POST("/register", func(c *gin.Context) {
				handler.RegistrationHandler(c, userService)
			})
			auth.POST("/login", func(c *gin.Context) {
				handler.LoginHandler(c, userService)
			})
			auth.POST("/google", func(c *gin.Context) {
				handler.GoogleLoginHandler(c, userService)
			})
			auth.POST("/refresh", handler.RefreshTokenHandler)
		}
	}

	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		user := protected.Group("/user")
		{
			user.GET("/profile", func(c *gin.Context) {
				handler.GetProfileHandler(c, userRepo)
			})
			user.POST("/2fa/generate", func(c *gin.Context) {
				handler.Generate2FASecretHandler(c, userRepo)
			})
			user.POST("/2fa/enable", func(c *gin.Context) {
				handler.Enable2FAHandler(c, userRepo)
			})
		}

		protected.GET("/dashboard/stats", func(c *gin.Context) {
			handler.DashboardStatsHandler(c, dashboardService)
		})

		chat := protected.Group("/chat")
		{
			chat.POST("/", func(c *gin.Context) {
				handler.SendChatHandler(c, chatService)
			})
			chat.GET("/history", func(c *gin.Context) {
				handler.ChatHistoryHandler(c, chatService)
			})
			chat.DELETE("/:id", func(c *gin.Context) {
				handler.DeleteChatHandler(c, chatService)
			})
		}

		companion := protected.Group("/companion")
		{
			companion.GET("/tools", handler.ListCompanionToolsHandler)
			companion.POST("/:tool", func(c *gin.Context) {
				handler.RunCompanionToolHandler(c, companionService)
			})
		}

		tasks := protected.Group("/tasks")
		{
			tasks.GET("/", func(c *gin.Context) {
				handler.ListTasksHandler(c, taskService)
			})
			tasks.POST("/", func(c *gin.Context) {
				handler.CreateTaskHandler(c, taskService)
			})
			tasks.PUT("/:id", func(c *gin.Context) {
				handler.UpdateTaskHandler(c, taskService)
			})
			tasks.POST("/:id/toggle", func(c *gin.Context) {
				handler.ToggleTaskHandler(c, taskService)
			})
			tasks.POST("/:id/suggest", func(c *gin.Context) {
				handler.SuggestTaskTipsHandler(c, taskService)
			})
			tasks.DELETE("/:id", func(c *gin.Context) {
				handler.DeleteTaskHandler(c, taskService)
			})
		}
	}

	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware(userService))
	{
		admin.GET("/users", func(c *gin.Context) {
			handler.AdminListUsersHandler(c, userService)
		})
		admin.POST("/users", func(c *gin.Context) {
			handler.AdminAddUserHandler(c, userService)
		})
		admin.PUT("/users/:id", func(c *gin.Context) {
			handler.AdminUpdateUserHandler(c, userService)
		})
		admin.DELETE("/users/:id", func(c *gin.Context) {
			handler.AdminDeleteUserHandler(c, userService)
		})
		admin.POST("/sync-profiles", func(c *gin.Context) {
			handler.AdminSyncProfilesHandler(c, userService)
		})
		admin.GET("/stats", func(c *gin.Context) {
			handler.AdminStatsHandler(c, userService)
		})
	}

	return router
}

func main() {
	router := setupRouter()

	utils.StartSystemMetrics(15 * time.Second)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server listening on :%s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
