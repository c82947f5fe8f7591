package main

import (
	"log"
	"os"

	_ "classboard/docs"
	"classboard/internal/auth"
	"classboard/internal/handlers"
	"classboard/internal/models"
	"classboard/internal/storage"
	"classboard/internal/tasks"
	"classboard/internal/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @Title						Classboard API
// @Description				Personal class timetable and notice board
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
func main() {
	key := os.Getenv("ENV_CHEK")
	if key == "" {
		log.Println("Loading .env")
		if err := godotenv.Load(); err != nil {
			log.Fatal("Failed to load .env")
		}
	}

	storage.ConnectDatabase()

	if err := storage.DB.AutoMigrate(&models.User{}, &models.ClassSession{}, &models.Notice{}); err != nil {
		log.Fatal("Migration failed... ", err.Error())
	}

	storage.InitRedis()

	if err := auth.SeedAdmin(storage.DB); err != nil {
		log.Fatal("Admin seeding failed... ", err.Error())
	}

	go ws.HubInstance.Run()

	scheduler := tasks.FromEnv(storage.DB, ws.HubInstance)
	if scheduler != nil {
		if err := scheduler.Start(); err != nil {
			log.Fatal("Failed to start notification scheduler... ", err.Error())
		}
		defer scheduler.Stop()
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	r.Static("/uploads", uploadDir)

	r.GET("/ws", ws.EventFeedHandler)

	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/login", handlers.Login)
		authGroup.POST("/refresh", handlers.RefreshToken)
	}

	classes := r.Group("/api/classes")
	{
		classes.GET("", handlers.GetClasses)
		classes.GET("/:id", handlers.GetClassByID)

		protected := classes.Group("", auth.AuthMiddleware())
		{
			protected.POST("", handlers.CreateClass)
			protected.PUT("/:id", handlers.UpdateClass)
			protected.DELETE("/:id", handlers.DeleteClass)
		}
	}

	notices := r.Group("/api/notices")
	{
		notices.GET("", handlers.GetNotices)

		protected := notices.Group("", auth.AuthMiddleware())
		{
			protected.POST("", handlers.CreateNotice)
			protected.POST("/upload", handlers.UploadNoticeImage)
			protected.PUT("/:id", handlers.UpdateNotice)
			protected.DELETE("/:id", handlers.DeleteNotice)
		}
	}

	if err := r.Run(":8080"); err != nil {
		log.Fatal("Server startup failed...", err.Error())
	}
}
