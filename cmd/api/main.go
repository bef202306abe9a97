package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"skillswap/internal/database"
	"skillswap/internal/middleware"
	"skillswap/internal/modules/admin"
	"skillswap/internal/modules/auth"
	"skillswap/internal/modules/message"
	"skillswap/internal/modules/notification"
	"skillswap/internal/modules/profile"
	"skillswap/internal/modules/rating"
	"skillswap/internal/modules/skill"
	"skillswap/internal/modules/swap"
	jwtsvc "skillswap/internal/pkg/jwt"
	"skillswap/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	skillRepo := repository.NewSkillRepository(db)
	swapRepo := repository.NewSwapRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	adminRepo := repository.NewAdminRepository(db)

	j := jwtsvc.New(secret, 24*time.Hour)

	notificationService := notification.NewService(notificationRepo)
	notificationHandler := notification.NewHandler(notificationService)

	authService := auth.NewService(userRepo, profileRepo, j)
	authHandler := auth.NewHandler(authService)

	skillService := skill.NewService(skillRepo)
	skillHandler := skill.NewHandler(skillService)

	swapService := swap.NewService(swapRepo, skillRepo, userRepo, ratingRepo, notificationService)
	swapHandler := swap.NewHandler(swapService)

	ratingService := rating.NewService(ratingRepo, swapRepo, userRepo, profileRepo)
	ratingHandler := rating.NewHandler(ratingService)

	messageService := message.NewService(messageRepo, userRepo, notificationService)
	messageHandler := message.NewHandler(messageService)

	profileService := profile.NewService(profileRepo, userRepo, ratingRepo, swapRepo, skillRepo)
	profileHandler := profile.NewHandler(profileService)

	adminService := admin.NewService(adminRepo, userRepo, skillRepo, swapRepo)
	adminHandler := admin.NewHandler(adminService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())
	r.Static("/uploads", "./uploads")

	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterPublicRoutes(v1)
		skillHandler.RegisterPublicRoutes(v1)
		ratingHandler.RegisterPublicRoutes(v1)
		profileHandler.RegisterPublicRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterRoutes(protected)
			skillHandler.RegisterRoutes(protected)
			swapHandler.RegisterRoutes(protected)
			ratingHandler.RegisterRoutes(protected)
			messageHandler.RegisterRoutes(protected)
			notificationHandler.RegisterRoutes(protected)
			profileHandler.RegisterRoutes(protected)

			adminGroup := protected.Group("/admin")
			adminGroup.Use(middleware.AdminOnly())
			{
				adminHandler.RegisterRoutes(adminGroup)
			}
		}
	}

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
