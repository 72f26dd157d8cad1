package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"travelapp/internal/config"
	"travelapp/internal/database"
	"travelapp/internal/middleware"
	"travelapp/internal/modules/auth"
	"travelapp/internal/modules/booking"
	"travelapp/internal/modules/listing"
	"travelapp/internal/modules/overview"
	"travelapp/internal/modules/review"
	jwtsvc "travelapp/internal/pkg/jwt"
	"travelapp/internal/repository"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found, continuing with environment variables")
	}

	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is empty")
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	listingRepo := repository.NewListingRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	listingService := listing.NewService(listingRepo)
	listingHandler := listing.NewHandler(listingService)

	bookingService := booking.NewService(bookingRepo, listingRepo)
	bookingHandler := booking.NewHandler(bookingService)

	reviewService := review.NewService(reviewRepo, bookingRepo)
	reviewHandler := review.NewHandler(reviewService)

	overviewHandler := overview.NewHandler()

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		overviewHandler.RegisterRoutes(v1)
		authHandler.RegisterRoutes(v1)
		listingHandler.RegisterRoutes(v1)
		reviewHandler.RegisterRoutes(v1)

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			listingHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
			reviewHandler.RegisterProtectedRoutes(protected)
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
