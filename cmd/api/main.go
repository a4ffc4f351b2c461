package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hotelbooking/internal/config"
	"hotelbooking/internal/database"
	"hotelbooking/internal/middleware"
	"hotelbooking/internal/modules/admin"
	"hotelbooking/internal/modules/auth"
	"hotelbooking/internal/modules/booking"
	"hotelbooking/internal/modules/catalog"
	"hotelbooking/internal/modules/events"
	"hotelbooking/internal/modules/membership"
	"hotelbooking/internal/modules/parking"
	"hotelbooking/internal/modules/payment"
	"hotelbooking/internal/modules/profile"
	"hotelbooking/internal/modules/servicebooking"
	jwtsvc "hotelbooking/internal/pkg/jwt"
	"hotelbooking/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	customerRepo := repository.NewCustomerRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	staffRepo := repository.NewStaffRepository(db)
	parkingRepo := repository.NewParkingRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	serviceBookingRepo := repository.NewServiceBookingRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	hub := events.NewHub()
	defer hub.Close()
	eventsHandler := events.NewHandler(hub)

	authHandler := auth.NewHandler(auth.NewService(customerRepo, j))
	catalogHandler := catalog.NewHandler(catalog.NewService(roomRepo, serviceRepo, staffRepo, parkingRepo))
	bookingHandler := booking.NewHandler(booking.NewService(bookingRepo, roomRepo, serviceRepo, staffRepo, parkingRepo, hub))
	paymentHandler := payment.NewHandler(payment.NewService(paymentRepo, bookingRepo, hub))
	adminHandler := admin.NewHandler(admin.NewService(roomRepo, bookingRepo, hub))
	parkingHandler := parking.NewHandler(parking.NewService(parkingRepo, hub))
	profileHandler := profile.NewHandler(customerRepo)
	serviceBookingHandler := servicebooking.NewHandler(servicebooking.NewService(serviceBookingRepo, serviceRepo))
	membershipHandler := membership.NewHandler(membership.NewService(membershipRepo))

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	r.GET("/api/health", healthCheck(db))

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		catalogHandler.RegisterRoutes(v1)
		membershipHandler.RegisterPublicRoutes(v1)
		eventsHandler.RegisterRoutes(v1)

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			bookingHandler.RegisterRoutes(protected)
			paymentHandler.RegisterRoutes(protected)
			parkingHandler.RegisterRoutes(protected)
			serviceBookingHandler.RegisterRoutes(protected)
			profileHandler.RegisterRoutes(protected)
			membershipHandler.RegisterRoutes(protected)

			adminGroup := protected.Group("/admin")
			adminGroup.Use(middleware.RequireRole("admin"))
			{
				adminHandler.RegisterRoutes(adminGroup)
			}
		}
	}

	log.Printf("event=server_start port=%s env=%s", cfg.Port, cfg.AppEnv)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

func healthCheck(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := "ok"
		dbStatus := "ok"
		sqlDB, err := db.DB()
		if err != nil || sqlDB.Ping() != nil {
			status = "degraded"
			dbStatus = "unreachable"
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    gin.H{"status": status, "database": dbStatus},
		})
	}
}
