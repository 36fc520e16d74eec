package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"hospital-booking-backend/internal/config"
	"hospital-booking-backend/internal/database"
	"hospital-booking-backend/internal/handler"
	"hospital-booking-backend/internal/middleware"
	"hospital-booking-backend/internal/notification"
	"hospital-booking-backend/internal/repository"
	"hospital-booking-backend/internal/service"
	"hospital-booking-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()
	log.Println("Configuration loaded successfully")

	// 2. Initialize JWT utilities with config
	utils.InitJWT(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)

	// 3. Initialize database connection and run migrations
	db := database.Connect(cfg)
	database.Migrate(db)

	// 4. Initialize repositories
	userRepo := repository.NewUserRepo(db)
	hospitalRepo := repository.NewHospitalRepo(db)
	departmentRepo := repository.NewDepartmentRepo(db)
	doctorRepo := repository.NewDoctorRepo(db)
	bookingRepo := repository.NewBookingRepo(db)
	feedbackRepo := repository.NewFeedbackRepo(db)
	premiumRepo := repository.NewPremiumRepo(db)
	auditRepo := repository.NewAuditRepo(db)

	// 5. Initialize the notification hub and publisher
	hub := notification.NewHub()
	publisher := notification.NewPublisher(hub)

	// 6. Initialize services
	authService := service.NewAuthService(userRepo, hospitalRepo, auditRepo)
	hospitalService := service.NewHospitalService(hospitalRepo, auditRepo)
	departmentService := service.NewDepartmentService(departmentRepo, auditRepo)
	doctorService := service.NewDoctorService(doctorRepo, departmentRepo, auditRepo)
	bookingService := service.NewBookingService(bookingRepo, doctorRepo, hospitalRepo, userRepo, auditRepo, publisher)
	feedbackService := service.NewFeedbackService(feedbackRepo, hospitalRepo)
	premiumService := service.NewPremiumService(premiumRepo, hospitalRepo, auditRepo, publisher, cfg.Payment.KeySecret)
	workerService := service.NewWorkerService(premiumRepo)

	// 7. Start background worker in goroutine
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go workerService.Start(ctx)

	// 8. Setup Gin mode and router
	gin.SetMode(cfg.Server.GinMode)
	r := gin.Default()

	// Apply CORS middleware
	r.Use(middleware.CORS(cfg))

	// 9. Register handlers
	authHandler := handler.NewAuthHandler(authService)
	hospitalHandler := handler.NewHospitalHandler(hospitalService)
	departmentHandler := handler.NewDepartmentHandler(departmentService)
	doctorHandler := handler.NewDoctorHandler(doctorService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	feedbackHandler := handler.NewFeedbackHandler(feedbackService)
	premiumHandler := handler.NewPremiumHandler(premiumService)
	notificationHandler := handler.NewNotificationHandler(hub, cfg.CORS.AllowedOrigins)

	// 10. Define routes
	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, gin.H{
			"status":  "healthy",
			"service": "hospital-booking-backend",
		})
	})

	// Auth routes (public)
	auth := r.Group("/auth")
	{
		auth.POST("/hospital/register", authHandler.RegisterHospital)
		auth.POST("/hospital/login", authHandler.LoginHospital)
		auth.POST("/user/register", authHandler.RegisterPatient)
		auth.POST("/user/login", authHandler.LoginPatient)
		auth.POST("/refresh", authHandler.Refresh)
		auth.POST("/logout", authHandler.Logout)
	}

	// Hospital directory (authenticated)
	hospitals := r.Group("/hospitals")
	hospitals.Use(middleware.AuthMiddleware())
	{
		hospitals.GET("", hospitalHandler.ListHospitals)
		hospitals.GET("/:hospital_id", hospitalHandler.GetHospital)
		hospitals.GET("/:hospital_id/departments", departmentHandler.ListDepartments)
		hospitals.GET("/:hospital_id/feedback", feedbackHandler.ListFeedback)

		// Admin-only routes
		hospitals.PATCH("/:hospital_id/approve", middleware.RequireAdmin(), hospitalHandler.ApproveHospital)
	}

	// Hospital self-service routes
	hospital := r.Group("/hospital")
	hospital.Use(middleware.AuthMiddleware(), middleware.RequireHospital())
	{
		hospital.PUT("/profile", hospitalHandler.UpdateProfile)
		hospital.POST("/departments", departmentHandler.CreateDepartment)
		hospital.PUT("/departments/:id", departmentHandler.UpdateDepartment)
		hospital.DELETE("/departments/:id", departmentHandler.DeleteDepartment)
		hospital.GET("/doctors", doctorHandler.ListOwnDoctors)
		hospital.POST("/doctors", doctorHandler.CreateDoctor)
		hospital.PUT("/doctors/:id", doctorHandler.UpdateDoctor)
		hospital.DELETE("/doctors/:id", doctorHandler.DeleteDoctor)
		hospital.GET("/bookings", bookingHandler.ListHospitalBookings)
		hospital.PATCH("/bookings/:id/status", bookingHandler.UpdateBookingStatus)
		hospital.GET("/premium", premiumHandler.GetStatus)
		hospital.POST("/premium/subscribe", premiumHandler.Subscribe)
		hospital.POST("/premium/confirm", premiumHandler.ConfirmPayment)
	}

	// Doctor directory (authenticated)
	doctors := r.Group("/doctors")
	doctors.Use(middleware.AuthMiddleware())
	{
		doctors.GET("", doctorHandler.SearchDoctors)
		doctors.GET("/department/:department_id", doctorHandler.ListDoctorsByDepartment)
	}

	// Patient routes
	patient := r.Group("/bookings")
	patient.Use(middleware.AuthMiddleware(), middleware.RequirePatient())
	{
		patient.POST("", bookingHandler.CreateBooking)
		patient.GET("", bookingHandler.ListOwnBookings)
		patient.PATCH("/:id/cancel", bookingHandler.CancelBooking)
	}

	feedback := r.Group("/feedback")
	feedback.Use(middleware.AuthMiddleware(), middleware.RequirePatient())
	{
		feedback.POST("", feedbackHandler.CreateFeedback)
	}

	// Hospital notification stream. Authentication happens inside the
	// handler because browser WebSocket clients pass the token as a
	// query parameter.
	r.GET("/ws/notifications/:hospital_id", notificationHandler.Connect)

	// 11. Setup graceful shutdown
	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		if err := r.Run(":" + cfg.Server.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Cancel background worker context
	cancel()
	log.Println("Server exited")
}
