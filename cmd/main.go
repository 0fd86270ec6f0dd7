package main

import (
	"fmt"
	"os"

	"school-service/internal/handler"
	"school-service/internal/model"
	"school-service/internal/service"
	"school-service/pkg/config"
	"school-service/pkg/database"
	"school-service/pkg/jwtutil"
	"school-service/pkg/logger"
	"school-service/pkg/metrics"
	"school-service/pkg/middleware"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: .env file not found or error loading: %v\n", err)
	}

	// Load configuration
	conf, err := config.Load("school")
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	err = logger.InitLogger(&logger.LogConfig{
		Level:       conf.Log.Level,
		Environment: conf.Server.Env,
		ServiceName: conf.ServiceName,
	})
	if err != nil {
		fmt.Printf("Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	log := logger.GetLogger()

	policy, err := service.ParseReferentialPolicy(conf.School.ReferentialPolicy)
	if err != nil {
		log.Fatal("Invalid referential policy", zap.Error(err))
	}

	// Initialize database connection
	db, err := database.InitDB(&conf.DB)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}

	// Run migrations for the school models
	if err := database.MigrateModels(
		&model.Tenant{},
		&model.User{},
		&model.Teacher{},
		&model.Student{},
		&model.Course{},
		&model.Enrollment{},
	); err != nil {
		log.Fatal("Failed to migrate database models", zap.Error(err))
	}

	// Initialize JWT utility
	jwt := jwtutil.NewJWTUtil(&jwtutil.JWTConfig{
		SigningKey:      conf.JWT.SigningKey,
		ExpirationHours: conf.JWT.ExpirationHours,
	})

	// Wire services and handlers
	teacherSvc := service.NewTeacherService(db, policy)
	studentSvc := service.NewStudentService(db, policy)
	courseSvc := service.NewCourseService(db, policy)
	enrollmentSvc := service.NewEnrollmentService(db)
	accountSvc := service.NewAccountService(db)

	teacherHandler := handler.NewTeacherHandler(teacherSvc)
	studentHandler := handler.NewStudentHandler(studentSvc)
	courseHandler := handler.NewCourseHandler(courseSvc, teacherSvc)
	enrollmentHandler := handler.NewEnrollmentHandler(enrollmentSvc, studentSvc, courseSvc, teacherSvc)
	accountHandler := handler.NewAccountHandler(accountSvc, jwt)

	// Initialize HTTP metrics
	httpMetrics := metrics.NewHTTPMetrics(conf.ServiceName)

	// Initialize Echo framework
	e := echo.New()
	e.HideBanner = true

	// Apply middleware
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.Middleware())
	e.Use(httpMetrics.Middleware())

	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(metrics.GetPrometheusHandler()))

	// Public routes
	e.GET("/school/hello", handler.Hello)
	e.POST("/tenants", accountHandler.Register)
	e.POST("/auth/login", accountHandler.Login)

	// Secured routes - everything below is scoped to the token's tenant
	auth := middleware.JWTAuthMiddleware(jwt)

	teachers := e.Group("/teachers", auth)
	teachers.GET("", teacherHandler.List)
	teachers.POST("", teacherHandler.Create)
	teachers.PUT("/:id", teacherHandler.Update)
	teachers.DELETE("/:id", teacherHandler.Delete)

	students := e.Group("/students", auth)
	students.GET("", studentHandler.List)
	students.POST("", studentHandler.Create)
	students.PUT("/:id", studentHandler.Update)
	students.DELETE("/:id", studentHandler.Delete)

	courses := e.Group("/courses", auth)
	courses.GET("", courseHandler.List)
	courses.POST("", courseHandler.Create)
	courses.PUT("/:id", courseHandler.Update)
	courses.DELETE("/:id", courseHandler.Delete)

	enrollments := e.Group("/enrollments", auth)
	enrollments.GET("", enrollmentHandler.List)
	enrollments.POST("", enrollmentHandler.Create)
	enrollments.PUT("/:id", enrollmentHandler.Update)
	enrollments.DELETE("/:id", enrollmentHandler.Delete)

	// Start server
	log.Info("Starting school-service on port "+conf.Server.Port, conf.LogConfig()...)
	e.Logger.Fatal(e.Start(":" + conf.Server.Port))
}
