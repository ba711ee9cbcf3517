package main

import (
	"fmt"
	"net/http"
	"time"

	_ "github.com/felicityfest/fest-api/docs" // Import generated docs
	"github.com/felicityfest/fest-api/internal/auth"
	"github.com/felicityfest/fest-api/internal/config"
	"github.com/felicityfest/fest-api/internal/controllers"
	"github.com/felicityfest/fest-api/internal/database"
	"github.com/felicityfest/fest-api/internal/middleware"
	"github.com/felicityfest/fest-api/internal/pages"
	"github.com/felicityfest/fest-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/swaggo/files"
	"github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

var (
	db                     *gorm.DB
	configuration          *config.Config
	tokens                 *auth.TokenService
	authController         *controllers.AuthController
	registrationController controllers.RegistrationController
	messageController      controllers.MessageController
	imageController        controllers.ImageController
)

// @title Festival API
// @version 1.0
// @description Backend for the festival website: registrations, contact messages, gallery.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey TokenAuth
// @in header
// @name token
// @description Raw session token, no Bearer prefix.
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration = loadConfig()

	// Initialize database connection
	setupDatabase(configuration)

	// Initialize token service, services and controllers
	tokens = auth.NewTokenService(configuration.JWTSecret)
	setupControllers()

	// Initialize Gin router
	var router *gin.Engine = setupRouter()

	// Start the server
	log.Infof("Starting server on %s:%d", configuration.Host, configuration.Port)
	router.Run(fmt.Sprintf("%v:%d", configuration.Host, configuration.Port))
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	environment := config.GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(log.DebugLevel)
	case "production":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error. Startup fails
// closed when JWT_SECRET or ADMIN_PASSWORD_HASH is unset.
func loadConfig() *config.Config {
	log.Info("Loading configuration from environment variables")
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	log.Infof("Configuration loaded: %+v", conf)
	return conf
}

// setupDatabase initializes the database connection and migrates the schema
func setupDatabase(conf *config.Config) *gorm.DB {
	var err error
	db, err = database.InitDatabase(database.FromAppConfig(conf))
	checkPanicErr(err)
	checkPanicErr(database.Migrate(db))
	return db
}

// setupControllers wires services and controllers over the database handle
func setupControllers() {
	userService := services.NewUserService(db)
	registrationService := services.NewRegistrationService(db)
	messageService := services.NewMessageService(db)
	imageService := services.NewImageService(db, configuration.UploadDir)

	authController = controllers.NewAuthController(userService, tokens,
		configuration.AdminPasswordHash, configuration.AdminTokenTTL, configuration.UserTokenTTL)
	registrationController = controllers.NewRegistrationController(registrationService, userService)
	messageController = controllers.NewMessageController(messageService)
	imageController = controllers.NewImageController(imageService, configuration.UploadDir)
}

// setupRouter initializes the Gin router and sets up the routes
// It returns the configured router
func setupRouter() *gin.Engine {
	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger())

	// Define routes
	setupRoutes(router)

	return router
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine) {
	// Health check endpoint
	router.GET("/health", healthCheckHandler)

	api := router.Group("/api")
	{
		// Public endpoints
		api.POST("/admin/login", authController.AdminLogin)
		api.POST("/auth/signup", authController.Signup)
		api.POST("/auth/login", authController.Login)
		api.POST("/register", registrationController.Register)
		api.POST("/contact", messageController.CreateMessage)
		api.GET("/images", imageController.GetAllImages)

		// Admin endpoints: token validity first, then the role predicate
		adminApi := api.Group("/admin")
		adminApi.Use(middleware.TokenAuth(tokens), middleware.RequireRole(auth.RoleAdmin))
		{
			adminApi.GET("/registrations", registrationController.GetAllRegistrations)
			adminApi.PUT("/registrations/:id", registrationController.UpdateStatus)
			adminApi.DELETE("/registrations/:id", registrationController.DeleteRegistration)
			adminApi.GET("/messages", messageController.GetAllMessages)
			adminApi.DELETE("/messages/:id", messageController.DeleteMessage)
			adminApi.POST("/images", imageController.UploadImage)
			adminApi.PUT("/images/:id", imageController.UpdateImage)
			adminApi.DELETE("/images/:id", imageController.DeleteImage)
		}

		// User-scoped endpoint: requires a token carrying a user identity,
		// which admin tokens do not have
		userApi := api.Group("")
		userApi.Use(middleware.TokenAuth(tokens), middleware.RequireUser())
		{
			userApi.GET("/my-registrations", registrationController.MyRegistrations)
		}
	}

	// Static pages, uploaded content, and the 404 fallback
	pages.Register(router, configuration.PagesDir, configuration.UploadDir)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "fest-api",
	})
}
