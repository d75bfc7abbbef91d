package bootstrap

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appAuth "github.com/yigit/classbook/internal/app/auth"
	appControllers "github.com/yigit/classbook/internal/app/controllers"
	appMigrations "github.com/yigit/classbook/internal/app/migrations"
	appRepos "github.com/yigit/classbook/internal/app/repositories"
	appRoutes "github.com/yigit/classbook/internal/app/routes"
	appServices "github.com/yigit/classbook/internal/app/services"
	"github.com/yigit/classbook/internal/config"
	"github.com/yigit/classbook/internal/db"
	appMiddleware "github.com/yigit/classbook/internal/middleware"
	pkgAuth "github.com/yigit/classbook/internal/pkg/auth"
	"github.com/yigit/classbook/internal/pkg/helpers"
	"github.com/yigit/classbook/internal/pkg/logger"
	"github.com/yigit/classbook/internal/pkg/payments"
)

// Database is the pool surface the application needs. *pgxpool.Pool satisfies it.
type Database interface {
	db.Pool
	Ping(ctx context.Context) error
}

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService    *appServices.AuthService
	UserService    appServices.UserService
	CatalogService appServices.CatalogService
	ClassService   *appServices.ClassService
	CartService    *appServices.CartService
	PaymentService *appServices.PaymentService

	SystemController  *appControllers.SystemController
	AuthController    *appControllers.AuthController
	UserController    *appControllers.UserController
	CatalogController *appControllers.CatalogController
	ClassController   *appControllers.ClassController
	CartController    *appControllers.CartController
	PaymentController *appControllers.PaymentController

	AuthMiddleware *appMiddleware.AuthMiddleware
	Repos          *appRepos.Repositories
	JWTService     *pkgAuth.JWTService
	AuthzService   *appAuth.AuthorizationService
	Payments       appServices.PaymentProcessor
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	// "text" selects the console writer; anything else logs JSON
	lgr := logger.Configure(logger.Config{
		Level:  cfg.Logging.Level,
		Pretty: strings.EqualFold(cfg.Logging.Format, "text"),
	})

	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// ConnectDatabase opens the connection pool without touching the schema.
func ConnectDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Str("host", cfg.Database.Host).Str("dbname", cfg.Database.DBName).Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")
	return database, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	database, err := ConnectDatabase(cfg, lgr)
	if err != nil {
		return nil, err
	}

	// Run migrations
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	lgr.Info().Msg("Running database migrations...")
	if err := appMigrations.NewMigrator(database.Pool, lgr).Migrate(ctx); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	return database, nil
}

// NewPaymentClient builds the processor client from the payments section
func NewPaymentClient(cfg *config.Config) *payments.Client {
	return payments.NewClient(payments.Config{
		APIURL:    cfg.Payments.APIURL,
		SecretKey: cfg.Payments.SecretKey,
		Currency:  cfg.Payments.Currency,
		Timeout:   helpers.ParseDuration(cfg.Payments.Timeout, 15*time.Second),
	})
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database Database, processor appServices.PaymentProcessor, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr, Payments: processor}

	// Stores share the one pool
	deps.Repos = appRepos.NewRepositories(database)

	deps.AuthzService = appAuth.NewAuthorizationService(deps.Repos.UserRepository)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	// Initialize services
	deps.AuthService = appServices.NewAuthService(deps.JWTService, lgr)
	deps.UserService = appServices.NewUserService(deps.Repos.UserRepository, deps.AuthzService, lgr)
	deps.CatalogService = appServices.NewCatalogService(deps.Repos.CatalogRepository)
	deps.ClassService = appServices.NewClassService(deps.Repos.ClassRepository, deps.AuthzService, lgr)
	deps.CartService = appServices.NewCartService(deps.Repos.CartRepository, deps.Repos.ClassRepository, deps.AuthzService, lgr)
	deps.PaymentService = appServices.NewPaymentService(deps.Repos.PaymentRepository, processor, deps.AuthzService, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.AuthzService)

	// Initialize controllers
	deps.SystemController = appControllers.NewSystemController(database)
	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.UserController = appControllers.NewUserController(deps.UserService)
	deps.CatalogController = appControllers.NewCatalogController(deps.CatalogService)
	deps.ClassController = appControllers.NewClassController(deps.ClassService)
	deps.CartController = appControllers.NewCartController(deps.CartService)
	deps.PaymentController = appControllers.NewPaymentController(deps.PaymentService)

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	// Recovery first so a panic in any later middleware still answers JSON
	router := gin.New()
	router.Use(appMiddleware.Recovery())
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(cors.New(corsConfig(cfg.CORS.AllowedOrigins)))

	// Setup Swagger
	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.SystemController,
		deps.AuthController,
		deps.CatalogController,
		deps.ClassController,
		deps.UserController,
		deps.CartController,
		deps.PaymentController,
		deps.AuthMiddleware,
	)

	return router
}

func corsConfig(origins []string) cors.Config {
	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}

	if len(origins) == 0 {
		corsCfg.AllowAllOrigins = true
		return corsCfg
	}
	for _, origin := range origins {
		if strings.TrimSpace(origin) == "*" {
			corsCfg.AllowAllOrigins = true
			return corsCfg
		}
	}
	corsCfg.AllowOrigins = origins
	// Credentials cannot be combined with a wildcard origin
	corsCfg.AllowCredentials = true
	return corsCfg
}
