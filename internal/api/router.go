package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/accountly/account-system/internal/api/handler"
	"github.com/accountly/account-system/internal/api/middleware"
	"github.com/accountly/account-system/internal/core/service"
	"github.com/accountly/account-system/internal/infrastructure/config"
	mongodb "github.com/accountly/account-system/internal/infrastructure/db/mongo"
	"github.com/accountly/account-system/internal/token"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("accounts"))

	// --- Dependencies ---
	issuer := token.NewIssuer(cfg.JWTSecret, cfg.TokenTTL)
	userRepo := mongodb.NewUserRepository(db)
	userService := service.NewUserService(userRepo, log)
	authService := service.NewAuthService(userRepo, issuer, log)

	userHandler := handler.NewUserHandler(userService)
	authHandler := handler.NewAuthHandler(authService, cfg.TokenTTL)
	sessionMiddleware := middleware.Session(issuer)
	guestMiddleware := middleware.Guest(issuer, cfg.AppPath)

	// --- Auth routes ---
	e.POST("/auth/signin", authHandler.SignIn)
	e.POST("/auth/signout", authHandler.SignOut)
	e.GET("/auth/session", authHandler.Session, sessionMiddleware)

	// Guest-only area: authenticated callers are redirected to the app root.
	e.GET(cfg.SignInPath, authHandler.SignInPage, guestMiddleware)

	// --- User procedures ---
	rpc := e.Group("/rpc")
	rpc.POST("/user.getUser", userHandler.GetUser)
	rpc.POST("/user.getAllUsers", userHandler.GetAllUsers)
	rpc.POST("/user.updateUser", userHandler.UpdateUser)
	rpc.POST("/user.registerUser", userHandler.RegisterUser)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
