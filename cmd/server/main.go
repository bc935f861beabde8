package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	api_middleware "github.com/itacademy/dice-game-api/api/middleware"
	v1 "github.com/itacademy/dice-game-api/api/v1"
	"github.com/itacademy/dice-game-api/internal/auth"
	"github.com/itacademy/dice-game-api/internal/game"
	"github.com/itacademy/dice-game-api/internal/ranking"
	"github.com/itacademy/dice-game-api/internal/user"
	"github.com/itacademy/dice-game-api/pkg/config"
	"github.com/itacademy/dice-game-api/pkg/db"
	"github.com/itacademy/dice-game-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	zlog, err := logger.New()
	if err != nil {
		log.Fatalf("error creating logger: %v", err)
	}
	defer zlog.Sync()

	if err := db.Init(cfg); err != nil {
		zlog.Fatal("error connecting to storage", zap.Error(err))
	}
	if err := db.DB.AutoMigrate(&user.User{}, &game.Game{}); err != nil {
		zlog.Fatal("error migrating schema", zap.Error(err))
	}

	registry := auth.NewRedisTokenRegistry(db.Rdb)
	tokens := auth.NewTokenService(cfg.JWT.Secret, cfg.JWT.TTL, registry)
	userRepo := user.NewGormRepository(db.DB)
	gameRepo := game.NewGormRepository(db.DB)

	v1.Users = user.NewService(userRepo, tokens)
	v1.Games = game.NewService(gameRepo, game.NewDice(nil))
	v1.Rankings = ranking.NewService(userRepo, gameRepo)

	e := echo.New()
	e.HTTPErrorHandler = api_middleware.NewHTTPErrorHandler(zlog)

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(api_middleware.Telemetry())

	jwt := api_middleware.SetupJWTMiddleware(tokens)
	api := e.Group("/api")
	players := api.Group("/players")
	v1.RegisterPlayerRoutes(players, jwt)
	v1.RegisterGameRoutes(players, jwt)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/health", healthHandler)

	zlog.Info("starting server", zap.String("port", cfg.Port))
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}

func healthHandler(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	sqlDB, err := db.DB.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err == nil {
		err = db.Rdb.Ping(ctx).Err()
	}
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"status": "unavailable"})
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
