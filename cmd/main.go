package main

import (
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/addness-teambase/kyonodekita-sub002/config"
	"github.com/addness-teambase/kyonodekita-sub002/database"
	"github.com/addness-teambase/kyonodekita-sub002/handlers"
	"github.com/addness-teambase/kyonodekita-sub002/logger"
	"github.com/addness-teambase/kyonodekita-sub002/routes"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORS())
	e.Validator = handlers.NewValidator()

	routes.Register(e, db, cfg, log)

	addr := ":" + cfg.AppPort
	log.Infof("server listening at %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
