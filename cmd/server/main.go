package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"lpc/config"
	"lpc/database"
	"lpc/router"

	// Auth + Health
	authCtrlImp "lpc/pkg/auth/controllerImp"
	healthCtrlImp "lpc/pkg/health/controllerImp"

	// External collaborators
	"lpc/pkg/gateway"
	"lpc/pkg/generation"

	// Composer sessions
	sessCtrlImp "lpc/pkg/session/controllerImp"
	sessRepoImp "lpc/pkg/session/repositoryImp"
	sessSvc "lpc/pkg/session/serviceImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())

	// 4) Generation service (mock fallback)
	var gen generation.Client
	if cfg.GenEndpoint != "" {
		gen = generation.NewHTTP(cfg.GenEndpoint, cfg.GenAPIKey)
	} else {
		log.Printf("[main] GEN_ENDPOINT not set, using mock generation client")
		gen = generation.NewMock()
	}

	// 5) Persistence backend (mock fallback)
	var gw gateway.Client
	if cfg.BackendEndpoint != "" {
		gw = gateway.NewHTTP(cfg.BackendEndpoint, cfg.BackendAPIKey)
	} else {
		log.Printf("[main] BACKEND_ENDPOINT not set, using mock backend client")
		gw = gateway.NewMock()
	}

	// 6) Session registry + controller
	repo := sessRepoImp.New(db)
	reg := sessSvc.NewRegistry(repo, gen, gw, cfg.OrgID)
	if err := reg.Restore(); err != nil {
		log.Fatalf("restore sessions: %v", err)
	}
	sessCtrl := sessCtrlImp.New(reg)

	// 7) Auth + Health
	authCtrl := authCtrlImp.NewAuthController()
	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 8) Router
	r := router.New(e, sessCtrl, authCtrl, hCtrl)

	// 9) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
