package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "creditflow-backend/internal/adapter/http"
	"creditflow-backend/internal/adapter/middleware"
	"creditflow-backend/internal/adapter/repository/mysql"
	"creditflow-backend/internal/config"
	"creditflow-backend/internal/infrastructure/cache"
	"creditflow-backend/internal/infrastructure/db"
	lifecycleUC "creditflow-backend/internal/usecase/lifecycle"
	profileUC "creditflow-backend/internal/usecase/profile"
	scoringUC "creditflow-backend/internal/usecase/scoring"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	// repositories + unit of work
	profileRepo := mysql.NewProfileRepository(gdb)
	appRepo := mysql.NewApplicationRepository(gdb)
	loanRepo := mysql.NewActiveLoanRepository(gdb)
	ledgerRepo := mysql.NewLedgerRepository(gdb)
	guow := mysql.NewGormUoW(gdb)

	// usecases
	profiles := profileUC.NewUsecase(profileRepo)
	assessor := scoringUC.NewUsecase(profileRepo, cache.NewCache(rdb),
		time.Duration(cfg.AssessCacheTTLSecs)*time.Second)
	lifecycle := lifecycleUC.NewUsecase(appRepo, loanRepo, ledgerRepo, guow)

	// handlers
	h := httpadp.NewHandler()
	ph := httpadp.NewProfileHandler(profiles)
	lh := httpadp.NewLoanHandler(lifecycle)
	sh := httpadp.NewScoringHandler(assessor)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	e.GET("/health", h.Health)

	api := e.Group("",
		middleware.Identity(cfg.OwnerID),
		middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second),
	)
	api.POST("/profiles", ph.RegisterProfile)
	api.GET("/profiles/:borrower_id", ph.GetProfile)
	api.POST("/loans", lh.Apply)
	api.GET("/loans/:id", lh.GetApplication)
	api.POST("/loans/:id/approve", lh.Approve)
	api.POST("/loans/:id/disburse", lh.Disburse)
	api.POST("/loans/:id/payments", lh.RecordPayment)
	api.GET("/loans/:id/active", lh.GetActiveLoan)
	api.GET("/stats", lh.GetStats)
	api.POST("/risk-assessments", sh.Assess)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
