package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "loanledger/internal/adapter/http"
	"loanledger/internal/adapter/middleware"
	"loanledger/internal/adapter/repository/mysql"
	"loanledger/internal/config"
	domainLoan "loanledger/internal/domain/loan"
	"loanledger/internal/infrastructure/cache"
	"loanledger/internal/infrastructure/db"
	loanuc "loanledger/internal/usecase/loan"
	"loanledger/internal/usecase/servicing"
)

func main() {
	// local dev convenience; the container env wins
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	if err := gdb.AutoMigrate(&domainLoan.Loan{}, &domainLoan.Repayment{}); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	loanRepo := mysql.NewLoanRepository(gdb)
	guow := mysql.NewGormUoW(gdb)

	loanUC := loanuc.NewUsecase(loanRepo)
	servicingUC := servicing.NewUsecase(guow)

	h := httpadp.NewHandler()
	loanH := httpadp.NewLoanHandler(loanUC)
	servicingH := httpadp.NewServicingHandler(servicingUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	// routes
	e.GET("/health", h.Health)
	e.GET("/loans", loanH.ListLoans)
	e.GET("/loans/:loan_id", loanH.GetLoan)
	e.GET("/portfolio/metrics", loanH.PortfolioMetrics)
	e.POST("/quote", loanH.Quote) // stateless preview, no idempotency needed

	// mutations sit behind the idempotency guard
	idem := middleware.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)
	m := e.Group("", idem)
	m.POST("/loans", loanH.CreateLoan)
	m.POST("/loans/:loan_id/approve", servicingH.ApproveLoan)
	m.POST("/loans/:loan_id/reject", servicingH.RejectLoan)
	m.POST("/loans/:loan_id/lender", servicingH.AssignLender)
	m.POST("/loans/:loan_id/disburse", servicingH.DisburseLoan)
	m.PUT("/loans/:loan_id/repayments/:month", servicingH.RecordPayment)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
