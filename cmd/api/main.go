package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/primabarber/barberstock-api/internal/application/auth"
	"github.com/primabarber/barberstock-api/internal/application/report"
	"github.com/primabarber/barberstock-api/internal/application/stock"
	"github.com/primabarber/barberstock-api/internal/application/usecase"
	infrapdf "github.com/primabarber/barberstock-api/internal/infrastructure/pdf"
	"github.com/primabarber/barberstock-api/internal/infrastructure/postgres"
	httpRouter "github.com/primabarber/barberstock-api/internal/interfaces/http"
	"github.com/primabarber/barberstock-api/pkg/config"
	"github.com/primabarber/barberstock-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	outletRepo := postgres.NewOutletRepository(pool)
	memberRepo := postgres.NewMemberRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	salesRepo := postgres.NewSalesRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, outletRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	productUC := usecase.NewProductUseCase(productRepo)
	outletUC := usecase.NewOutletUseCase(outletRepo)
	memberUC := usecase.NewMemberUseCase(memberRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	submitMovementsUC := stock.NewSubmitMovementsUseCase(txRunner)
	ledgerUC := report.NewLedgerUseCase(inventoryRepo, movementRepo, salesRepo)
	pdfGenerator := infrapdf.NewMarotoReportGenerator()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "BarberStock API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:          authUC,
		ProductUC:       productUC,
		OutletUC:        outletUC,
		MemberUC:        memberUC,
		UserUC:          userUC,
		SubmitMovements: submitMovementsUC,
		LedgerUC:        ledgerUC,
		MovementRepo:    movementRepo,
		PDFGenerator:    pdfGenerator,
		JWTSecret:       cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
