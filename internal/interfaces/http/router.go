package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/primabarber/barberstock-api/internal/application/auth"
	"github.com/primabarber/barberstock-api/internal/application/report"
	"github.com/primabarber/barberstock-api/internal/application/stock"
	"github.com/primabarber/barberstock-api/internal/application/usecase"
	"github.com/primabarber/barberstock-api/internal/domain/entity"
	"github.com/primabarber/barberstock-api/internal/domain/repository"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC          *auth.AuthUseCase
	ProductUC       *usecase.ProductUseCase
	OutletUC        *usecase.OutletUseCase
	MemberUC        *usecase.MemberUseCase
	UserUC          *usecase.UserUseCase
	SubmitMovements *stock.SubmitMovementsUseCase
	LedgerUC        *report.LedgerUseCase
	MovementRepo    repository.MovementRepository
	PDFGenerator    LedgerPDFGenerator
	JWTSecret       string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Protected routes (Bearer token required)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", RequireRole(entity.RoleAdmin), productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", RequireRole(entity.RoleAdmin), productHandler.Update)

	// Outlets
	outlets := protected.Group("/outlets")
	outletHandler := NewOutletHandler(deps.OutletUC)
	outlets.Post("/", RequireRole(entity.RoleAdmin), outletHandler.Create)
	outlets.Get("/", outletHandler.List)
	outlets.Get("/:id", outletHandler.GetByID)
	outlets.Put("/:id", RequireRole(entity.RoleAdmin), outletHandler.Update)

	// Members
	members := protected.Group("/members")
	memberHandler := NewMemberHandler(deps.MemberUC)
	members.Post("/", memberHandler.Create)
	members.Get("/", memberHandler.List)
	members.Get("/:id", memberHandler.GetByID)
	members.Put("/:id", memberHandler.Update)

	// Employee accounts: admin only
	users := protected.Group("/users", RequireRole(entity.RoleAdmin))
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)

	// Stock movements: writes restricted to admin and stockkeepers
	stockGroup := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.SubmitMovements, deps.MovementRepo)
	stockGroup.Post("/movements", RequireRole(entity.RoleAdmin, entity.RoleGudang), stockHandler.SubmitMovements)
	stockGroup.Get("/movements/:id", stockHandler.ListByProduct)

	// Stock ledger report + exports
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.LedgerUC, deps.PDFGenerator)
	reports.Get("/stock-ledger", reportHandler.StockLedger)
	reports.Get("/stock-ledger/export/csv", reportHandler.ExportCSV)
	reports.Get("/stock-ledger/export/xlsx", reportHandler.ExportXLSX)
	reports.Get("/stock-ledger/export/pdf", reportHandler.ExportPDF)
}
