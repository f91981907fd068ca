package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/pos-contable/internal/application/accounting"
	"github.com/tu-usuario/pos-contable/internal/application/auth"
	"github.com/tu-usuario/pos-contable/internal/application/catalog"
	"github.com/tu-usuario/pos-contable/internal/application/orders"
	"github.com/tu-usuario/pos-contable/internal/application/reports"
	"github.com/tu-usuario/pos-contable/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ProductUC   *catalog.ProductUseCase
	PartyUC     *catalog.PartyUseCase
	RecordUC    *orders.RecordEventUseCase
	QueryUC     *orders.DocumentQueryUseCase
	PDFUC       *orders.InvoicePDFUseCase
	ChartUC     *accounting.ChartUseCase
	ReportingUC *accounting.ReportingUseCase
	ReportsUC   *reports.ReportsUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Usuarios (solo admin)
	usuarios := protected.Group("/usuarios", RequireRole(entity.RoleAdmin))
	usuarios.Get("/", authHandler.ListUsers)
	usuarios.Put("/:id/activo", authHandler.SetActive)

	// Productos
	productos := protected.Group("/productos")
	productHandler := NewProductHandler(deps.ProductUC)
	productos.Post("/", productHandler.Create)
	productos.Get("/", productHandler.List)
	productos.Get("/:id", productHandler.GetByID)
	productos.Put("/:id", productHandler.Update)
	productos.Delete("/:id", RequireRole(entity.RoleAdmin), productHandler.Delete)

	// Terceros
	terceros := protected.Group("/terceros")
	partyHandler := NewPartyHandler(deps.PartyUC)
	terceros.Post("/", partyHandler.Create)
	terceros.Get("/", partyHandler.List)
	terceros.Get("/:id", partyHandler.GetByID)

	// Documentos comerciales
	docHandler := NewDocumentHandler(deps.RecordUC, deps.QueryUC, deps.PDFUC)

	facturas := protected.Group("/facturas")
	facturas.Post("/", docHandler.CreateInvoice)
	facturas.Get("/", docHandler.ListInvoices)
	facturas.Get("/:id/pdf", docHandler.InvoicePDF)

	compras := protected.Group("/compras")
	compras.Post("/", docHandler.CreatePurchase)
	compras.Get("/", docHandler.ListPurchases)

	notas := protected.Group("/notas-credito")
	notas.Post("/", docHandler.CreateCreditNote)
	notas.Get("/", docHandler.ListCreditNotes)

	recibos := protected.Group("/recibos-caja")
	recibos.Post("/", docHandler.CreateCashReceipt)
	recibos.Get("/", docHandler.ListCashReceipts)

	egresos := protected.Group("/egresos")
	egresos.Post("/", docHandler.CreateCashDisbursement)
	egresos.Get("/", docHandler.ListCashDisbursements)

	transformaciones := protected.Group("/transformaciones")
	transformaciones.Post("/", docHandler.CreateTransformation)
	transformaciones.Get("/", docHandler.ListTransformations)

	documentos := protected.Group("/documentos")
	documentos.Get("/:id", docHandler.GetByID)

	// Contabilidad
	contabilidad := protected.Group("/contabilidad")
	accountingHandler := NewAccountingHandler(deps.ChartUC, deps.ReportingUC)
	contabilidad.Post("/cuentas", RequireRole(entity.RoleAdmin), accountingHandler.CreateAccount)
	contabilidad.Get("/cuentas", accountingHandler.ListAccounts)
	contabilidad.Get("/movimientos", accountingHandler.Movements)
	contabilidad.Get("/documentos/:id/movimientos", accountingHandler.DocumentMovements)
	contabilidad.Get("/balance", accountingHandler.TrialBalance)
	contabilidad.Get("/exportar", accountingHandler.ExportJournal)

	// Reportes
	reportes := protected.Group("/reportes")
	reportsHandler := NewReportsHandler(deps.ReportsUC)
	reportes.Get("/ventas", reportsHandler.SalesSummary)
	reportes.Get("/compras", reportsHandler.PurchasesSummary)
}
