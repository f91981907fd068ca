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
	"github.com/tu-usuario/pos-contable/internal/application/accounting"
	"github.com/tu-usuario/pos-contable/internal/application/auth"
	"github.com/tu-usuario/pos-contable/internal/application/catalog"
	appinventory "github.com/tu-usuario/pos-contable/internal/application/inventory"
	"github.com/tu-usuario/pos-contable/internal/application/orders"
	"github.com/tu-usuario/pos-contable/internal/application/reports"
	infrapdf "github.com/tu-usuario/pos-contable/internal/infrastructure/pdf"
	"github.com/tu-usuario/pos-contable/internal/infrastructure/postgres"
	"github.com/tu-usuario/pos-contable/internal/infrastructure/xmlexport"
	httpRouter "github.com/tu-usuario/pos-contable/internal/interfaces/http"
	"github.com/tu-usuario/pos-contable/pkg/config"
	"github.com/tu-usuario/pos-contable/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("aplicar esquema")
	}

	// Repos de lectura (pool); las escrituras de eventos viajan por el TxRunner.
	accountRepo := postgres.NewAccountRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	partyRepo := postgres.NewPartyRepository(pool)
	docRepo := postgres.NewDocumentRepository(pool)
	ledgerRepo := postgres.NewLedgerRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	reportsRepo := postgres.NewReportsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	stockUC := appinventory.NewStockUseCase(productRepo)
	recordUC := orders.NewRecordEventUseCase(txRunner, stockUC, partyRepo, productRepo, docRepo)
	queryUC := orders.NewDocumentQueryUseCase(docRepo, productRepo, partyRepo)

	pdfGenerator := infrapdf.NewMarotoInvoiceGenerator(cfg.App.Name)
	pdfUC := orders.NewInvoicePDFUseCase(docRepo, productRepo, partyRepo, pdfGenerator)

	chartUC := accounting.NewChartUseCase(accountRepo)
	reportingUC := accounting.NewReportingUseCase(ledgerRepo, xmlexport.NewJournalExporter())
	productUC := catalog.NewProductUseCase(productRepo)
	partyUC := catalog.NewPartyUseCase(partyRepo)
	reportsUC := reports.NewReportsUseCase(reportsRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "POS Contable API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ProductUC:   productUC,
		PartyUC:     partyUC,
		RecordUC:    recordUC,
		QueryUC:     queryUC,
		PDFUC:       pdfUC,
		ChartUC:     chartUC,
		ReportingUC: reportingUC,
		ReportsUC:   reportsUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
