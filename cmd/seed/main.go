// seed aplica el esquema y carga los datos iniciales del negocio: el PUC
// básico, un catálogo de ejemplo y el usuario admin.
//
// Uso: go run ./cmd/seed
// Credenciales iniciales: admin / admin123 (cambiar en producción).
package main

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/pos-contable/internal/application/accounting"
	"github.com/tu-usuario/pos-contable/internal/application/auth"
	"github.com/tu-usuario/pos-contable/internal/application/catalog"
	"github.com/tu-usuario/pos-contable/internal/application/dto"
	"github.com/tu-usuario/pos-contable/internal/domain"
	"github.com/tu-usuario/pos-contable/internal/domain/entity"
	"github.com/tu-usuario/pos-contable/internal/infrastructure/postgres"
	"github.com/tu-usuario/pos-contable/pkg/config"
	"github.com/tu-usuario/pos-contable/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("aplicar esquema")
	}
	log.Info().Msg("esquema aplicado")

	// PUC básico
	chartUC := accounting.NewChartUseCase(postgres.NewAccountRepository(pool))
	created, err := chartUC.SeedBasicChart(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("sembrar plan de cuentas")
	}
	log.Info().Int("cuentas", created).Msg("plan de cuentas sembrado")

	// Catálogo de ejemplo
	productUC := catalog.NewProductUseCase(postgres.NewProductRepository(pool))
	products := []dto.CreateProductRequest{
		{Name: "Arroz x 500g", Stock: decimal.NewFromInt(100), Cost: decimal.NewFromInt(1800), Price: decimal.NewFromInt(2500), Unit: "UND"},
		{Name: "Aceite x 1L", Stock: decimal.NewFromInt(50), Cost: decimal.NewFromInt(9500), Price: decimal.NewFromInt(12900), Unit: "UND"},
		{Name: "Panela x 250g", Stock: decimal.NewFromInt(80), Cost: decimal.NewFromInt(1200), Price: decimal.NewFromInt(1800), Unit: "UND"},
		{Name: "Café molido x 500g", Stock: decimal.NewFromInt(40), Cost: decimal.NewFromInt(11000), Price: decimal.NewFromInt(14500), Unit: "UND"},
	}
	seeded := 0
	for _, p := range products {
		if _, err := productUC.CreateProduct(ctx, p); err != nil {
			if err == domain.ErrDuplicate {
				continue
			}
			log.Fatal().Err(err).Str("producto", p.Name).Msg("sembrar producto")
		}
		seeded++
	}
	log.Info().Int("productos", seeded).Msg("catálogo sembrado")

	// Usuario admin
	authUC := auth.NewAuthUseCase(postgres.NewUserRepository(pool), auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	_, err = authUC.RegisterUser(dto.RegisterRequest{
		Username: "admin",
		Password: "admin123",
		Role:     entity.RoleAdmin,
	})
	if err != nil && err != domain.ErrUserAlreadyExists {
		log.Fatal().Err(err).Msg("crear usuario admin")
	}
	if err == nil {
		log.Info().Str("usuario", "admin").Msg("usuario admin creado")
	}

	log.Info().Msg("seed completado")
}
