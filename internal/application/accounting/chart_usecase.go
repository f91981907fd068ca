package accounting

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/pos-contable/internal/application/dto"
	"github.com/tu-usuario/pos-contable/internal/domain"
	"github.com/tu-usuario/pos-contable/internal/domain/entity"
	"github.com/tu-usuario/pos-contable/internal/domain/repository"
)

// ChartUseCase administra el plan de cuentas (PUC). Las cuentas son
// inmutables y nunca se borran: los asientos guardan la referencia.
type ChartUseCase struct {
	accountRepo repository.AccountRepository
}

// NewChartUseCase construye el caso de uso.
func NewChartUseCase(accountRepo repository.AccountRepository) *ChartUseCase {
	return &ChartUseCase{accountRepo: accountRepo}
}

// AddAccount registra una cuenta. Devuelve domain.ErrDuplicate si el
// código ya existe y domain.ErrInvalidInput ante campos vacíos o tipo
// desconocido.
func (uc *ChartUseCase) AddAccount(ctx context.Context, in dto.CreateAccountRequest) (*dto.AccountResponse, error) {
	if in.Code == "" || in.Name == "" || !entity.ValidAccountType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	account := &entity.Account{
		ID:        uuid.New().String(),
		Code:      in.Code,
		Name:      in.Name,
		Type:      in.Type,
		CreatedAt: time.Now(),
	}
	if err := uc.accountRepo.Create(account); err != nil {
		return nil, err
	}
	return &dto.AccountResponse{Code: account.Code, Name: account.Name, Type: account.Type}, nil
}

// ListAccounts lista el PUC ordenado por código.
func (uc *ChartUseCase) ListAccounts(ctx context.Context) ([]dto.AccountResponse, error) {
	accounts, err := uc.accountRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, dto.AccountResponse{Code: a.Code, Name: a.Name, Type: a.Type})
	}
	return out, nil
}

// BasicChart es el PUC mínimo del negocio; ver también cmd/seed.
var BasicChart = []dto.CreateAccountRequest{
	{Code: "1105", Name: "Caja General", Type: entity.AccountTypeAsset},
	{Code: "1110", Name: "Bancos Comerciales", Type: entity.AccountTypeAsset},
	{Code: "1305", Name: "Clientes Nacionales", Type: entity.AccountTypeAsset},
	{Code: "1435", Name: "Mercancías no Fabricadas por la Empresa", Type: entity.AccountTypeAsset},
	{Code: "1540", Name: "Equipo de Oficina", Type: entity.AccountTypeAsset},
	{Code: "2205", Name: "Proveedores Nacionales", Type: entity.AccountTypeLiability},
	{Code: "2365", Name: "Retención en la Fuente", Type: entity.AccountTypeLiability},
	{Code: "2404", Name: "IVA por Pagar", Type: entity.AccountTypeLiability},
	{Code: "3105", Name: "Capital Suscrito y Pagado", Type: entity.AccountTypeEquity},
	{Code: "3605", Name: "Utilidades Acumuladas", Type: entity.AccountTypeEquity},
	{Code: "4135", Name: "Comercio al por Mayor y al Detal", Type: entity.AccountTypeIncome},
	{Code: "4175", Name: "Devoluciones en Ventas", Type: entity.AccountTypeIncome},
	{Code: "4199", Name: "Otros Ingresos", Type: entity.AccountTypeIncome},
	{Code: "5105", Name: "Gastos de Personal", Type: entity.AccountTypeExpense},
	{Code: "5135", Name: "Servicios", Type: entity.AccountTypeExpense},
	{Code: "5195", Name: "Diversos", Type: entity.AccountTypeExpense},
	{Code: "6135", Name: "Costo de Ventas - Comercio", Type: entity.AccountTypeExpense},
}

// SeedBasicChart registra las cuentas básicas, ignorando las ya existentes.
func (uc *ChartUseCase) SeedBasicChart(ctx context.Context) (int, error) {
	created := 0
	for _, in := range BasicChart {
		_, err := uc.AddAccount(ctx, in)
		if err == domain.ErrDuplicate {
			continue
		}
		if err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}
