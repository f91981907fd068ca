package inventory

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/pos-contable/internal/domain"
	invdomain "github.com/tu-usuario/pos-contable/internal/domain/inventory"
	"github.com/tu-usuario/pos-contable/internal/domain/repository"
)

// StockUseCase aplica eventos de inventario sobre un producto. Los métodos
// *InTx operan con el repositorio que el caller ata a su transacción y
// bloquean la fila del producto (SELECT FOR UPDATE), de modo que el ajuste
// de stock, el documento y los asientos se confirman o revierten juntos.
type StockUseCase struct {
	productRepo repository.ProductRepository
}

// NewStockUseCase construye el caso de uso con el repo de solo lectura
// (Valuation); las mutaciones reciben el repo transaccional por parámetro.
func NewStockUseCase(productRepo repository.ProductRepository) *StockUseCase {
	return &StockUseCase{productRepo: productRepo}
}

// DecreaseInTx resta quantity del stock; el costo unitario no cambia.
// Usado por ventas y por las líneas consumidas de una transformación.
// Devuelve el costo unitario vigente al momento de la salida (para valuar
// consumos) y si el stock quedó negativo. No hay piso en cero: la
// sobreventa es representable; el caller decide cómo reportarla.
func (uc *StockUseCase) DecreaseInTx(productRepo repository.ProductRepository, productID string, quantity decimal.Decimal, now time.Time) (unitCost decimal.Decimal, negative bool, err error) {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, false, domain.ErrInvalidInput
	}
	product, err := productRepo.GetForUpdate(productID)
	if err != nil {
		return decimal.Zero, false, err
	}
	if product == nil {
		return decimal.Zero, false, domain.ErrNotFound
	}
	newStock := product.Stock.Sub(quantity)
	totalValue := invdomain.Valuation(newStock, product.Cost)
	if err := productRepo.UpdateStockAndCost(productID, newStock, product.Cost, totalValue); err != nil {
		return decimal.Zero, false, err
	}
	return product.Cost, newStock.LessThan(decimal.Zero), nil
}

// RestockInTx reingresa quantity al stock sin tocar el costo unitario
// (devoluciones por nota crédito).
func (uc *StockUseCase) RestockInTx(productRepo repository.ProductRepository, productID string, quantity decimal.Decimal, now time.Time) error {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	product, err := productRepo.GetForUpdate(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	newStock := product.Stock.Add(quantity)
	totalValue := invdomain.Valuation(newStock, product.Cost)
	return productRepo.UpdateStockAndCost(productID, newStock, product.Cost, totalValue)
}

// IncreaseInTx suma quantity al stock y recalcula el costo unitario con la
// política indicada. Usado por compras, líneas producidas de una
// transformación y reingresos de nota crédito. Una entrada de cantidad
// cero no altera ni stock ni costo.
func (uc *StockUseCase) IncreaseInTx(productRepo repository.ProductRepository, productID string, quantity, unitCost decimal.Decimal, policy invdomain.CostPolicy, now time.Time) error {
	if quantity.LessThan(decimal.Zero) || unitCost.LessThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	product, err := productRepo.GetForUpdate(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	newStock := product.Stock.Add(quantity)
	newCost := invdomain.NewCost(policy, product.Stock, product.Cost, quantity, unitCost)
	totalValue := invdomain.Valuation(newStock, newCost)
	return productRepo.UpdateStockAndCost(productID, newStock, newCost, totalValue)
}

// Valuation devuelve stock × costo del ítem (consulta, fuera de tx).
func (uc *StockUseCase) Valuation(ctx context.Context, productID string) (decimal.Decimal, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return decimal.Zero, err
	}
	if product == nil {
		return decimal.Zero, domain.ErrNotFound
	}
	return invdomain.Valuation(product.Stock, product.Cost), nil
}
