package repository

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/pos-contable/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia de productos.
// GetForUpdate bloquea la fila (SELECT FOR UPDATE) para serializar
// mutaciones concurrentes de stock/costo sobre el mismo ítem.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByName(name string) (*entity.Product, error)
	List() ([]*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) error
	GetForUpdate(id string) (*entity.Product, error)
	// UpdateStockAndCost persiste stock, costo y valor total materializado.
	UpdateStockAndCost(id string, stock, cost, totalValue decimal.Decimal) error
}
