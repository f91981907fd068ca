package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un ítem de inventario de la tienda (mono-bodega).
// Cost es el costo unitario vigente (promedio ponderado o último costo,
// según la política aplicada en cada entrada); Price es el precio de venta,
// independiente del costo. TotalValue = Stock × Cost, materializado y
// recalculado en cada mutación de stock.
type Product struct {
	ID         string
	Name       string // único
	Stock      decimal.Decimal // puede quedar negativo (sobreventa); ver StockUseCase
	Cost       decimal.Decimal
	Price      decimal.Decimal
	TotalValue decimal.Decimal
	Unit       string // UND, kg, ...
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
