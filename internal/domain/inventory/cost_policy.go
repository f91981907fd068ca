// Package inventory contiene los servicios puros de inventario: las
// políticas de costeo para entradas de stock y la valuación.
package inventory

import "github.com/shopspring/decimal"

// CostPolicy es la estrategia de costeo aplicada a una entrada de stock.
// El caller la elige por sitio de llamada, no global.
type CostPolicy string

const (
	// PolicyOverwrite: el costo entrante reemplaza el costo vigente.
	PolicyOverwrite CostPolicy = "overwrite"
	// PolicyWeightedAverage: promedio ponderado por cantidades.
	PolicyWeightedAverage CostPolicy = "weighted_average"
)

// ValidCostPolicy reporta si s nombra una política conocida.
func ValidCostPolicy(s string) bool {
	switch CostPolicy(s) {
	case PolicyOverwrite, PolicyWeightedAverage:
		return true
	}
	return false
}

// NewCost calcula el costo unitario resultante de una entrada de stock.
// Con PolicyWeightedAverage:
//
//	NuevoCosto = ((StockActual*CostoActual) + (CantEntrada*CostoEntrada)) / (StockActual + CantEntrada)
//
// Si el stock resultante queda en cero o negativo, el costo resultante es 0.
// Con PolicyOverwrite el costo entrante reemplaza al vigente.
// Una entrada de cantidad cero no altera el costo con ninguna política.
func NewCost(policy CostPolicy, currentStock, currentCost, inQty, inCost decimal.Decimal) decimal.Decimal {
	if inQty.IsZero() {
		return currentCost
	}
	switch policy {
	case PolicyOverwrite:
		return inCost
	case PolicyWeightedAverage:
		sum := currentStock.Add(inQty)
		if sum.LessThanOrEqual(decimal.Zero) {
			return decimal.Zero
		}
		num := currentStock.Mul(currentCost).Add(inQty.Mul(inCost))
		return num.Div(sum)
	}
	return currentCost
}

// Valuation devuelve stock × costo (valor total del ítem).
func Valuation(stock, cost decimal.Decimal) decimal.Decimal {
	return stock.Mul(cost)
}
