package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/pos-contable/internal/domain/inventory"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Promedio ponderado clásico: 10 unidades a $5 + 10 unidades a $7 → $6.
func TestNewCost_PromedioPonderado(t *testing.T) {
	got := inventory.NewCost(inventory.PolicyWeightedAverage, d("10"), d("5"), d("10"), d("7"))
	assert.True(t, d("6").Equal(got), "esperado 6, obtenido %s", got)
}

// El promedio pondera por cantidades, no es el promedio simple de costos.
func TestNewCost_PromedioPonderaPorCantidad(t *testing.T) {
	// 30 a $2 + 10 a $6 → (60+60)/40 = 3
	got := inventory.NewCost(inventory.PolicyWeightedAverage, d("30"), d("2"), d("10"), d("6"))
	assert.True(t, d("3").Equal(got), "esperado 3, obtenido %s", got)
}

// Una entrada de cantidad cero no altera el costo, con ninguna política.
func TestNewCost_CantidadCeroNoAlteraCosto(t *testing.T) {
	for _, policy := range []inventory.CostPolicy{inventory.PolicyOverwrite, inventory.PolicyWeightedAverage} {
		got := inventory.NewCost(policy, d("10"), d("5"), decimal.Zero, d("99"))
		assert.True(t, d("5").Equal(got), "política %s: esperado 5, obtenido %s", policy, got)
	}
}

// Con overwrite el costo entrante reemplaza al vigente sin ponderar.
func TestNewCost_Overwrite(t *testing.T) {
	got := inventory.NewCost(inventory.PolicyOverwrite, d("100"), d("5"), d("1"), d("7.50"))
	assert.True(t, d("7.50").Equal(got), "esperado 7.50, obtenido %s", got)
}

// Si el stock resultante queda en cero o negativo, el promedio resuelve a 0
// en vez de dividir por cero o producir costos sin sentido.
func TestNewCost_StockResultanteNoPositivo(t *testing.T) {
	got := inventory.NewCost(inventory.PolicyWeightedAverage, d("-10"), d("5"), d("10"), d("7"))
	assert.True(t, got.IsZero(), "esperado 0, obtenido %s", got)

	got = inventory.NewCost(inventory.PolicyWeightedAverage, d("-15"), d("5"), d("10"), d("7"))
	assert.True(t, got.IsZero(), "esperado 0, obtenido %s", got)
}

// Entrada sobre stock negativo con resultado positivo: sigue la fórmula.
func TestNewCost_EntradaSobreStockNegativo(t *testing.T) {
	// (-5*4 + 15*8) / 10 = 100/10 = 10
	got := inventory.NewCost(inventory.PolicyWeightedAverage, d("-5"), d("4"), d("15"), d("8"))
	assert.True(t, d("10").Equal(got), "esperado 10, obtenido %s", got)
}

func TestValidCostPolicy(t *testing.T) {
	assert.True(t, inventory.ValidCostPolicy("overwrite"))
	assert.True(t, inventory.ValidCostPolicy("weighted_average"))
	assert.False(t, inventory.ValidCostPolicy("fifo"))
	assert.False(t, inventory.ValidCostPolicy(""))
}

func TestValuation(t *testing.T) {
	assert.True(t, d("125").Equal(inventory.Valuation(d("25"), d("5"))))
	// El valor total acompaña al stock negativo (sobreventa).
	assert.True(t, d("-15").Equal(inventory.Valuation(d("-3"), d("5"))))
}
