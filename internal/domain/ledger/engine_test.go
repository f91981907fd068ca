package ledger_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/pos-contable/internal/domain/entity"
	"github.com/tu-usuario/pos-contable/internal/domain/ledger"
)

// fakeAccounts implementa ledger.AccountLookup en memoria.
type fakeAccounts map[string]*entity.Account

func (f fakeAccounts) GetByCode(code string) (*entity.Account, error) {
	return f[code], nil
}

func fullChart() fakeAccounts {
	chart := fakeAccounts{}
	for code, typ := range map[string]string{
		ledger.AccountCash:         entity.AccountTypeAsset,
		ledger.AccountInventory:    entity.AccountTypeAsset,
		ledger.AccountSuppliers:    entity.AccountTypeLiability,
		ledger.AccountSalesRevenue: entity.AccountTypeIncome,
		ledger.AccountSalesReturns: entity.AccountTypeIncome,
		ledger.AccountOtherIncome:  entity.AccountTypeIncome,
		ledger.AccountMiscExpense:  entity.AccountTypeExpense,
	} {
		chart[code] = &entity.Account{ID: "acc-" + code, Code: code, Type: typ}
	}
	return chart
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func doc(docType string, total string) *entity.Document {
	return &entity.Document{
		ID:     "doc-1",
		Type:   docType,
		Number: 7,
		Date:   time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
		Total:  d(total),
	}
}

// sumas de control del par emitido
func assertBalanced(t *testing.T, movs []*entity.LedgerMovement) {
	t.Helper()
	var debit, credit decimal.Decimal
	for _, m := range movs {
		debit = debit.Add(m.Debit)
		credit = credit.Add(m.Credit)
		// exactamente una pata distinta de cero por movimiento
		assert.True(t, m.Debit.IsZero() != m.Credit.IsZero(),
			"cada movimiento lleva débito o crédito, nunca ambos")
	}
	assert.True(t, debit.Equal(credit), "Σdébitos (%s) debe igualar Σcréditos (%s)", debit, credit)
}

func TestPost_FacturaDeVenta(t *testing.T) {
	engine := ledger.NewEngine(fullChart())
	movs, warnings, err := engine.Post(doc(entity.DocumentTypeInvoice, "150.00"))
	require.NoError(t, err)
	assert.Empty(t, warnings)
	require.Len(t, movs, 2)
	assertBalanced(t, movs)

	assert.Equal(t, "acc-"+ledger.AccountCash, movs[0].AccountID)
	assert.True(t, d("150.00").Equal(movs[0].Debit))
	assert.Equal(t, "acc-"+ledger.AccountSalesRevenue, movs[1].AccountID)
	assert.True(t, d("150.00").Equal(movs[1].Credit))
	assert.Equal(t, entity.ModuleSales, movs[0].Module)
	assert.Equal(t, "Venta factura #7", movs[0].Description)
}

func TestPost_CompraContadoYCredito(t *testing.T) {
	engine := ledger.NewEngine(fullChart())

	cash := doc(entity.DocumentTypePurchase, "80.00")
	cash.PaymentTerm = entity.PaymentTermCash
	movs, _, err := engine.Post(cash)
	require.NoError(t, err)
	require.Len(t, movs, 2)
	assertBalanced(t, movs)
	assert.Equal(t, "acc-"+ledger.AccountInventory, movs[0].AccountID)
	assert.Equal(t, "acc-"+ledger.AccountCash, movs[1].AccountID, "compra de contado acredita caja")

	credit := doc(entity.DocumentTypePurchase, "80.00")
	credit.PaymentTerm = entity.PaymentTermCredit
	movs, _, err = engine.Post(credit)
	require.NoError(t, err)
	require.Len(t, movs, 2)
	assert.Equal(t, "acc-"+ledger.AccountSuppliers, movs[1].AccountID, "compra a crédito acredita proveedores")
}

func TestPost_NotaCredito(t *testing.T) {
	engine := ledger.NewEngine(fullChart())
	movs, warnings, err := engine.Post(doc(entity.DocumentTypeCreditNote, "45.50"))
	require.NoError(t, err)
	assert.Empty(t, warnings)
	require.Len(t, movs, 2)
	assertBalanced(t, movs)
	// la reversa debita el ingreso y acredita devoluciones
	assert.Equal(t, "acc-"+ledger.AccountSalesRevenue, movs[0].AccountID)
	assert.Equal(t, "acc-"+ledger.AccountSalesReturns, movs[1].AccountID)
}

func TestPost_RecibosYEgresos(t *testing.T) {
	engine := ledger.NewEngine(fullChart())

	receipt := doc(entity.DocumentTypeCashReceipt, "30.00")
	receipt.Description = "Abono cliente"
	movs, _, err := engine.Post(receipt)
	require.NoError(t, err)
	require.Len(t, movs, 2)
	assertBalanced(t, movs)
	assert.Equal(t, "acc-"+ledger.AccountCash, movs[0].AccountID)
	assert.Equal(t, "acc-"+ledger.AccountOtherIncome, movs[1].AccountID)
	assert.Equal(t, "Recibo de Caja #7 - Abono cliente", movs[0].Description)

	disbursement := doc(entity.DocumentTypeCashDisbursement, "12.00")
	movs, _, err = engine.Post(disbursement)
	require.NoError(t, err)
	require.Len(t, movs, 2)
	assertBalanced(t, movs)
	assert.Equal(t, "acc-"+ledger.AccountMiscExpense, movs[0].AccountID)
	assert.Equal(t, "acc-"+ledger.AccountCash, movs[1].AccountID)
}

// La transformación debita inventario por lo producido y lo acredita por lo
// consumido; los montos pueden diferir porque la cuenta es la misma.
func TestPost_TransformacionMontosDistintos(t *testing.T) {
	engine := ledger.NewEngine(fullChart())
	transformation := doc(entity.DocumentTypeTransformation, "0")
	transformation.TotalConsumed = d("100.00")
	transformation.TotalProduced = d("120.00")

	movs, warnings, err := engine.Post(transformation)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	require.Len(t, movs, 2)

	assert.Equal(t, "acc-"+ledger.AccountInventory, movs[0].AccountID)
	assert.Equal(t, "acc-"+ledger.AccountInventory, movs[1].AccountID)
	assert.True(t, d("120.00").Equal(movs[0].Debit))
	assert.True(t, d("100.00").Equal(movs[1].Credit))
}

// Cuenta faltante: se omite el par COMPLETO y sube un warning; nunca queda
// una pata suelta y nunca es error.
func TestPost_CuentaFaltanteOmiteParCompleto(t *testing.T) {
	chart := fullChart()
	delete(chart, ledger.AccountSalesRevenue)
	engine := ledger.NewEngine(chart)

	movs, warnings, err := engine.Post(doc(entity.DocumentTypeInvoice, "150.00"))
	require.NoError(t, err)
	assert.Empty(t, movs, "sin la cuenta de ingresos no se emite ninguna pata")
	require.Len(t, warnings, 1)
	assert.Equal(t, ledger.AccountSalesRevenue, warnings[0].AccountCode)
	assert.Equal(t, entity.ModuleSales, warnings[0].Module)
	assert.Equal(t, "doc-1", warnings[0].DocumentID)
}

func TestPost_TipoDesconocido(t *testing.T) {
	engine := ledger.NewEngine(fullChart())
	_, _, err := engine.Post(doc("otro", "10"))
	assert.Error(t, err)
}

// Redondeo: los montos del par salen redondeados a 2 decimales.
func TestPost_RedondeaADosDecimales(t *testing.T) {
	engine := ledger.NewEngine(fullChart())
	movs, _, err := engine.Post(doc(entity.DocumentTypeInvoice, "10.005"))
	require.NoError(t, err)
	require.Len(t, movs, 2)
	assert.True(t, d("10.01").Equal(movs[0].Debit), "obtenido %s", movs[0].Debit)
	assertBalanced(t, movs)
}

func TestNormalBalance(t *testing.T) {
	// activo y gasto saldan débito−crédito
	assert.True(t, d("70").Equal(ledger.NormalBalance(entity.AccountTypeAsset, d("100"), d("30"))))
	assert.True(t, d("70").Equal(ledger.NormalBalance(entity.AccountTypeExpense, d("100"), d("30"))))
	// pasivo, patrimonio e ingreso saldan crédito−débito
	assert.True(t, d("-70").Equal(ledger.NormalBalance(entity.AccountTypeIncome, d("100"), d("30"))))
	assert.True(t, d("70").Equal(ledger.NormalBalance(entity.AccountTypeLiability, d("30"), d("100"))))
	assert.True(t, d("70").Equal(ledger.NormalBalance(entity.AccountTypeEquity, d("30"), d("100"))))
}
