package orders_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/pos-contable/internal/application/dto"
	appinventory "github.com/tu-usuario/pos-contable/internal/application/inventory"
	"github.com/tu-usuario/pos-contable/internal/application/orders"
	"github.com/tu-usuario/pos-contable/internal/domain"
	"github.com/tu-usuario/pos-contable/internal/domain/entity"
	"github.com/tu-usuario/pos-contable/internal/domain/ledger"
	"github.com/tu-usuario/pos-contable/internal/domain/repository"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: un memStore con todos los repos encima, sin transacciones
// reales (el TxRunner fake ejecuta el callback directo sobre el store).
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	accounts  map[string]*entity.Account // por código
	products  map[string]*entity.Product
	parties   map[string]*entity.Party
	documents map[string]*entity.Document
	lines     []*entity.DocumentLine
	movements []*entity.LedgerMovement
}

func newMemStore() *memStore {
	return &memStore{
		accounts:  map[string]*entity.Account{},
		products:  map[string]*entity.Product{},
		parties:   map[string]*entity.Party{},
		documents: map[string]*entity.Document{},
	}
}

type memAccountRepo struct{ s *memStore }

func (r *memAccountRepo) Create(a *entity.Account) error { r.s.accounts[a.Code] = a; return nil }
func (r *memAccountRepo) GetByCode(code string) (*entity.Account, error) {
	return r.s.accounts[code], nil
}
func (r *memAccountRepo) List() ([]*entity.Account, error) { return nil, nil }

type memProductRepo struct{ s *memStore }

func (r *memProductRepo) Create(p *entity.Product) error { r.s.products[p.ID] = p; return nil }
func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.s.products[id], nil
}
func (r *memProductRepo) GetByName(string) (*entity.Product, error) { return nil, nil }
func (r *memProductRepo) List() ([]*entity.Product, error)          { return nil, nil }
func (r *memProductRepo) Update(*entity.Product) error              { return nil }
func (r *memProductRepo) Delete(string) error                       { return nil }
func (r *memProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.s.products[id], nil
}
func (r *memProductRepo) UpdateStockAndCost(id string, stock, cost, totalValue decimal.Decimal) error {
	p := r.s.products[id]
	p.Stock, p.Cost, p.TotalValue = stock, cost, totalValue
	return nil
}

type memPartyRepo struct{ s *memStore }

func (r *memPartyRepo) Create(p *entity.Party) error { r.s.parties[p.ID] = p; return nil }
func (r *memPartyRepo) GetByID(id string) (*entity.Party, error) {
	return r.s.parties[id], nil
}
func (r *memPartyRepo) ListByType(string) ([]*entity.Party, error) { return nil, nil }

type memDocRepo struct{ s *memStore }

func (r *memDocRepo) Create(doc *entity.Document) error { r.s.documents[doc.ID] = doc; return nil }
func (r *memDocRepo) CreateLine(line *entity.DocumentLine) error {
	r.s.lines = append(r.s.lines, line)
	return nil
}
func (r *memDocRepo) GetByID(id string) (*entity.Document, error) {
	return r.s.documents[id], nil
}
func (r *memDocRepo) GetLines(documentID string) ([]*entity.DocumentLine, error) {
	var out []*entity.DocumentLine
	for _, l := range r.s.lines {
		if l.DocumentID == documentID {
			out = append(out, l)
		}
	}
	return out, nil
}
func (r *memDocRepo) NextNumber(docType string) (int64, error) {
	var max int64
	for _, doc := range r.s.documents {
		if doc.Type == docType && doc.Number > max {
			max = doc.Number
		}
	}
	return max + 1, nil
}
func (r *memDocRepo) ListByTypeBetween(string, time.Time, time.Time) ([]*entity.Document, error) {
	return nil, nil
}

type memLedgerRepo struct{ s *memStore }

func (r *memLedgerRepo) Append(movs []*entity.LedgerMovement) error {
	r.s.movements = append(r.s.movements, movs...)
	return nil
}
func (r *memLedgerRepo) ListBetween(time.Time, time.Time) ([]*repository.MovementRow, error) {
	return nil, nil
}
func (r *memLedgerRepo) Activity(time.Time) ([]*repository.AccountActivity, error) {
	return nil, nil
}
func (r *memLedgerRepo) ListByDocument(string) ([]*repository.MovementRow, error) {
	return nil, nil
}

type memTxRunner struct{ s *memStore }

func (r *memTxRunner) Run(ctx context.Context, fn func(
	repository.AccountRepository,
	repository.ProductRepository,
	repository.DocumentRepository,
	repository.LedgerRepository,
) error) error {
	return fn(&memAccountRepo{r.s}, &memProductRepo{r.s}, &memDocRepo{r.s}, &memLedgerRepo{r.s})
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

func newFixture() (*memStore, *orders.RecordEventUseCase) {
	store := newMemStore()
	for code, typ := range map[string]string{
		ledger.AccountCash:         entity.AccountTypeAsset,
		ledger.AccountInventory:    entity.AccountTypeAsset,
		ledger.AccountSuppliers:    entity.AccountTypeLiability,
		ledger.AccountSalesRevenue: entity.AccountTypeIncome,
		ledger.AccountSalesReturns: entity.AccountTypeIncome,
		ledger.AccountOtherIncome:  entity.AccountTypeIncome,
		ledger.AccountMiscExpense:  entity.AccountTypeExpense,
	} {
		store.accounts[code] = &entity.Account{ID: "acc-" + code, Code: code, Type: typ}
	}
	store.products["p1"] = &entity.Product{
		ID: "p1", Name: "Arroz x 500g",
		Stock: d("10"), Cost: d("5"), Price: d("15"), TotalValue: d("50"), Unit: "UND",
	}
	store.products["p2"] = &entity.Product{
		ID: "p2", Name: "Panela x 250g",
		Stock: d("20"), Cost: d("2"), Price: d("3"), TotalValue: d("40"), Unit: "UND",
	}

	productRepo := &memProductRepo{store}
	partyRepo := &memPartyRepo{store}
	docRepo := &memDocRepo{store}
	stockUC := appinventory.NewStockUseCase(productRepo)
	uc := orders.NewRecordEventUseCase(&memTxRunner{store}, stockUC, partyRepo, productRepo, docRepo)
	return store, uc
}

func sumDebitCredit(movs []*entity.LedgerMovement) (debit, credit decimal.Decimal) {
	for _, m := range movs {
		debit = debit.Add(m.Debit)
		credit = credit.Add(m.Credit)
	}
	return debit, credit
}

// ──────────────────────────────────────────────────────────────────────────────
// Facturas
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateInvoice_FlujoCompleto(t *testing.T) {
	store, uc := newFixture()

	result, err := uc.CreateInvoice(context.Background(), "user-1", dto.CreateInvoiceRequest{
		Date: "2026-08-30",
		Lines: []dto.LineRequest{
			{ProductID: "p1", Quantity: d("10"), UnitValue: d("15")},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Number)
	assert.True(t, d("150").Equal(result.Total), "obtenido %s", result.Total)
	assert.Empty(t, result.Warnings)

	// stock descontado, costo intacto
	p := store.products["p1"]
	assert.True(t, p.Stock.IsZero(), "stock debe quedar en 0, obtenido %s", p.Stock)
	assert.True(t, d("5").Equal(p.Cost), "la venta no toca el costo")
	assert.True(t, p.TotalValue.IsZero())

	// documento + líneas persistidos
	doc := store.documents[result.DocumentID]
	require.NotNil(t, doc)
	assert.Equal(t, entity.DocumentTypeInvoice, doc.Type)
	assert.Equal(t, "user-1", doc.CreatedBy)
	lines, _ := (&memDocRepo{store}).GetLines(result.DocumentID)
	require.Len(t, lines, 1)
	assert.True(t, d("150").Equal(lines[0].Total))

	// asientos balanceados: 1105 débito 150 / 4135 crédito 150
	require.Len(t, store.movements, 2)
	debit, credit := sumDebitCredit(store.movements)
	assert.True(t, debit.Equal(credit))
	assert.Equal(t, "acc-"+ledger.AccountCash, store.movements[0].AccountID)
	assert.True(t, d("150").Equal(store.movements[0].Debit))
}

func TestCreateInvoice_PrecioPorDefectoDelCatalogo(t *testing.T) {
	store, uc := newFixture()

	result, err := uc.CreateInvoice(context.Background(), "user-1", dto.CreateInvoiceRequest{
		Lines: []dto.LineRequest{
			{ProductID: "p2", Quantity: d("4")}, // sin valor_unitario → precio del catálogo (3)
		},
	})
	require.NoError(t, err)
	assert.True(t, d("12").Equal(result.Total), "obtenido %s", result.Total)
	assert.True(t, d("16").Equal(store.products["p2"].Stock))
}

func TestCreateInvoice_SobreventaGeneraWarning(t *testing.T) {
	store, uc := newFixture()

	result, err := uc.CreateInvoice(context.Background(), "user-1", dto.CreateInvoiceRequest{
		Lines: []dto.LineRequest{
			{ProductID: "p1", Quantity: d("12"), UnitValue: d("15")},
		},
	})
	require.NoError(t, err, "la sobreventa no aborta el evento")
	assert.True(t, d("-2").Equal(store.products["p1"].Stock), "el stock queda negativo, sin piso")
	require.NotEmpty(t, result.Warnings)
	assert.Contains(t, result.Warnings[0].Message, "stock negativo")
}

func TestCreateInvoice_ProductoDesconocidoAborta(t *testing.T) {
	store, uc := newFixture()

	_, err := uc.CreateInvoice(context.Background(), "user-1", dto.CreateInvoiceRequest{
		Lines: []dto.LineRequest{
			{ProductID: "p1", Quantity: d("1"), UnitValue: d("15")},
			{ProductID: "no-existe", Quantity: d("1"), UnitValue: d("15")},
		},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	// nada quedó persistido
	assert.Empty(t, store.documents)
	assert.Empty(t, store.movements)
	assert.True(t, d("10").Equal(store.products["p1"].Stock), "el stock no se toca si el evento aborta")
}

func TestCreateInvoice_SinLineas(t *testing.T) {
	_, uc := newFixture()
	_, err := uc.CreateInvoice(context.Background(), "user-1", dto.CreateInvoiceRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Cuenta faltante: el documento se persiste igual y el asiento omitido sube
// como warning.
func TestCreateInvoice_CuentaFaltanteNoAborta(t *testing.T) {
	store, uc := newFixture()
	delete(store.accounts, ledger.AccountSalesRevenue)

	result, err := uc.CreateInvoice(context.Background(), "user-1", dto.CreateInvoiceRequest{
		Lines: []dto.LineRequest{
			{ProductID: "p1", Quantity: d("2"), UnitValue: d("15")},
		},
	})
	require.NoError(t, err)
	assert.NotNil(t, store.documents[result.DocumentID], "el documento queda persistido")
	assert.Empty(t, store.movements, "sin cuenta no se emite ninguna pata")
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, ledger.AccountSalesRevenue, result.Warnings[0].AccountCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Compras
// ──────────────────────────────────────────────────────────────────────────────

func TestCreatePurchase_PromedioPonderado(t *testing.T) {
	store, uc := newFixture()

	// p1: 10 @ 5 + entrada 10 @ 7 → 20 @ 6
	result, err := uc.CreatePurchase(context.Background(), "user-1", dto.CreatePurchaseRequest{
		PaymentTerm: entity.PaymentTermCredit,
		Lines: []dto.LineRequest{
			{ProductID: "p1", Quantity: d("10"), UnitValue: d("7")},
		},
	})
	require.NoError(t, err)
	assert.True(t, d("70").Equal(result.Total))

	p := store.products["p1"]
	assert.True(t, d("20").Equal(p.Stock))
	assert.True(t, d("6").Equal(p.Cost), "promedio ponderado: obtenido %s", p.Cost)
	assert.True(t, d("120").Equal(p.TotalValue))

	// crédito → acredita proveedores y queda pendiente
	doc := store.documents[result.DocumentID]
	assert.False(t, doc.Paid)
	require.Len(t, store.movements, 2)
	assert.Equal(t, "acc-"+ledger.AccountSuppliers, store.movements[1].AccountID)
}

func TestCreatePurchase_ContadoConOverwrite(t *testing.T) {
	store, uc := newFixture()

	result, err := uc.CreatePurchase(context.Background(), "user-1", dto.CreatePurchaseRequest{
		PaymentTerm: entity.PaymentTermCash,
		CostPolicy:  "overwrite",
		Lines: []dto.LineRequest{
			{ProductID: "p1", Quantity: d("5"), UnitValue: d("8")},
		},
	})
	require.NoError(t, err)

	p := store.products["p1"]
	assert.True(t, d("8").Equal(p.Cost), "overwrite reemplaza el costo")
	assert.True(t, store.documents[result.DocumentID].Paid, "compra de contado queda pagada")
	assert.Equal(t, "acc-"+ledger.AccountCash, store.movements[1].AccountID)
}

func TestCreatePurchase_FormaPagoInvalida(t *testing.T) {
	_, uc := newFixture()
	_, err := uc.CreatePurchase(context.Background(), "user-1", dto.CreatePurchaseRequest{
		PaymentTerm: "cheque",
		Lines:       []dto.LineRequest{{ProductID: "p1", Quantity: d("1"), UnitValue: d("1")}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Notas crédito
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateCreditNote_ReingresaStockSinTocarCosto(t *testing.T) {
	store, uc := newFixture()

	invoice, err := uc.CreateInvoice(context.Background(), "user-1", dto.CreateInvoiceRequest{
		Lines: []dto.LineRequest{{ProductID: "p1", Quantity: d("4"), UnitValue: d("15")}},
	})
	require.NoError(t, err)
	store.movements = nil // aislar los asientos de la nota

	result, err := uc.CreateCreditNote(context.Background(), "user-1", dto.CreateCreditNoteRequest{
		InvoiceID: invoice.DocumentID,
		Reason:    "producto averiado",
		Lines: []dto.LineRequest{
			{ProductID: "p1", Quantity: d("2"), UnitValue: d("15")},
			{ProductID: "p2", Quantity: decimal.Zero, UnitValue: d("3")}, // fila vacía: se ignora
		},
	})
	require.NoError(t, err)
	assert.True(t, d("30").Equal(result.Total))

	p := store.products["p1"]
	assert.True(t, d("8").Equal(p.Stock), "6 + 2 devueltas")
	assert.True(t, d("5").Equal(p.Cost), "la devolución no toca el costo")

	doc := store.documents[result.DocumentID]
	assert.Equal(t, "producto averiado", doc.Reason)
	require.NotNil(t, doc.RelatedID)
	assert.Equal(t, invoice.DocumentID, *doc.RelatedID)

	// débito a 4135, crédito a 4175
	require.Len(t, store.movements, 2)
	assert.Equal(t, "acc-"+ledger.AccountSalesRevenue, store.movements[0].AccountID)
	assert.Equal(t, "acc-"+ledger.AccountSalesReturns, store.movements[1].AccountID)
}

func TestCreateCreditNote_FacturaInexistente(t *testing.T) {
	_, uc := newFixture()
	_, err := uc.CreateCreditNote(context.Background(), "user-1", dto.CreateCreditNoteRequest{
		InvoiceID: "no-existe",
		Lines:     []dto.LineRequest{{ProductID: "p1", Quantity: d("1"), UnitValue: d("1")}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Comprobantes de caja
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateCashVouchers(t *testing.T) {
	store, uc := newFixture()

	receipt, err := uc.CreateCashReceipt(context.Background(), "user-1", dto.CreateCashVoucherRequest{
		Description: "Abono cliente",
		Value:       d("30"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), receipt.Number)
	require.Len(t, store.movements, 2)
	assert.Equal(t, "acc-"+ledger.AccountCash, store.movements[0].AccountID)
	assert.Equal(t, "acc-"+ledger.AccountOtherIncome, store.movements[1].AccountID)

	store.movements = nil
	_, err = uc.CreateCashDisbursement(context.Background(), "user-1", dto.CreateCashVoucherRequest{
		Description: "Pago servicios",
		Value:       d("12"),
	})
	require.NoError(t, err)
	require.Len(t, store.movements, 2)
	assert.Equal(t, "acc-"+ledger.AccountMiscExpense, store.movements[0].AccountID)
	assert.Equal(t, "acc-"+ledger.AccountCash, store.movements[1].AccountID)
}

func TestCreateCashReceipt_ValorNoPositivo(t *testing.T) {
	_, uc := newFixture()
	_, err := uc.CreateCashReceipt(context.Background(), "user-1", dto.CreateCashVoucherRequest{
		Value: decimal.Zero,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Transformaciones
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateTransformation_ConsumoYProduccion(t *testing.T) {
	store, uc := newFixture()

	// consume 4 de p1 (costo vigente 5 → 20) y produce 10 de p2 a costo 2.40
	result, err := uc.CreateTransformation(context.Background(), "user-1", dto.CreateTransformationRequest{
		Description: "Reempaque",
		Consumed:    []dto.LineRequest{{ProductID: "p1", Quantity: d("4")}},
		Produced:    []dto.LineRequest{{ProductID: "p2", Quantity: d("10"), UnitValue: d("2.40")}},
	})
	require.NoError(t, err)

	p1 := store.products["p1"]
	assert.True(t, d("6").Equal(p1.Stock))
	assert.True(t, d("5").Equal(p1.Cost), "el consumo no toca el costo")

	// p2: 20 @ 2 + 10 @ 2.40 → 30 @ 2.1333...
	p2 := store.products["p2"]
	assert.True(t, d("30").Equal(p2.Stock))
	expectedCost := d("20").Mul(d("2")).Add(d("10").Mul(d("2.40"))).Div(d("30"))
	assert.True(t, expectedCost.Equal(p2.Cost), "esperado %s, obtenido %s", expectedCost, p2.Cost)

	doc := store.documents[result.DocumentID]
	assert.True(t, d("20").Equal(doc.TotalConsumed))
	assert.True(t, d("24").Equal(doc.TotalProduced))
	assert.True(t, d("24").Equal(doc.Total))

	// líneas con su clase
	lines, _ := (&memDocRepo{store}).GetLines(result.DocumentID)
	require.Len(t, lines, 2)
	assert.Equal(t, entity.LineKindConsumed, lines[0].Kind)
	assert.True(t, d("5").Equal(lines[0].UnitValue), "la línea consumida se valúa al costo vigente")
	assert.Equal(t, entity.LineKindProduced, lines[1].Kind)

	// asiento 1435/1435 con montos independientes
	require.Len(t, store.movements, 2)
	assert.Equal(t, "acc-"+ledger.AccountInventory, store.movements[0].AccountID)
	assert.True(t, d("24").Equal(store.movements[0].Debit))
	assert.True(t, d("20").Equal(store.movements[1].Credit))
}

func TestCreateTransformation_SinLineas(t *testing.T) {
	_, uc := newFixture()
	_, err := uc.CreateTransformation(context.Background(), "user-1", dto.CreateTransformationRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Identidad de lo persistido
// ──────────────────────────────────────────────────────────────────────────────

// El motor de asientos emite movimientos sin identidad; el caso de uso les
// asigna ID y fecha de registro antes de Append (la columna id es UUID
// PRIMARY KEY: un ID vacío no es insertable).
func TestCreateInvoice_AsignaIDyFechaDeRegistro(t *testing.T) {
	store, uc := newFixture()

	result, err := uc.CreateInvoice(context.Background(), "user-1", dto.CreateInvoiceRequest{
		Lines: []dto.LineRequest{{ProductID: "p1", Quantity: d("2"), UnitValue: d("15")}},
	})
	require.NoError(t, err)

	doc := store.documents[result.DocumentID]
	require.NotNil(t, doc)
	assert.False(t, doc.CreatedAt.IsZero(), "el documento lleva fecha de registro")

	require.Len(t, store.movements, 2)
	for _, m := range store.movements {
		assert.NotEmpty(t, m.ID, "cada movimiento lleva su propio ID")
		assert.False(t, m.CreatedAt.IsZero(), "cada movimiento lleva fecha de registro")
	}
	assert.NotEqual(t, store.movements[0].ID, store.movements[1].ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Consultas: propagación de errores del repo
// ──────────────────────────────────────────────────────────────────────────────

type failingProductRepo struct{ memProductRepo }

func (r *failingProductRepo) GetByID(string) (*entity.Product, error) {
	return nil, errors.New("conexión perdida")
}

// Una falla real del repo sube como error; no se degrada a nombre vacío.
func TestGetDocument_PropagaErrorDelRepo(t *testing.T) {
	store, uc := newFixture()
	invoice, err := uc.CreateInvoice(context.Background(), "user-1", dto.CreateInvoiceRequest{
		Lines: []dto.LineRequest{{ProductID: "p1", Quantity: d("1"), UnitValue: d("15")}},
	})
	require.NoError(t, err)

	queryUC := orders.NewDocumentQueryUseCase(
		&memDocRepo{store},
		&failingProductRepo{memProductRepo{store}},
		&memPartyRepo{store},
	)
	_, err = queryUC.GetDocument(context.Background(), invoice.DocumentID)
	assert.Error(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Consecutivos
// ──────────────────────────────────────────────────────────────────────────────

func TestNumeracionIndependientePorTipo(t *testing.T) {
	_, uc := newFixture()

	inv1, err := uc.CreateInvoice(context.Background(), "u", dto.CreateInvoiceRequest{
		Lines: []dto.LineRequest{{ProductID: "p1", Quantity: d("1"), UnitValue: d("15")}},
	})
	require.NoError(t, err)
	inv2, err := uc.CreateInvoice(context.Background(), "u", dto.CreateInvoiceRequest{
		Lines: []dto.LineRequest{{ProductID: "p1", Quantity: d("1"), UnitValue: d("15")}},
	})
	require.NoError(t, err)
	purchase, err := uc.CreatePurchase(context.Background(), "u", dto.CreatePurchaseRequest{
		PaymentTerm: entity.PaymentTermCash,
		Lines:       []dto.LineRequest{{ProductID: "p1", Quantity: d("1"), UnitValue: d("5")}},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), inv1.Number)
	assert.Equal(t, int64(2), inv2.Number)
	assert.Equal(t, int64(1), purchase.Number, "las compras llevan su propio consecutivo")
}
