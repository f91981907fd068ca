package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/pos-contable/internal/application/dto"
	appinventory "github.com/tu-usuario/pos-contable/internal/application/inventory"
	"github.com/tu-usuario/pos-contable/internal/domain"
	"github.com/tu-usuario/pos-contable/internal/domain/entity"
	invdomain "github.com/tu-usuario/pos-contable/internal/domain/inventory"
	"github.com/tu-usuario/pos-contable/internal/domain/ledger"
	"github.com/tu-usuario/pos-contable/internal/domain/repository"
)

// RecordEventUseCase registra eventos comerciales: por cada uno muta el
// inventario, persiste el documento y emite los asientos del libro diario
// en una sola transacción. Las cuentas faltantes no abortan el evento: el
// par se omite y sube como warning en el resultado; un ítem desconocido sí
// aborta el evento completo.
type RecordEventUseCase struct {
	txRunner    TxRunner
	stockUC     *appinventory.StockUseCase
	partyRepo   repository.PartyRepository
	productRepo repository.ProductRepository
	docRepo     repository.DocumentRepository
}

// NewRecordEventUseCase construye el caso de uso. partyRepo, productRepo y
// docRepo son los repos de lectura (pool); las escrituras pasan por txRunner.
func NewRecordEventUseCase(
	txRunner TxRunner,
	stockUC *appinventory.StockUseCase,
	partyRepo repository.PartyRepository,
	productRepo repository.ProductRepository,
	docRepo repository.DocumentRepository,
) *RecordEventUseCase {
	return &RecordEventUseCase{
		txRunner:    txRunner,
		stockUC:     stockUC,
		partyRepo:   partyRepo,
		productRepo: productRepo,
		docRepo:     docRepo,
	}
}

// parseDate interpreta YYYY-MM-DD; vacío = hoy.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, domain.ErrInvalidInput
	}
	return t, nil
}

// lineTotal recalcula el total de línea en el servidor.
func lineTotal(qty, unitValue decimal.Decimal) decimal.Decimal {
	return qty.Mul(unitValue).Round(2)
}

// postInTx corre el motor de asientos contra el registro de cuentas de la
// tx y agrega los movimientos al libro diario. Nunca emite pares parciales.
// El motor devuelve movimientos sin identidad; el ID y la fecha de registro
// se asignan aquí, antes de persistir.
func postInTx(accountRepo repository.AccountRepository, ledgerRepo repository.LedgerRepository, doc *entity.Document) ([]ledger.Warning, error) {
	movements, warnings, err := ledger.NewEngine(accountRepo).Post(doc)
	if err != nil {
		return nil, err
	}
	if len(movements) == 0 {
		return warnings, nil
	}
	now := time.Now()
	for _, m := range movements {
		m.ID = uuid.New().String()
		m.CreatedAt = now
	}
	if err := ledgerRepo.Append(movements); err != nil {
		return nil, err
	}
	return warnings, nil
}

// negativeStockWarning arma el warning de sobreventa de una línea.
func negativeStockWarning(module, docID, productName string) ledger.Warning {
	return ledger.Warning{
		Module:     module,
		DocumentID: docID,
		Message:    fmt.Sprintf("stock negativo tras el movimiento: %s", productName),
	}
}

// CreateInvoice registra una factura de venta: resta stock por línea (costo
// intacto), persiste cabecera y detalle y asienta 1105 contra 4135 por el
// total.
func (uc *RecordEventUseCase) CreateInvoice(ctx context.Context, userID string, in dto.CreateInvoiceRequest) (*dto.DocumentResult, error) {
	date, err := parseDate(in.Date)
	if err != nil {
		return nil, err
	}
	if len(in.Lines) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.PartyID != "" {
		party, err := uc.partyRepo.GetByID(in.PartyID)
		if err != nil {
			return nil, err
		}
		if party == nil {
			return nil, domain.ErrNotFound
		}
	}
	// Validación de líneas y default de precio (fuera de la tx, solo lectura).
	products := make(map[string]*entity.Product, len(in.Lines))
	for i := range in.Lines {
		line := &in.Lines[i]
		if line.ProductID == "" || !line.Quantity.GreaterThan(decimal.Zero) || line.UnitValue.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(line.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		if line.UnitValue.IsZero() {
			line.UnitValue = product.Price
		}
		products[line.ProductID] = product
	}

	docID := uuid.New().String()
	result := &dto.DocumentResult{DocumentID: docID}

	err = uc.txRunner.Run(ctx, func(
		accountRepo repository.AccountRepository,
		productRepo repository.ProductRepository,
		docRepo repository.DocumentRepository,
		ledgerRepo repository.LedgerRepository,
	) error {
		number, err := docRepo.NextNumber(entity.DocumentTypeInvoice)
		if err != nil {
			return err
		}
		var total decimal.Decimal
		doc := &entity.Document{
			ID:        docID,
			Type:      entity.DocumentTypeInvoice,
			Number:    number,
			Date:      date,
			CreatedBy: userID,
			CreatedAt: time.Now(),
		}
		if in.PartyID != "" {
			doc.PartyID = &in.PartyID
		}
		for _, line := range in.Lines {
			_, negative, err := uc.stockUC.DecreaseInTx(productRepo, line.ProductID, line.Quantity, date)
			if err != nil {
				return err
			}
			if negative {
				result.Warnings = append(result.Warnings, negativeStockWarning(entity.ModuleSales, docID, products[line.ProductID].Name))
			}
			total = total.Add(lineTotal(line.Quantity, line.UnitValue))
		}
		doc.Total = total
		if err := docRepo.Create(doc); err != nil {
			return err
		}
		for _, line := range in.Lines {
			if err := docRepo.CreateLine(&entity.DocumentLine{
				ID:         uuid.New().String(),
				DocumentID: docID,
				ProductID:  line.ProductID,
				Kind:       entity.LineKindNormal,
				Quantity:   line.Quantity,
				UnitValue:  line.UnitValue,
				Total:      lineTotal(line.Quantity, line.UnitValue),
			}); err != nil {
				return err
			}
		}
		warnings, err := postInTx(accountRepo, ledgerRepo, doc)
		if err != nil {
			return err
		}
		result.Warnings = append(result.Warnings, warnings...)
		result.Number = number
		result.Total = total
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// CreatePurchase registra una compra: suma stock por línea aplicando la
// política de costeo elegida, persiste el documento y asienta 1435 contra
// 1105 (contado) o 2205 (crédito). Las compras de contado quedan pagadas.
func (uc *RecordEventUseCase) CreatePurchase(ctx context.Context, userID string, in dto.CreatePurchaseRequest) (*dto.DocumentResult, error) {
	date, err := parseDate(in.Date)
	if err != nil {
		return nil, err
	}
	if len(in.Lines) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.PaymentTerm != entity.PaymentTermCash && in.PaymentTerm != entity.PaymentTermCredit {
		return nil, domain.ErrInvalidInput
	}
	policy := invdomain.PolicyWeightedAverage
	if in.CostPolicy != "" {
		if !invdomain.ValidCostPolicy(in.CostPolicy) {
			return nil, domain.ErrInvalidInput
		}
		policy = invdomain.CostPolicy(in.CostPolicy)
	}
	if in.PartyID != "" {
		party, err := uc.partyRepo.GetByID(in.PartyID)
		if err != nil {
			return nil, err
		}
		if party == nil {
			return nil, domain.ErrNotFound
		}
	}
	for _, line := range in.Lines {
		if line.ProductID == "" || !line.Quantity.GreaterThan(decimal.Zero) || line.UnitValue.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	}

	docID := uuid.New().String()
	result := &dto.DocumentResult{DocumentID: docID}

	err = uc.txRunner.Run(ctx, func(
		accountRepo repository.AccountRepository,
		productRepo repository.ProductRepository,
		docRepo repository.DocumentRepository,
		ledgerRepo repository.LedgerRepository,
	) error {
		number, err := docRepo.NextNumber(entity.DocumentTypePurchase)
		if err != nil {
			return err
		}
		var total decimal.Decimal
		for _, line := range in.Lines {
			if err := uc.stockUC.IncreaseInTx(productRepo, line.ProductID, line.Quantity, line.UnitValue, policy, date); err != nil {
				return err
			}
			total = total.Add(lineTotal(line.Quantity, line.UnitValue))
		}
		doc := &entity.Document{
			ID:          docID,
			Type:        entity.DocumentTypePurchase,
			Number:      number,
			Date:        date,
			PaymentTerm: in.PaymentTerm,
			Paid:        in.PaymentTerm == entity.PaymentTermCash,
			Total:       total,
			CreatedBy:   userID,
			CreatedAt:   time.Now(),
		}
		if in.PartyID != "" {
			doc.PartyID = &in.PartyID
		}
		if err := docRepo.Create(doc); err != nil {
			return err
		}
		for _, line := range in.Lines {
			if err := docRepo.CreateLine(&entity.DocumentLine{
				ID:         uuid.New().String(),
				DocumentID: docID,
				ProductID:  line.ProductID,
				Kind:       entity.LineKindNormal,
				Quantity:   line.Quantity,
				UnitValue:  line.UnitValue,
				Total:      lineTotal(line.Quantity, line.UnitValue),
			}); err != nil {
				return err
			}
		}
		warnings, err := postInTx(accountRepo, ledgerRepo, doc)
		if err != nil {
			return err
		}
		result.Warnings = warnings
		result.Number = number
		result.Total = total
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// CreateCreditNote registra una nota crédito sobre una factura: reingresa
// al stock cada línea devuelta (costo intacto) y asienta el débito a 4135
// con crédito a 4175 por el total devuelto. La factura original no se toca:
// la reversa es un documento nuevo.
func (uc *RecordEventUseCase) CreateCreditNote(ctx context.Context, userID string, in dto.CreateCreditNoteRequest) (*dto.DocumentResult, error) {
	date, err := parseDate(in.Date)
	if err != nil {
		return nil, err
	}
	if in.InvoiceID == "" {
		return nil, domain.ErrInvalidInput
	}
	invoice, err := uc.docRepo.GetByID(in.InvoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil || invoice.Type != entity.DocumentTypeInvoice {
		return nil, domain.ErrNotFound
	}
	// Solo cuentan las líneas con cantidad devuelta > 0 (el fuente tolera
	// filas vacías del formulario).
	lines := make([]dto.LineRequest, 0, len(in.Lines))
	for _, line := range in.Lines {
		if line.Quantity.LessThanOrEqual(decimal.Zero) {
			continue
		}
		if line.ProductID == "" || line.UnitValue.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(line.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return nil, domain.ErrInvalidInput
	}

	docID := uuid.New().String()
	result := &dto.DocumentResult{DocumentID: docID}

	err = uc.txRunner.Run(ctx, func(
		accountRepo repository.AccountRepository,
		productRepo repository.ProductRepository,
		docRepo repository.DocumentRepository,
		ledgerRepo repository.LedgerRepository,
	) error {
		number, err := docRepo.NextNumber(entity.DocumentTypeCreditNote)
		if err != nil {
			return err
		}
		var total decimal.Decimal
		for _, line := range lines {
			if err := uc.stockUC.RestockInTx(productRepo, line.ProductID, line.Quantity, date); err != nil {
				return err
			}
			total = total.Add(lineTotal(line.Quantity, line.UnitValue))
		}
		doc := &entity.Document{
			ID:        docID,
			Type:      entity.DocumentTypeCreditNote,
			Number:    number,
			Date:      date,
			PartyID:   invoice.PartyID,
			Reason:    in.Reason,
			RelatedID: &in.InvoiceID,
			Total:     total,
			CreatedBy: userID,
			CreatedAt: time.Now(),
		}
		if err := docRepo.Create(doc); err != nil {
			return err
		}
		for _, line := range lines {
			if err := docRepo.CreateLine(&entity.DocumentLine{
				ID:         uuid.New().String(),
				DocumentID: docID,
				ProductID:  line.ProductID,
				Kind:       entity.LineKindNormal,
				Quantity:   line.Quantity,
				UnitValue:  line.UnitValue,
				Total:      lineTotal(line.Quantity, line.UnitValue),
			}); err != nil {
				return err
			}
		}
		warnings, err := postInTx(accountRepo, ledgerRepo, doc)
		if err != nil {
			return err
		}
		result.Warnings = warnings
		result.Number = number
		result.Total = total
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// CreateCashReceipt registra un recibo de caja (1105 débito / 4199 crédito).
func (uc *RecordEventUseCase) CreateCashReceipt(ctx context.Context, userID string, in dto.CreateCashVoucherRequest) (*dto.DocumentResult, error) {
	return uc.createCashVoucher(ctx, userID, entity.DocumentTypeCashReceipt, in)
}

// CreateCashDisbursement registra un comprobante de egreso (5195 débito /
// 1105 crédito).
func (uc *RecordEventUseCase) CreateCashDisbursement(ctx context.Context, userID string, in dto.CreateCashVoucherRequest) (*dto.DocumentResult, error) {
	return uc.createCashVoucher(ctx, userID, entity.DocumentTypeCashDisbursement, in)
}

// createCashVoucher flujo común de los comprobantes de caja: sin líneas ni
// efecto en inventario, solo documento + asiento.
func (uc *RecordEventUseCase) createCashVoucher(ctx context.Context, userID, docType string, in dto.CreateCashVoucherRequest) (*dto.DocumentResult, error) {
	date, err := parseDate(in.Date)
	if err != nil {
		return nil, err
	}
	if !in.Value.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.PartyID != "" {
		party, err := uc.partyRepo.GetByID(in.PartyID)
		if err != nil {
			return nil, err
		}
		if party == nil {
			return nil, domain.ErrNotFound
		}
	}

	docID := uuid.New().String()
	result := &dto.DocumentResult{DocumentID: docID}

	err = uc.txRunner.Run(ctx, func(
		accountRepo repository.AccountRepository,
		_ repository.ProductRepository,
		docRepo repository.DocumentRepository,
		ledgerRepo repository.LedgerRepository,
	) error {
		number, err := docRepo.NextNumber(docType)
		if err != nil {
			return err
		}
		doc := &entity.Document{
			ID:          docID,
			Type:        docType,
			Number:      number,
			Date:        date,
			Description: in.Description,
			Total:       in.Value.Round(2),
			CreatedBy:   userID,
			CreatedAt:   time.Now(),
		}
		if in.PartyID != "" {
			doc.PartyID = &in.PartyID
		}
		if err := docRepo.Create(doc); err != nil {
			return err
		}
		warnings, err := postInTx(accountRepo, ledgerRepo, doc)
		if err != nil {
			return err
		}
		result.Warnings = warnings
		result.Number = number
		result.Total = doc.Total
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// CreateTransformation registra una transformación: las líneas consumidas
// salen al costo promedio vigente y las producidas entran al costo
// indicado con la política elegida. El asiento es 1435 débito por el total
// producido y 1435 crédito por el consumido; los montos pueden diferir.
func (uc *RecordEventUseCase) CreateTransformation(ctx context.Context, userID string, in dto.CreateTransformationRequest) (*dto.DocumentResult, error) {
	date, err := parseDate(in.Date)
	if err != nil {
		return nil, err
	}
	if len(in.Consumed) == 0 && len(in.Produced) == 0 {
		return nil, domain.ErrInvalidInput
	}
	policy := invdomain.PolicyWeightedAverage
	if in.CostPolicy != "" {
		if !invdomain.ValidCostPolicy(in.CostPolicy) {
			return nil, domain.ErrInvalidInput
		}
		policy = invdomain.CostPolicy(in.CostPolicy)
	}
	products := make(map[string]*entity.Product)
	validate := func(lines []dto.LineRequest, needCost bool) error {
		for _, line := range lines {
			if line.ProductID == "" || !line.Quantity.GreaterThan(decimal.Zero) {
				return domain.ErrInvalidInput
			}
			if needCost && line.UnitValue.LessThan(decimal.Zero) {
				return domain.ErrInvalidInput
			}
			product, err := uc.productRepo.GetByID(line.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			products[line.ProductID] = product
		}
		return nil
	}
	if err := validate(in.Consumed, false); err != nil {
		return nil, err
	}
	if err := validate(in.Produced, true); err != nil {
		return nil, err
	}

	docID := uuid.New().String()
	result := &dto.DocumentResult{DocumentID: docID}

	err = uc.txRunner.Run(ctx, func(
		accountRepo repository.AccountRepository,
		productRepo repository.ProductRepository,
		docRepo repository.DocumentRepository,
		ledgerRepo repository.LedgerRepository,
	) error {
		number, err := docRepo.NextNumber(entity.DocumentTypeTransformation)
		if err != nil {
			return err
		}
		var totalConsumed, totalProduced decimal.Decimal
		var docLines []*entity.DocumentLine
		for _, line := range in.Consumed {
			unitCost, negative, err := uc.stockUC.DecreaseInTx(productRepo, line.ProductID, line.Quantity, date)
			if err != nil {
				return err
			}
			if negative {
				result.Warnings = append(result.Warnings, negativeStockWarning(entity.ModuleTransformations, docID, products[line.ProductID].Name))
			}
			total := lineTotal(line.Quantity, unitCost)
			totalConsumed = totalConsumed.Add(total)
			docLines = append(docLines, &entity.DocumentLine{
				ID:         uuid.New().String(),
				DocumentID: docID,
				ProductID:  line.ProductID,
				Kind:       entity.LineKindConsumed,
				Quantity:   line.Quantity,
				UnitValue:  unitCost,
				Total:      total,
			})
		}
		for _, line := range in.Produced {
			if err := uc.stockUC.IncreaseInTx(productRepo, line.ProductID, line.Quantity, line.UnitValue, policy, date); err != nil {
				return err
			}
			total := lineTotal(line.Quantity, line.UnitValue)
			totalProduced = totalProduced.Add(total)
			docLines = append(docLines, &entity.DocumentLine{
				ID:         uuid.New().String(),
				DocumentID: docID,
				ProductID:  line.ProductID,
				Kind:       entity.LineKindProduced,
				Quantity:   line.Quantity,
				UnitValue:  line.UnitValue,
				Total:      total,
			})
		}

		doc := &entity.Document{
			ID:            docID,
			Type:          entity.DocumentTypeTransformation,
			Number:        number,
			Date:          date,
			Description:   in.Description,
			TotalConsumed: totalConsumed,
			TotalProduced: totalProduced,
			Total:         totalProduced,
			CreatedBy:     userID,
			CreatedAt:     time.Now(),
		}
		if err := docRepo.Create(doc); err != nil {
			return err
		}
		for _, dl := range docLines {
			if err := docRepo.CreateLine(dl); err != nil {
				return err
			}
		}
		warnings, err := postInTx(accountRepo, ledgerRepo, doc)
		if err != nil {
			return err
		}
		result.Warnings = append(result.Warnings, warnings...)
		result.Number = number
		result.Total = totalProduced
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
