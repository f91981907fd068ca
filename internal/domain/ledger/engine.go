// Package ledger implementa el motor de asientos: la traducción de un
// documento comercial a pares débito/crédito balanceados del libro diario.
// Es un servicio de dominio puro: no muta el documento ni persiste nada;
// el caller decide qué hacer con los movimientos y los warnings.
package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/pos-contable/internal/domain/entity"
)

// AccountLookup resuelve una cuenta por código. Devuelve (nil, nil) si el
// código no existe; el motor trata esa ausencia como condición degradada,
// no como error fatal.
type AccountLookup interface {
	GetByCode(code string) (*entity.Account, error)
}

// Warning reporta un par de asientos omitido por cuenta faltante. El
// documento de negocio se persiste igual; el warning sube al caller para
// que el boundary lo loguee y lo muestre al operador.
type Warning struct {
	Module      string `json:"module"`
	DocumentID  string `json:"document_id"`
	AccountCode string `json:"account_code"`
	Message     string `json:"message"`
}

// Engine deriva los asientos de un documento usando el registro de cuentas.
type Engine struct {
	accounts AccountLookup
}

// NewEngine construye el motor sobre un lookup de cuentas.
func NewEngine(accounts AccountLookup) *Engine {
	return &Engine{accounts: accounts}
}

// Post deriva los movimientos contables del documento. Por cada par cuya
// cuenta débito o crédito no exista, omite el par COMPLETO (nunca una pata
// suelta) y agrega un Warning. Un error solo se devuelve ante fallas del
// lookup, no ante cuentas faltantes.
//
// Invariante: para cualquier documento, Σdébitos == Σcréditos de los
// movimientos devueltos, salvo la transformación, que se auto-balancea por
// construcción (misma cuenta 1435 en ambas patas con montos independientes).
func (e *Engine) Post(doc *entity.Document) ([]*entity.LedgerMovement, []Warning, error) {
	switch doc.Type {
	case entity.DocumentTypeInvoice:
		desc := fmt.Sprintf("Venta factura #%d", doc.Number)
		return e.pair(doc, entity.ModuleSales, desc, AccountCash, AccountSalesRevenue, doc.Total)

	case entity.DocumentTypePurchase:
		desc := fmt.Sprintf("Compra #%d", doc.Number)
		credit := AccountSuppliers
		if doc.PaymentTerm == entity.PaymentTermCash {
			credit = AccountCash
		}
		return e.pair(doc, entity.ModulePurchases, desc, AccountInventory, credit, doc.Total)

	case entity.DocumentTypeCreditNote:
		desc := fmt.Sprintf("Nota crédito #%d", doc.Number)
		// Débito a ventas (reversa el ingreso), crédito a devoluciones.
		return e.pair(doc, entity.ModuleCreditNotes, desc, AccountSalesRevenue, AccountSalesReturns, doc.Total)

	case entity.DocumentTypeCashReceipt:
		desc := fmt.Sprintf("Recibo de Caja #%d", doc.Number)
		if doc.Description != "" {
			desc += " - " + doc.Description
		}
		return e.pair(doc, entity.ModuleCashReceipts, desc, AccountCash, AccountOtherIncome, doc.Total)

	case entity.DocumentTypeCashDisbursement:
		desc := fmt.Sprintf("Comprobante Egreso #%d", doc.Number)
		if doc.Description != "" {
			desc += " - " + doc.Description
		}
		return e.pair(doc, entity.ModuleCashDisbursements, desc, AccountMiscExpense, AccountCash, doc.Total)

	case entity.DocumentTypeTransformation:
		return e.postTransformation(doc)
	}
	return nil, nil, fmt.Errorf("tipo de documento no soportado: %s", doc.Type)
}

// pair emite un par débito/crédito por amount contra las dos cuentas dadas.
func (e *Engine) pair(doc *entity.Document, module, desc, debitCode, creditCode string, amount decimal.Decimal) ([]*entity.LedgerMovement, []Warning, error) {
	debitAcc, err := e.accounts.GetByCode(debitCode)
	if err != nil {
		return nil, nil, fmt.Errorf("buscar cuenta %s: %w", debitCode, err)
	}
	creditAcc, err := e.accounts.GetByCode(creditCode)
	if err != nil {
		return nil, nil, fmt.Errorf("buscar cuenta %s: %w", creditCode, err)
	}
	if debitAcc == nil || creditAcc == nil {
		missing := debitCode
		if debitAcc != nil {
			missing = creditCode
		}
		return nil, []Warning{{
			Module:      module,
			DocumentID:  doc.ID,
			AccountCode: missing,
			Message:     "asiento omitido: cuenta no registrada en el PUC",
		}}, nil
	}
	amount = amount.Round(2)
	movs := []*entity.LedgerMovement{
		{
			Date:        doc.Date,
			AccountID:   debitAcc.ID,
			Description: desc,
			Debit:       amount,
			Credit:      decimal.Zero,
			Module:      module,
			DocumentID:  doc.ID,
		},
		{
			Date:        doc.Date,
			AccountID:   creditAcc.ID,
			Description: desc,
			Debit:       decimal.Zero,
			Credit:      amount,
			Module:      module,
			DocumentID:  doc.ID,
		},
	}
	return movs, nil, nil
}

// postTransformation: débito a inventario por el total producido y crédito
// a inventario por el total consumido. Los montos pueden diferir; el par no
// está obligado a netear en cero porque la cuenta compensadora es la misma
// en ambas patas.
func (e *Engine) postTransformation(doc *entity.Document) ([]*entity.LedgerMovement, []Warning, error) {
	acc, err := e.accounts.GetByCode(AccountInventory)
	if err != nil {
		return nil, nil, fmt.Errorf("buscar cuenta %s: %w", AccountInventory, err)
	}
	if acc == nil {
		return nil, []Warning{{
			Module:      entity.ModuleTransformations,
			DocumentID:  doc.ID,
			AccountCode: AccountInventory,
			Message:     "asiento omitido: cuenta no registrada en el PUC",
		}}, nil
	}
	desc := fmt.Sprintf("Transformación #%d", doc.Number)
	movs := []*entity.LedgerMovement{
		{
			Date:        doc.Date,
			AccountID:   acc.ID,
			Description: desc,
			Debit:       doc.TotalProduced.Round(2),
			Credit:      decimal.Zero,
			Module:      entity.ModuleTransformations,
			DocumentID:  doc.ID,
		},
		{
			Date:        doc.Date,
			AccountID:   acc.ID,
			Description: desc,
			Debit:       decimal.Zero,
			Credit:      doc.TotalConsumed.Round(2),
			Module:      entity.ModuleTransformations,
			DocumentID:  doc.ID,
		},
	}
	return movs, nil, nil
}

// NormalBalance aplica la convención de saldo normal: activo y gasto
// saldan débito−crédito; pasivo, patrimonio e ingreso, crédito−débito.
func NormalBalance(accountType string, totalDebit, totalCredit decimal.Decimal) decimal.Decimal {
	switch accountType {
	case entity.AccountTypeAsset, entity.AccountTypeExpense:
		return totalDebit.Sub(totalCredit)
	default:
		return totalCredit.Sub(totalDebit)
	}
}
