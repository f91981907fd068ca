package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Módulos de origen de un asiento (coinciden con los tipos de documento).
const (
	ModuleSales             = "sales"
	ModulePurchases         = "purchases"
	ModuleCreditNotes       = "credit_notes"
	ModuleCashReceipts      = "cash_receipts"
	ModuleCashDisbursements = "cash_disbursements"
	ModuleTransformations   = "transformations"
)

// LedgerMovement es una fila del libro diario. Exactamente uno de
// Debit/Credit es distinto de cero. Los movimientos los emite solo el motor
// de asientos, siempre en pares balanceados, y son append-only: nunca se
// actualizan ni se borran. Seq lo asigna la base de datos y da el orden de
// inserción para el desempate de los listados.
type LedgerMovement struct {
	ID          string
	Seq         int64
	Date        time.Time
	AccountID   string
	Description string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
	Module      string
	DocumentID  string // referencia al documento origen
	CreatedAt   time.Time
}
