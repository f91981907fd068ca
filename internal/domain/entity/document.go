package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de documento comercial. El consecutivo (Number) es independiente
// por tipo.
const (
	DocumentTypeInvoice          = "sales_invoice"
	DocumentTypePurchase         = "purchase"
	DocumentTypeCreditNote       = "credit_note"
	DocumentTypeCashReceipt      = "cash_receipt"
	DocumentTypeCashDisbursement = "cash_disbursement"
	DocumentTypeTransformation   = "transformation"
)

// Formas de pago de una compra.
const (
	PaymentTermCash   = "cash"   // contado
	PaymentTermCredit = "credit" // crédito
)

// Tipos de línea. Las facturas, compras y notas crédito usan solo "normal";
// las transformaciones separan líneas consumidas y producidas.
const (
	LineKindNormal   = "normal"
	LineKindConsumed = "consumed" // salida de la transformación
	LineKindProduced = "produced" // entrada de la transformación
)

// Document es la cabecera de un documento comercial. Se crea una sola vez,
// de forma atómica, y es inmutable: no existe edición ni anulación; la
// reversa de una venta se modela como nota crédito (documento nuevo).
type Document struct {
	ID          string
	Type        string
	Number      int64 // consecutivo por tipo
	Date        time.Time
	PartyID     *string // tercero; opcional en recibos/egresos/transformaciones
	Description string  // concepto (recibos/egresos) o descripción (transformaciones)
	Reason      string  // motivo de la nota crédito
	PaymentTerm string  // solo compras: cash | credit
	Paid        bool    // compras de contado quedan pagadas
	RelatedID   *string // nota crédito → factura original
	Total       decimal.Decimal
	// Solo transformaciones: valor consumido y producido; pueden diferir.
	TotalConsumed decimal.Decimal
	TotalProduced decimal.Decimal
	CreatedBy     string // identidad explícita del operador
	CreatedAt     time.Time
}

// DocumentLine es una línea de detalle. UnitValue es precio de venta en
// facturas/notas crédito y costo unitario en compras/transformaciones.
// Total se recalcula siempre en el servidor como Quantity × UnitValue.
type DocumentLine struct {
	ID         string
	DocumentID string
	ProductID  string
	Kind       string
	Quantity   decimal.Decimal
	UnitValue  decimal.Decimal
	Total      decimal.Decimal
}
