package dto

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/pos-contable/internal/domain/ledger"
)

// LineRequest línea de un documento. unit_value es precio en ventas/notas
// crédito y costo unitario en compras/transformaciones. El total de línea
// se recalcula en el servidor; no se confía en el del caller.
type LineRequest struct {
	ProductID string          `json:"producto_id"`
	Quantity  decimal.Decimal `json:"cantidad"`
	UnitValue decimal.Decimal `json:"valor_unitario"`
}

// CreateInvoiceRequest alta de factura de venta.
type CreateInvoiceRequest struct {
	PartyID string        `json:"tercero_id"`
	Date    string        `json:"fecha"` // YYYY-MM-DD; vacío = hoy
	Lines   []LineRequest `json:"lineas"`
}

// CreatePurchaseRequest alta de compra. cost_policy elige la política de
// costeo de la entrada ("overwrite" | "weighted_average"); vacío =
// weighted_average.
type CreatePurchaseRequest struct {
	PartyID     string        `json:"tercero_id"`
	Date        string        `json:"fecha"`
	PaymentTerm string        `json:"forma_pago"` // cash | credit
	CostPolicy  string        `json:"cost_policy"`
	Lines       []LineRequest `json:"lineas"`
}

// CreateCreditNoteRequest nota crédito sobre una factura. Las líneas
// indican cantidades devueltas (reingresan al stock).
type CreateCreditNoteRequest struct {
	InvoiceID string        `json:"factura_id"`
	Date      string        `json:"fecha"`
	Reason    string        `json:"motivo"`
	Lines     []LineRequest `json:"lineas"`
}

// CreateCashVoucherRequest recibo de caja o comprobante de egreso.
type CreateCashVoucherRequest struct {
	PartyID     string          `json:"tercero_id"`
	Date        string          `json:"fecha"`
	Description string          `json:"concepto"`
	Value       decimal.Decimal `json:"valor"`
}

// CreateTransformationRequest transformación de inventario: consume unos
// ítems y produce otros, valuados de forma independiente. Las líneas
// consumidas salen al costo promedio vigente; las producidas entran al
// costo unitario indicado.
type CreateTransformationRequest struct {
	Date        string        `json:"fecha"`
	Description string        `json:"descripcion"`
	CostPolicy  string        `json:"cost_policy"`
	Consumed    []LineRequest `json:"salidas"`
	Produced    []LineRequest `json:"entradas"`
}

// DocumentResult resultado de registrar un evento comercial. Warnings
// lleva los asientos omitidos (cuenta faltante) y los stocks que quedaron
// negativos; el documento quedó persistido en todos los casos.
type DocumentResult struct {
	DocumentID string           `json:"documento_id"`
	Number     int64            `json:"numero"`
	Total      decimal.Decimal  `json:"total"`
	Warnings   []ledger.Warning `json:"warnings,omitempty"`
}

// DocumentResponse cabecera de documento para listados.
type DocumentResponse struct {
	ID          string          `json:"id"`
	Type        string          `json:"tipo"`
	Number      int64           `json:"numero"`
	Date        string          `json:"fecha"`
	PartyName   string          `json:"tercero,omitempty"`
	Description string          `json:"descripcion,omitempty"`
	Reason      string          `json:"motivo,omitempty"`
	PaymentTerm string          `json:"forma_pago,omitempty"`
	Paid        *bool           `json:"pagada,omitempty"`
	Total       decimal.Decimal `json:"total"`
	CreatedBy   string          `json:"creado_por,omitempty"`
}

// DocumentDetailResponse documento con sus líneas.
type DocumentDetailResponse struct {
	DocumentResponse
	Lines []LineResponse `json:"lineas"`
}

// LineResponse línea de detalle con nombre de producto resuelto.
type LineResponse struct {
	ProductID   string          `json:"producto_id"`
	ProductName string          `json:"producto"`
	Kind        string          `json:"tipo_linea,omitempty"`
	Quantity    decimal.Decimal `json:"cantidad"`
	UnitValue   decimal.Decimal `json:"valor_unitario"`
	Total       decimal.Decimal `json:"total"`
}
