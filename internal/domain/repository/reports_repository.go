package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyTotal agrupa documentos por día dentro de un rango.
type DailyTotal struct {
	Day   string // YYYY-MM-DD
	Count int64
	Total decimal.Decimal
}

// PeriodTotals son los agregados de un período de ventas o compras.
type PeriodTotals struct {
	Count   int64
	Total   decimal.Decimal
	Average decimal.Decimal
	// Solo compras: montos pagados y pendientes según forma de pago.
	Paid    decimal.Decimal
	Pending decimal.Decimal
}

// ProductRank es un producto rankeado por cantidad movida en el período.
type ProductRank struct {
	Name      string
	Quantity  decimal.Decimal
	Total     decimal.Decimal
	Documents int64
}

// PartyRank es el tercero con más volumen del período.
type PartyRank struct {
	Name      string
	Documents int64
	Total     decimal.Decimal
}

// ReportsRepository define consultas de solo lectura para los resúmenes de
// ventas y compras. Los dashboards consultan; nunca escriben.
type ReportsRepository interface {
	DailyTotals(docType string, from, to time.Time) ([]*DailyTotal, error)
	Totals(docType string, from, to time.Time) (*PeriodTotals, error)
	TopProducts(docType string, from, to time.Time, limit int) ([]*ProductRank, error)
	TopParty(docType string, from, to time.Time) (*PartyRank, error)
}
