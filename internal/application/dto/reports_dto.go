package dto

import "github.com/shopspring/decimal"

// DailyTotalDTO total de documentos de un día.
type DailyTotalDTO struct {
	Day   string          `json:"dia"`
	Count int64           `json:"documentos"`
	Total decimal.Decimal `json:"total"`
}

// PeriodTotalsDTO agregados del período.
type PeriodTotalsDTO struct {
	Count   int64           `json:"documentos"`
	Total   decimal.Decimal `json:"total"`
	Average decimal.Decimal `json:"promedio"`
	Paid    decimal.Decimal `json:"pagadas,omitempty"`
	Pending decimal.Decimal `json:"pendientes,omitempty"`
}

// ProductRankDTO producto rankeado por cantidad movida.
type ProductRankDTO struct {
	Name      string          `json:"nombre"`
	Quantity  decimal.Decimal `json:"cantidad"`
	Total     decimal.Decimal `json:"total"`
	Documents int64           `json:"documentos"`
}

// PartyRankDTO tercero con más volumen del período.
type PartyRankDTO struct {
	Name      string          `json:"nombre"`
	Documents int64           `json:"documentos"`
	Total     decimal.Decimal `json:"total"`
}

// SummaryResponse resumen de ventas o compras por rango.
type SummaryResponse struct {
	Daily       []DailyTotalDTO  `json:"diario"`
	Period      PeriodTotalsDTO  `json:"total_periodo"`
	TopProducts []ProductRankDTO `json:"top_productos"`
	TopParty    *PartyRankDTO    `json:"tercero_top,omitempty"`
}
