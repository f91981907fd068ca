package dto

import "github.com/shopspring/decimal"

// CreateAccountRequest alta de cuenta en el PUC.
type CreateAccountRequest struct {
	Code string `json:"codigo"`
	Name string `json:"nombre"`
	Type string `json:"tipo"` // asset|liability|equity|income|expense
}

// AccountResponse cuenta del PUC.
type AccountResponse struct {
	Code string `json:"codigo"`
	Name string `json:"nombre"`
	Type string `json:"tipo"`
}

// MovementResponse fila del libro diario con su cuenta.
type MovementResponse struct {
	Date        string          `json:"fecha"`
	AccountCode string          `json:"codigo"`
	AccountName string          `json:"cuenta"`
	Description string          `json:"descripcion"`
	Debit       decimal.Decimal `json:"debito"`
	Credit      decimal.Decimal `json:"credito"`
	Module      string          `json:"modulo"`
	DocumentID  string          `json:"referencia_id"`
}

// TrialBalanceRow saldo de una cuenta al corte, con la convención de saldo
// normal aplicada según el tipo.
type TrialBalanceRow struct {
	Code        string          `json:"codigo"`
	Name        string          `json:"nombre"`
	Type        string          `json:"tipo"`
	TotalDebit  decimal.Decimal `json:"total_debito"`
	TotalCredit decimal.Decimal `json:"total_credito"`
	Balance     decimal.Decimal `json:"saldo"`
}
