package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/pos-contable/internal/domain/entity"
)

// MovementRow es un movimiento del libro diario con los datos de su cuenta
// (join con el PUC), listo para reportes.
type MovementRow struct {
	Date        time.Time
	AccountCode string
	AccountName string
	Description string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
	Module      string
	DocumentID  string
}

// AccountActivity son los totales débito/crédito acumulados de una cuenta
// hasta una fecha de corte. El saldo con signo lo calcula la capa de
// aplicación con ledger.NormalBalance.
type AccountActivity struct {
	Code        string
	Name        string
	Type        string
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
}

// LedgerRepository define el puerto del almacén de asientos. Append es la
// única escritura: el libro diario es append-only.
type LedgerRepository interface {
	Append(movements []*entity.LedgerMovement) error
	// ListBetween devuelve los movimientos del rango [from, to] con código y
	// nombre de cuenta, ordenados por fecha DESC y orden de inserción DESC.
	ListBetween(from, to time.Time) ([]*MovementRow, error)
	// Activity devuelve totales por cuenta con movimientos hasta asOf,
	// excluyendo cuentas sin actividad, ordenado por código.
	Activity(asOf time.Time) ([]*AccountActivity, error)
	ListByDocument(documentID string) ([]*MovementRow, error)
}
