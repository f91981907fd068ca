package entity

import "time"

// Tipos de cuenta del plan único de cuentas (PUC).
// La convención de saldo normal depende del tipo: activo y gasto aumentan
// al débito; pasivo, patrimonio e ingreso aumentan al crédito.
const (
	AccountTypeAsset     = "asset"     // activo
	AccountTypeLiability = "liability" // pasivo
	AccountTypeEquity    = "equity"    // patrimonio
	AccountTypeIncome    = "income"    // ingreso
	AccountTypeExpense   = "expense"   // gasto
)

// ValidAccountType reporta si s es uno de los cinco tipos del PUC.
func ValidAccountType(s string) bool {
	switch s {
	case AccountTypeAsset, AccountTypeLiability, AccountTypeEquity, AccountTypeIncome, AccountTypeExpense:
		return true
	}
	return false
}

// Account representa una cuenta del PUC. El código es el identificador
// estable: una vez referenciado por un movimiento contable no se reasigna,
// y las cuentas nunca se borran (los asientos guardan la referencia).
type Account struct {
	ID        string
	Code      string // único, ej. "1105"
	Name      string
	Type      string
	CreatedAt time.Time
}
