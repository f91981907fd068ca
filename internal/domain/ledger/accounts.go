package ledger

// Códigos fijos del PUC que usa el motor de asientos. Se siembran con
// cmd/seed; si alguna falta en el registro, el par correspondiente se
// omite y se reporta como warning (ver Engine.Post).
const (
	AccountCash         = "1105" // Caja General (activo)
	AccountInventory    = "1435" // Mercancías no Fabricadas por la Empresa (activo)
	AccountSuppliers    = "2205" // Proveedores Nacionales (pasivo)
	AccountSalesRevenue = "4135" // Comercio al por Mayor y al Detal (ingreso)
	AccountSalesReturns = "4175" // Devoluciones en Ventas (ingreso)
	AccountOtherIncome  = "4199" // Otros Ingresos (ingreso)
	AccountMiscExpense  = "5195" // Diversos (gasto)
)
