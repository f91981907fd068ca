package orders

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/pos-contable/internal/domain/entity"
	"github.com/tu-usuario/pos-contable/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que stock, documento y asientos
// de un evento comercial se confirmen juntos o se reviertan juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		accountRepo repository.AccountRepository,
		productRepo repository.ProductRepository,
		docRepo repository.DocumentRepository,
		ledgerRepo repository.LedgerRepository,
	) error) error
}

// LineForPDF línea resuelta para la representación gráfica de la factura.
type LineForPDF struct {
	ProductName string
	Unit        string
	Quantity    decimal.Decimal
	UnitValue   decimal.Decimal
	Total       decimal.Decimal
}

// InvoicePDFGenerator genera la representación gráfica de una factura.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, doc *entity.Document, party *entity.Party, lines []LineForPDF) ([]byte, error)
}
