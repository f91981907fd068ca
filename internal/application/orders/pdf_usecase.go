package orders

import (
	"context"

	"github.com/tu-usuario/pos-contable/internal/domain"
	"github.com/tu-usuario/pos-contable/internal/domain/entity"
	"github.com/tu-usuario/pos-contable/internal/domain/repository"
)

// InvoicePDFUseCase arma los datos de una factura y delega la generación
// del PDF al puerto InvoicePDFGenerator.
type InvoicePDFUseCase struct {
	docRepo     repository.DocumentRepository
	productRepo repository.ProductRepository
	partyRepo   repository.PartyRepository
	generator   InvoicePDFGenerator
}

// NewInvoicePDFUseCase construye el caso de uso.
func NewInvoicePDFUseCase(docRepo repository.DocumentRepository, productRepo repository.ProductRepository, partyRepo repository.PartyRepository, generator InvoicePDFGenerator) *InvoicePDFUseCase {
	return &InvoicePDFUseCase{docRepo: docRepo, productRepo: productRepo, partyRepo: partyRepo, generator: generator}
}

// InvoicePDF genera la representación gráfica de la factura id.
func (uc *InvoicePDFUseCase) InvoicePDF(ctx context.Context, id string) ([]byte, error) {
	doc, err := uc.docRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if doc == nil || doc.Type != entity.DocumentTypeInvoice {
		return nil, domain.ErrNotFound
	}
	var party *entity.Party
	if doc.PartyID != nil {
		party, err = uc.partyRepo.GetByID(*doc.PartyID)
		if err != nil {
			return nil, err
		}
	}
	docLines, err := uc.docRepo.GetLines(id)
	if err != nil {
		return nil, err
	}
	lines := make([]LineForPDF, 0, len(docLines))
	for _, line := range docLines {
		product, err := uc.productRepo.GetByID(line.ProductID)
		if err != nil {
			return nil, err
		}
		name, unit := line.ProductID, ""
		if product != nil {
			name, unit = product.Name, product.Unit
		}
		lines = append(lines, LineForPDF{
			ProductName: name,
			Unit:        unit,
			Quantity:    line.Quantity,
			UnitValue:   line.UnitValue,
			Total:       line.Total,
		})
	}
	return uc.generator.GenerateInvoicePDF(ctx, doc, party, lines)
}
