package orders

import (
	"context"
	"time"

	"github.com/tu-usuario/pos-contable/internal/application/dto"
	"github.com/tu-usuario/pos-contable/internal/domain"
	"github.com/tu-usuario/pos-contable/internal/domain/entity"
	"github.com/tu-usuario/pos-contable/internal/domain/repository"
)

// DocumentQueryUseCase consultas de solo lectura sobre documentos: detalle
// y listados por rango. Nunca escribe.
type DocumentQueryUseCase struct {
	docRepo     repository.DocumentRepository
	productRepo repository.ProductRepository
	partyRepo   repository.PartyRepository
}

// NewDocumentQueryUseCase construye el caso de uso.
func NewDocumentQueryUseCase(docRepo repository.DocumentRepository, productRepo repository.ProductRepository, partyRepo repository.PartyRepository) *DocumentQueryUseCase {
	return &DocumentQueryUseCase{docRepo: docRepo, productRepo: productRepo, partyRepo: partyRepo}
}

// GetDocument devuelve un documento con sus líneas y nombres resueltos.
func (uc *DocumentQueryUseCase) GetDocument(ctx context.Context, id string) (*dto.DocumentDetailResponse, error) {
	doc, err := uc.docRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrNotFound
	}
	lines, err := uc.docRepo.GetLines(id)
	if err != nil {
		return nil, err
	}
	header, err := uc.toResponse(doc)
	if err != nil {
		return nil, err
	}
	resp := &dto.DocumentDetailResponse{DocumentResponse: header}
	for _, line := range lines {
		product, err := uc.productRepo.GetByID(line.ProductID)
		if err != nil {
			return nil, err
		}
		name := ""
		if product != nil {
			name = product.Name
		}
		kind := ""
		if line.Kind != entity.LineKindNormal {
			kind = line.Kind
		}
		resp.Lines = append(resp.Lines, dto.LineResponse{
			ProductID:   line.ProductID,
			ProductName: name,
			Kind:        kind,
			Quantity:    line.Quantity,
			UnitValue:   line.UnitValue,
			Total:       line.Total,
		})
	}
	return resp, nil
}

// ListDocuments lista documentos de un tipo en [from, to], más reciente
// primero.
func (uc *DocumentQueryUseCase) ListDocuments(ctx context.Context, docType string, from, to time.Time) ([]dto.DocumentResponse, error) {
	docs, err := uc.docRepo.ListByTypeBetween(docType, from, to)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DocumentResponse, 0, len(docs))
	for _, doc := range docs {
		resp, err := uc.toResponse(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

func (uc *DocumentQueryUseCase) toResponse(doc *entity.Document) (dto.DocumentResponse, error) {
	resp := dto.DocumentResponse{
		ID:          doc.ID,
		Type:        doc.Type,
		Number:      doc.Number,
		Date:        doc.Date.Format("2006-01-02"),
		Description: doc.Description,
		Reason:      doc.Reason,
		PaymentTerm: doc.PaymentTerm,
		Total:       doc.Total,
		CreatedBy:   doc.CreatedBy,
	}
	if doc.Type == entity.DocumentTypePurchase {
		paid := doc.Paid
		resp.Paid = &paid
	}
	if doc.PartyID != nil {
		party, err := uc.partyRepo.GetByID(*doc.PartyID)
		if err != nil {
			return dto.DocumentResponse{}, err
		}
		if party != nil {
			resp.PartyName = party.DisplayName()
		}
	}
	return resp, nil
}
