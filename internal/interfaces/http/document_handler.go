package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/tu-usuario/pos-contable/internal/application/dto"
	"github.com/tu-usuario/pos-contable/internal/application/orders"
	"github.com/tu-usuario/pos-contable/internal/domain"
	"github.com/tu-usuario/pos-contable/internal/domain/entity"
)

// DocumentHandler maneja el registro y consulta de documentos comerciales
// (protegido). Cada POST es un evento atómico: stock + documento + asientos.
type DocumentHandler struct {
	recordUC *orders.RecordEventUseCase
	queryUC  *orders.DocumentQueryUseCase
	pdfUC    *orders.InvoicePDFUseCase
}

// NewDocumentHandler construye el handler.
func NewDocumentHandler(recordUC *orders.RecordEventUseCase, queryUC *orders.DocumentQueryUseCase, pdfUC *orders.InvoicePDFUseCase) *DocumentHandler {
	return &DocumentHandler{recordUC: recordUC, queryUC: queryUC, pdfUC: pdfUC}
}

// logWarnings deja rastro de los asientos omitidos y las sobreventas del
// evento; la respuesta ya las lleva como datos, esto es solo para el log.
func logWarnings(docType string, result *dto.DocumentResult) {
	for _, w := range result.Warnings {
		log.Warn().
			Str("tipo", docType).
			Str("documento_id", w.DocumentID).
			Str("modulo", w.Module).
			Str("cuenta", w.AccountCode).
			Msg(w.Message)
	}
}

// mapEventError traduce errores de los casos de uso de registro a HTTP.
func mapEventError(c *fiber.Ctx, err error) error {
	if err == domain.ErrInvalidInput {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	}
	if err == domain.ErrNotFound {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tercero, producto o documento no encontrado"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

// CreateInvoice registra una factura de venta.
// POST /api/facturas
func (h *DocumentHandler) CreateInvoice(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, err := h.recordUC.CreateInvoice(c.Context(), GetUserID(c), in)
	if err != nil {
		return mapEventError(c, err)
	}
	logWarnings(entity.DocumentTypeInvoice, result)
	return c.Status(fiber.StatusCreated).JSON(result)
}

// CreatePurchase registra una compra.
// POST /api/compras
func (h *DocumentHandler) CreatePurchase(c *fiber.Ctx) error {
	var in dto.CreatePurchaseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, err := h.recordUC.CreatePurchase(c.Context(), GetUserID(c), in)
	if err != nil {
		return mapEventError(c, err)
	}
	logWarnings(entity.DocumentTypePurchase, result)
	return c.Status(fiber.StatusCreated).JSON(result)
}

// CreateCreditNote registra una nota crédito sobre una factura.
// POST /api/notas-credito
func (h *DocumentHandler) CreateCreditNote(c *fiber.Ctx) error {
	var in dto.CreateCreditNoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, err := h.recordUC.CreateCreditNote(c.Context(), GetUserID(c), in)
	if err != nil {
		return mapEventError(c, err)
	}
	logWarnings(entity.DocumentTypeCreditNote, result)
	return c.Status(fiber.StatusCreated).JSON(result)
}

// CreateCashReceipt registra un recibo de caja.
// POST /api/recibos-caja
func (h *DocumentHandler) CreateCashReceipt(c *fiber.Ctx) error {
	var in dto.CreateCashVoucherRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, err := h.recordUC.CreateCashReceipt(c.Context(), GetUserID(c), in)
	if err != nil {
		return mapEventError(c, err)
	}
	logWarnings(entity.DocumentTypeCashReceipt, result)
	return c.Status(fiber.StatusCreated).JSON(result)
}

// CreateCashDisbursement registra un comprobante de egreso.
// POST /api/egresos
func (h *DocumentHandler) CreateCashDisbursement(c *fiber.Ctx) error {
	var in dto.CreateCashVoucherRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, err := h.recordUC.CreateCashDisbursement(c.Context(), GetUserID(c), in)
	if err != nil {
		return mapEventError(c, err)
	}
	logWarnings(entity.DocumentTypeCashDisbursement, result)
	return c.Status(fiber.StatusCreated).JSON(result)
}

// CreateTransformation registra una transformación de inventario.
// POST /api/transformaciones
func (h *DocumentHandler) CreateTransformation(c *fiber.Ctx) error {
	var in dto.CreateTransformationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, err := h.recordUC.CreateTransformation(c.Context(), GetUserID(c), in)
	if err != nil {
		return mapEventError(c, err)
	}
	logWarnings(entity.DocumentTypeTransformation, result)
	return c.Status(fiber.StatusCreated).JSON(result)
}

// listByType arma el listado por rango de un tipo de documento.
func (h *DocumentHandler) listByType(c *fiber.Ctx, docType string) error {
	from, to, ok := parseRange(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "desde/hasta deben ser YYYY-MM-DD"})
	}
	docs, err := h.queryUC.ListDocuments(c.Context(), docType, from, to)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(docs)
}

// ListInvoices lista facturas. GET /api/facturas
func (h *DocumentHandler) ListInvoices(c *fiber.Ctx) error {
	return h.listByType(c, entity.DocumentTypeInvoice)
}

// ListPurchases lista compras. GET /api/compras
func (h *DocumentHandler) ListPurchases(c *fiber.Ctx) error {
	return h.listByType(c, entity.DocumentTypePurchase)
}

// ListCreditNotes lista notas crédito. GET /api/notas-credito
func (h *DocumentHandler) ListCreditNotes(c *fiber.Ctx) error {
	return h.listByType(c, entity.DocumentTypeCreditNote)
}

// ListCashReceipts lista recibos de caja. GET /api/recibos-caja
func (h *DocumentHandler) ListCashReceipts(c *fiber.Ctx) error {
	return h.listByType(c, entity.DocumentTypeCashReceipt)
}

// ListCashDisbursements lista egresos. GET /api/egresos
func (h *DocumentHandler) ListCashDisbursements(c *fiber.Ctx) error {
	return h.listByType(c, entity.DocumentTypeCashDisbursement)
}

// ListTransformations lista transformaciones. GET /api/transformaciones
func (h *DocumentHandler) ListTransformations(c *fiber.Ctx) error {
	return h.listByType(c, entity.DocumentTypeTransformation)
}

// GetByID obtiene el detalle completo de un documento.
// GET /api/documentos/:id
func (h *DocumentHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	doc, err := h.queryUC.GetDocument(c.Context(), id)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "documento no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(doc)
}

// InvoicePDF descarga la representación gráfica de una factura.
// GET /api/facturas/:id/pdf
func (h *DocumentHandler) InvoicePDF(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	pdfBytes, err := h.pdfUC.InvoicePDF(c.Context(), id)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="factura-%s.pdf"`, id))
	return c.Send(pdfBytes)
}
