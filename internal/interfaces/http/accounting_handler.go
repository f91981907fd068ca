package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/pos-contable/internal/application/accounting"
	"github.com/tu-usuario/pos-contable/internal/application/dto"
	"github.com/tu-usuario/pos-contable/internal/domain"
)

// AccountingHandler maneja el plan de cuentas y los reportes contables
// (protegido).
type AccountingHandler struct {
	chartUC     *accounting.ChartUseCase
	reportingUC *accounting.ReportingUseCase
}

// NewAccountingHandler construye el handler.
func NewAccountingHandler(chartUC *accounting.ChartUseCase, reportingUC *accounting.ReportingUseCase) *AccountingHandler {
	return &AccountingHandler{chartUC: chartUC, reportingUC: reportingUC}
}

// CreateAccount registra una cuenta en el PUC.
// POST /api/contabilidad/cuentas
func (h *AccountingHandler) CreateAccount(c *fiber.Ctx) error {
	var in dto.CreateAccountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	account, err := h.chartUC.AddAccount(c.Context(), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "codigo, nombre y tipo válido son requeridos"})
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el código de cuenta ya existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(account)
}

// ListAccounts lista el PUC.
// GET /api/contabilidad/cuentas
func (h *AccountingHandler) ListAccounts(c *fiber.Ctx) error {
	accounts, err := h.chartUC.ListAccounts(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(accounts)
}

// Movements lista el libro diario por rango.
// GET /api/contabilidad/movimientos?desde=...&hasta=...
func (h *AccountingHandler) Movements(c *fiber.Ctx) error {
	from, to, ok := parseRange(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "desde/hasta deben ser YYYY-MM-DD"})
	}
	movements, err := h.reportingUC.Movements(c.Context(), from, to)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(movements)
}

// DocumentMovements lista los asientos de un documento.
// GET /api/contabilidad/documentos/:id/movimientos
func (h *AccountingHandler) DocumentMovements(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	movements, err := h.reportingUC.DocumentMovements(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(movements)
}

// TrialBalance calcula el balance de prueba al corte.
// GET /api/contabilidad/balance?hasta=...
func (h *AccountingHandler) TrialBalance(c *fiber.Ctx) error {
	_, asOf, ok := parseRange(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "hasta debe ser YYYY-MM-DD"})
	}
	balance, err := h.reportingUC.TrialBalance(c.Context(), asOf)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(balance)
}

// ExportJournal exporta el libro diario del rango como XML.
// GET /api/contabilidad/exportar?desde=...&hasta=...
func (h *AccountingHandler) ExportJournal(c *fiber.Ctx) error {
	from, to, ok := parseRange(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "desde/hasta deben ser YYYY-MM-DD"})
	}
	out, err := h.reportingUC.ExportJournalXML(c.Context(), from, to)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set("Content-Type", "application/xml")
	c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="libro-diario-%s-%s.xml"`, from.Format("20060102"), to.Format("20060102")))
	return c.Send(out)
}
