package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/pos-contable/internal/application/dto"
	"github.com/tu-usuario/pos-contable/internal/application/reports"
)

// ReportsHandler maneja los resúmenes de ventas y compras (protegido).
type ReportsHandler struct {
	uc *reports.ReportsUseCase
}

// NewReportsHandler construye el handler.
func NewReportsHandler(uc *reports.ReportsUseCase) *ReportsHandler {
	return &ReportsHandler{uc: uc}
}

// SalesSummary resumen de ventas por rango.
// GET /api/reportes/ventas?desde=...&hasta=...
func (h *ReportsHandler) SalesSummary(c *fiber.Ctx) error {
	from, to, ok := parseRange(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "desde/hasta deben ser YYYY-MM-DD"})
	}
	summary, err := h.uc.SalesSummary(c.Context(), from, to)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(summary)
}

// PurchasesSummary resumen de compras por rango.
// GET /api/reportes/compras?desde=...&hasta=...
func (h *ReportsHandler) PurchasesSummary(c *fiber.Ctx) error {
	from, to, ok := parseRange(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "desde/hasta deben ser YYYY-MM-DD"})
	}
	summary, err := h.uc.PurchasesSummary(c.Context(), from, to)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(summary)
}
