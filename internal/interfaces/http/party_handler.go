package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/pos-contable/internal/application/catalog"
	"github.com/tu-usuario/pos-contable/internal/application/dto"
	"github.com/tu-usuario/pos-contable/internal/domain"
)

// PartyHandler maneja terceros: clientes y proveedores (protegido).
type PartyHandler struct {
	uc *catalog.PartyUseCase
}

// NewPartyHandler construye el handler.
func NewPartyHandler(uc *catalog.PartyUseCase) *PartyHandler {
	return &PartyHandler{uc: uc}
}

// Create registra un tercero.
// POST /api/terceros
func (h *PartyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePartyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	party, err := h.uc.CreateParty(c.Context(), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombres y tipo (customer|supplier) son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(party)
}

// List lista terceros; ?tipo=customer|supplier filtra.
// GET /api/terceros
func (h *PartyHandler) List(c *fiber.Ctx) error {
	parties, err := h.uc.ListParties(c.Context(), c.Query("tipo"))
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo debe ser customer o supplier"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(parties)
}

// GetByID obtiene un tercero.
// GET /api/terceros/:id
func (h *PartyHandler) GetByID(c *fiber.Ctx) error {
	party, err := h.uc.GetParty(c.Context(), c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tercero no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(party)
}
