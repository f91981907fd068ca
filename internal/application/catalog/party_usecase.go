package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/pos-contable/internal/application/dto"
	"github.com/tu-usuario/pos-contable/internal/domain"
	"github.com/tu-usuario/pos-contable/internal/domain/entity"
	"github.com/tu-usuario/pos-contable/internal/domain/repository"
)

// PartyUseCase maneja terceros: clientes y proveedores.
type PartyUseCase struct {
	partyRepo repository.PartyRepository
}

// NewPartyUseCase construye el caso de uso.
func NewPartyUseCase(partyRepo repository.PartyRepository) *PartyUseCase {
	return &PartyUseCase{partyRepo: partyRepo}
}

// CreateParty registra un tercero.
func (uc *PartyUseCase) CreateParty(ctx context.Context, in dto.CreatePartyRequest) (*dto.PartyResponse, error) {
	if in.FirstName == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Type != entity.PartyTypeCustomer && in.Type != entity.PartyTypeSupplier {
		return nil, domain.ErrInvalidInput
	}
	party := &entity.Party{
		ID:        uuid.New().String(),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Phone:     in.Phone,
		Email:     in.Email,
		Address:   in.Address,
		Type:      in.Type,
		CreatedAt: time.Now(),
	}
	if err := uc.partyRepo.Create(party); err != nil {
		return nil, err
	}
	return toPartyResponse(party), nil
}

// GetParty devuelve un tercero por id.
func (uc *PartyUseCase) GetParty(ctx context.Context, id string) (*dto.PartyResponse, error) {
	party, err := uc.partyRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if party == nil {
		return nil, domain.ErrNotFound
	}
	return toPartyResponse(party), nil
}

// ListParties lista terceros; partyType vacío lista todos.
func (uc *PartyUseCase) ListParties(ctx context.Context, partyType string) ([]dto.PartyResponse, error) {
	if partyType != "" && partyType != entity.PartyTypeCustomer && partyType != entity.PartyTypeSupplier {
		return nil, domain.ErrInvalidInput
	}
	parties, err := uc.partyRepo.ListByType(partyType)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PartyResponse, 0, len(parties))
	for _, p := range parties {
		out = append(out, *toPartyResponse(p))
	}
	return out, nil
}

func toPartyResponse(p *entity.Party) *dto.PartyResponse {
	return &dto.PartyResponse{
		ID:      p.ID,
		Name:    p.DisplayName(),
		Phone:   p.Phone,
		Email:   p.Email,
		Address: p.Address,
		Type:    p.Type,
	}
}
