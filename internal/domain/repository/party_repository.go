package repository

import "github.com/tu-usuario/pos-contable/internal/domain/entity"

// PartyRepository define el puerto de persistencia de terceros.
type PartyRepository interface {
	Create(party *entity.Party) error
	GetByID(id string) (*entity.Party, error)
	// ListByType lista terceros del tipo dado; tipo vacío lista todos.
	ListByType(partyType string) ([]*entity.Party, error)
}
