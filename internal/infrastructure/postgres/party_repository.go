package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/pos-contable/internal/domain/entity"
	"github.com/tu-usuario/pos-contable/internal/domain/repository"
)

var _ repository.PartyRepository = (*PartyRepo)(nil)

// PartyRepo implementación del puerto PartyRepository sobre PostgreSQL (usable con pool o tx).
type PartyRepo struct {
	q Querier
}

// NewPartyRepository construye el adaptador de persistencia para terceros. Pasar pool o tx (Querier).
func NewPartyRepository(q Querier) *PartyRepo {
	return &PartyRepo{q: q}
}

// Create persiste un tercero nuevo.
func (r *PartyRepo) Create(party *entity.Party) error {
	query := `
		INSERT INTO terceros (id, nombres, apellidos, telefono, correo, direccion, tipo, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		party.ID, party.FirstName, party.LastName, party.Phone, party.Email,
		party.Address, party.Type, party.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert tercero: %w", err)
	}
	return nil
}

// GetByID obtiene un tercero por ID. Devuelve (nil, nil) si no existe.
func (r *PartyRepo) GetByID(id string) (*entity.Party, error) {
	query := `
		SELECT id, nombres, apellidos, telefono, correo, direccion, tipo, created_at
		FROM terceros WHERE id = $1`
	var p entity.Party
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.FirstName, &p.LastName, &p.Phone, &p.Email, &p.Address, &p.Type, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tercero: %w", err)
	}
	return &p, nil
}

// ListByType lista terceros del tipo dado; tipo vacío lista todos.
func (r *PartyRepo) ListByType(partyType string) ([]*entity.Party, error) {
	query := `
		SELECT id, nombres, apellidos, telefono, correo, direccion, tipo, created_at
		FROM terceros`
	args := []any{}
	if partyType != "" {
		query += ` WHERE tipo = $1`
		args = append(args, partyType)
	}
	query += ` ORDER BY nombres, apellidos`
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list terceros: %w", err)
	}
	defer rows.Close()
	var list []*entity.Party
	for rows.Next() {
		var p entity.Party
		if err := rows.Scan(&p.ID, &p.FirstName, &p.LastName, &p.Phone, &p.Email, &p.Address, &p.Type, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan tercero: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
