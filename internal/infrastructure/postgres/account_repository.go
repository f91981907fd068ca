package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/pos-contable/internal/domain"
	"github.com/tu-usuario/pos-contable/internal/domain/entity"
	"github.com/tu-usuario/pos-contable/internal/domain/repository"
)

var _ repository.AccountRepository = (*AccountRepo)(nil)

// AccountRepo implementación del puerto AccountRepository sobre PostgreSQL (usable con pool o tx).
type AccountRepo struct {
	q Querier
}

// NewAccountRepository construye el adaptador de persistencia del PUC. Pasar pool o tx (Querier).
func NewAccountRepository(q Querier) *AccountRepo {
	return &AccountRepo{q: q}
}

// Create persiste una cuenta nueva. Devuelve domain.ErrDuplicate si el código ya existe.
func (r *AccountRepo) Create(account *entity.Account) error {
	query := `
		INSERT INTO cuentas (id, codigo, nombre, tipo, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		account.ID, account.Code, account.Name, account.Type, account.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert cuenta: %w", err)
	}
	return nil
}

// GetByCode obtiene una cuenta por código. Devuelve (nil, nil) si no existe.
func (r *AccountRepo) GetByCode(code string) (*entity.Account, error) {
	query := `
		SELECT id, codigo, nombre, tipo, created_at
		FROM cuentas WHERE codigo = $1`
	var a entity.Account
	err := r.q.QueryRow(context.Background(), query, code).Scan(
		&a.ID, &a.Code, &a.Name, &a.Type, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cuenta: %w", err)
	}
	return &a, nil
}

// List lista el plan de cuentas ordenado por código.
func (r *AccountRepo) List() ([]*entity.Account, error) {
	query := `
		SELECT id, codigo, nombre, tipo, created_at
		FROM cuentas ORDER BY codigo`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list cuentas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Account
	for rows.Next() {
		var a entity.Account
		if err := rows.Scan(&a.ID, &a.Code, &a.Name, &a.Type, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan cuenta: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
