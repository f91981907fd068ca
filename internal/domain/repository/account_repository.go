package repository

import "github.com/tu-usuario/pos-contable/internal/domain/entity"

// AccountRepository define el puerto de persistencia del plan de cuentas.
// GetByCode devuelve (nil, nil) si el código no existe; Create devuelve
// domain.ErrDuplicate si el código ya está registrado.
type AccountRepository interface {
	Create(account *entity.Account) error
	GetByCode(code string) (*entity.Account, error)
	List() ([]*entity.Account, error)
}
