package repository

import "github.com/tu-usuario/pos-contable/internal/domain/entity"

// UserRepository define el puerto de persistencia de usuarios.
type UserRepository interface {
	Create(user *entity.User) error
	GetByUsername(username string) (*entity.User, error)
	List() ([]*entity.User, error)
	SetActive(id string, active bool) error
}
