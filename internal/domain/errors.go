package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrAccountInUse      = errors.New("la cuenta tiene movimientos y no puede modificarse")
	ErrProductInUse      = errors.New("el producto tiene documentos asociados")
	ErrUserAlreadyExists = errors.New("el usuario ya está registrado")
)
