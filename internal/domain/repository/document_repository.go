package repository

import (
	"time"

	"github.com/tu-usuario/pos-contable/internal/domain/entity"
)

// DocumentRepository define el puerto de persistencia de documentos
// comerciales (cabecera + líneas). Los documentos son inmutables: no hay
// Update ni Delete.
type DocumentRepository interface {
	Create(doc *entity.Document) error
	CreateLine(line *entity.DocumentLine) error
	GetByID(id string) (*entity.Document, error)
	GetLines(documentID string) ([]*entity.DocumentLine, error)
	// NextNumber devuelve el consecutivo siguiente para el tipo dado.
	// Debe llamarse dentro de la transacción del evento.
	NextNumber(docType string) (int64, error)
	ListByTypeBetween(docType string, from, to time.Time) ([]*entity.Document, error)
}
