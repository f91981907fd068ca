package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/pos-contable/internal/domain/entity"
	"github.com/tu-usuario/pos-contable/internal/domain/repository"
)

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

const documentColumns = `id, tipo, numero, fecha, tercero_id, descripcion, motivo, forma_pago, pagada, relacionado_id, total, total_consumido, total_producido, creado_por, created_at`

// DocumentRepo implementación del puerto DocumentRepository sobre PostgreSQL (usable con pool o tx).
// Los documentos son inmutables: solo INSERT y SELECT.
type DocumentRepo struct {
	q Querier
}

// NewDocumentRepository construye el adaptador de persistencia de documentos. Pasar pool o tx (Querier).
func NewDocumentRepository(q Querier) *DocumentRepo {
	return &DocumentRepo{q: q}
}

// Create persiste la cabecera de un documento.
func (r *DocumentRepo) Create(doc *entity.Document) error {
	query := `
		INSERT INTO documentos (id, tipo, numero, fecha, tercero_id, descripcion, motivo, forma_pago, pagada, relacionado_id, total, total_consumido, total_producido, creado_por, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		doc.ID, doc.Type, doc.Number, doc.Date, doc.PartyID, doc.Description,
		doc.Reason, doc.PaymentTerm, doc.Paid, doc.RelatedID, doc.Total,
		doc.TotalConsumed, doc.TotalProduced, doc.CreatedBy, doc.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert documento: %w", err)
	}
	return nil
}

// CreateLine persiste una línea de detalle.
func (r *DocumentRepo) CreateLine(line *entity.DocumentLine) error {
	query := `
		INSERT INTO documento_lineas (id, documento_id, producto_id, clase, cantidad, valor_unitario, total)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		line.ID, line.DocumentID, line.ProductID, line.Kind,
		line.Quantity, line.UnitValue, line.Total,
	)
	if err != nil {
		return fmt.Errorf("insert linea: %w", err)
	}
	return nil
}

// GetByID obtiene un documento por ID. Devuelve (nil, nil) si no existe.
func (r *DocumentRepo) GetByID(id string) (*entity.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documentos WHERE id = $1`
	var d entity.Document
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&d.ID, &d.Type, &d.Number, &d.Date, &d.PartyID, &d.Description,
		&d.Reason, &d.PaymentTerm, &d.Paid, &d.RelatedID, &d.Total,
		&d.TotalConsumed, &d.TotalProduced, &d.CreatedBy, &d.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get documento: %w", err)
	}
	return &d, nil
}

// GetLines obtiene las líneas de un documento en orden de inserción.
func (r *DocumentRepo) GetLines(documentID string) ([]*entity.DocumentLine, error) {
	query := `
		SELECT id, documento_id, producto_id, clase, cantidad, valor_unitario, total
		FROM documento_lineas WHERE documento_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, documentID)
	if err != nil {
		return nil, fmt.Errorf("list lineas: %w", err)
	}
	defer rows.Close()
	var list []*entity.DocumentLine
	for rows.Next() {
		var l entity.DocumentLine
		if err := rows.Scan(&l.ID, &l.DocumentID, &l.ProductID, &l.Kind, &l.Quantity, &l.UnitValue, &l.Total); err != nil {
			return nil, fmt.Errorf("scan linea: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// NextNumber devuelve MAX(numero)+1 para el tipo dado. Debe ejecutarse
// dentro de la transacción del evento para que el consecutivo sea estable.
func (r *DocumentRepo) NextNumber(docType string) (int64, error) {
	var next int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(MAX(numero), 0) + 1 FROM documentos WHERE tipo = $1`,
		docType,
	).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("next numero: %w", err)
	}
	return next, nil
}

// ListByTypeBetween lista documentos de un tipo en [from, to], más reciente primero.
func (r *DocumentRepo) ListByTypeBetween(docType string, from, to time.Time) ([]*entity.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documentos
		WHERE tipo = $1 AND fecha >= $2 AND fecha <= $3
		ORDER BY fecha DESC, numero DESC`
	rows, err := r.q.Query(context.Background(), query, docType, from, to)
	if err != nil {
		return nil, fmt.Errorf("list documentos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Document
	for rows.Next() {
		var d entity.Document
		if err := rows.Scan(
			&d.ID, &d.Type, &d.Number, &d.Date, &d.PartyID, &d.Description,
			&d.Reason, &d.PaymentTerm, &d.Paid, &d.RelatedID, &d.Total,
			&d.TotalConsumed, &d.TotalProduced, &d.CreatedBy, &d.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan documento: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
