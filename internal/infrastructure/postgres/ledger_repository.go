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

var _ repository.LedgerRepository = (*LedgerRepo)(nil)

// LedgerRepo implementación del puerto LedgerRepository sobre PostgreSQL
// (usable con pool o tx). El libro diario es append-only: no existe UPDATE
// ni DELETE sobre movimientos_contables.
type LedgerRepo struct {
	q Querier
}

// NewLedgerRepository construye el adaptador del libro diario. Pasar pool o tx (Querier).
func NewLedgerRepository(q Querier) *LedgerRepo {
	return &LedgerRepo{q: q}
}

// Append inserta los movimientos en el orden recibido. seq lo asigna la
// secuencia de la tabla, preservando ese orden para los listados.
func (r *LedgerRepo) Append(movements []*entity.LedgerMovement) error {
	query := `
		INSERT INTO movimientos_contables (id, fecha, cuenta_id, descripcion, debito, credito, modulo, referencia_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	for _, m := range movements {
		_, err := r.q.Exec(context.Background(), query,
			m.ID, m.Date, m.AccountID, m.Description, m.Debit, m.Credit,
			m.Module, m.DocumentID, m.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert movimiento: %w", err)
		}
	}
	return nil
}

// ListBetween devuelve los movimientos del rango [from, to] con su cuenta,
// más reciente primero; el desempate dentro de un día es el orden de
// inserción invertido.
func (r *LedgerRepo) ListBetween(from, to time.Time) ([]*repository.MovementRow, error) {
	query := `
		SELECT m.fecha, c.codigo, c.nombre, m.descripcion, m.debito, m.credito, m.modulo, m.referencia_id
		FROM movimientos_contables m
		JOIN cuentas c ON c.id = m.cuenta_id
		WHERE m.fecha >= $1 AND m.fecha <= $2
		ORDER BY m.fecha DESC, m.seq DESC`
	return r.queryRows(query, from, to)
}

// ListByDocument devuelve los movimientos de un documento en el orden en
// que se asentaron.
func (r *LedgerRepo) ListByDocument(documentID string) ([]*repository.MovementRow, error) {
	query := `
		SELECT m.fecha, c.codigo, c.nombre, m.descripcion, m.debito, m.credito, m.modulo, m.referencia_id
		FROM movimientos_contables m
		JOIN cuentas c ON c.id = m.cuenta_id
		WHERE m.referencia_id = $1
		ORDER BY m.seq`
	return r.queryRows(query, documentID)
}

// Activity devuelve los totales débito/crédito por cuenta hasta asOf,
// excluyendo cuentas sin movimientos, ordenado por código.
func (r *LedgerRepo) Activity(asOf time.Time) ([]*repository.AccountActivity, error) {
	query := `
		SELECT c.codigo, c.nombre, c.tipo,
		       COALESCE(SUM(m.debito), 0) AS total_debito,
		       COALESCE(SUM(m.credito), 0) AS total_credito
		FROM cuentas c
		JOIN movimientos_contables m ON m.cuenta_id = c.id
		WHERE m.fecha <= $1
		GROUP BY c.codigo, c.nombre, c.tipo
		HAVING COALESCE(SUM(m.debito), 0) <> 0 OR COALESCE(SUM(m.credito), 0) <> 0
		ORDER BY c.codigo`
	rows, err := r.q.Query(context.Background(), query, asOf)
	if err != nil {
		return nil, fmt.Errorf("activity cuentas: %w", err)
	}
	defer rows.Close()
	var list []*repository.AccountActivity
	for rows.Next() {
		var a repository.AccountActivity
		if err := rows.Scan(&a.Code, &a.Name, &a.Type, &a.TotalDebit, &a.TotalCredit); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

func (r *LedgerRepo) queryRows(query string, args ...any) ([]*repository.MovementRow, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()
	var list []*repository.MovementRow
	for rows.Next() {
		var m repository.MovementRow
		if err := rows.Scan(&m.Date, &m.AccountCode, &m.AccountName, &m.Description, &m.Debit, &m.Credit, &m.Module, &m.DocumentID); err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
