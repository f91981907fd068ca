package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/pos-contable/internal/domain/entity"
	"github.com/tu-usuario/pos-contable/internal/domain/repository"
)

var _ repository.ReportsRepository = (*ReportsRepo)(nil)

// ReportsRepo consultas agregadas para los resúmenes de ventas y compras.
// Solo lectura.
type ReportsRepo struct {
	q Querier
}

// NewReportsRepository construye el adaptador de reportes. Pasar pool o tx (Querier).
func NewReportsRepository(q Querier) *ReportsRepo {
	return &ReportsRepo{q: q}
}

// DailyTotals agrupa documentos del tipo por día dentro de [from, to].
func (r *ReportsRepo) DailyTotals(docType string, from, to time.Time) ([]*repository.DailyTotal, error) {
	query := `
		SELECT to_char(fecha, 'YYYY-MM-DD') AS dia, COUNT(*), COALESCE(SUM(total), 0)
		FROM documentos
		WHERE tipo = $1 AND fecha >= $2 AND fecha <= $3
		GROUP BY dia ORDER BY dia`
	rows, err := r.q.Query(context.Background(), query, docType, from, to)
	if err != nil {
		return nil, fmt.Errorf("daily totals: %w", err)
	}
	defer rows.Close()
	var list []*repository.DailyTotal
	for rows.Next() {
		var d repository.DailyTotal
		if err := rows.Scan(&d.Day, &d.Count, &d.Total); err != nil {
			return nil, fmt.Errorf("scan daily total: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Totals agrega el período completo. Para compras reporta además montos
// pagados y pendientes según la bandera pagada.
func (r *ReportsRepo) Totals(docType string, from, to time.Time) (*repository.PeriodTotals, error) {
	query := `
		SELECT COUNT(*),
		       COALESCE(SUM(total), 0),
		       COALESCE(AVG(total), 0),
		       COALESCE(SUM(total) FILTER (WHERE pagada), 0),
		       COALESCE(SUM(total) FILTER (WHERE NOT pagada), 0)
		FROM documentos
		WHERE tipo = $1 AND fecha >= $2 AND fecha <= $3`
	var t repository.PeriodTotals
	var avg decimal.Decimal
	err := r.q.QueryRow(context.Background(), query, docType, from, to).Scan(
		&t.Count, &t.Total, &avg, &t.Paid, &t.Pending,
	)
	if err != nil {
		return nil, fmt.Errorf("period totals: %w", err)
	}
	t.Average = avg.Round(2)
	if docType != entity.DocumentTypePurchase {
		t.Paid = decimal.Zero
		t.Pending = decimal.Zero
	}
	return &t, nil
}

// TopProducts rankea productos por cantidad movida en documentos del tipo.
func (r *ReportsRepo) TopProducts(docType string, from, to time.Time, limit int) ([]*repository.ProductRank, error) {
	query := `
		SELECT p.nombre, COALESCE(SUM(l.cantidad), 0), COALESCE(SUM(l.total), 0), COUNT(DISTINCT d.id)
		FROM documento_lineas l
		JOIN documentos d ON d.id = l.documento_id
		JOIN productos p ON p.id = l.producto_id
		WHERE d.tipo = $1 AND d.fecha >= $2 AND d.fecha <= $3 AND l.clase = 'normal'
		GROUP BY p.nombre
		ORDER BY SUM(l.cantidad) DESC
		LIMIT $4`
	rows, err := r.q.Query(context.Background(), query, docType, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("top productos: %w", err)
	}
	defer rows.Close()
	var list []*repository.ProductRank
	for rows.Next() {
		var p repository.ProductRank
		if err := rows.Scan(&p.Name, &p.Quantity, &p.Total, &p.Documents); err != nil {
			return nil, fmt.Errorf("scan top producto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// TopParty devuelve el tercero con más volumen del período, o (nil, nil) si
// ningún documento del rango tiene tercero.
func (r *ReportsRepo) TopParty(docType string, from, to time.Time) (*repository.PartyRank, error) {
	query := `
		SELECT TRIM(t.nombres || ' ' || t.apellidos), COUNT(*), COALESCE(SUM(d.total), 0)
		FROM documentos d
		JOIN terceros t ON t.id = d.tercero_id
		WHERE d.tipo = $1 AND d.fecha >= $2 AND d.fecha <= $3
		GROUP BY t.id, t.nombres, t.apellidos
		ORDER BY SUM(d.total) DESC
		LIMIT 1`
	var p repository.PartyRank
	err := r.q.QueryRow(context.Background(), query, docType, from, to).Scan(&p.Name, &p.Documents, &p.Total)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("top tercero: %w", err)
	}
	return &p, nil
}
