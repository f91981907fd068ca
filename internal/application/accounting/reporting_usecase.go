package accounting

import (
	"context"
	"time"

	"github.com/tu-usuario/pos-contable/internal/application/dto"
	"github.com/tu-usuario/pos-contable/internal/domain/ledger"
	"github.com/tu-usuario/pos-contable/internal/domain/repository"
)

// JournalExporter serializa movimientos del libro diario a un formato de
// intercambio (XML).
type JournalExporter interface {
	ExportJournal(from, to time.Time, rows []*repository.MovementRow) ([]byte, error)
}

// ReportingUseCase consultas de solo lectura sobre el libro diario:
// movimientos por rango, balance de prueba y exportación.
type ReportingUseCase struct {
	ledgerRepo repository.LedgerRepository
	exporter   JournalExporter
}

// NewReportingUseCase construye el caso de uso.
func NewReportingUseCase(ledgerRepo repository.LedgerRepository, exporter JournalExporter) *ReportingUseCase {
	return &ReportingUseCase{ledgerRepo: ledgerRepo, exporter: exporter}
}

// ExportJournalXML exporta los asientos del rango [from, to] como XML.
func (uc *ReportingUseCase) ExportJournalXML(ctx context.Context, from, to time.Time) ([]byte, error) {
	rows, err := uc.ledgerRepo.ListBetween(from, to)
	if err != nil {
		return nil, err
	}
	return uc.exporter.ExportJournal(from, to, rows)
}

// Movements lista los asientos en [from, to], más reciente primero.
func (uc *ReportingUseCase) Movements(ctx context.Context, from, to time.Time) ([]dto.MovementResponse, error) {
	rows, err := uc.ledgerRepo.ListBetween(from, to)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.MovementResponse{
			Date:        r.Date.Format("2006-01-02"),
			AccountCode: r.AccountCode,
			AccountName: r.AccountName,
			Description: r.Description,
			Debit:       r.Debit,
			Credit:      r.Credit,
			Module:      r.Module,
			DocumentID:  r.DocumentID,
		})
	}
	return out, nil
}

// TrialBalance calcula el balance de prueba con corte en asOf. El saldo
// respeta la naturaleza de cada cuenta: deudora para activo y gasto,
// acreedora para pasivo, patrimonio e ingreso. Las cuentas sin actividad
// no aparecen.
func (uc *ReportingUseCase) TrialBalance(ctx context.Context, asOf time.Time) ([]dto.TrialBalanceRow, error) {
	activity, err := uc.ledgerRepo.Activity(asOf)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TrialBalanceRow, 0, len(activity))
	for _, a := range activity {
		out = append(out, dto.TrialBalanceRow{
			Code:        a.Code,
			Name:        a.Name,
			Type:        a.Type,
			TotalDebit:  a.TotalDebit,
			TotalCredit: a.TotalCredit,
			Balance:     ledger.NormalBalance(a.Type, a.TotalDebit, a.TotalCredit),
		})
	}
	return out, nil
}

// DocumentMovements lista los asientos de un documento puntual, en el
// orden en que se registraron.
func (uc *ReportingUseCase) DocumentMovements(ctx context.Context, documentID string) ([]dto.MovementResponse, error) {
	rows, err := uc.ledgerRepo.ListByDocument(documentID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.MovementResponse{
			Date:        r.Date.Format("2006-01-02"),
			AccountCode: r.AccountCode,
			AccountName: r.AccountName,
			Description: r.Description,
			Debit:       r.Debit,
			Credit:      r.Credit,
			Module:      r.Module,
			DocumentID:  r.DocumentID,
		})
	}
	return out, nil
}
