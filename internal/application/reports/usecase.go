package reports

import (
	"context"
	"time"

	"github.com/tu-usuario/pos-contable/internal/application/dto"
	"github.com/tu-usuario/pos-contable/internal/domain/entity"
	"github.com/tu-usuario/pos-contable/internal/domain/repository"
)

const topProductsLimit = 5

// ReportsUseCase arma los resúmenes de ventas y compras del back-office.
type ReportsUseCase struct {
	reportsRepo repository.ReportsRepository
}

// NewReportsUseCase construye el caso de uso.
func NewReportsUseCase(reportsRepo repository.ReportsRepository) *ReportsUseCase {
	return &ReportsUseCase{reportsRepo: reportsRepo}
}

// SalesSummary resumen de ventas en [from, to].
func (uc *ReportsUseCase) SalesSummary(ctx context.Context, from, to time.Time) (*dto.SummaryResponse, error) {
	return uc.summary(entity.DocumentTypeInvoice, from, to)
}

// PurchasesSummary resumen de compras en [from, to].
func (uc *ReportsUseCase) PurchasesSummary(ctx context.Context, from, to time.Time) (*dto.SummaryResponse, error) {
	return uc.summary(entity.DocumentTypePurchase, from, to)
}

func (uc *ReportsUseCase) summary(docType string, from, to time.Time) (*dto.SummaryResponse, error) {
	daily, err := uc.reportsRepo.DailyTotals(docType, from, to)
	if err != nil {
		return nil, err
	}
	totals, err := uc.reportsRepo.Totals(docType, from, to)
	if err != nil {
		return nil, err
	}
	top, err := uc.reportsRepo.TopProducts(docType, from, to, topProductsLimit)
	if err != nil {
		return nil, err
	}
	party, err := uc.reportsRepo.TopParty(docType, from, to)
	if err != nil {
		return nil, err
	}

	resp := &dto.SummaryResponse{
		Daily: make([]dto.DailyTotalDTO, 0, len(daily)),
		Period: dto.PeriodTotalsDTO{
			Count:   totals.Count,
			Total:   totals.Total,
			Average: totals.Average,
			Paid:    totals.Paid,
			Pending: totals.Pending,
		},
		TopProducts: make([]dto.ProductRankDTO, 0, len(top)),
	}
	for _, d := range daily {
		resp.Daily = append(resp.Daily, dto.DailyTotalDTO{Day: d.Day, Count: d.Count, Total: d.Total})
	}
	for _, p := range top {
		resp.TopProducts = append(resp.TopProducts, dto.ProductRankDTO{
			Name:      p.Name,
			Quantity:  p.Quantity,
			Total:     p.Total,
			Documents: p.Documents,
		})
	}
	if party != nil {
		resp.TopParty = &dto.PartyRankDTO{Name: party.Name, Documents: party.Documents, Total: party.Total}
	}
	return resp, nil
}
