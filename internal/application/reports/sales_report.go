// Package reports genera reportes gerenciales a partir de los stores.
package reports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/AniketRabade/Prjoect-Management-CRM/internal/domain"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/domain/entity"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/domain/repository"
)

// SalesReportData datos ya resueltos que consume el generador.
type SalesReportData struct {
	From  time.Time
	To    time.Time
	Sales []*entity.Sale
	Stats repository.SaleStats
	// ClientNames resuelve client_id → nombre; las referencias colgantes
	// simplemente no aparecen en el mapa.
	ClientNames map[string]string
}

// SalesReportGenerator renderiza el reporte (PDF).
type SalesReportGenerator interface {
	GenerateSalesReport(ctx context.Context, data SalesReportData) ([]byte, error)
}

// SalesReportUseCase arma los datos del periodo y delega el render.
type SalesReportUseCase struct {
	saleRepo   repository.SaleRepository
	clientRepo repository.ClientRepository
	generator  SalesReportGenerator
}

// NewSalesReportUseCase construye el caso de uso.
func NewSalesReportUseCase(saleRepo repository.SaleRepository, clientRepo repository.ClientRepository, generator SalesReportGenerator) *SalesReportUseCase {
	return &SalesReportUseCase{saleRepo: saleRepo, clientRepo: clientRepo, generator: generator}
}

// Generate produce el PDF del periodo [from, to].
func (uc *SalesReportUseCase) Generate(ctx context.Context, from, to time.Time) ([]byte, error) {
	if to.Before(from) {
		return nil, domain.ErrInvalidInput
	}
	sales, err := uc.saleRepo.ListByDateRange(from, to)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string)
	for _, s := range sales {
		if _, ok := names[s.ClientID]; ok {
			continue
		}
		client, err := uc.clientRepo.GetByID(s.ClientID)
		if err != nil {
			return nil, err
		}
		if client != nil {
			names[s.ClientID] = client.Name
		}
	}

	stats := repository.SaleStats{Count: len(sales)}
	for _, s := range sales {
		stats.Total = stats.Total.Add(s.Amount)
	}
	if stats.Count > 0 {
		stats.Average = stats.Total.DivRound(decimal.NewFromInt(int64(stats.Count)), 2)
	}

	return uc.generator.GenerateSalesReport(ctx, SalesReportData{
		From:        from,
		To:          to,
		Sales:       sales,
		Stats:       stats,
		ClientNames: names,
	})
}
