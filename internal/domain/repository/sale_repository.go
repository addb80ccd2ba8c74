package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/AniketRabade/Prjoect-Management-CRM/internal/domain/entity"
)

// SaleStats agregados de ventas para el panel de reportes.
type SaleStats struct {
	Count   int
	Total   decimal.Decimal
	Average decimal.Decimal
	Min     decimal.Decimal
	Max     decimal.Decimal
}

// SaleRepository define el puerto de persistencia para Sale.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	List(limit, offset int) ([]*entity.Sale, error)
	ListBySalesperson(userID string) ([]*entity.Sale, error)
	ListByProject(projectID string) ([]*entity.Sale, error)
	ListByClient(clientID string) ([]*entity.Sale, error)
	ListByDateRange(from, to time.Time) ([]*entity.Sale, error)
	Stats() (*SaleStats, error)
	Update(sale *entity.Sale) error
	Delete(id string) error
}
