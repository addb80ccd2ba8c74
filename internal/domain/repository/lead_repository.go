package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/AniketRabade/Prjoect-Management-CRM/internal/domain/entity"
)

// LeadStats agregados del pipeline de leads.
type LeadStats struct {
	Total          int
	Converted      int
	PotentialValue decimal.Decimal
	ByStatus       map[string]int
}

// LeadRepository define el puerto de persistencia para Lead.
type LeadRepository interface {
	Create(lead *entity.Lead) error
	GetByID(id string) (*entity.Lead, error)
	List(limit, offset int) ([]*entity.Lead, error)
	ListByAssignee(userID string) ([]*entity.Lead, error)
	ListByStatus(status string) ([]*entity.Lead, error)
	ListBySource(source string) ([]*entity.Lead, error)
	ListRecent(limit int) ([]*entity.Lead, error)
	Stats() (*LeadStats, error)
	Update(lead *entity.Lead) error
	// MarkConverted aplica la escritura condicional de conversión:
	// setea client_id, status terminal y conversion_date SOLO si client_id
	// sigue nulo. Devuelve false si el lead ya estaba convertido (0 filas).
	MarkConverted(leadID, clientID, status string, when time.Time) (bool, error)
	Delete(id string) error
}
