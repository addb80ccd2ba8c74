package crm

import (
	"time"

	"github.com/google/uuid"

	"github.com/AniketRabade/Prjoect-Management-CRM/internal/application/dto"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/application/identity"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/domain"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/domain/entity"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/domain/repository"
)

// SaleUseCase gestión de ventas. El salesperson siempre es el caller que
// registra la venta; project y client son obligatorios y deben existir.
type SaleUseCase struct {
	repo        repository.SaleRepository
	projectRepo repository.ProjectRepository
	clientRepo  repository.ClientRepository
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(repo repository.SaleRepository, projectRepo repository.ProjectRepository, clientRepo repository.ClientRepository) *SaleUseCase {
	return &SaleUseCase{repo: repo, projectRepo: projectRepo, clientRepo: clientRepo}
}

// Create registra una venta. El monto se redondea a 2 decimales antes de
// persistir, así las relecturas son idempotentes.
func (uc *SaleUseCase) Create(callerID string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if in.ProjectID == "" || in.ClientID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Amount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidPaymentMethod(in.PaymentMethod) {
		return nil, domain.ErrInvalidInput
	}
	project, err := uc.projectRepo.GetByID(in.ProjectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	saleDate := time.Now()
	if in.SaleDate != nil {
		saleDate = *in.SaleDate
	}
	now := time.Now()
	sale := &entity.Sale{
		ID:            uuid.New().String(),
		ProjectID:     in.ProjectID,
		ClientID:      in.ClientID,
		Amount:        in.Amount.Round(2),
		SaleDate:      saleDate,
		PaymentMethod: in.PaymentMethod,
		Salesperson:   callerID,
		Description:   in.Description,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(sale); err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// List lista ventas con paginación (admin/manager).
func (uc *SaleUseCase) List(limit, offset int) ([]*dto.SaleResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	sales, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	return toSaleResponses(sales), nil
}

// ListMine ventas del caller como salesperson.
func (uc *SaleUseCase) ListMine(callerID string) ([]*dto.SaleResponse, error) {
	sales, err := uc.repo.ListBySalesperson(callerID)
	if err != nil {
		return nil, err
	}
	return toSaleResponses(sales), nil
}

// ListByProject ventas de un proyecto.
func (uc *SaleUseCase) ListByProject(projectID string) ([]*dto.SaleResponse, error) {
	sales, err := uc.repo.ListByProject(projectID)
	if err != nil {
		return nil, err
	}
	return toSaleResponses(sales), nil
}

// ListByClient ventas de un cliente.
func (uc *SaleUseCase) ListByClient(clientID string) ([]*dto.SaleResponse, error) {
	sales, err := uc.repo.ListByClient(clientID)
	if err != nil {
		return nil, err
	}
	return toSaleResponses(sales), nil
}

// ListByDateRange ventas en un rango de fechas inclusivo.
func (uc *SaleUseCase) ListByDateRange(from, to time.Time) ([]*dto.SaleResponse, error) {
	if to.Before(from) {
		return nil, domain.ErrInvalidInput
	}
	sales, err := uc.repo.ListByDateRange(from, to)
	if err != nil {
		return nil, err
	}
	return toSaleResponses(sales), nil
}

// Stats agregados globales de ventas.
func (uc *SaleUseCase) Stats() (*dto.SaleStatsResponse, error) {
	stats, err := uc.repo.Stats()
	if err != nil {
		return nil, err
	}
	return &dto.SaleStatsResponse{
		Count:   stats.Count,
		Total:   stats.Total,
		Average: stats.Average,
		Min:     stats.Min,
		Max:     stats.Max,
	}, nil
}

// Get obtiene una venta; accesible para el salesperson o admin/manager.
func (uc *SaleUseCase) Get(id string, caller identity.Caller) (*dto.SaleResponse, error) {
	sale, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	if !caller.Is(sale.Salesperson) && !caller.Elevated() {
		return nil, domain.ErrForbidden
	}
	return toSaleResponse(sale), nil
}

// Update actualización parcial; permitida al salesperson o admin/manager.
// Las referencias a project/client y el salesperson no cambian.
func (uc *SaleUseCase) Update(id string, caller identity.Caller, in dto.UpdateSaleRequest) (*dto.SaleResponse, error) {
	sale, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	if !caller.Is(sale.Salesperson) && !caller.Elevated() {
		return nil, domain.ErrForbidden
	}
	if in.Amount != nil {
		if in.Amount.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		sale.Amount = in.Amount.Round(2)
	}
	if in.SaleDate != nil {
		sale.SaleDate = *in.SaleDate
	}
	if in.PaymentMethod != nil {
		if !entity.ValidPaymentMethod(*in.PaymentMethod) {
			return nil, domain.ErrInvalidInput
		}
		sale.PaymentMethod = *in.PaymentMethod
	}
	if in.Description != nil {
		sale.Description = *in.Description
	}
	sale.UpdatedAt = time.Now()
	if err := uc.repo.Update(sale); err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// Delete elimina una venta; destructivo, el gate de ruta exige admin.
func (uc *SaleUseCase) Delete(id string) error {
	sale, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if sale == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	return &dto.SaleResponse{
		ID:            s.ID,
		ProjectID:     s.ProjectID,
		ClientID:      s.ClientID,
		Amount:        s.Amount,
		SaleDate:      s.SaleDate,
		PaymentMethod: s.PaymentMethod,
		Salesperson:   s.Salesperson,
		Description:   s.Description,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func toSaleResponses(sales []*entity.Sale) []*dto.SaleResponse {
	out := make([]*dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, toSaleResponse(s))
	}
	return out
}
