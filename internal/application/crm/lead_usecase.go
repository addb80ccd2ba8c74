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

// LeadUseCase gestión del pipeline de leads.
type LeadUseCase struct {
	repo     repository.LeadRepository
	userRepo repository.UserRepository
}

// NewLeadUseCase construye el caso de uso.
func NewLeadUseCase(repo repository.LeadRepository, userRepo repository.UserRepository) *LeadUseCase {
	return &LeadUseCase{repo: repo, userRepo: userRepo}
}

// Create crea un lead; si viene asignado, el usuario asignado debe existir.
func (uc *LeadUseCase) Create(callerID string, in dto.CreateLeadRequest) (*dto.LeadResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	source := in.Source
	if source == "" {
		source = entity.SourceWebsite
	}
	if !entity.ValidLeadSource(source) {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.LeadNew
	}
	if !entity.ValidLeadStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	if in.PotentialValue.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.AssignedTo != "" {
		assignee, err := uc.userRepo.GetByID(in.AssignedTo)
		if err != nil {
			return nil, err
		}
		if assignee == nil {
			return nil, domain.ErrUserNotFound
		}
	}
	now := time.Now()
	lead := &entity.Lead{
		ID:               uuid.New().String(),
		Name:             in.Name,
		Company:          in.Company,
		Email:            in.Email,
		Phone:            in.Phone,
		Source:           source,
		Status:           status,
		PotentialValue:   in.PotentialValue.Round(2),
		Notes:            in.Notes,
		AssignedTo:       in.AssignedTo,
		CreatedBy:        callerID,
		LastContactDate:  in.LastContactDate,
		NextFollowUpDate: in.NextFollowUpDate,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.Create(lead); err != nil {
		return nil, err
	}
	return ToLeadResponse(lead), nil
}

// List lista leads con paginación (admin/manager).
func (uc *LeadUseCase) List(limit, offset int) ([]*dto.LeadResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	leads, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	return toLeadResponses(leads), nil
}

// ListMine leads asignados al caller.
func (uc *LeadUseCase) ListMine(callerID string) ([]*dto.LeadResponse, error) {
	leads, err := uc.repo.ListByAssignee(callerID)
	if err != nil {
		return nil, err
	}
	return toLeadResponses(leads), nil
}

// ListByStatus leads filtrados por estado del pipeline.
func (uc *LeadUseCase) ListByStatus(status string) ([]*dto.LeadResponse, error) {
	if !entity.ValidLeadStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	leads, err := uc.repo.ListByStatus(status)
	if err != nil {
		return nil, err
	}
	return toLeadResponses(leads), nil
}

// ListBySource leads filtrados por fuente.
func (uc *LeadUseCase) ListBySource(source string) ([]*dto.LeadResponse, error) {
	if !entity.ValidLeadSource(source) {
		return nil, domain.ErrInvalidInput
	}
	leads, err := uc.repo.ListBySource(source)
	if err != nil {
		return nil, err
	}
	return toLeadResponses(leads), nil
}

// ListRecent últimos n leads creados.
func (uc *LeadUseCase) ListRecent(limit int) ([]*dto.LeadResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	leads, err := uc.repo.ListRecent(limit)
	if err != nil {
		return nil, err
	}
	return toLeadResponses(leads), nil
}

// Stats agregados del pipeline.
func (uc *LeadUseCase) Stats() (*dto.LeadStatsResponse, error) {
	stats, err := uc.repo.Stats()
	if err != nil {
		return nil, err
	}
	return &dto.LeadStatsResponse{
		Total:          stats.Total,
		Converted:      stats.Converted,
		PotentialValue: stats.PotentialValue,
		ByStatus:       stats.ByStatus,
	}, nil
}

// Get obtiene un lead; accesible para el asignado, el creador o admin/manager.
func (uc *LeadUseCase) Get(id string, caller identity.Caller) (*dto.LeadResponse, error) {
	lead, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, domain.ErrNotFound
	}
	if !caller.Is(lead.AssignedTo) && !caller.Is(lead.CreatedBy) && !caller.Elevated() {
		return nil, domain.ErrForbidden
	}
	return ToLeadResponse(lead), nil
}

// Update actualización parcial; permitida al creador o admin/manager.
// createdBy y client no son modificables por esta vía.
func (uc *LeadUseCase) Update(id string, caller identity.Caller, in dto.UpdateLeadRequest) (*dto.LeadResponse, error) {
	lead, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, domain.ErrNotFound
	}
	if !caller.Is(lead.CreatedBy) && !caller.Elevated() {
		return nil, domain.ErrForbidden
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		lead.Name = *in.Name
	}
	if in.Company != nil {
		lead.Company = *in.Company
	}
	if in.Email != nil {
		lead.Email = *in.Email
	}
	if in.Phone != nil {
		lead.Phone = *in.Phone
	}
	if in.Source != nil {
		if !entity.ValidLeadSource(*in.Source) {
			return nil, domain.ErrInvalidInput
		}
		lead.Source = *in.Source
	}
	if in.Status != nil {
		if !entity.ValidLeadStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		lead.Status = *in.Status
	}
	if in.PotentialValue != nil {
		if in.PotentialValue.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		lead.PotentialValue = in.PotentialValue.Round(2)
	}
	if in.Notes != nil {
		lead.Notes = *in.Notes
	}
	if in.AssignedTo != nil {
		lead.AssignedTo = *in.AssignedTo
	}
	if in.LastContactDate != nil {
		lead.LastContactDate = in.LastContactDate
	}
	if in.NextFollowUpDate != nil {
		lead.NextFollowUpDate = in.NextFollowUpDate
	}
	lead.UpdatedAt = time.Now()
	if err := uc.repo.Update(lead); err != nil {
		return nil, err
	}
	return ToLeadResponse(lead), nil
}

// UpdateStatus cambio de estado puntual en el pipeline.
func (uc *LeadUseCase) UpdateStatus(id string, caller identity.Caller, status string) (*dto.LeadResponse, error) {
	st := status
	return uc.Update(id, caller, dto.UpdateLeadRequest{Status: &st})
}

// Assign reasigna el lead a otro usuario (admin/manager; gate en la ruta).
func (uc *LeadUseCase) Assign(id, assigneeID string) (*dto.LeadResponse, error) {
	lead, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, domain.ErrNotFound
	}
	assignee, err := uc.userRepo.GetByID(assigneeID)
	if err != nil {
		return nil, err
	}
	if assignee == nil {
		return nil, domain.ErrUserNotFound
	}
	lead.AssignedTo = assigneeID
	lead.UpdatedAt = time.Now()
	if err := uc.repo.Update(lead); err != nil {
		return nil, err
	}
	return ToLeadResponse(lead), nil
}

// Delete elimina un lead; bypass estrecho: solo el creador o admin.
func (uc *LeadUseCase) Delete(id string, caller identity.Caller) error {
	lead, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if lead == nil {
		return domain.ErrNotFound
	}
	if !caller.Is(lead.CreatedBy) && !caller.IsAdmin() {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(id)
}

// ToLeadResponse mapea la entidad a su representación pública.
func ToLeadResponse(l *entity.Lead) *dto.LeadResponse {
	return &dto.LeadResponse{
		ID:               l.ID,
		Name:             l.Name,
		Company:          l.Company,
		Email:            l.Email,
		Phone:            l.Phone,
		Source:           l.Source,
		Status:           l.Status,
		PotentialValue:   l.PotentialValue,
		Notes:            l.Notes,
		ClientID:         l.ClientID,
		AssignedTo:       l.AssignedTo,
		CreatedBy:        l.CreatedBy,
		IsHot:            l.IsHot(),
		LastContactDate:  l.LastContactDate,
		NextFollowUpDate: l.NextFollowUpDate,
		ConversionDate:   l.ConversionDate,
		CreatedAt:        l.CreatedAt,
		UpdatedAt:        l.UpdatedAt,
	}
}

func toLeadResponses(leads []*entity.Lead) []*dto.LeadResponse {
	out := make([]*dto.LeadResponse, 0, len(leads))
	for _, l := range leads {
		out = append(out, ToLeadResponse(l))
	}
	return out
}
