package crm

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/AniketRabade/Prjoect-Management-CRM/internal/application/dto"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/application/identity"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/application/usecase"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/domain"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/domain/entity"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/domain/repository"
)

// ConvertLeadUseCase la conversión one-way de un lead en cliente:
// crea el Client con los datos de contacto del lead, marca el lead como
// Closed Won y fija conversionDate, todo dentro de una transacción.
type ConvertLeadUseCase struct {
	txRunner ConversionTxRunner
	leadRepo repository.LeadRepository
}

// NewConvertLeadUseCase construye el caso de uso.
func NewConvertLeadUseCase(txRunner ConversionTxRunner, leadRepo repository.LeadRepository) *ConvertLeadUseCase {
	return &ConvertLeadUseCase{txRunner: txRunner, leadRepo: leadRepo}
}

// Convert ejecuta la conversión.
//
// Precondiciones: el lead existe (NotFound), no está convertido
// (ErrAlreadyConverted) y el caller es el creador, admin o manager
// (Forbidden). La escritura del lead es condicional (client_id IS NULL),
// así dos conversiones concurrentes no pueden crear dos clientes: la
// segunda ve 0 filas afectadas y la transacción entera se revierte.
func (uc *ConvertLeadUseCase) Convert(ctx context.Context, leadID string, caller identity.Caller) (*dto.ConvertLeadResponse, error) {
	lead, err := uc.leadRepo.GetByID(leadID)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, domain.ErrNotFound
	}
	if lead.Converted() {
		return nil, domain.ErrAlreadyConverted
	}
	if !caller.Is(lead.CreatedBy) && !caller.Elevated() {
		return nil, domain.ErrForbidden
	}

	now := time.Now()
	client := &entity.Client{
		ID:          uuid.New().String(),
		Name:        lead.Name,
		Email:       lead.Email,
		Phone:       lead.Phone,
		Description: fmt.Sprintf("Converted from lead on %s", now.Format("02/01/2006")),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = uc.txRunner.RunConversion(ctx, func(
		leadRepo repository.LeadRepository,
		clientRepo repository.ClientRepository,
	) error {
		if err := clientRepo.Create(client); err != nil {
			return err
		}
		converted, err := leadRepo.MarkConverted(lead.ID, client.ID, entity.LeadClosedWon, now)
		if err != nil {
			return err
		}
		if !converted {
			// Otro caller ganó la carrera; el rollback descarta el cliente.
			return domain.ErrAlreadyConverted
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	lead.ClientID = client.ID
	lead.Status = entity.LeadClosedWon
	lead.ConversionDate = &now
	lead.UpdatedAt = now

	return &dto.ConvertLeadResponse{
		Lead:   *ToLeadResponse(lead),
		Client: *usecase.ToClientResponse(client),
	}, nil
}
