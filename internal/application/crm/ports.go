package crm

import (
	"context"

	"github.com/AniketRabade/Prjoect-Management-CRM/internal/domain/repository"
)

// ConversionTxRunner ejecuta la conversión lead→cliente dentro de una única
// transacción: el cliente nuevo y la marca de conversión del lead se
// persisten juntos o no se persiste nada (sin clientes huérfanos).
type ConversionTxRunner interface {
	RunConversion(ctx context.Context, fn func(
		leadRepo repository.LeadRepository,
		clientRepo repository.ClientRepository,
	) error) error
}
