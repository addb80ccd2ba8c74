package usecase

import (
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/domain"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/domain/entity"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/domain/repository"
)

// RelationRegistry resuelve la referencia etiquetada de una tarea contra la
// colección que el kind indica: un lookup por tag en vez de un nombre de
// colección dinámico. "Other" no se resuelve contra ninguna colección.
type RelationRegistry struct {
	lookups map[entity.RelatedKind]func(id string) (bool, error)
}

// NewRelationRegistry registra un lookup por cada kind resoluble.
func NewRelationRegistry(
	projects repository.ProjectRepository,
	leads repository.LeadRepository,
	clients repository.ClientRepository,
	sales repository.SaleRepository,
) *RelationRegistry {
	return &RelationRegistry{
		lookups: map[entity.RelatedKind]func(id string) (bool, error){
			entity.RelatedProject: func(id string) (bool, error) {
				p, err := projects.GetByID(id)
				return p != nil, err
			},
			entity.RelatedLead: func(id string) (bool, error) {
				l, err := leads.GetByID(id)
				return l != nil, err
			},
			entity.RelatedClient: func(id string) (bool, error) {
				c, err := clients.GetByID(id)
				return c != nil, err
			},
			entity.RelatedSale: func(id string) (bool, error) {
				s, err := sales.GetByID(id)
				return s != nil, err
			},
		},
	}
}

// Resolve valida que la referencia apunte a una entidad existente.
// Kind desconocido => ErrInvalidInput; entidad inexistente => ErrNotFound.
func (r *RelationRegistry) Resolve(ref entity.RelatedRef) error {
	if !ref.Kind.Valid() {
		return domain.ErrInvalidInput
	}
	if ref.Kind == entity.RelatedOther {
		return nil
	}
	lookup, ok := r.lookups[ref.Kind]
	if !ok {
		return domain.ErrInvalidInput
	}
	exists, err := lookup(ref.ID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}
	return nil
}
