package crm_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AniketRabade/Prjoect-Management-CRM/internal/application/crm"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/application/identity"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/domain"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/domain/entity"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes: lead repo con escritura condicional + runner transaccional
// ──────────────────────────────────────────────────────────────────────────────

type fakeLeadRepo struct {
	leads map[string]*entity.Lead
}

func newFakeLeadRepo(leads ...*entity.Lead) *fakeLeadRepo {
	r := &fakeLeadRepo{leads: make(map[string]*entity.Lead)}
	for _, l := range leads {
		r.leads[l.ID] = l
	}
	return r
}

func (r *fakeLeadRepo) Create(l *entity.Lead) error { r.leads[l.ID] = l; return nil }
func (r *fakeLeadRepo) GetByID(id string) (*entity.Lead, error) {
	l, ok := r.leads[id]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}
func (r *fakeLeadRepo) List(int, int) ([]*entity.Lead, error)          { return nil, nil }
func (r *fakeLeadRepo) ListByAssignee(string) ([]*entity.Lead, error)  { return nil, nil }
func (r *fakeLeadRepo) ListByStatus(string) ([]*entity.Lead, error)    { return nil, nil }
func (r *fakeLeadRepo) ListBySource(string) ([]*entity.Lead, error)    { return nil, nil }
func (r *fakeLeadRepo) ListRecent(int) ([]*entity.Lead, error)         { return nil, nil }
func (r *fakeLeadRepo) Stats() (*repository.LeadStats, error)          { return nil, nil }
func (r *fakeLeadRepo) Update(l *entity.Lead) error                    { r.leads[l.ID] = l; return nil }
func (r *fakeLeadRepo) Delete(id string) error                         { delete(r.leads, id); return nil }

// MarkConverted replica la semántica condicional del UPDATE ... WHERE
// client_id IS NULL: solo convierte si el lead sigue sin cliente.
func (r *fakeLeadRepo) MarkConverted(leadID, clientID, status string, when time.Time) (bool, error) {
	l, ok := r.leads[leadID]
	if !ok || l.ClientID != "" {
		return false, nil
	}
	l.ClientID = clientID
	l.Status = status
	l.ConversionDate = &when
	l.UpdatedAt = when
	return true, nil
}

type fakeClientRepo struct {
	clients map[string]*entity.Client
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: make(map[string]*entity.Client)}
}

func (r *fakeClientRepo) Create(c *entity.Client) error { r.clients[c.ID] = c; return nil }
func (r *fakeClientRepo) GetByID(id string) (*entity.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}
func (r *fakeClientRepo) List(int, int) ([]*entity.Client, error) { return nil, nil }
func (r *fakeClientRepo) Update(c *entity.Client) error           { r.clients[c.ID] = c; return nil }
func (r *fakeClientRepo) Delete(id string) error                  { delete(r.clients, id); return nil }

// fakeTxRunner simula la transacción: si el callback falla, restaura el
// estado previo del repo de clientes (rollback).
type fakeTxRunner struct {
	leadRepo   *fakeLeadRepo
	clientRepo *fakeClientRepo
}

func (r *fakeTxRunner) RunConversion(_ context.Context, fn func(repository.LeadRepository, repository.ClientRepository) error) error {
	snapshot := make(map[string]*entity.Client, len(r.clientRepo.clients))
	for k, v := range r.clientRepo.clients {
		snapshot[k] = v
	}
	if err := fn(r.leadRepo, r.clientRepo); err != nil {
		r.clientRepo.clients = snapshot
		return err
	}
	return nil
}

func freshLead(createdBy string) *entity.Lead {
	return &entity.Lead{
		ID:        "lead-1",
		Name:      "ACME Corp",
		Email:     "contacto@acme.test",
		Phone:     "+57 300 000 0000",
		Source:    entity.SourceReferral,
		Status:    entity.LeadQualified,
		CreatedBy: createdBy,
	}
}

func buildConvertUC(lead *entity.Lead) (*crm.ConvertLeadUseCase, *fakeLeadRepo, *fakeClientRepo) {
	leadRepo := newFakeLeadRepo(lead)
	clientRepo := newFakeClientRepo()
	runner := &fakeTxRunner{leadRepo: leadRepo, clientRepo: clientRepo}
	return crm.NewConvertLeadUseCase(runner, leadRepo), leadRepo, clientRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Conversión feliz: crea el cliente copiando los datos de contacto, cierra
// el lead como Closed Won y fija conversionDate.
func TestConvert_CreaClienteYCierraLead(t *testing.T) {
	uc, leadRepo, clientRepo := buildConvertUC(freshLead("user-1"))

	out, err := uc.Convert(context.Background(), "lead-1", identity.Caller{ID: "user-1", Role: entity.RoleEmployee})
	require.NoError(t, err)

	assert.Equal(t, "ACME Corp", out.Client.Name)
	assert.Equal(t, "contacto@acme.test", out.Client.Email)
	assert.Contains(t, out.Client.Description, "Converted from lead")

	assert.Equal(t, entity.LeadClosedWon, out.Lead.Status)
	assert.Equal(t, out.Client.ID, out.Lead.ClientID)
	assert.NotNil(t, out.Lead.ConversionDate)

	// El estado persistido coincide con la respuesta.
	persisted, _ := leadRepo.GetByID("lead-1")
	assert.Equal(t, out.Client.ID, persisted.ClientID)
	assert.Len(t, clientRepo.clients, 1)
}

// Convertir dos veces: la segunda llamada es conflicto y el cliente de la
// primera conversión nunca se duplica.
func TestConvert_DobleConversion_Conflicto(t *testing.T) {
	uc, _, clientRepo := buildConvertUC(freshLead("user-1"))
	caller := identity.Caller{ID: "user-1", Role: entity.RoleEmployee}

	_, err := uc.Convert(context.Background(), "lead-1", caller)
	require.NoError(t, err)

	_, err = uc.Convert(context.Background(), "lead-1", caller)
	assert.ErrorIs(t, err, domain.ErrAlreadyConverted)
	assert.Len(t, clientRepo.clients, 1, "la segunda conversión no debe crear otro cliente")
}

// La carrera perdida dentro de la transacción (0 filas en la escritura
// condicional) revierte la creación del cliente.
func TestConvert_CarreraPerdida_RollbackDelCliente(t *testing.T) {
	lead := freshLead("user-1")
	leadRepo := newFakeLeadRepo(lead)
	clientRepo := newFakeClientRepo()
	runner := &fakeTxRunner{leadRepo: leadRepo, clientRepo: clientRepo}
	uc := crm.NewConvertLeadUseCase(runner, leadRepo)

	// Otro caller convierte entre el read y la tx.
	_, err := leadRepo.MarkConverted("lead-1", "client-x", entity.LeadClosedWon, time.Now())
	require.NoError(t, err)

	_, err = uc.Convert(context.Background(), "lead-1", identity.Caller{ID: "user-1", Role: entity.RoleAdmin})
	assert.ErrorIs(t, err, domain.ErrAlreadyConverted)
	assert.Empty(t, clientRepo.clients, "el rollback descarta el cliente huérfano")
}

// Lead inexistente → NotFound.
func TestConvert_LeadInexistente(t *testing.T) {
	uc, _, _ := buildConvertUC(freshLead("user-1"))

	_, err := uc.Convert(context.Background(), "lead-999", identity.Caller{ID: "user-1", Role: entity.RoleAdmin})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Ownership: ni creador ni admin/manager → Forbidden; manager pasa.
func TestConvert_Ownership(t *testing.T) {
	uc, _, _ := buildConvertUC(freshLead("user-1"))

	_, err := uc.Convert(context.Background(), "lead-1", identity.Caller{ID: "user-2", Role: entity.RoleEmployee})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.Convert(context.Background(), "lead-1", identity.Caller{ID: "user-2", Role: entity.RoleManager})
	assert.NoError(t, err, "manager puede convertir leads ajenos")
}
