package crm_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AniketRabade/Prjoect-Management-CRM/internal/application/crm"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/application/dto"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/application/identity"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/domain"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/domain/entity"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeSaleRepo struct {
	sales map[string]*entity.Sale
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{sales: make(map[string]*entity.Sale)}
}

func (r *fakeSaleRepo) Create(s *entity.Sale) error { r.sales[s.ID] = s; return nil }
func (r *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) {
	s, ok := r.sales[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}
func (r *fakeSaleRepo) List(int, int) ([]*entity.Sale, error)                       { return nil, nil }
func (r *fakeSaleRepo) ListBySalesperson(string) ([]*entity.Sale, error)            { return nil, nil }
func (r *fakeSaleRepo) ListByProject(string) ([]*entity.Sale, error)                { return nil, nil }
func (r *fakeSaleRepo) ListByClient(string) ([]*entity.Sale, error)                 { return nil, nil }
func (r *fakeSaleRepo) ListByDateRange(time.Time, time.Time) ([]*entity.Sale, error) { return nil, nil }
func (r *fakeSaleRepo) Stats() (*repository.SaleStats, error)                       { return nil, nil }
func (r *fakeSaleRepo) Update(s *entity.Sale) error                                 { r.sales[s.ID] = s; return nil }
func (r *fakeSaleRepo) Delete(id string) error                                      { delete(r.sales, id); return nil }

type fakeProjectRepo struct {
	projects map[string]*entity.Project
}

func newFakeProjectRepo(projects ...*entity.Project) *fakeProjectRepo {
	r := &fakeProjectRepo{projects: make(map[string]*entity.Project)}
	for _, p := range projects {
		r.projects[p.ID] = p
	}
	return r
}

func (r *fakeProjectRepo) Create(p *entity.Project) error { r.projects[p.ID] = p; return nil }
func (r *fakeProjectRepo) GetByID(id string) (*entity.Project, error) {
	p, ok := r.projects[id]
	if !ok {
		return nil, nil
	}
	return p, nil
}
func (r *fakeProjectRepo) List(int, int) ([]*entity.Project, error)          { return nil, nil }
func (r *fakeProjectRepo) ListByClient(string) ([]*entity.Project, error)    { return nil, nil }
func (r *fakeProjectRepo) Update(p *entity.Project) error                    { r.projects[p.ID] = p; return nil }
func (r *fakeProjectRepo) Delete(id string) error                            { delete(r.projects, id); return nil }

func buildSaleUC() (*crm.SaleUseCase, *fakeSaleRepo) {
	saleRepo := newFakeSaleRepo()
	projectRepo := newFakeProjectRepo(&entity.Project{ID: "project-1", Name: "Sitio web", ClientID: "client-1"})
	clientRepo := newFakeClientRepo()
	_ = clientRepo.Create(&entity.Client{ID: "client-1", Name: "ACME"})
	return crm.NewSaleUseCase(saleRepo, projectRepo, clientRepo), saleRepo
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Un monto de 19.999 se persiste y devuelve como 20.00: el redondeo a 2
// decimales ocurre antes de escribir, así las relecturas son idempotentes.
func TestCreateSale_RedondeaADosDecimales(t *testing.T) {
	uc, repo := buildSaleUC()

	sale, err := uc.Create("user-1", dto.CreateSaleRequest{
		ProjectID:     "project-1",
		ClientID:      "client-1",
		Amount:        mustDecimal(t, "19.999"),
		PaymentMethod: entity.PaymentCash,
	})
	require.NoError(t, err)

	assert.Equal(t, "20", sale.Amount.String(), "19.999 → 20.00")

	persisted := repo.sales[sale.ID]
	assert.True(t, persisted.Amount.Equal(mustDecimal(t, "20.00")),
		"el monto persistido ya está redondeado")
	assert.Equal(t, "user-1", persisted.Salesperson,
		"el salesperson siempre es el caller")
}

// Referencias obligatorias: proyecto o cliente inexistentes → NotFound.
func TestCreateSale_ReferenciasDebenExistir(t *testing.T) {
	uc, _ := buildSaleUC()

	_, err := uc.Create("user-1", dto.CreateSaleRequest{
		ProjectID: "project-999", ClientID: "client-1",
		Amount: mustDecimal(t, "10"), PaymentMethod: entity.PaymentCash,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Create("user-1", dto.CreateSaleRequest{
		ProjectID: "project-1", ClientID: "client-999",
		Amount: mustDecimal(t, "10"), PaymentMethod: entity.PaymentCash,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Montos negativos y métodos de pago fuera del enum se rechazan.
func TestCreateSale_Validaciones(t *testing.T) {
	uc, _ := buildSaleUC()

	_, err := uc.Create("user-1", dto.CreateSaleRequest{
		ProjectID: "project-1", ClientID: "client-1",
		Amount: mustDecimal(t, "-5"), PaymentMethod: entity.PaymentCash,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create("user-1", dto.CreateSaleRequest{
		ProjectID: "project-1", ClientID: "client-1",
		Amount: mustDecimal(t, "5"), PaymentMethod: "Bitcoin",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Ownership de lectura/actualización: el salesperson y admin/manager pasan,
// otro employee no.
func TestSale_Ownership(t *testing.T) {
	uc, _ := buildSaleUC()

	sale, err := uc.Create("user-1", dto.CreateSaleRequest{
		ProjectID: "project-1", ClientID: "client-1",
		Amount: mustDecimal(t, "100"), PaymentMethod: entity.PaymentCheck,
	})
	require.NoError(t, err)

	_, err = uc.Get(sale.ID, identity.Caller{ID: "user-1", Role: entity.RoleEmployee})
	assert.NoError(t, err, "el salesperson ve su propia venta")

	_, err = uc.Get(sale.ID, identity.Caller{ID: "user-2", Role: entity.RoleEmployee})
	assert.ErrorIs(t, err, domain.ErrForbidden, "otro employee no ve la venta")

	_, err = uc.Get(sale.ID, identity.Caller{ID: "user-2", Role: entity.RoleManager})
	assert.NoError(t, err, "manager ve cualquier venta")
}

// Las referencias a project/client no cambian en un update parcial.
func TestUpdateSale_ReferenciasInmutables(t *testing.T) {
	uc, repo := buildSaleUC()

	sale, err := uc.Create("user-1", dto.CreateSaleRequest{
		ProjectID: "project-1", ClientID: "client-1",
		Amount: mustDecimal(t, "100"), PaymentMethod: entity.PaymentCash,
	})
	require.NoError(t, err)

	newAmount := mustDecimal(t, "250.505")
	updated, err := uc.Update(sale.ID, identity.Caller{ID: "user-1", Role: entity.RoleEmployee},
		dto.UpdateSaleRequest{Amount: &newAmount})
	require.NoError(t, err)

	assert.True(t, updated.Amount.Equal(mustDecimal(t, "250.51")))
	persisted := repo.sales[sale.ID]
	assert.Equal(t, "project-1", persisted.ProjectID)
	assert.Equal(t, "client-1", persisted.ClientID)
	assert.Equal(t, "user-1", persisted.Salesperson)
}
