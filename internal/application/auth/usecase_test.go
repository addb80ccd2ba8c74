package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AniketRabade/Prjoect-Management-CRM/internal/application/auth"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/application/dto"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/domain"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/domain/entity"
	pkgjwt "github.com/AniketRabade/Prjoect-Management-CRM/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(u *entity.User) error { r.users[u.ID] = u; return nil }
func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	return r.users[id], nil
}
func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (r *fakeUserRepo) List(int, int) ([]*entity.User, error) { return nil, nil }
func (r *fakeUserRepo) Update(u *entity.User) error           { r.users[u.ID] = u; return nil }
func (r *fakeUserRepo) Delete(id string) error                { delete(r.users, id); return nil }

// fakeStorage colaborador de objetos; failUpload simula la caída del upstream.
type fakeStorage struct {
	failUpload bool
	uploaded   []string
}

func (s *fakeStorage) Upload(_ context.Context, folder, filename string, _ []byte, _ string) (string, error) {
	if s.failUpload {
		return "", errors.New("storage caído")
	}
	url := "https://storage.test/" + folder + "/" + filename
	s.uploaded = append(s.uploaded, url)
	return url, nil
}

func (s *fakeStorage) Delete(context.Context, string) error { return nil }

const authTestSecret = "secret-de-pruebas-auth"

func buildAuthUC() (*auth.AuthUseCase, *fakeUserRepo, *fakeStorage) {
	repo := newFakeUserRepo()
	storage := &fakeStorage{}
	uc := auth.NewAuthUseCase(repo, storage, auth.JWTConfig{
		Secret:     authTestSecret,
		ExpMinutes: 60,
		Issuer:     "crm-api-test",
	})
	return uc, repo, storage
}

func registerReq() dto.RegisterRequest {
	return dto.RegisterRequest{
		Name:        "Ana Gómez",
		Email:       "ana@crm.local",
		Password:    "contraseña-larga",
		Phone:       "+57 300 111 2222",
		AccountType: entity.RoleManager,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Round-trip completo: el registro hashea el password (nunca se guarda en
// claro) y el login emite exactamente una credencial que resuelve de vuelta
// a la misma identidad.
func TestRegisterLogin_RoundTrip(t *testing.T) {
	uc, repo, _ := buildAuthUC()

	created, err := uc.Register(context.Background(), registerReq(), nil)
	require.NoError(t, err)

	persisted := repo.users[created.ID]
	assert.NotEqual(t, "contraseña-larga", persisted.PasswordHash,
		"el password nunca se persiste en claro")

	out, err := uc.Login(dto.LoginRequest{Email: "ana@crm.local", Password: "contraseña-larga"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	userID, role, err := pkgjwt.Parse(authTestSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, userID, "la credencial resuelve a la misma identidad")
	assert.Equal(t, entity.RoleManager, role)
}

// El email se normaliza: mayúsculas, espacios y comillas sobrantes del
// multipart no generan identidades distintas.
func TestRegister_EmailNormalizado(t *testing.T) {
	uc, _, _ := buildAuthUC()

	in := registerReq()
	in.Email = `  "ANA@CRM.LOCAL"  `
	created, err := uc.Register(context.Background(), in, nil)
	require.NoError(t, err)
	assert.Equal(t, "ana@crm.local", created.Email)

	_, err = uc.Login(dto.LoginRequest{Email: "Ana@CRM.Local", Password: "contraseña-larga"})
	assert.NoError(t, err, "el login normaliza igual que el registro")
}

// Email duplicado → conflicto, sin pisar al usuario existente.
func TestRegister_EmailDuplicado(t *testing.T) {
	uc, repo, _ := buildAuthUC()

	_, err := uc.Register(context.Background(), registerReq(), nil)
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), registerReq(), nil)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	assert.Len(t, repo.users, 1)
}

// La foto de perfil pasa por el colaborador de objetos y solo se persiste
// la URL; si el upstream falla, el registro falla con UpstreamFailure y no
// se crea el usuario.
func TestRegister_FotoDePerfil(t *testing.T) {
	uc, repo, storage := buildAuthUC()

	picture := &auth.ProfilePicture{Filename: "ana.png", ContentType: "image/png", Content: []byte{1, 2, 3}}
	created, err := uc.Register(context.Background(), registerReq(), picture)
	require.NoError(t, err)
	assert.Contains(t, created.ProfilePicture, "user-profiles/ana.png")
	assert.Len(t, storage.uploaded, 1)

	storage.failUpload = true
	in := registerReq()
	in.Email = "otro@crm.local"
	_, err = uc.Register(context.Background(), in, picture)
	assert.ErrorIs(t, err, domain.ErrUpstream)
	assert.Len(t, repo.users, 1, "el fallo de upload no deja usuarios a medias")
}

// Credenciales incorrectas: email inexistente y password errado devuelven
// el mismo Unauthorized, sin filtrar cuál de los dos falló.
func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc, _, _ := buildAuthUC()

	_, err := uc.Register(context.Background(), registerReq(), nil)
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "nadie@crm.local", Password: "contraseña-larga"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{Email: "ana@crm.local", Password: "otra-cosa"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestRegister_Validaciones(t *testing.T) {
	uc, _, _ := buildAuthUC()

	in := registerReq()
	in.Password = "corta"
	_, err := uc.Register(context.Background(), in, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "password demasiado corto")

	in = registerReq()
	in.AccountType = "superuser"
	_, err = uc.Register(context.Background(), in, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "rol fuera del enum")

	in = registerReq()
	in.Phone = ""
	_, err = uc.Register(context.Background(), in, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "teléfono requerido")
}
