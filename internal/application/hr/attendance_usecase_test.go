package hr

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AniketRabade/Prjoect-Management-CRM/internal/application/dto"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/application/identity"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/domain"
	attpolicy "github.com/AniketRabade/Prjoect-Management-CRM/internal/domain/attendance"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/domain/entity"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake del repositorio: replica la restricción única (usuario, día)
// ──────────────────────────────────────────────────────────────────────────────

type fakeAttendanceRepo struct {
	records map[string]*entity.Attendance // por id
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]*entity.Attendance)}
}

func (r *fakeAttendanceRepo) Create(att *entity.Attendance) error {
	for _, existing := range r.records {
		if existing.UserID == att.UserID && existing.Day.Equal(att.Day) {
			return domain.ErrDuplicate
		}
	}
	cp := *att
	r.records[att.ID] = &cp
	return nil
}

func (r *fakeAttendanceRepo) GetByID(id string) (*entity.Attendance, error) {
	att, ok := r.records[id]
	if !ok {
		return nil, nil
	}
	cp := *att
	return &cp, nil
}

func (r *fakeAttendanceRepo) GetOpenForDay(userID string, day time.Time) (*entity.Attendance, error) {
	for _, att := range r.records {
		if att.UserID == userID && att.Day.Equal(day) && att.CheckOut == nil {
			cp := *att
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeAttendanceRepo) List(repository.AttendanceFilter) ([]*entity.Attendance, error) {
	return nil, nil
}

func (r *fakeAttendanceRepo) ListByUserMonth(string, int, time.Month) ([]*entity.Attendance, error) {
	return nil, nil
}

func (r *fakeAttendanceRepo) ListByUser(string, int) ([]*entity.Attendance, error) {
	return nil, nil
}

func (r *fakeAttendanceRepo) StatsByStatus(time.Time, time.Time) ([]repository.AttendanceStatusCount, error) {
	return nil, nil
}

func (r *fakeAttendanceRepo) Update(att *entity.Attendance) error {
	cp := *att
	r.records[att.ID] = &cp
	return nil
}

func (r *fakeAttendanceRepo) BulkOverride(day time.Time, userIDs []string, status, notes string) (int64, error) {
	var n int64
	for _, att := range r.records {
		for _, uid := range userIDs {
			if att.UserID == uid && att.Day.Equal(day) {
				att.Override(status, notes)
				n++
			}
		}
	}
	return n, nil
}

func (r *fakeAttendanceRepo) Delete(id string) error {
	delete(r.records, id)
	return nil
}

// newTestUseCase arma el caso de uso con el reloj congelado en `now`.
func newTestUseCase(repo repository.AttendanceRepository, now time.Time) *AttendanceUseCase {
	uc := NewAttendanceUseCase(repo, attpolicy.Default())
	uc.nowFn = func() time.Time { return now }
	return uc
}

func at(hour, min, sec int) time.Time {
	return time.Date(2026, time.March, 9, hour, min, sec, 0, time.Local)
}

// ──────────────────────────────────────────────────────────────────────────────
// Check-in
// ──────────────────────────────────────────────────────────────────────────────

// Entrada a las 09:45: dentro de la gracia, queda present con 15 minutos
// registrados (estado y minutos son señales independientes).
func TestCheckIn_DentroDeGracia(t *testing.T) {
	uc := newTestUseCase(newFakeAttendanceRepo(), at(9, 45, 0))

	att, err := uc.CheckIn("user-1", CheckInMeta{})
	require.NoError(t, err)

	assert.Equal(t, entity.AttendancePresent, att.Status)
	assert.Equal(t, 15, att.LateMinutes)
	assert.True(t, att.AutoStatus, "el registro nace en modo automático")
}

// Entrada a las 10:05: 35 minutos tarde, fuera de la gracia → late.
func TestCheckIn_FueraDeGracia(t *testing.T) {
	uc := newTestUseCase(newFakeAttendanceRepo(), at(10, 5, 0))

	att, err := uc.CheckIn("user-1", CheckInMeta{})
	require.NoError(t, err)

	assert.Equal(t, entity.AttendanceLate, att.Status)
	assert.Equal(t, 35, att.LateMinutes)
}

// Segundo check-in del mismo día → conflicto, sin importar la hora.
func TestCheckIn_DuplicadoMismoDia_Conflicto(t *testing.T) {
	repo := newFakeAttendanceRepo()

	uc := newTestUseCase(repo, at(9, 0, 0))
	_, err := uc.CheckIn("user-1", CheckInMeta{})
	require.NoError(t, err)

	uc = newTestUseCase(repo, at(14, 0, 0))
	_, err = uc.CheckIn("user-1", CheckInMeta{})
	assert.ErrorIs(t, err, domain.ErrAlreadyCheckedIn)
}

// Usuarios distintos el mismo día no chocan.
func TestCheckIn_UsuariosDistintos_NoChocan(t *testing.T) {
	repo := newFakeAttendanceRepo()
	uc := newTestUseCase(repo, at(9, 0, 0))

	_, err := uc.CheckIn("user-1", CheckInMeta{})
	require.NoError(t, err)
	_, err = uc.CheckIn("user-2", CheckInMeta{})
	assert.NoError(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Check-out
// ──────────────────────────────────────────────────────────────────────────────

// Sin check-in previo no hay nada que cerrar.
func TestCheckOut_SinCheckIn(t *testing.T) {
	uc := newTestUseCase(newFakeAttendanceRepo(), at(17, 0, 0))

	_, err := uc.CheckOut("user-1")
	assert.ErrorIs(t, err, domain.ErrNoActiveCheckIn)
}

// 3 horas trabajadas → media jornada.
func TestCheckOut_TresHoras_MediaJornada(t *testing.T) {
	repo := newFakeAttendanceRepo()

	uc := newTestUseCase(repo, at(9, 0, 0))
	_, err := uc.CheckIn("user-1", CheckInMeta{})
	require.NoError(t, err)

	uc = newTestUseCase(repo, at(12, 0, 0))
	att, err := uc.CheckOut("user-1")
	require.NoError(t, err)

	assert.Equal(t, entity.AttendanceHalfDay, att.Status)
	require.NotNil(t, att.CheckOut)
}

// 6.5 horas trabajadas → jornada completa, el estado present no se toca.
func TestCheckOut_JornadaCompleta_EstadoIntacto(t *testing.T) {
	repo := newFakeAttendanceRepo()

	uc := newTestUseCase(repo, at(9, 0, 0))
	_, err := uc.CheckIn("user-1", CheckInMeta{})
	require.NoError(t, err)

	uc = newTestUseCase(repo, at(15, 30, 0))
	att, err := uc.CheckOut("user-1")
	require.NoError(t, err)

	assert.Equal(t, entity.AttendancePresent, att.Status)
}

// Segundo check-out del mismo día: el registro ya está cerrado.
func TestCheckOut_Doble_Falla(t *testing.T) {
	repo := newFakeAttendanceRepo()

	uc := newTestUseCase(repo, at(9, 0, 0))
	_, err := uc.CheckIn("user-1", CheckInMeta{})
	require.NoError(t, err)

	uc = newTestUseCase(repo, at(17, 0, 0))
	_, err = uc.CheckOut("user-1")
	require.NoError(t, err)

	_, err = uc.CheckOut("user-1")
	assert.ErrorIs(t, err, domain.ErrNoActiveCheckIn)
}

// ──────────────────────────────────────────────────────────────────────────────
// Latch manual
// ──────────────────────────────────────────────────────────────────────────────

// Un override manual es pegajoso: el check-out posterior NO recalcula el
// estado aunque las horas trabajadas pidieran media jornada.
func TestOverride_SobreviveAlCheckOut(t *testing.T) {
	repo := newFakeAttendanceRepo()

	uc := newTestUseCase(repo, at(9, 0, 0))
	created, err := uc.CheckIn("user-1", CheckInMeta{})
	require.NoError(t, err)

	_, err = uc.OverrideStatus(created.ID, dto.UpdateAttendanceStatusRequest{
		Status: entity.AttendanceOnLeave,
		Notes:  "permiso médico",
	})
	require.NoError(t, err)

	// Check-out a las 3 horas: en modo automático sería half-day.
	uc = newTestUseCase(repo, at(12, 0, 0))
	att, err := uc.CheckOut("user-1")
	require.NoError(t, err)

	assert.Equal(t, entity.AttendanceOnLeave, att.Status,
		"el estado manual sobrevive al check-out")
	assert.False(t, att.AutoStatus, "el registro queda latcheado a manual")
}

// El override rechaza estados fuera del enum.
func TestOverride_EstadoInvalido(t *testing.T) {
	uc := newTestUseCase(newFakeAttendanceRepo(), at(9, 0, 0))

	_, err := uc.OverrideStatus("cualquiera", dto.UpdateAttendanceStatusRequest{Status: "vacaciones"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Lectura por id
// ──────────────────────────────────────────────────────────────────────────────

// El dueño del registro puede leerlo por id; otro employee no; admin y
// manager ven cualquiera.
func TestGet_OwnershipDelRegistro(t *testing.T) {
	repo := newFakeAttendanceRepo()
	uc := newTestUseCase(repo, at(9, 0, 0))

	created, err := uc.CheckIn("user-1", CheckInMeta{})
	require.NoError(t, err)

	att, err := uc.Get(created.ID, identity.Caller{ID: "user-1", Role: entity.RoleEmployee})
	require.NoError(t, err, "el dueño lee su propio registro")
	assert.Equal(t, "user-1", att.UserID)

	_, err = uc.Get(created.ID, identity.Caller{ID: "user-2", Role: entity.RoleEmployee})
	assert.ErrorIs(t, err, domain.ErrForbidden, "otro employee no ve el registro")

	_, err = uc.Get(created.ID, identity.Caller{ID: "user-2", Role: entity.RoleManager})
	assert.NoError(t, err, "manager ve cualquier registro")

	_, err = uc.Get("no-existe", identity.Caller{ID: "user-1", Role: entity.RoleAdmin})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Override masivo
// ──────────────────────────────────────────────────────────────────────────────

func TestBulkOverride_AplicaYLatchea(t *testing.T) {
	repo := newFakeAttendanceRepo()
	uc := newTestUseCase(repo, at(9, 0, 0))

	_, err := uc.CheckIn("user-1", CheckInMeta{})
	require.NoError(t, err)
	_, err = uc.CheckIn("user-2", CheckInMeta{})
	require.NoError(t, err)

	out, err := uc.BulkOverride(dto.BulkStatusRequest{
		Date:    "2026-03-09",
		Status:  entity.AttendanceHoliday,
		UserIDs: []string{"user-1", "user-2", "user-3"}, // user-3 no tiene registro
	})
	require.NoError(t, err)

	assert.Equal(t, int64(2), out.Updated, "solo cuenta los registros existentes")
}

func TestBulkOverride_Validaciones(t *testing.T) {
	uc := newTestUseCase(newFakeAttendanceRepo(), at(9, 0, 0))

	_, err := uc.BulkOverride(dto.BulkStatusRequest{Date: "2026-03-09", Status: "nope", UserIDs: []string{"u"}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "estado fuera del enum")

	_, err = uc.BulkOverride(dto.BulkStatusRequest{Date: "09/03/2026", Status: entity.AttendanceHoliday, UserIDs: []string{"u"}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "fecha con formato inválido")

	_, err = uc.BulkOverride(dto.BulkStatusRequest{Date: "2026-03-09", Status: entity.AttendanceHoliday})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "lista de usuarios vacía")
}
