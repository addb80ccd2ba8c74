// Package hr casos de uso de asistencia: check-in/check-out con derivación
// automática de estado y overrides administrativos con latch manual.
package hr

import (
	"time"

	"github.com/google/uuid"

	"github.com/AniketRabade/Prjoect-Management-CRM/internal/application/dto"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/application/identity"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/domain"
	attpolicy "github.com/AniketRabade/Prjoect-Management-CRM/internal/domain/attendance"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/domain/entity"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/domain/repository"
)

// CheckInMeta datos de auditoría capturados en el check-in.
type CheckInMeta struct {
	Location  entity.Geolocation
	IPAddress string
	Device    string
}

// AttendanceUseCase orquesta repo + política.
type AttendanceUseCase struct {
	repo   repository.AttendanceRepository
	policy attpolicy.Policy
	nowFn  func() time.Time
}

// NewAttendanceUseCase construye el caso de uso con la política dada.
func NewAttendanceUseCase(repo repository.AttendanceRepository, policy attpolicy.Policy) *AttendanceUseCase {
	return &AttendanceUseCase{repo: repo, policy: policy, nowFn: time.Now}
}

// CheckIn registra la entrada del día. Un registro por (usuario, día): el
// índice único del esquema resuelve la carrera entre check-ins concurrentes,
// no este read-then-write.
func (uc *AttendanceUseCase) CheckIn(userID string, meta CheckInMeta) (*dto.AttendanceResponse, error) {
	now := uc.nowFn()
	status, lateMinutes := uc.policy.CheckInStatus(now)

	att := &entity.Attendance{
		ID:          uuid.New().String(),
		UserID:      userID,
		Day:         attpolicy.DayOf(now),
		CheckIn:     now,
		Status:      status,
		LateMinutes: lateMinutes,
		StatusMode:  entity.StatusAutomatic,
		Location:    meta.Location,
		IPAddress:   meta.IPAddress,
		Device:      meta.Device,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(att); err != nil {
		if err == domain.ErrDuplicate {
			return nil, domain.ErrAlreadyCheckedIn
		}
		return nil, err
	}
	return dto.ToAttendanceResponse(att), nil
}

// CheckOut cierra el registro abierto del día. Solo recalcula el estado
// cuando el registro sigue en modo automático: un override manual es
// pegajoso y sobrevive al check-out.
func (uc *AttendanceUseCase) CheckOut(userID string) (*dto.AttendanceResponse, error) {
	now := uc.nowFn()
	att, err := uc.repo.GetOpenForDay(userID, attpolicy.DayOf(now))
	if err != nil {
		return nil, err
	}
	if att == nil {
		return nil, domain.ErrNoActiveCheckIn
	}
	att.CheckOut = &now
	if att.Auto() {
		att.Status = uc.policy.CheckOutStatus(att.Status, att.CheckIn, now)
	}
	att.UpdatedAt = now
	if err := uc.repo.Update(att); err != nil {
		return nil, err
	}
	return dto.ToAttendanceResponse(att), nil
}

// MyAttendance registros del caller, opcionalmente filtrados por mes/año.
func (uc *AttendanceUseCase) MyAttendance(userID string, year int, month time.Month) ([]*dto.AttendanceResponse, error) {
	var (
		records []*entity.Attendance
		err     error
	)
	if year > 0 && month >= time.January && month <= time.December {
		records, err = uc.repo.ListByUserMonth(userID, year, month)
	} else {
		records, err = uc.repo.ListByUser(userID, 31)
	}
	if err != nil {
		return nil, err
	}
	return toResponses(records), nil
}

// List listado administrativo con filtros (admin/manager; gate en la ruta).
func (uc *AttendanceUseCase) List(filter repository.AttendanceFilter) ([]*dto.AttendanceResponse, error) {
	if filter.Status != "" && !entity.ValidAttendanceStatus(filter.Status) {
		return nil, domain.ErrInvalidInput
	}
	records, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	return toResponses(records), nil
}

// Stats conteos por estado en un rango de fechas.
func (uc *AttendanceUseCase) Stats(from, to time.Time) ([]dto.AttendanceStatsResponse, error) {
	counts, err := uc.repo.StatsByStatus(from, to)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AttendanceStatsResponse, 0, len(counts))
	for _, c := range counts {
		out = append(out, dto.AttendanceStatsResponse{
			Status:      c.Status,
			Count:       c.Count,
			UniqueUsers: c.UniqueUsers,
		})
	}
	return out, nil
}

// Get registro por id. Accesible para el dueño del registro o admin/manager.
func (uc *AttendanceUseCase) Get(id string, caller identity.Caller) (*dto.AttendanceResponse, error) {
	att, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if att == nil {
		return nil, domain.ErrNotFound
	}
	if !caller.Is(att.UserID) && !caller.Elevated() {
		return nil, domain.ErrForbidden
	}
	return dto.ToAttendanceResponse(att), nil
}

// OverrideStatus override manual de estado/notas (admin). Latchea el
// registro a modo manual de forma permanente.
func (uc *AttendanceUseCase) OverrideStatus(id string, in dto.UpdateAttendanceStatusRequest) (*dto.AttendanceResponse, error) {
	if !entity.ValidAttendanceStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}
	att, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if att == nil {
		return nil, domain.ErrNotFound
	}
	att.Override(in.Status, in.Notes)
	att.UpdatedAt = uc.nowFn()
	if err := uc.repo.Update(att); err != nil {
		return nil, err
	}
	return dto.ToAttendanceResponse(att), nil
}

// BulkOverride override masivo para un día y un conjunto de usuarios (admin).
func (uc *AttendanceUseCase) BulkOverride(in dto.BulkStatusRequest) (*dto.BulkStatusResponse, error) {
	if !entity.ValidAttendanceStatus(in.Status) || len(in.UserIDs) == 0 {
		return nil, domain.ErrInvalidInput
	}
	day, err := time.ParseInLocation("2006-01-02", in.Date, time.Local)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	updated, err := uc.repo.BulkOverride(day, in.UserIDs, in.Status, in.Notes)
	if err != nil {
		return nil, err
	}
	return &dto.BulkStatusResponse{Updated: updated}, nil
}

// Delete elimina un registro (admin).
func (uc *AttendanceUseCase) Delete(id string) error {
	att, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if att == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toResponses(records []*entity.Attendance) []*dto.AttendanceResponse {
	out := make([]*dto.AttendanceResponse, 0, len(records))
	for _, a := range records {
		out = append(out, dto.ToAttendanceResponse(a))
	}
	return out
}
