package repository

import (
	"time"

	"github.com/AniketRabade/Prjoect-Management-CRM/internal/domain/entity"
)

// AttendanceFilter filtros del listado administrativo de asistencia.
type AttendanceFilter struct {
	From   *time.Time
	To     *time.Time
	UserID string
	Status string
}

// AttendanceStatusCount conteo agregado por estado en un rango de fechas.
type AttendanceStatusCount struct {
	Status      string
	Count       int
	UniqueUsers int
}

// AttendanceRepository define el puerto de persistencia para Attendance.
// La unicidad (user, día) la garantiza el índice compuesto del esquema;
// Create debe devolver domain.ErrDuplicate ante la violación.
type AttendanceRepository interface {
	Create(att *entity.Attendance) error
	GetByID(id string) (*entity.Attendance, error)
	// GetOpenForDay devuelve el registro del día con check-in y sin check-out,
	// o nil si no existe.
	GetOpenForDay(userID string, day time.Time) (*entity.Attendance, error)
	List(filter AttendanceFilter) ([]*entity.Attendance, error)
	ListByUserMonth(userID string, year int, month time.Month) ([]*entity.Attendance, error)
	ListByUser(userID string, limit int) ([]*entity.Attendance, error)
	StatsByStatus(from, to time.Time) ([]AttendanceStatusCount, error)
	Update(att *entity.Attendance) error
	// BulkOverride aplica un estado manual a los registros de un día para un
	// conjunto de usuarios; latchea status_mode a manual. Devuelve filas tocadas.
	BulkOverride(day time.Time, userIDs []string, status, notes string) (int64, error)
	Delete(id string) error
}
