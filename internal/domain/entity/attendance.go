package entity

import "time"

// Estados de asistencia.
const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceLate    = "late"
	AttendanceHalfDay = "half-day"
	AttendanceOnLeave = "on-leave"
	AttendanceHoliday = "holiday"
)

// ValidAttendanceStatus indica si el estado pertenece al enum.
func ValidAttendanceStatus(s string) bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLate,
		AttendanceHalfDay, AttendanceOnLeave, AttendanceHoliday:
		return true
	}
	return false
}

// StatusMode indica quién controla el campo Status de un registro de asistencia.
// La transición es de un solo sentido: automatic -> manual, nunca al revés.
type StatusMode string

const (
	StatusAutomatic StatusMode = "automatic"
	StatusManual    StatusMode = "manual"
)

// Geolocation punto de geolocalización del check-in.
type Geolocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Attendance un registro por (usuario, día calendario); la unicidad la
// garantiza el índice compuesto en la capa de almacenamiento.
type Attendance struct {
	ID          string
	UserID      string
	Day         time.Time // fecha civil del registro (medianoche local)
	CheckIn     time.Time
	CheckOut    *time.Time
	Status      string
	LateMinutes int
	StatusMode  StatusMode
	Location    Geolocation
	Notes       string
	IPAddress   string
	Device      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Override latchea el modo a manual. Una vez manual, el estado no vuelve a
// recalcularse automáticamente.
func (a *Attendance) Override(status, notes string) {
	a.Status = status
	if notes != "" {
		a.Notes = notes
	}
	a.StatusMode = StatusManual
}

// Auto indica si el estado sigue bajo control automático.
func (a *Attendance) Auto() bool { return a.StatusMode != StatusManual }
