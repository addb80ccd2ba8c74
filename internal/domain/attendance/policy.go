// Package attendance contiene la política pura de derivación de estado de
// asistencia: tardanza en el check-in y media jornada en el check-out.
// No tiene dependencias de infraestructura; opera solo sobre timestamps.
package attendance

import (
	"math"
	"time"

	"github.com/AniketRabade/Prjoect-Management-CRM/internal/domain/entity"
)

// Policy parámetros de la política de asistencia.
type Policy struct {
	ExpectedHour   int     // hora de entrada esperada (local)
	ExpectedMinute int     // minuto de entrada esperada
	GraceMinutes   int     // minutos de gracia antes de marcar "late"
	HalfDayHours   float64 // por debajo de esto siempre es media jornada
	ShortDayHours  float64 // por debajo de esto es media jornada solo si sigue "present"
}

// Default la política estándar: entrada 09:30, 30 min de gracia,
// media jornada < 4h, jornada corta < 6h.
func Default() Policy {
	return Policy{
		ExpectedHour:   9,
		ExpectedMinute: 30,
		GraceMinutes:   30,
		HalfDayHours:   4,
		ShortDayHours:  6,
	}
}

// ExpectedCheckIn devuelve la hora de entrada esperada para el día de ts,
// en la zona horaria de ts.
func (p Policy) ExpectedCheckIn(ts time.Time) time.Time {
	return time.Date(ts.Year(), ts.Month(), ts.Day(), p.ExpectedHour, p.ExpectedMinute, 0, 0, ts.Location())
}

// CheckInStatus deriva estado y minutos de tardanza de un check-in.
// Llegar dentro de la gracia cuenta como "present" pero igual registra los
// minutos: LateMinutes y Status son señales independientes.
func (p Policy) CheckInStatus(ts time.Time) (status string, lateMinutes int) {
	expected := p.ExpectedCheckIn(ts)
	if !ts.After(expected) {
		return entity.AttendancePresent, 0
	}
	lateMinutes = int(math.Round(ts.Sub(expected).Minutes()))
	if lateMinutes > p.GraceMinutes {
		return entity.AttendanceLate, lateMinutes
	}
	return entity.AttendancePresent, lateMinutes
}

// CheckOutStatus recalcula el estado al hacer check-out según las horas
// trabajadas. Devuelve el estado actual sin tocar cuando la jornada fue
// completa o el estado no es "present" en la franja [HalfDayHours, ShortDayHours).
// El caller solo debe invocarlo cuando el registro sigue en modo automático.
func (p Policy) CheckOutStatus(current string, checkIn, checkOut time.Time) string {
	hours := checkOut.Sub(checkIn).Hours()
	switch {
	case hours < p.HalfDayHours:
		return entity.AttendanceHalfDay
	case hours < p.ShortDayHours && current == entity.AttendancePresent:
		return entity.AttendanceHalfDay
	default:
		return current
	}
}

// DayOf normaliza un timestamp a su fecha civil (medianoche local).
// El límite de día es medianoche a 23:59:59.999 local.
func DayOf(ts time.Time) time.Time {
	return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, ts.Location())
}
