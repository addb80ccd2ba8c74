package dto

import (
	"time"

	"github.com/AniketRabade/Prjoect-Management-CRM/internal/domain/entity"
)

// CheckInRequest marca de entrada con geolocalización.
type CheckInRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// UpdateAttendanceStatusRequest override manual de estado (admin).
// Siempre latchea el registro a modo manual.
type UpdateAttendanceStatusRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

// BulkStatusRequest override masivo para un día y un conjunto de usuarios.
type BulkStatusRequest struct {
	Date    string   `json:"date"` // YYYY-MM-DD
	Status  string   `json:"status"`
	Notes   string   `json:"notes"`
	UserIDs []string `json:"userIds"`
}

// BulkStatusResponse filas alcanzadas por el override masivo.
type BulkStatusResponse struct {
	Updated int64 `json:"updated"`
}

// AttendanceResponse representación pública de un registro de asistencia.
type AttendanceResponse struct {
	ID          string             `json:"id"`
	UserID      string             `json:"user"`
	Date        time.Time          `json:"date"`
	CheckIn     time.Time          `json:"checkIn"`
	CheckOut    *time.Time         `json:"checkOut,omitempty"`
	Status      string             `json:"status"`
	LateMinutes int                `json:"lateMinutes"`
	AutoStatus  bool               `json:"autoStatus"`
	Location    entity.Geolocation `json:"location"`
	Notes       string             `json:"notes,omitempty"`
	IPAddress   string             `json:"ipAddress,omitempty"`
	Device      string             `json:"device,omitempty"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

// ToAttendanceResponse mapea la entidad a su representación pública.
// AutoStatus se expone como boolean por compatibilidad con los clientes,
// derivado del modo interno.
func ToAttendanceResponse(a *entity.Attendance) *AttendanceResponse {
	return &AttendanceResponse{
		ID:          a.ID,
		UserID:      a.UserID,
		Date:        a.Day,
		CheckIn:     a.CheckIn,
		CheckOut:    a.CheckOut,
		Status:      a.Status,
		LateMinutes: a.LateMinutes,
		AutoStatus:  a.Auto(),
		Location:    a.Location,
		Notes:       a.Notes,
		IPAddress:   a.IPAddress,
		Device:      a.Device,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// AttendanceStatsResponse conteos agregados por estado.
type AttendanceStatsResponse struct {
	Status      string `json:"status"`
	Count       int    `json:"count"`
	UniqueUsers int    `json:"uniqueUsers"`
}
