package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/AniketRabade/Prjoect-Management-CRM/internal/domain"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/domain/entity"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/domain/repository"
)

// AttendanceRepository adaptador PostgreSQL del puerto repository.AttendanceRepository.
// La restricción UNIQUE (user_id, day) del esquema garantiza un registro por
// usuario y día; Create traduce la violación a domain.ErrDuplicate.
type AttendanceRepository struct {
	db Querier
}

// NewAttendanceRepository construye el repositorio sobre un pool o una tx.
func NewAttendanceRepository(db Querier) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

const attendanceColumns = `id, user_id, day, check_in, check_out, status, late_minutes, status_mode,
	latitude, longitude, notes, ip_address, device, created_at, updated_at`

func (r *AttendanceRepository) Create(att *entity.Attendance) error {
	_, err := r.db.Exec(context.Background(), `
		INSERT INTO attendance (id, user_id, day, check_in, check_out, status, late_minutes, status_mode,
			latitude, longitude, notes, ip_address, device, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		att.ID, att.UserID, att.Day, att.CheckIn, att.CheckOut, att.Status, att.LateMinutes,
		string(att.StatusMode), att.Location.Latitude, att.Location.Longitude,
		att.Notes, att.IPAddress, att.Device, att.CreatedAt, att.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return domain.ErrDuplicate
	}
	return err
}

func (r *AttendanceRepository) GetByID(id string) (*entity.Attendance, error) {
	row := r.db.QueryRow(context.Background(),
		`SELECT `+attendanceColumns+` FROM attendance WHERE id = $1`, id)
	return scanAttendance(row)
}

func (r *AttendanceRepository) GetOpenForDay(userID string, day time.Time) (*entity.Attendance, error) {
	row := r.db.QueryRow(context.Background(),
		`SELECT `+attendanceColumns+` FROM attendance
		 WHERE user_id = $1 AND day = $2 AND check_out IS NULL`,
		userID, day)
	return scanAttendance(row)
}

func (r *AttendanceRepository) List(filter repository.AttendanceFilter) ([]*entity.Attendance, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendance WHERE 1=1`
	var args []any
	if filter.From != nil {
		args = append(args, *filter.From)
		query += fmt.Sprintf(` AND day >= $%d`, len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		query += fmt.Sprintf(` AND day <= $%d`, len(args))
	}
	if filter.UserID != "" {
		args = append(args, filter.UserID)
		query += fmt.Sprintf(` AND user_id = $%d`, len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(` AND status = $%d`, len(args))
	}
	query += ` ORDER BY day DESC, check_in DESC`

	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAttendance(rows)
}

func (r *AttendanceRepository) ListByUserMonth(userID string, year int, month time.Month) ([]*entity.Attendance, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	to := from.AddDate(0, 1, 0)
	rows, err := r.db.Query(context.Background(),
		`SELECT `+attendanceColumns+` FROM attendance
		 WHERE user_id = $1 AND day >= $2 AND day < $3
		 ORDER BY day DESC`,
		userID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAttendance(rows)
}

func (r *AttendanceRepository) ListByUser(userID string, limit int) ([]*entity.Attendance, error) {
	rows, err := r.db.Query(context.Background(),
		`SELECT `+attendanceColumns+` FROM attendance
		 WHERE user_id = $1 ORDER BY day DESC LIMIT $2`,
		userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAttendance(rows)
}

func (r *AttendanceRepository) StatsByStatus(from, to time.Time) ([]repository.AttendanceStatusCount, error) {
	rows, err := r.db.Query(context.Background(), `
		SELECT status, COUNT(*), COUNT(DISTINCT user_id)
		FROM attendance
		WHERE day >= $1 AND day <= $2
		GROUP BY status
		ORDER BY status`,
		from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []repository.AttendanceStatusCount
	for rows.Next() {
		var c repository.AttendanceStatusCount
		if err := rows.Scan(&c.Status, &c.Count, &c.UniqueUsers); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

func (r *AttendanceRepository) Update(att *entity.Attendance) error {
	_, err := r.db.Exec(context.Background(), `
		UPDATE attendance
		SET check_out = $2, status = $3, late_minutes = $4, status_mode = $5,
		    notes = $6, updated_at = $7
		WHERE id = $1`,
		att.ID, att.CheckOut, att.Status, att.LateMinutes, string(att.StatusMode),
		att.Notes, att.UpdatedAt,
	)
	return err
}

// BulkOverride latchea a manual los registros de un día para un conjunto de
// usuarios. Devuelve cuántas filas existían y fueron tocadas.
func (r *AttendanceRepository) BulkOverride(day time.Time, userIDs []string, status, notes string) (int64, error) {
	tag, err := r.db.Exec(context.Background(), `
		UPDATE attendance
		SET status = $3, notes = CASE WHEN $4 <> '' THEN $4 ELSE notes END,
		    status_mode = 'manual', updated_at = now()
		WHERE day = $1 AND user_id = ANY($2)`,
		day, userIDs, status, notes,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *AttendanceRepository) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM attendance WHERE id = $1`, id)
	return err
}

func scanAttendance(row pgx.Row) (*entity.Attendance, error) {
	var (
		a    entity.Attendance
		mode string
	)
	err := row.Scan(&a.ID, &a.UserID, &a.Day, &a.CheckIn, &a.CheckOut, &a.Status,
		&a.LateMinutes, &mode, &a.Location.Latitude, &a.Location.Longitude,
		&a.Notes, &a.IPAddress, &a.Device, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	a.StatusMode = entity.StatusMode(mode)
	return &a, nil
}

func collectAttendance(rows pgx.Rows) ([]*entity.Attendance, error) {
	var records []*entity.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, a)
	}
	return records, rows.Err()
}
