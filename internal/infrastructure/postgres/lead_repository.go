package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/AniketRabade/Prjoect-Management-CRM/internal/domain/entity"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/domain/repository"
)

// LeadRepository adaptador PostgreSQL del puerto repository.LeadRepository.
// client_id es NULL hasta la conversión; MarkConverted depende de eso.
type LeadRepository struct {
	db Querier
}

// NewLeadRepository construye el repositorio sobre un pool o una tx.
func NewLeadRepository(db Querier) *LeadRepository {
	return &LeadRepository{db: db}
}

const leadColumns = `id, name, company, email, phone, source, status, potential_value, notes,
	client_id, assigned_to, created_by, last_contact_date, next_follow_up_date, conversion_date,
	created_at, updated_at`

func (r *LeadRepository) Create(lead *entity.Lead) error {
	_, err := r.db.Exec(context.Background(), `
		INSERT INTO leads (id, name, company, email, phone, source, status, potential_value, notes,
			client_id, assigned_to, created_by, last_contact_date, next_follow_up_date, conversion_date,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		lead.ID, lead.Name, lead.Company, lead.Email, lead.Phone, lead.Source, lead.Status,
		lead.PotentialValue, lead.Notes, nullIfEmpty(lead.ClientID), lead.AssignedTo,
		lead.CreatedBy, lead.LastContactDate, lead.NextFollowUpDate, lead.ConversionDate,
		lead.CreatedAt, lead.UpdatedAt,
	)
	return err
}

func (r *LeadRepository) GetByID(id string) (*entity.Lead, error) {
	row := r.db.QueryRow(context.Background(),
		`SELECT `+leadColumns+` FROM leads WHERE id = $1`, id)
	return scanLead(row)
}

func (r *LeadRepository) List(limit, offset int) ([]*entity.Lead, error) {
	rows, err := r.db.Query(context.Background(),
		`SELECT `+leadColumns+` FROM leads ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectLeads(rows)
}

func (r *LeadRepository) ListByAssignee(userID string) ([]*entity.Lead, error) {
	return r.listWhere(`assigned_to = $1`, userID)
}

func (r *LeadRepository) ListByStatus(status string) ([]*entity.Lead, error) {
	return r.listWhere(`status = $1`, status)
}

func (r *LeadRepository) ListBySource(source string) ([]*entity.Lead, error) {
	return r.listWhere(`source = $1`, source)
}

func (r *LeadRepository) ListRecent(limit int) ([]*entity.Lead, error) {
	rows, err := r.db.Query(context.Background(),
		`SELECT `+leadColumns+` FROM leads ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectLeads(rows)
}

func (r *LeadRepository) Stats() (*repository.LeadStats, error) {
	stats := &repository.LeadStats{ByStatus: make(map[string]int)}

	err := r.db.QueryRow(context.Background(), `
		SELECT COUNT(*),
		       COUNT(client_id),
		       COALESCE(SUM(potential_value), 0)
		FROM leads`).
		Scan(&stats.Total, &stats.Converted, &stats.PotentialValue)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(context.Background(),
		`SELECT status, COUNT(*) FROM leads GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var (
			status string
			count  int
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		stats.ByStatus[status] = count
	}
	return stats, rows.Err()
}

func (r *LeadRepository) Update(lead *entity.Lead) error {
	_, err := r.db.Exec(context.Background(), `
		UPDATE leads
		SET name = $2, company = $3, email = $4, phone = $5, source = $6, status = $7,
		    potential_value = $8, notes = $9, assigned_to = $10, last_contact_date = $11,
		    next_follow_up_date = $12, updated_at = $13
		WHERE id = $1`,
		lead.ID, lead.Name, lead.Company, lead.Email, lead.Phone, lead.Source, lead.Status,
		lead.PotentialValue, lead.Notes, lead.AssignedTo, lead.LastContactDate,
		lead.NextFollowUpDate, lead.UpdatedAt,
	)
	return err
}

// MarkConverted escritura condicional de la conversión: solo gana quien
// encuentra client_id todavía nulo. Cero filas afectadas significa que otro
// caller convirtió primero.
func (r *LeadRepository) MarkConverted(leadID, clientID, status string, when time.Time) (bool, error) {
	tag, err := r.db.Exec(context.Background(), `
		UPDATE leads
		SET client_id = $2, status = $3, conversion_date = $4, updated_at = $4
		WHERE id = $1 AND client_id IS NULL`,
		leadID, clientID, status, when,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *LeadRepository) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM leads WHERE id = $1`, id)
	return err
}

func (r *LeadRepository) listWhere(cond string, arg any) ([]*entity.Lead, error) {
	rows, err := r.db.Query(context.Background(),
		`SELECT `+leadColumns+` FROM leads WHERE `+cond+` ORDER BY created_at DESC`, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectLeads(rows)
}

func scanLead(row pgx.Row) (*entity.Lead, error) {
	var (
		l        entity.Lead
		clientID *string
	)
	err := row.Scan(&l.ID, &l.Name, &l.Company, &l.Email, &l.Phone, &l.Source, &l.Status,
		&l.PotentialValue, &l.Notes, &clientID, &l.AssignedTo, &l.CreatedBy,
		&l.LastContactDate, &l.NextFollowUpDate, &l.ConversionDate, &l.CreatedAt, &l.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	l.ClientID = derefString(clientID)
	return &l, nil
}

func collectLeads(rows pgx.Rows) ([]*entity.Lead, error) {
	var leads []*entity.Lead
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, l)
	}
	return leads, rows.Err()
}
