package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/AniketRabade/Prjoect-Management-CRM/internal/domain/entity"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/domain/repository"
)

// SaleRepository adaptador PostgreSQL del puerto repository.SaleRepository.
// Los montos se agregan en SQL sobre NUMERIC, nunca en float.
type SaleRepository struct {
	db Querier
}

// NewSaleRepository construye el repositorio sobre un pool o una tx.
func NewSaleRepository(db Querier) *SaleRepository {
	return &SaleRepository{db: db}
}

const saleColumns = `id, project_id, client_id, amount, sale_date, payment_method, salesperson, description, created_at, updated_at`

func (r *SaleRepository) Create(sale *entity.Sale) error {
	_, err := r.db.Exec(context.Background(), `
		INSERT INTO sales (id, project_id, client_id, amount, sale_date, payment_method, salesperson, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		sale.ID, sale.ProjectID, sale.ClientID, sale.Amount, sale.SaleDate,
		sale.PaymentMethod, sale.Salesperson, sale.Description, sale.CreatedAt, sale.UpdatedAt,
	)
	return err
}

func (r *SaleRepository) GetByID(id string) (*entity.Sale, error) {
	row := r.db.QueryRow(context.Background(),
		`SELECT `+saleColumns+` FROM sales WHERE id = $1`, id)
	return scanSale(row)
}

func (r *SaleRepository) List(limit, offset int) ([]*entity.Sale, error) {
	rows, err := r.db.Query(context.Background(),
		`SELECT `+saleColumns+` FROM sales ORDER BY sale_date DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSales(rows)
}

func (r *SaleRepository) ListBySalesperson(userID string) ([]*entity.Sale, error) {
	return r.listWhere(`salesperson = $1`, userID)
}

func (r *SaleRepository) ListByProject(projectID string) ([]*entity.Sale, error) {
	return r.listWhere(`project_id = $1`, projectID)
}

func (r *SaleRepository) ListByClient(clientID string) ([]*entity.Sale, error) {
	return r.listWhere(`client_id = $1`, clientID)
}

func (r *SaleRepository) ListByDateRange(from, to time.Time) ([]*entity.Sale, error) {
	rows, err := r.db.Query(context.Background(),
		`SELECT `+saleColumns+` FROM sales WHERE sale_date >= $1 AND sale_date <= $2 ORDER BY sale_date DESC`,
		from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSales(rows)
}

func (r *SaleRepository) Stats() (*repository.SaleStats, error) {
	var stats repository.SaleStats
	err := r.db.QueryRow(context.Background(), `
		SELECT COUNT(*),
		       COALESCE(SUM(amount), 0),
		       COALESCE(ROUND(AVG(amount), 2), 0),
		       COALESCE(MIN(amount), 0),
		       COALESCE(MAX(amount), 0)
		FROM sales`).
		Scan(&stats.Count, &stats.Total, &stats.Average, &stats.Min, &stats.Max)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *SaleRepository) Update(sale *entity.Sale) error {
	_, err := r.db.Exec(context.Background(), `
		UPDATE sales
		SET amount = $2, sale_date = $3, payment_method = $4, description = $5, updated_at = $6
		WHERE id = $1`,
		sale.ID, sale.Amount, sale.SaleDate, sale.PaymentMethod, sale.Description, sale.UpdatedAt,
	)
	return err
}

func (r *SaleRepository) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM sales WHERE id = $1`, id)
	return err
}

func (r *SaleRepository) listWhere(cond string, arg any) ([]*entity.Sale, error) {
	rows, err := r.db.Query(context.Background(),
		`SELECT `+saleColumns+` FROM sales WHERE `+cond+` ORDER BY sale_date DESC`, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSales(rows)
}

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	err := row.Scan(&s.ID, &s.ProjectID, &s.ClientID, &s.Amount, &s.SaleDate,
		&s.PaymentMethod, &s.Salesperson, &s.Description, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func collectSales(rows pgx.Rows) ([]*entity.Sale, error) {
	var sales []*entity.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, err
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}
