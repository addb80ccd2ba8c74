package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/AniketRabade/Prjoect-Management-CRM/internal/domain/entity"
)

// ClientRepository adaptador PostgreSQL del puerto repository.ClientRepository.
type ClientRepository struct {
	db Querier
}

// NewClientRepository construye el repositorio sobre un pool o una tx.
func NewClientRepository(db Querier) *ClientRepository {
	return &ClientRepository{db: db}
}

const clientColumns = `id, name, email, phone, address, description, created_at, updated_at`

func (r *ClientRepository) Create(client *entity.Client) error {
	_, err := r.db.Exec(context.Background(), `
		INSERT INTO clients (id, name, email, phone, address, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		client.ID, client.Name, client.Email, client.Phone,
		client.Address, client.Description, client.CreatedAt, client.UpdatedAt,
	)
	return err
}

func (r *ClientRepository) GetByID(id string) (*entity.Client, error) {
	row := r.db.QueryRow(context.Background(),
		`SELECT `+clientColumns+` FROM clients WHERE id = $1`, id)
	return scanClient(row)
}

func (r *ClientRepository) List(limit, offset int) ([]*entity.Client, error) {
	rows, err := r.db.Query(context.Background(),
		`SELECT `+clientColumns+` FROM clients ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []*entity.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

func (r *ClientRepository) Update(client *entity.Client) error {
	_, err := r.db.Exec(context.Background(), `
		UPDATE clients
		SET name = $2, email = $3, phone = $4, address = $5, description = $6, updated_at = $7
		WHERE id = $1`,
		client.ID, client.Name, client.Email, client.Phone,
		client.Address, client.Description, client.UpdatedAt,
	)
	return err
}

func (r *ClientRepository) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM clients WHERE id = $1`, id)
	return err
}

func scanClient(row pgx.Row) (*entity.Client, error) {
	var c entity.Client
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone,
		&c.Address, &c.Description, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}
