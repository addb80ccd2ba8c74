package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/AniketRabade/Prjoect-Management-CRM/internal/domain"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/domain/entity"
)

// UserRepository adaptador PostgreSQL del puerto repository.UserRepository.
type UserRepository struct {
	db Querier
}

// NewUserRepository construye el repositorio sobre un pool o una tx.
func NewUserRepository(db Querier) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, name, email, phone, password_hash, account_type, permissions, profile_picture, created_at, updated_at`

func (r *UserRepository) Create(user *entity.User) error {
	perms, err := json.Marshal(user.Permissions)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(context.Background(), `
		INSERT INTO users (id, name, email, phone, password_hash, account_type, permissions, profile_picture, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		user.ID, user.Name, user.Email, user.Phone, user.PasswordHash,
		user.AccountType, perms, user.ProfilePicture, user.CreatedAt, user.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return domain.ErrEmailAlreadyExists
	}
	return err
}

func (r *UserRepository) GetByID(id string) (*entity.User, error) {
	row := r.db.QueryRow(context.Background(),
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *UserRepository) GetByEmail(email string) (*entity.User, error) {
	row := r.db.QueryRow(context.Background(),
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

func (r *UserRepository) List(limit, offset int) ([]*entity.User, error) {
	rows, err := r.db.Query(context.Background(),
		`SELECT `+userColumns+` FROM users ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *UserRepository) Update(user *entity.User) error {
	perms, err := json.Marshal(user.Permissions)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(context.Background(), `
		UPDATE users
		SET name = $2, email = $3, phone = $4, password_hash = $5,
		    account_type = $6, permissions = $7, profile_picture = $8, updated_at = $9
		WHERE id = $1`,
		user.ID, user.Name, user.Email, user.Phone, user.PasswordHash,
		user.AccountType, perms, user.ProfilePicture, user.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return domain.ErrEmailAlreadyExists
	}
	return err
}

func (r *UserRepository) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM users WHERE id = $1`, id)
	return err
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var (
		u     entity.User
		perms []byte
	)
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.PasswordHash,
		&u.AccountType, &perms, &u.ProfilePicture, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if len(perms) > 0 {
		if err := json.Unmarshal(perms, &u.Permissions); err != nil {
			return nil, err
		}
	}
	return &u, nil
}
