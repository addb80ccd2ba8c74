package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/AniketRabade/Prjoect-Management-CRM/internal/domain/entity"
)

// TaskRepository adaptador PostgreSQL del puerto repository.TaskRepository.
// La referencia polimórfica se persiste como el par (related_kind, related_id).
type TaskRepository struct {
	db Querier
}

// NewTaskRepository construye el repositorio sobre un pool o una tx.
func NewTaskRepository(db Querier) *TaskRepository {
	return &TaskRepository{db: db}
}

const taskColumns = `id, name, description, due_date, priority, status, assigned_to, created_by,
	related_kind, related_id, completed_at, reminders, created_at, updated_at`

func (r *TaskRepository) Create(task *entity.Task) error {
	_, err := r.db.Exec(context.Background(), `
		INSERT INTO tasks (id, name, description, due_date, priority, status, assigned_to, created_by,
			related_kind, related_id, completed_at, reminders, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		task.ID, task.Name, task.Description, task.DueDate, task.Priority, task.Status,
		task.AssignedTo, task.CreatedBy, string(task.Related.Kind), task.Related.ID,
		task.CompletedAt, task.Reminders, task.CreatedAt, task.UpdatedAt,
	)
	return err
}

func (r *TaskRepository) GetByID(id string) (*entity.Task, error) {
	row := r.db.QueryRow(context.Background(),
		`SELECT `+taskColumns+` FROM tasks WHERE id = $1`, id)
	return scanTask(row)
}

func (r *TaskRepository) List(limit, offset int) ([]*entity.Task, error) {
	rows, err := r.db.Query(context.Background(),
		`SELECT `+taskColumns+` FROM tasks ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTasks(rows)
}

func (r *TaskRepository) ListByAssignee(userID string) ([]*entity.Task, error) {
	rows, err := r.db.Query(context.Background(),
		`SELECT `+taskColumns+` FROM tasks WHERE assigned_to = $1 ORDER BY created_at DESC`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTasks(rows)
}

func (r *TaskRepository) ListByRelated(kind entity.RelatedKind, relatedID string) ([]*entity.Task, error) {
	rows, err := r.db.Query(context.Background(),
		`SELECT `+taskColumns+` FROM tasks WHERE related_kind = $1 AND related_id = $2 ORDER BY created_at DESC`,
		string(kind), relatedID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTasks(rows)
}

func (r *TaskRepository) Update(task *entity.Task) error {
	_, err := r.db.Exec(context.Background(), `
		UPDATE tasks
		SET name = $2, description = $3, due_date = $4, priority = $5, status = $6,
		    assigned_to = $7, related_kind = $8, related_id = $9, completed_at = $10,
		    reminders = $11, updated_at = $12
		WHERE id = $1`,
		task.ID, task.Name, task.Description, task.DueDate, task.Priority, task.Status,
		task.AssignedTo, string(task.Related.Kind), task.Related.ID, task.CompletedAt,
		task.Reminders, task.UpdatedAt,
	)
	return err
}

func (r *TaskRepository) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM tasks WHERE id = $1`, id)
	return err
}

func scanTask(row pgx.Row) (*entity.Task, error) {
	var (
		t    entity.Task
		kind string
	)
	err := row.Scan(&t.ID, &t.Name, &t.Description, &t.DueDate, &t.Priority, &t.Status,
		&t.AssignedTo, &t.CreatedBy, &kind, &t.Related.ID, &t.CompletedAt,
		&t.Reminders, &t.CreatedAt, &t.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	t.Related.Kind = entity.RelatedKind(kind)
	return &t, nil
}

func collectTasks(rows pgx.Rows) ([]*entity.Task, error) {
	var tasks []*entity.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}
