package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/AniketRabade/Prjoect-Management-CRM/internal/domain/entity"
)

// ProjectRepository adaptador PostgreSQL del puerto repository.ProjectRepository.
// Los milestones viajan como JSONB y el equipo como TEXT[].
type ProjectRepository struct {
	db Querier
}

// NewProjectRepository construye el repositorio sobre un pool o una tx.
func NewProjectRepository(db Querier) *ProjectRepository {
	return &ProjectRepository{db: db}
}

const projectColumns = `id, name, client_id, start_date, end_date, description, status, priority,
	project_manager, team_members, budget, expenses, milestones, created_by, created_at, updated_at`

func (r *ProjectRepository) Create(project *entity.Project) error {
	milestones, err := json.Marshal(project.Milestones)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(context.Background(), `
		INSERT INTO projects (id, name, client_id, start_date, end_date, description, status, priority,
			project_manager, team_members, budget, expenses, milestones, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		project.ID, project.Name, project.ClientID, project.StartDate, project.EndDate,
		project.Description, project.Status, project.Priority, project.ProjectManager,
		project.TeamMembers, project.Budget, project.Expenses, milestones,
		project.CreatedBy, project.CreatedAt, project.UpdatedAt,
	)
	return err
}

func (r *ProjectRepository) GetByID(id string) (*entity.Project, error) {
	row := r.db.QueryRow(context.Background(),
		`SELECT `+projectColumns+` FROM projects WHERE id = $1`, id)
	return scanProject(row)
}

func (r *ProjectRepository) List(limit, offset int) ([]*entity.Project, error) {
	rows, err := r.db.Query(context.Background(),
		`SELECT `+projectColumns+` FROM projects ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectProjects(rows)
}

func (r *ProjectRepository) ListByClient(clientID string) ([]*entity.Project, error) {
	rows, err := r.db.Query(context.Background(),
		`SELECT `+projectColumns+` FROM projects WHERE client_id = $1 ORDER BY created_at DESC`,
		clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectProjects(rows)
}

func (r *ProjectRepository) Update(project *entity.Project) error {
	milestones, err := json.Marshal(project.Milestones)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(context.Background(), `
		UPDATE projects
		SET name = $2, client_id = $3, start_date = $4, end_date = $5, description = $6,
		    status = $7, priority = $8, project_manager = $9, team_members = $10,
		    budget = $11, expenses = $12, milestones = $13, updated_at = $14
		WHERE id = $1`,
		project.ID, project.Name, project.ClientID, project.StartDate, project.EndDate,
		project.Description, project.Status, project.Priority, project.ProjectManager,
		project.TeamMembers, project.Budget, project.Expenses, milestones, project.UpdatedAt,
	)
	return err
}

func (r *ProjectRepository) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM projects WHERE id = $1`, id)
	return err
}

func scanProject(row pgx.Row) (*entity.Project, error) {
	var (
		p          entity.Project
		milestones []byte
	)
	err := row.Scan(&p.ID, &p.Name, &p.ClientID, &p.StartDate, &p.EndDate,
		&p.Description, &p.Status, &p.Priority, &p.ProjectManager, &p.TeamMembers,
		&p.Budget, &p.Expenses, &milestones, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if len(milestones) > 0 {
		if err := json.Unmarshal(milestones, &p.Milestones); err != nil {
			return nil, err
		}
	}
	return &p, nil
}

func collectProjects(rows pgx.Rows) ([]*entity.Project, error) {
	var projects []*entity.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}
