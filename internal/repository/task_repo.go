package repository

import (
	"context"
	"fmt"
	"strings"

	"workasana/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type TaskRepository struct {
	db     *pgxpool.Pool
	owners *OwnerRepository
}

func NewTaskRepository(db *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{db: db, owners: NewOwnerRepository(db)}
}

// TaskFilter narrows a task listing. Every set field becomes one
// exact-equality predicate; zero values impose no constraint.
type TaskFilter struct {
	Name      string
	ProjectID int64
	TeamID    int64
	OwnerID   int64
	Tag       string
	Status    domain.Status
}

// whereClause renders the filter as an AND chain of predicates. Array
// columns (owners, tags) match by containment, mirroring how a document
// store compares a scalar against an array field.
func (f TaskFilter) whereClause() (string, []any) {
	var conds []string
	var args []any
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if f.Name != "" {
		add("t.name = $%d", f.Name)
	}
	if f.ProjectID != 0 {
		add("t.project_id = $%d", f.ProjectID)
	}
	if f.TeamID != 0 {
		add("t.team_id = $%d", f.TeamID)
	}
	if f.OwnerID != 0 {
		add("$%d = ANY(t.owners)", f.OwnerID)
	}
	if f.Tag != "" {
		add("$%d = ANY(t.tags)", f.Tag)
	}
	if f.Status != "" {
		add("t.status = $%d", string(f.Status))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *TaskRepository) Create(ctx context.Context, t *domain.Task) error {
	if t.Tags == nil {
		t.Tags = []string{}
	}
	err := r.db.QueryRow(ctx,
		`INSERT INTO tasks (name, project_id, team_id, owners, tags, time_to_complete, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at`,
		t.Name, t.ProjectID, t.TeamID, t.OwnerIDs, t.Tags, t.TimeToComplete, string(t.Status),
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	return mapError(err)
}

// List returns tasks matching the filter with project, team and owners
// populated one level deep.
func (r *TaskRepository) List(ctx context.Context, filter TaskFilter) ([]domain.PopulatedTask, error) {
	where, args := filter.whereClause()
	rows, err := r.db.Query(ctx,
		`SELECT t.id, t.name, t.owners, t.tags, t.time_to_complete, t.status, t.created_at, t.updated_at,
		        p.id, p.name, COALESCE(p.description, ''),
		        tm.id, tm.name, COALESCE(tm.description, ''), tm.members
		 FROM tasks t
		 JOIN projects p ON p.id = t.project_id
		 JOIN teams tm ON tm.id = t.team_id`+where+`
		 ORDER BY t.id`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []domain.PopulatedTask{}
	perTask := [][]int64{}
	for rows.Next() {
		var pt domain.PopulatedTask
		var status string
		var ids []int64
		if err := rows.Scan(
			&pt.ID, &pt.Name, &ids, &pt.Tags, &pt.TimeToComplete, &status, &pt.CreatedAt, &pt.UpdatedAt,
			&pt.Project.ID, &pt.Project.Name, &pt.Project.Description,
			&pt.Team.ID, &pt.Team.Name, &pt.Team.Description, &pt.Team.Members,
		); err != nil {
			return nil, err
		}
		pt.Status = domain.Status(status)
		if pt.Tags == nil {
			pt.Tags = []string{}
		}
		if pt.Team.Members == nil {
			pt.Team.Members = []int64{}
		}
		tasks = append(tasks, pt)
		perTask = append(perTask, ids)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return r.populateOwners(ctx, tasks, perTask)
}

// populateOwners resolves each task's owner ids into full records with a
// single lookup, preserving the order the ids were stored in.
func (r *TaskRepository) populateOwners(ctx context.Context, tasks []domain.PopulatedTask, perTask [][]int64) ([]domain.PopulatedTask, error) {
	all := []int64{}
	seen := map[int64]bool{}
	for _, ids := range perTask {
		for _, id := range ids {
			if !seen[id] {
				seen[id] = true
				all = append(all, id)
			}
		}
	}

	owners, err := r.owners.GetByIDs(ctx, all)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]domain.Owner, len(owners))
	for _, o := range owners {
		byID[o.ID] = o
	}

	for i, ids := range perTask {
		tasks[i].Owners = []domain.Owner{}
		for _, id := range ids {
			if o, ok := byID[id]; ok {
				tasks[i].Owners = append(tasks[i].Owners, o)
			}
		}
	}
	return tasks, nil
}

func (r *TaskRepository) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	var t domain.Task
	var status string
	err := r.db.QueryRow(ctx,
		`SELECT id, name, project_id, team_id, owners, tags, time_to_complete, status, created_at, updated_at
		 FROM tasks WHERE id = $1`, id,
	).Scan(&t.ID, &t.Name, &t.ProjectID, &t.TeamID, &t.OwnerIDs, &t.Tags,
		&t.TimeToComplete, &status, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	t.Status = domain.Status(status)
	if t.Tags == nil {
		t.Tags = []string{}
	}
	return &t, nil
}

// TaskPatch carries the fields of a partial update. Nil pointers and nil
// slices leave the stored value untouched.
type TaskPatch struct {
	Name           *string
	ProjectID      *int64
	TeamID         *int64
	OwnerIDs       []int64
	Tags           []string
	TimeToComplete *float64
	Status         *domain.Status
}

// Update applies the patch and always refreshes updated_at. Returns the
// updated row, or domain.ErrNotFound when the id does not exist.
func (r *TaskRepository) Update(ctx context.Context, id int64, patch TaskPatch) (*domain.Task, error) {
	sets := []string{}
	args := []any{}
	set := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if patch.Name != nil {
		set("name", *patch.Name)
	}
	if patch.ProjectID != nil {
		set("project_id", *patch.ProjectID)
	}
	if patch.TeamID != nil {
		set("team_id", *patch.TeamID)
	}
	if patch.OwnerIDs != nil {
		set("owners", patch.OwnerIDs)
	}
	if patch.Tags != nil {
		set("tags", patch.Tags)
	}
	if patch.TimeToComplete != nil {
		set("time_to_complete", *patch.TimeToComplete)
	}
	if patch.Status != nil {
		set("status", string(*patch.Status))
	}
	sets = append(sets, "updated_at = NOW()")

	args = append(args, id)
	query := fmt.Sprintf(
		`UPDATE tasks SET %s WHERE id = $%d
		 RETURNING id, name, project_id, team_id, owners, tags, time_to_complete, status, created_at, updated_at`,
		strings.Join(sets, ", "), len(args))

	var t domain.Task
	var status string
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&t.ID, &t.Name, &t.ProjectID, &t.TeamID, &t.OwnerIDs, &t.Tags,
		&t.TimeToComplete, &status, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	t.Status = domain.Status(status)
	if t.Tags == nil {
		t.Tags = []string{}
	}
	return &t, nil
}

func (r *TaskRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
