package integration

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"workasana/internal/domain"
	"workasana/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
)

func applyMigrations(t *testing.T, db *pgxpool.Pool) {
	t.Helper()
	migDir := filepath.Join("..", "..", "internal", "migrations")
	files, err := os.ReadDir(migDir)
	if err != nil {
		t.Fatalf("read migrations: %v", err)
	}
	for _, f := range files {
		b, err := os.ReadFile(filepath.Join(migDir, f.Name()))
		if err != nil {
			t.Fatalf("read file: %v", err)
		}
		if _, err := db.Exec(context.Background(), string(b)); err != nil {
			t.Fatalf("apply migration %s: %v", f.Name(), err)
		}
	}
}

func connect(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set")
	}
	db, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(db.Close)
	applyMigrations(t, db)
	return db
}

// seed creates one owner, team and project with unique names.
func seed(t *testing.T, db *pgxpool.Pool) (domain.Owner, domain.Team, domain.Project) {
	t.Helper()
	ctx := context.Background()
	suffix := fmt.Sprintf("%d", time.Now().UnixNano())

	owner := domain.Owner{Name: "Ann", Email: "ann+" + suffix + "@x.com"}
	if err := repository.NewOwnerRepository(db).Create(ctx, &owner); err != nil {
		t.Fatalf("create owner: %v", err)
	}

	team := domain.Team{Name: "team-" + suffix, Members: []int64{owner.ID}}
	if err := repository.NewTeamRepository(db).Create(ctx, &team); err != nil {
		t.Fatalf("create team: %v", err)
	}

	project := domain.Project{Name: "project-" + suffix}
	if err := repository.NewProjectRepository(db).Create(ctx, &project); err != nil {
		t.Fatalf("create project: %v", err)
	}
	return owner, team, project
}

func TestTaskRepository_CreateListUpdateDelete(t *testing.T) {
	db := connect(t)
	ctx := context.Background()
	owner, team, project := seed(t, db)

	repo := repository.NewTaskRepository(db)

	task := domain.Task{
		Name:           "Implement reports",
		ProjectID:      project.ID,
		TeamID:         team.ID,
		OwnerIDs:       []int64{owner.ID},
		Tags:           []string{"backend"},
		TimeToComplete: 3,
		Status:         domain.StatusToDo,
	}
	if err := repo.Create(ctx, &task); err != nil {
		t.Fatalf("create task: %v", err)
	}
	if task.ID == 0 || task.CreatedAt.IsZero() {
		t.Fatal("expected id and createdAt to be set")
	}

	fetched, err := repo.GetByID(ctx, task.ID)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if fetched.Status != domain.StatusToDo || fetched.Name != task.Name {
		t.Fatalf("unexpected task: %+v", fetched)
	}

	// Populated listing by team filter
	listed, err := repo.List(ctx, repository.TaskFilter{TeamID: team.ID})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("expected 1 task, got %d", len(listed))
	}
	got := listed[0]
	if got.Project.Name != project.Name || got.Team.Name != team.Name {
		t.Fatalf("populate failed: %+v", got)
	}
	if len(got.Owners) != 1 || got.Owners[0].Email != owner.Email {
		t.Fatalf("owner populate failed: %+v", got.Owners)
	}

	// Partial update refreshes updatedAt
	before := task.UpdatedAt
	status := domain.StatusCompleted
	updated, err := repo.Update(ctx, task.ID, repository.TaskPatch{Status: &status})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != domain.StatusCompleted {
		t.Fatalf("status = %q", updated.Status)
	}
	if !updated.UpdatedAt.After(before) {
		t.Fatalf("updatedAt not refreshed: %v -> %v", before, updated.UpdatedAt)
	}
	if updated.Name != task.Name {
		t.Fatal("untouched fields must survive a partial update")
	}

	// Status filter matches only exact values
	completed, err := repo.List(ctx, repository.TaskFilter{TeamID: team.ID, Status: domain.StatusCompleted})
	if err != nil {
		t.Fatalf("list completed: %v", err)
	}
	if len(completed) != 1 {
		t.Fatalf("expected 1 completed task, got %d", len(completed))
	}
	open, err := repo.List(ctx, repository.TaskFilter{TeamID: team.ID, Status: domain.StatusToDo})
	if err != nil {
		t.Fatalf("list open: %v", err)
	}
	if len(open) != 0 {
		t.Fatalf("expected no open tasks, got %d", len(open))
	}

	// Delete, then not found
	if err := repo.Delete(ctx, task.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.Delete(ctx, task.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := repo.Update(ctx, task.ID, repository.TaskPatch{Status: &status}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on update, got %v", err)
	}
}

func TestOwnerRepository_DuplicateEmailConflicts(t *testing.T) {
	db := connect(t)
	ctx := context.Background()
	repo := repository.NewOwnerRepository(db)

	email := fmt.Sprintf("dup+%d@x.com", time.Now().UnixNano())
	first := domain.Owner{Name: "Ann", Email: email}
	if err := repo.Create(ctx, &first); err != nil {
		t.Fatalf("create: %v", err)
	}

	second := domain.Owner{Name: "Ann again", Email: email}
	if err := repo.Create(ctx, &second); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestUserRepository_GetByEmail(t *testing.T) {
	db := connect(t)
	ctx := context.Background()
	repo := repository.NewUserRepository(db)

	email := fmt.Sprintf("user+%d@x.com", time.Now().UnixNano())
	u := domain.User{Username: "ann", Email: email, PasswordHash: "x"}
	if err := repo.Create(ctx, &u); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetByEmail(ctx, email)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != u.ID {
		t.Fatalf("id = %d, want %d", got.ID, u.ID)
	}

	if _, err := repo.GetByEmail(ctx, "missing+"+email); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
