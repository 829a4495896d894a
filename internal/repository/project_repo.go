package repository

import (
	"context"

	"workasana/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ProjectRepository struct {
	db *pgxpool.Pool
}

func NewProjectRepository(db *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO projects (name, description) VALUES ($1, $2) RETURNING id`,
		p.Name, p.Description,
	).Scan(&p.ID)
	return mapError(err)
}

func (r *ProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, COALESCE(description, '') FROM projects ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := []domain.Project{}
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Description); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}
