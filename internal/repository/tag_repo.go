package repository

import (
	"context"

	"workasana/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type TagRepository struct {
	db *pgxpool.Pool
}

func NewTagRepository(db *pgxpool.Pool) *TagRepository {
	return &TagRepository{db: db}
}

func (r *TagRepository) Create(ctx context.Context, t *domain.ProjectTag) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO tags (name) VALUES ($1) RETURNING id`,
		t.Name,
	).Scan(&t.ID)
	return mapError(err)
}

func (r *TagRepository) List(ctx context.Context) ([]domain.ProjectTag, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM tags ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := []domain.ProjectTag{}
	for rows.Next() {
		var t domain.ProjectTag
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}
