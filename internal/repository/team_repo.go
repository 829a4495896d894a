package repository

import (
	"context"

	"workasana/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type TeamRepository struct {
	db *pgxpool.Pool
}

func NewTeamRepository(db *pgxpool.Pool) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) Create(ctx context.Context, t *domain.Team) error {
	if t.Members == nil {
		t.Members = []int64{}
	}
	err := r.db.QueryRow(ctx,
		`INSERT INTO teams (name, description, members) VALUES ($1, $2, $3) RETURNING id`,
		t.Name, t.Description, t.Members,
	).Scan(&t.ID)
	return mapError(err)
}

func (r *TeamRepository) List(ctx context.Context) ([]domain.Team, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, COALESCE(description, ''), members FROM teams ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teams := []domain.Team{}
	for rows.Next() {
		var t domain.Team
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.Members); err != nil {
			return nil, err
		}
		if t.Members == nil {
			t.Members = []int64{}
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}
