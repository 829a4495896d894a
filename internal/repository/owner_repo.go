package repository

import (
	"context"

	"workasana/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type OwnerRepository struct {
	db *pgxpool.Pool
}

func NewOwnerRepository(db *pgxpool.Pool) *OwnerRepository {
	return &OwnerRepository{db: db}
}

func (r *OwnerRepository) Create(ctx context.Context, o *domain.Owner) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO owners (name, email) VALUES ($1, $2) RETURNING id`,
		o.Name, o.Email,
	).Scan(&o.ID)
	return mapError(err)
}

func (r *OwnerRepository) List(ctx context.Context) ([]domain.Owner, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, email FROM owners ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	owners := []domain.Owner{}
	for rows.Next() {
		var o domain.Owner
		if err := rows.Scan(&o.ID, &o.Name, &o.Email); err != nil {
			return nil, err
		}
		owners = append(owners, o)
	}
	return owners, rows.Err()
}

// GetByIDs resolves a set of owner ids into full records in one query.
func (r *OwnerRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.Owner, error) {
	if len(ids) == 0 {
		return []domain.Owner{}, nil
	}
	rows, err := r.db.Query(ctx,
		`SELECT id, name, email FROM owners WHERE id = ANY($1) ORDER BY id`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	owners := []domain.Owner{}
	for rows.Next() {
		var o domain.Owner
		if err := rows.Scan(&o.ID, &o.Name, &o.Email); err != nil {
			return nil, err
		}
		owners = append(owners, o)
	}
	return owners, rows.Err()
}
