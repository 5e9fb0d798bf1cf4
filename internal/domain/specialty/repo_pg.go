package specialty

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hospisim/hospisim/internal/platform/db"
	"github.com/hospisim/hospisim/internal/platform/resource"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

func (r *repoPG) conn(ctx context.Context) db.Querier {
	return db.Conn(ctx, r.pool)
}

func scanRow(row pgx.Row) (*Specialty, error) {
	var s Specialty
	err := row.Scan(&s.ID, &s.Name, &s.Version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, resource.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *repoPG) Insert(ctx context.Context, s *Specialty) error {
	_, err := r.conn(ctx).Exec(ctx,
		`INSERT INTO specialty (id, name, version) VALUES ($1,$2,$3)`,
		s.ID, s.Name, s.Version)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Specialty, error) {
	return scanRow(r.conn(ctx).QueryRow(ctx,
		`SELECT id, name, version FROM specialty WHERE id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, s *Specialty) error {
	tag, err := r.conn(ctx).Exec(ctx,
		`UPDATE specialty SET name=$2, version = version + 1 WHERE id = $1 AND version = $3`,
		s.ID, s.Name, s.Version)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return resource.ErrStale
	}
	return nil
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM specialty WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return resource.ErrStale
	}
	return nil
}

func (r *repoPG) ListAll(ctx context.Context) ([]*Specialty, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT id, name, version FROM specialty ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Specialty
	for rows.Next() {
		s, err := scanRow(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}
