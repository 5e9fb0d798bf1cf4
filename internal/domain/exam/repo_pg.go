package exam

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hospisim/hospisim/internal/domain/visit"
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

const cols = `id, type, requested_at, performed_at, result, visit_id, version`

func scanRow(row pgx.Row) (*Exam, error) {
	var e Exam
	err := row.Scan(&e.ID, &e.Type, &e.RequestedAt, &e.PerformedAt,
		&e.Result, &e.VisitID, &e.Version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, resource.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *repoPG) Insert(ctx context.Context, e *Exam) error {
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO exam (id, type, requested_at, performed_at, result, visit_id, version)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		e.ID, e.Type, e.RequestedAt, e.PerformedAt, e.Result, e.VisitID, e.Version)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Exam, error) {
	return scanRow(r.conn(ctx).QueryRow(ctx, `SELECT `+cols+` FROM exam WHERE id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, e *Exam) error {
	tag, err := r.conn(ctx).Exec(ctx, `
		UPDATE exam SET type=$2, requested_at=$3, performed_at=$4, result=$5,
			visit_id=$6, version = version + 1
		WHERE id = $1 AND version = $7`,
		e.ID, e.Type, e.RequestedAt, e.PerformedAt, e.Result, e.VisitID, e.Version)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return resource.ErrStale
	}
	return nil
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM exam WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return resource.ErrStale
	}
	return nil
}

func (r *repoPG) ListAll(ctx context.Context) ([]*Exam, error) {
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+cols+` FROM exam ORDER BY requested_at, type`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Exam
	for rows.Next() {
		e, err := scanRow(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, rows.Err()
}

func (r *repoPG) VisitSummary(ctx context.Context, id uuid.UUID) (*visit.Summary, error) {
	var s visit.Summary
	err := r.conn(ctx).QueryRow(ctx,
		`SELECT id, date, time, type FROM visit WHERE id = $1`, id).
		Scan(&s.ID, &s.Date, &s.Time, &s.Type)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}
