package record

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hospisim/hospisim/internal/domain/patient"
	"github.com/hospisim/hospisim/internal/platform/db"
	"github.com/hospisim/hospisim/internal/platform/resource"
	"github.com/hospisim/hospisim/pkg/brdoc"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

func (r *repoPG) conn(ctx context.Context) db.Querier {
	return db.Conn(ctx, r.pool)
}

const cols = `id, record_number, opened_at, notes, patient_id, version`

func scanRow(row pgx.Row) (*Record, error) {
	var rec Record
	err := row.Scan(&rec.ID, &rec.RecordNumber, &rec.OpenedAt, &rec.Notes, &rec.PatientID, &rec.Version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, resource.ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (r *repoPG) Insert(ctx context.Context, rec *Record) error {
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO record (id, record_number, opened_at, notes, patient_id, version)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		rec.ID, rec.RecordNumber, rec.OpenedAt, rec.Notes, rec.PatientID, rec.Version)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Record, error) {
	return scanRow(r.conn(ctx).QueryRow(ctx, `SELECT `+cols+` FROM record WHERE id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, rec *Record) error {
	tag, err := r.conn(ctx).Exec(ctx, `
		UPDATE record SET record_number=$2, opened_at=$3, notes=$4, patient_id=$5,
			version = version + 1
		WHERE id = $1 AND version = $6`,
		rec.ID, rec.RecordNumber, rec.OpenedAt, rec.Notes, rec.PatientID, rec.Version)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return resource.ErrStale
	}
	return nil
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM record WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return resource.ErrStale
	}
	return nil
}

func (r *repoPG) ListAll(ctx context.Context) ([]*Record, error) {
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+cols+` FROM record ORDER BY record_number`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Record
	for rows.Next() {
		rec, err := scanRow(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, rec)
	}
	return items, rows.Err()
}

func (r *repoPG) PatientSummary(ctx context.Context, id uuid.UUID) (*patient.Summary, error) {
	var s patient.Summary
	err := r.conn(ctx).QueryRow(ctx,
		`SELECT id, full_name, cpf FROM patient WHERE id = $1`, id).
		Scan(&s.ID, &s.FullName, &s.CPF)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	s.CPF = brdoc.FormatCPF(s.CPF)
	return &s, nil
}
