package visit

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hospisim/hospisim/internal/domain/patient"
	"github.com/hospisim/hospisim/internal/domain/record"
	"github.com/hospisim/hospisim/internal/domain/staff"
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

const cols = `id, date, time, type, status, location, patient_id, staff_id, record_id, version`

func scanRow(row pgx.Row) (*Visit, error) {
	var v Visit
	err := row.Scan(&v.ID, &v.Date, &v.Time, &v.Type, &v.Status, &v.Location,
		&v.PatientID, &v.StaffID, &v.RecordID, &v.Version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, resource.ErrNotFound
		}
		return nil, err
	}
	return &v, nil
}

func (r *repoPG) Insert(ctx context.Context, v *Visit) error {
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO visit (id, date, time, type, status, location, patient_id, staff_id, record_id, version)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		v.ID, v.Date, v.Time, v.Type, v.Status, v.Location,
		v.PatientID, v.StaffID, v.RecordID, v.Version)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Visit, error) {
	return scanRow(r.conn(ctx).QueryRow(ctx, `SELECT `+cols+` FROM visit WHERE id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, v *Visit) error {
	tag, err := r.conn(ctx).Exec(ctx, `
		UPDATE visit SET date=$2, time=$3, type=$4, status=$5, location=$6,
			patient_id=$7, staff_id=$8, record_id=$9, version = version + 1
		WHERE id = $1 AND version = $10`,
		v.ID, v.Date, v.Time, v.Type, v.Status, v.Location,
		v.PatientID, v.StaffID, v.RecordID, v.Version)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return resource.ErrStale
	}
	return nil
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM visit WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return resource.ErrStale
	}
	return nil
}

func (r *repoPG) ListAll(ctx context.Context) ([]*Visit, error) {
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+cols+` FROM visit ORDER BY date, time`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Visit
	for rows.Next() {
		v, err := scanRow(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, v)
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

func (r *repoPG) StaffSummary(ctx context.Context, id uuid.UUID) (*staff.Summary, error) {
	var s staff.Summary
	err := r.conn(ctx).QueryRow(ctx,
		`SELECT id, full_name, council_registration FROM staff WHERE id = $1`, id).
		Scan(&s.ID, &s.FullName, &s.CouncilRegistration)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *repoPG) RecordSummary(ctx context.Context, id uuid.UUID) (*record.Summary, error) {
	var s record.Summary
	err := r.conn(ctx).QueryRow(ctx,
		`SELECT id, record_number FROM record WHERE id = $1`, id).
		Scan(&s.ID, &s.RecordNumber)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}
