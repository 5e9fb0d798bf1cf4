package discharge

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hospisim/hospisim/internal/domain/admission"
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

const cols = `admission_id, discharge_date, patient_condition, post_discharge_instructions, version`

func scanRow(row pgx.Row) (*Discharge, error) {
	var d Discharge
	err := row.Scan(&d.AdmissionID, &d.DischargeDate, &d.PatientCondition,
		&d.PostDischargeInstructions, &d.Version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, resource.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (r *repoPG) Insert(ctx context.Context, d *Discharge) error {
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO discharge (admission_id, discharge_date, patient_condition,
			post_discharge_instructions, version)
		VALUES ($1,$2,$3,$4,$5)`,
		d.AdmissionID, d.DischargeDate, d.PatientCondition,
		d.PostDischargeInstructions, d.Version)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Discharge, error) {
	return scanRow(r.conn(ctx).QueryRow(ctx, `SELECT `+cols+` FROM discharge WHERE admission_id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, d *Discharge) error {
	tag, err := r.conn(ctx).Exec(ctx, `
		UPDATE discharge SET discharge_date=$2, patient_condition=$3,
			post_discharge_instructions=$4, version = version + 1
		WHERE admission_id = $1 AND version = $5`,
		d.AdmissionID, d.DischargeDate, d.PatientCondition,
		d.PostDischargeInstructions, d.Version)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return resource.ErrStale
	}
	return nil
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM discharge WHERE admission_id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return resource.ErrStale
	}
	return nil
}

func (r *repoPG) ListAll(ctx context.Context) ([]*Discharge, error) {
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+cols+` FROM discharge ORDER BY discharge_date`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Discharge
	for rows.Next() {
		d, err := scanRow(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	return items, rows.Err()
}

func (r *repoPG) AdmissionSummary(ctx context.Context, id uuid.UUID) (*admission.Summary, error) {
	var s admission.Summary
	err := r.conn(ctx).QueryRow(ctx,
		`SELECT id, entry_date, bed, sector FROM admission WHERE id = $1`, id).
		Scan(&s.ID, &s.EntryDate, &s.Bed, &s.Sector)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}
