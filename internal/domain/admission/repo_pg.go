package admission

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hospisim/hospisim/internal/domain/patient"
	"github.com/hospisim/hospisim/internal/domain/visit"
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

const cols = `id, patient_id, visit_id, entry_date, expected_discharge, reason,
	bed, room, sector, health_plan, clinical_notes, status, version`

func scanRow(row pgx.Row) (*Admission, error) {
	var a Admission
	err := row.Scan(&a.ID, &a.PatientID, &a.VisitID, &a.EntryDate,
		&a.ExpectedDischarge, &a.Reason, &a.Bed, &a.Room, &a.Sector,
		&a.HealthPlan, &a.ClinicalNotes, &a.Status, &a.Version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, resource.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *repoPG) Insert(ctx context.Context, a *Admission) error {
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO admission (id, patient_id, visit_id, entry_date, expected_discharge,
			reason, bed, room, sector, health_plan, clinical_notes, status, version)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
		a.ID, a.PatientID, a.VisitID, a.EntryDate, a.ExpectedDischarge,
		a.Reason, a.Bed, a.Room, a.Sector, a.HealthPlan, a.ClinicalNotes,
		a.Status, a.Version)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Admission, error) {
	return scanRow(r.conn(ctx).QueryRow(ctx, `SELECT `+cols+` FROM admission WHERE id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, a *Admission) error {
	tag, err := r.conn(ctx).Exec(ctx, `
		UPDATE admission SET patient_id=$2, visit_id=$3, entry_date=$4,
			expected_discharge=$5, reason=$6, bed=$7, room=$8, sector=$9,
			health_plan=$10, clinical_notes=$11, status=$12, version = version + 1
		WHERE id = $1 AND version = $13`,
		a.ID, a.PatientID, a.VisitID, a.EntryDate, a.ExpectedDischarge,
		a.Reason, a.Bed, a.Room, a.Sector, a.HealthPlan, a.ClinicalNotes,
		a.Status, a.Version)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return resource.ErrStale
	}
	return nil
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM admission WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return resource.ErrStale
	}
	return nil
}

func (r *repoPG) ListAll(ctx context.Context) ([]*Admission, error) {
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+cols+` FROM admission ORDER BY entry_date, sector, bed`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Admission
	for rows.Next() {
		a, err := scanRow(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, a)
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
