package prescription

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hospisim/hospisim/internal/domain/staff"
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

const cols = `id, visit_id, staff_id, medication, dosage, frequency, route,
	start_date, end_date, notes, status, adverse_reactions, version`

func scanRow(row pgx.Row) (*Prescription, error) {
	var p Prescription
	err := row.Scan(&p.ID, &p.VisitID, &p.StaffID, &p.Medication, &p.Dosage,
		&p.Frequency, &p.Route, &p.StartDate, &p.EndDate, &p.Notes,
		&p.Status, &p.AdverseReactions, &p.Version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, resource.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *repoPG) Insert(ctx context.Context, p *Prescription) error {
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO prescription (id, visit_id, staff_id, medication, dosage, frequency, route,
			start_date, end_date, notes, status, adverse_reactions, version)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
		p.ID, p.VisitID, p.StaffID, p.Medication, p.Dosage, p.Frequency, p.Route,
		p.StartDate, p.EndDate, p.Notes, p.Status, p.AdverseReactions, p.Version)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Prescription, error) {
	return scanRow(r.conn(ctx).QueryRow(ctx, `SELECT `+cols+` FROM prescription WHERE id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, p *Prescription) error {
	tag, err := r.conn(ctx).Exec(ctx, `
		UPDATE prescription SET visit_id=$2, staff_id=$3, medication=$4, dosage=$5,
			frequency=$6, route=$7, start_date=$8, end_date=$9, notes=$10,
			status=$11, adverse_reactions=$12, version = version + 1
		WHERE id = $1 AND version = $13`,
		p.ID, p.VisitID, p.StaffID, p.Medication, p.Dosage, p.Frequency, p.Route,
		p.StartDate, p.EndDate, p.Notes, p.Status, p.AdverseReactions, p.Version)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return resource.ErrStale
	}
	return nil
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM prescription WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return resource.ErrStale
	}
	return nil
}

func (r *repoPG) ListAll(ctx context.Context) ([]*Prescription, error) {
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+cols+` FROM prescription ORDER BY start_date, medication`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Prescription
	for rows.Next() {
		p, err := scanRow(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
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
