package staff

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hospisim/hospisim/internal/domain/specialty"
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

const cols = `id, full_name, cpf, email, phone, council_registration, registration_type,
	specialty_id, admission_date, weekly_hours, shift, active, version`

func scanRow(row pgx.Row) (*Staff, error) {
	var s Staff
	err := row.Scan(&s.ID, &s.FullName, &s.CPF, &s.Email, &s.Phone, &s.CouncilRegistration,
		&s.RegistrationType, &s.SpecialtyID, &s.AdmissionDate, &s.WeeklyHours,
		&s.Shift, &s.Active, &s.Version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, resource.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *repoPG) Insert(ctx context.Context, s *Staff) error {
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO staff (id, full_name, cpf, email, phone, council_registration,
			registration_type, specialty_id, admission_date, weekly_hours, shift, active, version)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
		s.ID, s.FullName, s.CPF, s.Email, s.Phone, s.CouncilRegistration,
		s.RegistrationType, s.SpecialtyID, s.AdmissionDate, s.WeeklyHours,
		s.Shift, s.Active, s.Version)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Staff, error) {
	return scanRow(r.conn(ctx).QueryRow(ctx, `SELECT `+cols+` FROM staff WHERE id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, s *Staff) error {
	tag, err := r.conn(ctx).Exec(ctx, `
		UPDATE staff SET full_name=$2, cpf=$3, email=$4, phone=$5, council_registration=$6,
			registration_type=$7, specialty_id=$8, admission_date=$9, weekly_hours=$10,
			shift=$11, active=$12, version = version + 1
		WHERE id = $1 AND version = $13`,
		s.ID, s.FullName, s.CPF, s.Email, s.Phone, s.CouncilRegistration,
		s.RegistrationType, s.SpecialtyID, s.AdmissionDate, s.WeeklyHours,
		s.Shift, s.Active, s.Version)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return resource.ErrStale
	}
	return nil
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM staff WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return resource.ErrStale
	}
	return nil
}

func (r *repoPG) ListAll(ctx context.Context) ([]*Staff, error) {
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+cols+` FROM staff ORDER BY full_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Staff
	for rows.Next() {
		s, err := scanRow(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}

func (r *repoPG) SpecialtySummary(ctx context.Context, id uuid.UUID) (*specialty.Summary, error) {
	var s specialty.Summary
	err := r.conn(ctx).QueryRow(ctx,
		`SELECT id, name FROM specialty WHERE id = $1`, id).
		Scan(&s.ID, &s.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}
