package patient

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

const cols = `id, full_name, cpf, birth_date, sex, blood_type, phone, email,
	address, sus_card_number, marital_status, has_health_plan, version`

func scanRow(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(&p.ID, &p.FullName, &p.CPF, &p.BirthDate, &p.Sex, &p.BloodType,
		&p.Phone, &p.Email, &p.Address, &p.SUSCardNumber, &p.MaritalStatus,
		&p.HasHealthPlan, &p.Version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, resource.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *repoPG) Insert(ctx context.Context, p *Patient) error {
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO patient (id, full_name, cpf, birth_date, sex, blood_type,
			phone, email, address, sus_card_number, marital_status, has_health_plan, version)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
		p.ID, p.FullName, p.CPF, p.BirthDate, p.Sex, p.BloodType,
		p.Phone, p.Email, p.Address, p.SUSCardNumber, p.MaritalStatus,
		p.HasHealthPlan, p.Version)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return scanRow(r.conn(ctx).QueryRow(ctx, `SELECT `+cols+` FROM patient WHERE id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, p *Patient) error {
	tag, err := r.conn(ctx).Exec(ctx, `
		UPDATE patient SET full_name=$2, cpf=$3, birth_date=$4, sex=$5, blood_type=$6,
			phone=$7, email=$8, address=$9, sus_card_number=$10, marital_status=$11,
			has_health_plan=$12, version = version + 1
		WHERE id = $1 AND version = $13`,
		p.ID, p.FullName, p.CPF, p.BirthDate, p.Sex, p.BloodType,
		p.Phone, p.Email, p.Address, p.SUSCardNumber, p.MaritalStatus,
		p.HasHealthPlan, p.Version)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return resource.ErrStale
	}
	return nil
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM patient WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return resource.ErrStale
	}
	return nil
}

func (r *repoPG) ListAll(ctx context.Context) ([]*Patient, error) {
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+cols+` FROM patient ORDER BY full_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Patient
	for rows.Next() {
		p, err := scanRow(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}
