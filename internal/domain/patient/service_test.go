package patient

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/hospisim/hospisim/internal/platform/apperr"
	"github.com/hospisim/hospisim/internal/platform/integrity"
	"github.com/hospisim/hospisim/internal/platform/resource"
	"github.com/hospisim/hospisim/pkg/brdate"
)

type fakeRepo struct {
	items map[uuid.UUID]*Patient
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{items: map[uuid.UUID]*Patient{}}
}

func (r *fakeRepo) Insert(ctx context.Context, p *Patient) error {
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*Patient, error) {
	p, ok := r.items[id]
	if !ok {
		return nil, resource.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakeRepo) Update(ctx context.Context, p *Patient) error {
	stored, ok := r.items[p.ID]
	if !ok || stored.Version != p.Version {
		return resource.ErrStale
	}
	cp := *p
	cp.Version++
	r.items[p.ID] = &cp
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.items[id]; !ok {
		return resource.ErrStale
	}
	delete(r.items, id)
	return nil
}

func (r *fakeRepo) ListAll(ctx context.Context) ([]*Patient, error) {
	out := make([]*Patient, 0, len(r.items))
	for _, p := range r.items {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

type fakeChecker struct {
	takenCPF  map[string]bool
	dependent *integrity.Dependent
}

func newFakeChecker() *fakeChecker {
	return &fakeChecker{takenCPF: map[string]bool{}}
}

func (c *fakeChecker) ExistsWhere(ctx context.Context, table, column string, value interface{}) (bool, error) {
	return false, nil
}

func (c *fakeChecker) IsUnique(ctx context.Context, table, column string, value interface{}, idColumn string, excludeID uuid.UUID) (bool, error) {
	s, _ := value.(string)
	return !c.takenCPF[s], nil
}

func (c *fakeChecker) FirstDependent(ctx context.Context, deps []integrity.Dependent, id uuid.UUID) (*integrity.Dependent, error) {
	return c.dependent, nil
}

func validPatient() *Patient {
	return &Patient{
		FullName:      "Ana Souza",
		CPF:           "123.456.789-01",
		BirthDate:     brdate.NewDate(1990, 3, 15),
		Sex:           SexFemale,
		BloodType:     "O+",
		MaritalStatus: MaritalSingle,
	}
}

func TestCreate_NormalizesCPFToDigits(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, newFakeChecker(), nil)

	p := validPatient()
	if err := svc.Create(context.Background(), p); err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if p.CPF != "12345678901" {
		t.Errorf("expected stored CPF 12345678901, got %s", p.CPF)
	}
	if got := p.Response().CPF; got != "123.456.789-01" {
		t.Errorf("expected formatted CPF in response, got %s", got)
	}
}

func TestCreate_DuplicateCPF(t *testing.T) {
	check := newFakeChecker()
	check.takenCPF["12345678901"] = true
	svc := NewService(newFakeRepo(), check, nil)

	err := svc.Create(context.Background(), validPatient())
	if apperr.KindOf(err) != apperr.KindConflictUnique {
		t.Fatalf("expected unique conflict, got %v", err)
	}
	if !strings.Contains(err.Error(), "123.456.789-01") {
		t.Errorf("expected formatted CPF in message, got %q", err.Error())
	}
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Patient)
		want   string
	}{
		{"missing name", func(p *Patient) { p.FullName = "" }, "full_name is required"},
		{"short cpf", func(p *Patient) { p.CPF = "123" }, "cpf must have exactly 11 digits"},
		{"missing birth date", func(p *Patient) { p.BirthDate = brdate.Date{} }, "birth_date is required"},
		{"bad sex", func(p *Patient) { p.Sex = "unknown" }, "sex must be one of"},
		{"bad blood type", func(p *Patient) { p.BloodType = "C+" }, "blood_type"},
		{"bad marital status", func(p *Patient) { p.MaritalStatus = "engaged" }, "marital_status"},
		{"bad email", func(p *Patient) { e := "not-an-email"; p.Email = &e }, "email is not valid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(newFakeRepo(), newFakeChecker(), nil)
			p := validPatient()
			tt.mutate(p)
			err := svc.Create(context.Background(), p)
			if apperr.KindOf(err) != apperr.KindValidation {
				t.Fatalf("expected validation error, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected message containing %q, got %q", tt.want, err.Error())
			}
		})
	}
}

func TestDelete_BlockedByRecords(t *testing.T) {
	repo := newFakeRepo()
	check := newFakeChecker()
	svc := NewService(repo, check, nil)

	p := validPatient()
	if err := svc.Create(context.Background(), p); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	check.dependent = &integrity.Dependent{Table: "record", Column: "patient_id", Message: "patient has records and cannot be deleted"}
	err := svc.Delete(context.Background(), p.ID)
	if apperr.KindOf(err) != apperr.KindConflictDependents {
		t.Fatalf("expected dependents conflict, got %v", err)
	}
	if err.Error() != "patient has records and cannot be deleted" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestPresent_FormatsPhone(t *testing.T) {
	svc := NewService(newFakeRepo(), newFakeChecker(), nil)
	p := validPatient()
	phone := "11987654321"
	p.Phone = &phone

	resp, err := svc.Present(context.Background(), p)
	if err != nil {
		t.Fatalf("Present() error: %v", err)
	}
	if resp.Phone == nil || *resp.Phone != "(11) 98765-4321" {
		t.Errorf("expected formatted phone, got %v", resp.Phone)
	}
}

func TestUpdate_KeepsCPFUniqueExcludingSelf(t *testing.T) {
	repo := newFakeRepo()
	check := newFakeChecker()
	svc := NewService(repo, check, nil)

	p := validPatient()
	if err := svc.Create(context.Background(), p); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	upd := validPatient()
	upd.FullName = "Ana Souza Lima"
	if err := svc.Update(context.Background(), p.ID, upd); err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if repo.items[p.ID].FullName != "Ana Souza Lima" {
		t.Errorf("expected updated name, got %s", repo.items[p.ID].FullName)
	}
	if upd.Version != 2 {
		t.Errorf("expected version 2, got %d", upd.Version)
	}
}
