package prescription

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/hospisim/hospisim/internal/domain/staff"
	"github.com/hospisim/hospisim/internal/domain/visit"
	"github.com/hospisim/hospisim/internal/platform/apperr"
	"github.com/hospisim/hospisim/internal/platform/integrity"
	"github.com/hospisim/hospisim/internal/platform/resource"
	"github.com/hospisim/hospisim/pkg/brdate"
)

type fakeRepo struct {
	items map[uuid.UUID]*Prescription
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{items: map[uuid.UUID]*Prescription{}}
}

func (r *fakeRepo) Insert(ctx context.Context, p *Prescription) error {
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*Prescription, error) {
	p, ok := r.items[id]
	if !ok {
		return nil, resource.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakeRepo) Update(ctx context.Context, p *Prescription) error {
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

func (r *fakeRepo) ListAll(ctx context.Context) ([]*Prescription, error) {
	out := make([]*Prescription, 0, len(r.items))
	for _, p := range r.items {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeRepo) VisitSummary(ctx context.Context, id uuid.UUID) (*visit.Summary, error) {
	return &visit.Summary{
		ID:   id,
		Date: brdate.NewDate(2024, 5, 20),
		Time: brdate.TimeOfDay{Hour: 14, Minute: 30},
		Type: visit.TypeConsultation,
	}, nil
}

func (r *fakeRepo) StaffSummary(ctx context.Context, id uuid.UUID) (*staff.Summary, error) {
	return &staff.Summary{ID: id, FullName: "Carlos Pereira", CouncilRegistration: "CRM-12345"}, nil
}

type fakeChecker struct {
	known map[uuid.UUID]bool
}

func newFakeChecker() *fakeChecker {
	return &fakeChecker{known: map[uuid.UUID]bool{}}
}

func (c *fakeChecker) ExistsWhere(ctx context.Context, table, column string, value interface{}) (bool, error) {
	id, ok := value.(uuid.UUID)
	return ok && c.known[id], nil
}

func (c *fakeChecker) IsUnique(ctx context.Context, table, column string, value interface{}, idColumn string, excludeID uuid.UUID) (bool, error) {
	return true, nil
}

func (c *fakeChecker) FirstDependent(ctx context.Context, deps []integrity.Dependent, id uuid.UUID) (*integrity.Dependent, error) {
	return nil, nil
}

func validPrescription(visitID, staffID uuid.UUID) *Prescription {
	return &Prescription{
		VisitID:    visitID,
		StaffID:    staffID,
		Medication: "Amoxicillin 500mg",
		Dosage:     "1 capsule",
		Frequency:  "every 8 hours",
		Route:      "oral",
		StartDate:  brdate.NewDate(2024, 5, 20),
		Status:     StatusActive,
	}
}

func seededChecker() (*fakeChecker, uuid.UUID, uuid.UUID) {
	check := newFakeChecker()
	visitID, staffID := uuid.New(), uuid.New()
	check.known[visitID] = true
	check.known[staffID] = true
	return check, visitID, staffID
}

func TestCreate_UnknownVisit(t *testing.T) {
	check, _, staffID := seededChecker()
	svc := NewService(newFakeRepo(), check, nil)

	err := svc.Create(context.Background(), validPrescription(uuid.New(), staffID))
	if apperr.KindOf(err) != apperr.KindBadReference {
		t.Fatalf("expected bad-reference error, got %v", err)
	}
	if !strings.Contains(err.Error(), "visit") {
		t.Errorf("expected visit message, got %q", err.Error())
	}
}

func TestCreate_UnknownStaff(t *testing.T) {
	check, visitID, _ := seededChecker()
	svc := NewService(newFakeRepo(), check, nil)

	err := svc.Create(context.Background(), validPrescription(visitID, uuid.New()))
	if apperr.KindOf(err) != apperr.KindBadReference {
		t.Fatalf("expected bad-reference error, got %v", err)
	}
	if !strings.Contains(err.Error(), "staff member") {
		t.Errorf("expected staff message, got %q", err.Error())
	}
}

func TestCreate_ValidationRules(t *testing.T) {
	check, visitID, staffID := seededChecker()

	long := strings.Repeat("x", 501)
	end := brdate.NewDate(2024, 5, 10)
	cases := []struct {
		name   string
		mutate func(p *Prescription)
	}{
		{"missing medication", func(p *Prescription) { p.Medication = "  " }},
		{"medication too long", func(p *Prescription) { p.Medication = strings.Repeat("m", 101) }},
		{"missing dosage", func(p *Prescription) { p.Dosage = "" }},
		{"missing frequency", func(p *Prescription) { p.Frequency = "" }},
		{"missing route", func(p *Prescription) { p.Route = "" }},
		{"missing start date", func(p *Prescription) { p.StartDate = brdate.Date{} }},
		{"end before start", func(p *Prescription) { p.EndDate = &end }},
		{"notes too long", func(p *Prescription) { p.Notes = &long }},
		{"bad status", func(p *Prescription) { p.Status = "expired" }},
		{"adverse reactions too long", func(p *Prescription) { p.AdverseReactions = &long }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validPrescription(visitID, staffID)
			tc.mutate(p)
			err := NewService(newFakeRepo(), check, nil).Create(context.Background(), p)
			if apperr.KindOf(err) != apperr.KindValidation {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

func TestCreate_TrimsTextFields(t *testing.T) {
	repo := newFakeRepo()
	check, visitID, staffID := seededChecker()
	svc := NewService(repo, check, nil)

	p := validPrescription(visitID, staffID)
	p.Medication = "  Dipyrone 1g  "
	p.Route = " intravenous "
	if err := svc.Create(context.Background(), p); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	stored, err := svc.Get(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if stored.Medication != "Dipyrone 1g" || stored.Route != "intravenous" {
		t.Errorf("expected trimmed fields, got %q / %q", stored.Medication, stored.Route)
	}
}

func TestUpdate_SuspendsPrescription(t *testing.T) {
	repo := newFakeRepo()
	check, visitID, staffID := seededChecker()
	svc := NewService(repo, check, nil)

	p := validPrescription(visitID, staffID)
	if err := svc.Create(context.Background(), p); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	upd := validPrescription(visitID, staffID)
	upd.ID = p.ID
	upd.Status = StatusSuspended
	reaction := "rash on forearms"
	upd.AdverseReactions = &reaction
	if err := svc.Update(context.Background(), p.ID, upd); err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if upd.Version != 2 {
		t.Errorf("expected version 2 after update, got %d", upd.Version)
	}

	stored, err := svc.Get(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if stored.Status != StatusSuspended || stored.AdverseReactions == nil {
		t.Errorf("expected suspended prescription with reactions, got %+v", stored)
	}
}

func TestPresent_EmbedsVisitAndStaff(t *testing.T) {
	repo := newFakeRepo()
	check, visitID, staffID := seededChecker()
	svc := NewService(repo, check, nil)

	p := validPrescription(visitID, staffID)
	if err := svc.Create(context.Background(), p); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	resp, err := svc.Present(context.Background(), p)
	if err != nil {
		t.Fatalf("Present() error: %v", err)
	}
	if resp.Visit == nil || resp.Staff == nil {
		t.Fatalf("expected visit and staff summaries, got visit=%v staff=%v", resp.Visit, resp.Staff)
	}
	if resp.Staff.FullName != "Carlos Pereira" {
		t.Errorf("unexpected staff summary: %+v", resp.Staff)
	}
}
