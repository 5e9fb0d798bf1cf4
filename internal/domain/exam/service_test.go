package exam

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/hospisim/hospisim/internal/domain/visit"
	"github.com/hospisim/hospisim/internal/platform/apperr"
	"github.com/hospisim/hospisim/internal/platform/integrity"
	"github.com/hospisim/hospisim/internal/platform/resource"
	"github.com/hospisim/hospisim/pkg/brdate"
)

type fakeRepo struct {
	items map[uuid.UUID]*Exam
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{items: map[uuid.UUID]*Exam{}}
}

func (r *fakeRepo) Insert(ctx context.Context, e *Exam) error {
	cp := *e
	r.items[e.ID] = &cp
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*Exam, error) {
	e, ok := r.items[id]
	if !ok {
		return nil, resource.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (r *fakeRepo) Update(ctx context.Context, e *Exam) error {
	stored, ok := r.items[e.ID]
	if !ok || stored.Version != e.Version {
		return resource.ErrStale
	}
	cp := *e
	cp.Version++
	r.items[e.ID] = &cp
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.items[id]; !ok {
		return resource.ErrStale
	}
	delete(r.items, id)
	return nil
}

func (r *fakeRepo) ListAll(ctx context.Context) ([]*Exam, error) {
	out := make([]*Exam, 0, len(r.items))
	for _, e := range r.items {
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeRepo) VisitSummary(ctx context.Context, id uuid.UUID) (*visit.Summary, error) {
	return &visit.Summary{
		ID:   id,
		Date: brdate.NewDate(2024, 5, 20),
		Time: brdate.TimeOfDay{Hour: 9, Minute: 15},
		Type: visit.TypeEmergency,
	}, nil
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

func validExam(visitID uuid.UUID) *Exam {
	return &Exam{
		Type:        "Complete blood count",
		RequestedAt: brdate.NewDate(2024, 5, 20),
		VisitID:     visitID,
	}
}

func TestCreate_UnknownVisit(t *testing.T) {
	check := newFakeChecker()
	svc := NewService(newFakeRepo(), check, nil)

	err := svc.Create(context.Background(), validExam(uuid.New()))
	if apperr.KindOf(err) != apperr.KindBadReference {
		t.Fatalf("expected bad-reference error, got %v", err)
	}
	if !strings.Contains(err.Error(), "visit") {
		t.Errorf("expected visit message, got %q", err.Error())
	}
}

func TestCreate_ValidationRules(t *testing.T) {
	check := newFakeChecker()
	visitID := uuid.New()
	check.known[visitID] = true

	longResult := strings.Repeat("x", 1001)
	early := brdate.NewDate(2024, 5, 10)
	cases := []struct {
		name   string
		mutate func(e *Exam)
	}{
		{"missing type", func(e *Exam) { e.Type = " " }},
		{"type too long", func(e *Exam) { e.Type = strings.Repeat("t", 101) }},
		{"missing requested date", func(e *Exam) { e.RequestedAt = brdate.Date{} }},
		{"performed before requested", func(e *Exam) { e.PerformedAt = &early }},
		{"result too long", func(e *Exam) { e.Result = &longResult }},
		{"missing visit", func(e *Exam) { e.VisitID = uuid.Nil }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := validExam(visitID)
			tc.mutate(e)
			err := NewService(newFakeRepo(), check, nil).Create(context.Background(), e)
			if apperr.KindOf(err) != apperr.KindValidation {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

func TestUpdate_RecordsResult(t *testing.T) {
	repo := newFakeRepo()
	check := newFakeChecker()
	visitID := uuid.New()
	check.known[visitID] = true
	svc := NewService(repo, check, nil)

	e := validExam(visitID)
	if err := svc.Create(context.Background(), e); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	upd := validExam(visitID)
	upd.ID = e.ID
	performed := brdate.NewDate(2024, 5, 21)
	result := "hemoglobin 13.2 g/dL, within reference range"
	upd.PerformedAt = &performed
	upd.Result = &result
	if err := svc.Update(context.Background(), e.ID, upd); err != nil {
		t.Fatalf("Update() error: %v", err)
	}

	stored, err := svc.Get(context.Background(), e.ID)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if stored.Result == nil || stored.PerformedAt == nil {
		t.Fatalf("expected result and performed date, got %+v", stored)
	}
	if stored.Version != 2 {
		t.Errorf("expected version 2 after update, got %d", stored.Version)
	}
}

func TestPresent_EmbedsVisit(t *testing.T) {
	repo := newFakeRepo()
	check := newFakeChecker()
	visitID := uuid.New()
	check.known[visitID] = true
	svc := NewService(repo, check, nil)

	e := validExam(visitID)
	if err := svc.Create(context.Background(), e); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	resp, err := svc.Present(context.Background(), e)
	if err != nil {
		t.Fatalf("Present() error: %v", err)
	}
	if resp.Visit == nil || resp.Visit.ID != visitID {
		t.Fatalf("expected visit summary, got %+v", resp.Visit)
	}
}
