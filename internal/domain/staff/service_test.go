package staff

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/hospisim/hospisim/internal/domain/specialty"
	"github.com/hospisim/hospisim/internal/platform/apperr"
	"github.com/hospisim/hospisim/internal/platform/integrity"
	"github.com/hospisim/hospisim/internal/platform/resource"
	"github.com/hospisim/hospisim/pkg/brdate"
)

type fakeRepo struct {
	items       map[uuid.UUID]*Staff
	specialties map[uuid.UUID]*specialty.Summary
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		items:       map[uuid.UUID]*Staff{},
		specialties: map[uuid.UUID]*specialty.Summary{},
	}
}

func (r *fakeRepo) Insert(ctx context.Context, s *Staff) error {
	cp := *s
	r.items[s.ID] = &cp
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*Staff, error) {
	s, ok := r.items[id]
	if !ok {
		return nil, resource.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *fakeRepo) Update(ctx context.Context, s *Staff) error {
	stored, ok := r.items[s.ID]
	if !ok || stored.Version != s.Version {
		return resource.ErrStale
	}
	cp := *s
	cp.Version++
	r.items[s.ID] = &cp
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.items[id]; !ok {
		return resource.ErrStale
	}
	delete(r.items, id)
	return nil
}

func (r *fakeRepo) ListAll(ctx context.Context) ([]*Staff, error) {
	out := make([]*Staff, 0, len(r.items))
	for _, s := range r.items {
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeRepo) SpecialtySummary(ctx context.Context, id uuid.UUID) (*specialty.Summary, error) {
	return r.specialties[id], nil
}

type fakeChecker struct {
	knownSpecialties map[uuid.UUID]bool
	taken            map[string]bool
	dependent        *integrity.Dependent
}

func newFakeChecker() *fakeChecker {
	return &fakeChecker{knownSpecialties: map[uuid.UUID]bool{}, taken: map[string]bool{}}
}

func (c *fakeChecker) ExistsWhere(ctx context.Context, table, column string, value interface{}) (bool, error) {
	id, ok := value.(uuid.UUID)
	return ok && c.knownSpecialties[id], nil
}

func (c *fakeChecker) IsUnique(ctx context.Context, table, column string, value interface{}, idColumn string, excludeID uuid.UUID) (bool, error) {
	s, _ := value.(string)
	return !c.taken[s], nil
}

func (c *fakeChecker) FirstDependent(ctx context.Context, deps []integrity.Dependent, id uuid.UUID) (*integrity.Dependent, error) {
	return c.dependent, nil
}

func validStaff(specialtyID uuid.UUID) *Staff {
	return &Staff{
		FullName:            "Carlos Pereira",
		CPF:                 "98765432100",
		Email:               "carlos.pereira@hospital.org",
		CouncilRegistration: "CRM-12345",
		RegistrationType:    "CRM",
		SpecialtyID:         specialtyID,
		AdmissionDate:       brdate.NewDate(2020, 6, 1),
		WeeklyHours:         40,
		Shift:               ShiftMorning,
		Active:              true,
	}
}

func TestCreate_UnknownSpecialty(t *testing.T) {
	svc := NewService(newFakeRepo(), newFakeChecker(), nil)
	err := svc.Create(context.Background(), validStaff(uuid.New()))
	if apperr.KindOf(err) != apperr.KindBadReference {
		t.Fatalf("expected bad-reference error, got %v", err)
	}
}

func TestCreate_DuplicateEmail(t *testing.T) {
	check := newFakeChecker()
	spID := uuid.New()
	check.knownSpecialties[spID] = true
	check.taken["carlos.pereira@hospital.org"] = true
	// The CPF check runs first, so it must pass for the email check to fire.
	svc := NewService(newFakeRepo(), check, nil)

	err := svc.Create(context.Background(), validStaff(spID))
	if apperr.KindOf(err) != apperr.KindConflictUnique {
		t.Fatalf("expected unique conflict, got %v", err)
	}
	if !strings.Contains(err.Error(), "email") {
		t.Errorf("expected email conflict message, got %q", err.Error())
	}
}

func TestCreate_DuplicateCouncilRegistration(t *testing.T) {
	check := newFakeChecker()
	spID := uuid.New()
	check.knownSpecialties[spID] = true
	check.taken["CRM-12345"] = true
	svc := NewService(newFakeRepo(), check, nil)

	err := svc.Create(context.Background(), validStaff(spID))
	if apperr.KindOf(err) != apperr.KindConflictUnique {
		t.Fatalf("expected unique conflict, got %v", err)
	}
	if !strings.Contains(err.Error(), "council registration") {
		t.Errorf("expected council registration conflict, got %q", err.Error())
	}
}

func TestCreate_CouncilRegistrationLengthBoundary(t *testing.T) {
	check := newFakeChecker()
	spID := uuid.New()
	check.knownSpecialties[spID] = true

	// 50 characters is the documented limit and must fit the storage column.
	s := validStaff(spID)
	s.CouncilRegistration = "CRM-" + strings.Repeat("9", 46)
	if err := NewService(newFakeRepo(), check, nil).Create(context.Background(), s); err != nil {
		t.Fatalf("Create() with a 50-char council registration failed: %v", err)
	}

	s = validStaff(spID)
	s.CouncilRegistration = strings.Repeat("9", 51)
	err := NewService(newFakeRepo(), check, nil).Create(context.Background(), s)
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("expected validation error for a 51-char council registration, got %v", err)
	}
}

func TestCreate_WeeklyHoursRange(t *testing.T) {
	check := newFakeChecker()
	spID := uuid.New()
	check.knownSpecialties[spID] = true

	for _, hours := range []int{0, -5, 169} {
		svc := NewService(newFakeRepo(), check, nil)
		s := validStaff(spID)
		s.WeeklyHours = hours
		err := svc.Create(context.Background(), s)
		if apperr.KindOf(err) != apperr.KindValidation {
			t.Errorf("weekly_hours=%d: expected validation error, got %v", hours, err)
		}
	}
}

func TestCreate_BadShift(t *testing.T) {
	check := newFakeChecker()
	spID := uuid.New()
	check.knownSpecialties[spID] = true
	svc := NewService(newFakeRepo(), check, nil)

	s := validStaff(spID)
	s.Shift = "graveyard"
	err := svc.Create(context.Background(), s)
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDelete_BlockedByVisits(t *testing.T) {
	repo := newFakeRepo()
	check := newFakeChecker()
	spID := uuid.New()
	check.knownSpecialties[spID] = true
	svc := NewService(repo, check, nil)

	s := validStaff(spID)
	if err := svc.Create(context.Background(), s); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	check.dependent = &integrity.Dependent{Table: "visit", Column: "staff_id", Message: "staff member has visits and cannot be deleted"}
	err := svc.Delete(context.Background(), s.ID)
	if apperr.KindOf(err) != apperr.KindConflictDependents {
		t.Fatalf("expected dependents conflict, got %v", err)
	}
}

func TestPresent_EmbedsSpecialty(t *testing.T) {
	repo := newFakeRepo()
	check := newFakeChecker()
	spID := uuid.New()
	check.knownSpecialties[spID] = true
	repo.specialties[spID] = &specialty.Summary{ID: spID, Name: "Cardiology"}
	svc := NewService(repo, check, nil)

	s := validStaff(spID)
	if err := svc.Create(context.Background(), s); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	resp, err := svc.Present(context.Background(), s)
	if err != nil {
		t.Fatalf("Present() error: %v", err)
	}
	if resp.Specialty == nil || resp.Specialty.Name != "Cardiology" {
		t.Errorf("expected embedded specialty, got %v", resp.Specialty)
	}
	if resp.CPF != "987.654.321-00" {
		t.Errorf("expected formatted CPF, got %s", resp.CPF)
	}
}
