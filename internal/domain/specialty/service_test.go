package specialty

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/hospisim/hospisim/internal/platform/apperr"
	"github.com/hospisim/hospisim/internal/platform/integrity"
	"github.com/hospisim/hospisim/internal/platform/resource"
)

type fakeRepo struct {
	items map[uuid.UUID]*Specialty
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{items: map[uuid.UUID]*Specialty{}}
}

func (r *fakeRepo) Insert(ctx context.Context, s *Specialty) error {
	cp := *s
	r.items[s.ID] = &cp
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*Specialty, error) {
	s, ok := r.items[id]
	if !ok {
		return nil, resource.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *fakeRepo) Update(ctx context.Context, s *Specialty) error {
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

func (r *fakeRepo) ListAll(ctx context.Context) ([]*Specialty, error) {
	out := make([]*Specialty, 0, len(r.items))
	for _, s := range r.items {
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

type fakeChecker struct {
	takenNames map[string]bool
	dependent  *integrity.Dependent
}

func newFakeChecker() *fakeChecker {
	return &fakeChecker{takenNames: map[string]bool{}}
}

func (c *fakeChecker) ExistsWhere(ctx context.Context, table, column string, value interface{}) (bool, error) {
	return false, nil
}

func (c *fakeChecker) IsUnique(ctx context.Context, table, column string, value interface{}, idColumn string, excludeID uuid.UUID) (bool, error) {
	s, _ := value.(string)
	return !c.takenNames[s], nil
}

func (c *fakeChecker) FirstDependent(ctx context.Context, deps []integrity.Dependent, id uuid.UUID) (*integrity.Dependent, error) {
	return c.dependent, nil
}

func TestCreate_TrimsAndStores(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, newFakeChecker(), nil)

	sp := &Specialty{Name: "  Cardiology  "}
	if err := svc.Create(context.Background(), sp); err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if sp.Name != "Cardiology" {
		t.Errorf("expected trimmed name, got %q", sp.Name)
	}
}

func TestCreate_DuplicateName(t *testing.T) {
	check := newFakeChecker()
	check.takenNames["Cardiology"] = true
	svc := NewService(newFakeRepo(), check, nil)

	err := svc.Create(context.Background(), &Specialty{Name: "Cardiology"})
	if apperr.KindOf(err) != apperr.KindConflictUnique {
		t.Fatalf("expected unique conflict, got %v", err)
	}
}

func TestCreate_EmptyName(t *testing.T) {
	svc := NewService(newFakeRepo(), newFakeChecker(), nil)
	err := svc.Create(context.Background(), &Specialty{Name: "   "})
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDelete_BlockedByStaff(t *testing.T) {
	repo := newFakeRepo()
	check := newFakeChecker()
	svc := NewService(repo, check, nil)

	sp := &Specialty{Name: "Cardiology"}
	if err := svc.Create(context.Background(), sp); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	check.dependent = &integrity.Dependent{Table: "staff", Column: "specialty_id", Message: "specialty has staff assigned and cannot be deleted"}
	err := svc.Delete(context.Background(), sp.ID)
	if apperr.KindOf(err) != apperr.KindConflictDependents {
		t.Fatalf("expected dependents conflict, got %v", err)
	}
}
