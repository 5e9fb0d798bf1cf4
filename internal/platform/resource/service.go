package resource

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/hospisim/hospisim/internal/platform/apperr"
	"github.com/hospisim/hospisim/internal/platform/db"
)

const (
	pgUniqueViolation      = "23505"
	pgForeignKeyViolation  = "23503"
	pgSerializationFailure = "40001"
)

// Service runs the standard CRUD operations for one entity against its
// Descriptor. Writes execute inside a single transaction so the integrity
// pre-checks and the statement they protect see the same data.
type Service[T Entity] struct {
	repo     Repo[T]
	check    Checker
	beginner db.Beginner
	desc     Descriptor[T]
}

// NewService wires a Service. beginner is the pgx pool in production and nil
// in unit tests, where writes run without a transaction.
func NewService[T Entity](repo Repo[T], check Checker, beginner db.Beginner, desc Descriptor[T]) *Service[T] {
	if desc.IDColumn == "" {
		desc.IDColumn = "id"
	}
	return &Service[T]{repo: repo, check: check, beginner: beginner, desc: desc}
}

// Descriptor exposes the entity metadata, mainly for handlers building
// Location headers and messages.
func (s *Service[T]) Descriptor() Descriptor[T] {
	return s.desc
}

// List returns every entity. An empty collection is reported as not found,
// matching the API's contract for list endpoints.
func (s *Service[T]) List(ctx context.Context) ([]T, error) {
	items, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, apperr.Internalf(err, "listing %s", s.desc.Plural)
	}
	if len(items) == 0 {
		return nil, apperr.NotFoundf("no %s found", s.desc.Plural)
	}
	return items, nil
}

// Get returns the entity with the given id.
func (s *Service[T]) Get(ctx context.Context, id uuid.UUID) (T, error) {
	ent, err := s.repo.GetByID(ctx, id)
	if err != nil {
		var zero T
		if errors.Is(err, ErrNotFound) {
			return zero, apperr.NotFoundf("%s %s not found", s.desc.Singular, id)
		}
		return zero, apperr.Internalf(err, "loading %s %s", s.desc.Singular, id)
	}
	return ent, nil
}

// Create validates the entity, verifies its references and uniqueness rules
// and inserts it, all in one transaction.
func (s *Service[T]) Create(ctx context.Context, ent T) error {
	if err := s.prepare(ent); err != nil {
		return err
	}
	return db.WithTx(ctx, s.beginner, func(ctx context.Context) error {
		if err := s.checkRefs(ctx, ent); err != nil {
			return err
		}
		if err := s.checkUnique(ctx, ent, uuid.Nil); err != nil {
			return err
		}
		if s.desc.AssignID {
			ent.SetEntityID(uuid.New())
		}
		ent.SetEntityVersion(1)
		if err := s.repo.Insert(ctx, ent); err != nil {
			return s.classify(ent, err)
		}
		return nil
	})
}

// Update replaces the entity identified by id. A body id differing from the
// path id is rejected. The stored version guards against concurrent writes;
// a request that omits the version inherits the current one.
func (s *Service[T]) Update(ctx context.Context, id uuid.UUID, ent T) error {
	if ent.EntityID() != uuid.Nil && ent.EntityID() != id {
		return apperr.Validationf("body id %s does not match path id %s", ent.EntityID(), id)
	}
	ent.SetEntityID(id)
	if err := s.prepare(ent); err != nil {
		return err
	}
	return db.WithTx(ctx, s.beginner, func(ctx context.Context) error {
		current, err := s.repo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return apperr.NotFoundf("%s %s not found", s.desc.Singular, id)
			}
			return apperr.Internalf(err, "loading %s %s", s.desc.Singular, id)
		}
		if err := s.checkRefs(ctx, ent); err != nil {
			return err
		}
		if err := s.checkUnique(ctx, ent, id); err != nil {
			return err
		}
		if ent.EntityVersion() == 0 {
			ent.SetEntityVersion(current.EntityVersion())
		}
		if err := s.repo.Update(ctx, ent); err != nil {
			if errors.Is(err, ErrStale) {
				return apperr.Concurrencyf("%s %s was modified concurrently", s.desc.Singular, id)
			}
			return s.classify(ent, err)
		}
		ent.SetEntityVersion(ent.EntityVersion() + 1)
		return nil
	})
}

// Delete removes the entity identified by id unless dependent rows exist.
func (s *Service[T]) Delete(ctx context.Context, id uuid.UUID) error {
	return db.WithTx(ctx, s.beginner, func(ctx context.Context) error {
		ent, err := s.repo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return apperr.NotFoundf("%s %s not found", s.desc.Singular, id)
			}
			return apperr.Internalf(err, "loading %s %s", s.desc.Singular, id)
		}
		if len(s.desc.Dependents) > 0 {
			dep, err := s.check.FirstDependent(ctx, s.desc.Dependents, id)
			if err != nil {
				return apperr.Internalf(err, "checking dependents of %s %s", s.desc.Singular, id)
			}
			if dep != nil {
				return apperr.Dependentsf("%s", dep.Message)
			}
		}
		if err := s.repo.Delete(ctx, id); err != nil {
			if errors.Is(err, ErrStale) {
				return apperr.Concurrencyf("%s %s was modified concurrently", s.desc.Singular, id)
			}
			return s.classify(ent, err)
		}
		return nil
	})
}

func (s *Service[T]) prepare(ent T) error {
	if s.desc.Normalize != nil {
		s.desc.Normalize(ent)
	}
	if s.desc.Validate != nil {
		if err := s.desc.Validate(ent); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service[T]) checkRefs(ctx context.Context, ent T) error {
	for _, rule := range s.desc.Refs {
		found, err := s.check.ExistsWhere(ctx, rule.Table, "id", rule.ID(ent))
		if err != nil {
			return apperr.Internalf(err, "checking %s reference of %s", rule.Table, s.desc.Singular)
		}
		if !found {
			return apperr.BadReferencef("%s", rule.Message(ent))
		}
	}
	return nil
}

func (s *Service[T]) checkUnique(ctx context.Context, ent T, excludeID uuid.UUID) error {
	for _, rule := range s.desc.Unique {
		unique, err := s.check.IsUnique(ctx, s.desc.Table, rule.Column, rule.Value(ent), s.desc.IDColumn, excludeID)
		if err != nil {
			return apperr.Internalf(err, "checking %s.%s uniqueness", s.desc.Table, rule.Column)
		}
		if !unique {
			if rule.OneToOne {
				return apperr.OneToOnef("%s", rule.Message(ent))
			}
			return apperr.Duplicatef("%s", rule.Message(ent))
		}
	}
	return nil
}

// classify maps constraint violations raised by the database to the same
// client outcomes the pre-checks produce, covering writes that race past
// the in-transaction checks.
func (s *Service[T]) classify(ent T, err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return apperr.Internalf(err, "writing %s", s.desc.Singular)
	}
	switch pgErr.Code {
	case pgUniqueViolation:
		for _, rule := range s.desc.Unique {
			if rule.Constraint == pgErr.ConstraintName {
				if rule.OneToOne {
					return apperr.OneToOnef("%s", rule.Message(ent))
				}
				return apperr.Duplicatef("%s", rule.Message(ent))
			}
		}
		return apperr.Duplicatef("%s violates a uniqueness constraint", s.desc.Singular)
	case pgForeignKeyViolation:
		for _, rule := range s.desc.Refs {
			if rule.Constraint == pgErr.ConstraintName {
				return apperr.BadReferencef("%s", rule.Message(ent))
			}
		}
		return apperr.Dependentsf("%s is referenced by other records and cannot be deleted", s.desc.Singular)
	case pgSerializationFailure:
		return apperr.Concurrencyf("%s was modified concurrently", s.desc.Singular)
	}
	return apperr.Internalf(err, "writing %s", s.desc.Singular)
}
