// Package resource implements the shared CRUD core behind every API
// collection. A Descriptor declares an entity's table, uniqueness rules,
// outbound references and delete blockers; Service runs the pre-checks and
// persistence inside a single transaction, and Handler exposes the five
// standard routes. Domain packages only supply descriptors, repositories
// and response shaping.
package resource

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/hospisim/hospisim/internal/platform/integrity"
)

// ErrNotFound is returned by repositories when no row matches an id.
var ErrNotFound = errors.New("resource: not found")

// ErrStale is returned by repositories when a version-guarded write matched
// no row, meaning the entity changed or disappeared underneath the caller.
var ErrStale = errors.New("resource: stale version")

// Entity is the persistence contract shared by every aggregate.
type Entity interface {
	EntityID() uuid.UUID
	SetEntityID(uuid.UUID)
	EntityVersion() int64
	SetEntityVersion(int64)
}

// Base carries the identifier and optimistic-concurrency version common to
// entities keyed by their own id column. Embed it by pointer receiver use.
type Base struct {
	ID      uuid.UUID `db:"id" json:"id"`
	Version int64     `db:"version" json:"version"`
}

func (b *Base) EntityID() uuid.UUID      { return b.ID }
func (b *Base) SetEntityID(id uuid.UUID) { b.ID = id }
func (b *Base) EntityVersion() int64     { return b.Version }
func (b *Base) SetEntityVersion(v int64) { b.Version = v }

// Repo is the persistence surface Service drives. Implementations return
// ErrNotFound from GetByID and ErrStale from version-guarded writes that
// match no row.
type Repo[T Entity] interface {
	Insert(ctx context.Context, ent T) error
	GetByID(ctx context.Context, id uuid.UUID) (T, error)
	Update(ctx context.Context, ent T) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListAll(ctx context.Context) ([]T, error)
}

// Checker is the subset of integrity.Checker the service consumes.
type Checker interface {
	ExistsWhere(ctx context.Context, table, column string, value interface{}) (bool, error)
	IsUnique(ctx context.Context, table, column string, value interface{}, idColumn string, excludeID uuid.UUID) (bool, error)
	FirstDependent(ctx context.Context, deps []integrity.Dependent, id uuid.UUID) (*integrity.Dependent, error)
}

// UniqueRule declares a column whose value must be unique across the table.
type UniqueRule[T Entity] struct {
	// Column is checked before writes via Checker.IsUnique.
	Column string
	// Constraint is the unique index name, used to classify 23505 errors
	// raised when a concurrent write slips past the pre-check.
	Constraint string
	// OneToOne marks the rule as claiming a one-target relation rather than
	// a plain duplicate value, which maps to a distinct conflict message.
	OneToOne bool
	// Value extracts the candidate value from the entity.
	Value func(T) interface{}
	// Message is the client-facing conflict text.
	Message func(T) string
}

// RefRule declares an outbound reference that must point at an existing row.
type RefRule[T Entity] struct {
	// Table is the referenced table, checked by its id column.
	Table string
	// Constraint is the foreign key name, used to classify 23503 errors.
	Constraint string
	// ID extracts the referenced id from the entity.
	ID func(T) uuid.UUID
	// Message is the client-facing text when the target does not exist.
	Message func(T) string
}

// Descriptor declares everything the shared CRUD core needs to know about
// an entity. All table and column names are static metadata.
type Descriptor[T Entity] struct {
	// Singular and Plural name the entity in client-facing messages.
	Singular string
	Plural   string
	// Table is the entity's own table.
	Table string
	// IDColumn is the primary key column, "id" for every entity except
	// discharges, which are keyed by admission_id.
	IDColumn string
	// AssignID controls whether Create generates a fresh uuid. Entities
	// keyed by a foreign id, like discharges, carry their id in the body.
	AssignID bool
	// Unique, Refs and Dependents drive the pre-write integrity checks.
	Unique     []UniqueRule[T]
	Refs       []RefRule[T]
	Dependents []integrity.Dependent
	// Normalize rewrites derived fields before validation, such as
	// stripping CPF and phone formatting down to digits. Optional.
	Normalize func(T)
	// Validate rejects malformed entities. Optional.
	Validate func(T) error
}
