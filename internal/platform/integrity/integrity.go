// Package integrity runs the relational pre-checks the API performs before
// writes: row existence, application-level uniqueness and dependent-row
// detection for restricted deletes. Table and column names always come from
// static entity metadata, never from request input.
package integrity

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hospisim/hospisim/internal/platform/db"
)

// Dependent names a table whose rows block deletion of a referenced entity.
type Dependent struct {
	// Table holds the dependent rows.
	Table string
	// Column is the foreign key column in Table pointing at the entity.
	Column string
	// Message is the client-facing conflict message when rows exist.
	Message string
}

// Checker answers existence, uniqueness and dependency questions against the
// database. Queries join the transaction carried by ctx when one is present.
type Checker struct {
	pool db.Querier
}

func NewChecker(pool *pgxpool.Pool) *Checker {
	return &Checker{pool: pool}
}

func (c *Checker) conn(ctx context.Context) db.Querier {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return c.pool
}

// ExistsWhere reports whether table holds a row with column equal to value.
// Reference checks pass the id column; dependency checks pass the foreign
// key column.
func (c *Checker) ExistsWhere(ctx context.Context, table, column string, value interface{}) (bool, error) {
	sql := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`, table, column)
	var exists bool
	if err := c.conn(ctx).QueryRow(ctx, sql, value).Scan(&exists); err != nil {
		return false, fmt.Errorf("exists check on %s.%s: %w", table, column, err)
	}
	return exists, nil
}

// IsUnique reports whether no row other than the one identified by idColumn =
// excludeID holds column = value. Pass uuid.Nil as excludeID on create, when
// there is no row to exclude.
func (c *Checker) IsUnique(ctx context.Context, table, column string, value interface{}, idColumn string, excludeID uuid.UUID) (bool, error) {
	var (
		sql  string
		args []interface{}
	)
	if excludeID == uuid.Nil {
		sql = fmt.Sprintf(`SELECT NOT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`, table, column)
		args = []interface{}{value}
	} else {
		sql = fmt.Sprintf(`SELECT NOT EXISTS (SELECT 1 FROM %s WHERE %s = $1 AND %s <> $2)`, table, column, idColumn)
		args = []interface{}{value, excludeID}
	}
	var unique bool
	if err := c.conn(ctx).QueryRow(ctx, sql, args...).Scan(&unique); err != nil {
		return false, fmt.Errorf("uniqueness check on %s.%s: %w", table, column, err)
	}
	return unique, nil
}

// FirstDependent returns the first entry in deps whose table holds a row
// referencing id, or nil when the entity has no dependents. Order matters:
// callers list dependents in the order their conflict messages should win.
func (c *Checker) FirstDependent(ctx context.Context, deps []Dependent, id uuid.UUID) (*Dependent, error) {
	for i := range deps {
		found, err := c.ExistsWhere(ctx, deps[i].Table, deps[i].Column, id)
		if err != nil {
			return nil, err
		}
		if found {
			return &deps[i], nil
		}
	}
	return nil, nil
}
