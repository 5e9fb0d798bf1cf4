package staff

import (
	"context"

	"github.com/google/uuid"

	"github.com/hospisim/hospisim/internal/domain/specialty"
	"github.com/hospisim/hospisim/internal/platform/resource"
)

type Repository interface {
	resource.Repo[*Staff]
	// SpecialtySummary loads the nested specialty form, nil when absent.
	SpecialtySummary(ctx context.Context, id uuid.UUID) (*specialty.Summary, error)
}
