package prescription

import (
	"context"

	"github.com/google/uuid"

	"github.com/hospisim/hospisim/internal/domain/staff"
	"github.com/hospisim/hospisim/internal/domain/visit"
	"github.com/hospisim/hospisim/internal/platform/resource"
)

type Repository interface {
	resource.Repo[*Prescription]
	VisitSummary(ctx context.Context, id uuid.UUID) (*visit.Summary, error)
	StaffSummary(ctx context.Context, id uuid.UUID) (*staff.Summary, error)
}
