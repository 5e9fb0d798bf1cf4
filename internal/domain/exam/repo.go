package exam

import (
	"context"

	"github.com/google/uuid"

	"github.com/hospisim/hospisim/internal/domain/visit"
	"github.com/hospisim/hospisim/internal/platform/resource"
)

type Repository interface {
	resource.Repo[*Exam]
	VisitSummary(ctx context.Context, id uuid.UUID) (*visit.Summary, error)
}
