package admission

import (
	"context"

	"github.com/google/uuid"

	"github.com/hospisim/hospisim/internal/domain/patient"
	"github.com/hospisim/hospisim/internal/domain/visit"
	"github.com/hospisim/hospisim/internal/platform/resource"
)

type Repository interface {
	resource.Repo[*Admission]
	PatientSummary(ctx context.Context, id uuid.UUID) (*patient.Summary, error)
	VisitSummary(ctx context.Context, id uuid.UUID) (*visit.Summary, error)
}
