package discharge

import (
	"context"

	"github.com/google/uuid"

	"github.com/hospisim/hospisim/internal/domain/admission"
	"github.com/hospisim/hospisim/internal/platform/resource"
)

type Repository interface {
	resource.Repo[*Discharge]
	AdmissionSummary(ctx context.Context, id uuid.UUID) (*admission.Summary, error)
}
