package record

import (
	"context"

	"github.com/google/uuid"

	"github.com/hospisim/hospisim/internal/domain/patient"
	"github.com/hospisim/hospisim/internal/platform/resource"
)

type Repository interface {
	resource.Repo[*Record]
	// PatientSummary loads the nested patient form, nil when the row is gone.
	PatientSummary(ctx context.Context, id uuid.UUID) (*patient.Summary, error)
}
