package visit

import (
	"context"

	"github.com/google/uuid"

	"github.com/hospisim/hospisim/internal/domain/patient"
	"github.com/hospisim/hospisim/internal/domain/record"
	"github.com/hospisim/hospisim/internal/domain/staff"
	"github.com/hospisim/hospisim/internal/platform/resource"
)

type Repository interface {
	resource.Repo[*Visit]
	PatientSummary(ctx context.Context, id uuid.UUID) (*patient.Summary, error)
	StaffSummary(ctx context.Context, id uuid.UUID) (*staff.Summary, error)
	RecordSummary(ctx context.Context, id uuid.UUID) (*record.Summary, error)
}
