package exam

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/hospisim/hospisim/internal/platform/apperr"
	"github.com/hospisim/hospisim/internal/platform/db"
	"github.com/hospisim/hospisim/internal/platform/resource"
)

type Service struct {
	*resource.Service[*Exam]
	repo Repository
}

func NewService(repo Repository, check resource.Checker, beginner db.Beginner) *Service {
	return &Service{
		Service: resource.NewService[*Exam](repo, check, beginner, descriptor()),
		repo:    repo,
	}
}

func descriptor() resource.Descriptor[*Exam] {
	return resource.Descriptor[*Exam]{
		Singular: "exam",
		Plural:   "exams",
		Table:    "exam",
		AssignID: true,
		Refs: []resource.RefRule[*Exam]{
			{
				Table:      "visit",
				Constraint: "fk_exam_visit",
				ID:         func(e *Exam) uuid.UUID { return e.VisitID },
				Message: func(e *Exam) string {
					return "visit " + e.VisitID.String() + " does not exist"
				},
			},
		},
		Normalize: func(e *Exam) { e.Type = strings.TrimSpace(e.Type) },
		Validate:  validate,
	}
}

func validate(e *Exam) error {
	if e.Type == "" {
		return apperr.Validationf("type is required")
	}
	if len(e.Type) > 100 {
		return apperr.Validationf("type must not exceed 100 characters")
	}
	if e.RequestedAt.IsZero() {
		return apperr.Validationf("requested_at is required")
	}
	if e.PerformedAt != nil && e.PerformedAt.Before(e.RequestedAt.Time) {
		return apperr.Validationf("performed_at must not precede requested_at")
	}
	if e.Result != nil && len(*e.Result) > 1000 {
		return apperr.Validationf("result must not exceed 1000 characters")
	}
	if e.VisitID == uuid.Nil {
		return apperr.Validationf("visit_id is required")
	}
	return nil
}

// Present shapes an exam with its nested visit summary.
func (s *Service) Present(ctx context.Context, e *Exam) (*Response, error) {
	resp := e.Response()
	v, err := s.repo.VisitSummary(ctx, e.VisitID)
	if err != nil {
		return nil, apperr.Internalf(err, "loading visit summary for exam %s", e.ID)
	}
	resp.Visit = v
	return resp, nil
}
