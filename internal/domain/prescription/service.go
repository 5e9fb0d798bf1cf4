package prescription

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/hospisim/hospisim/internal/platform/apperr"
	"github.com/hospisim/hospisim/internal/platform/db"
	"github.com/hospisim/hospisim/internal/platform/resource"
)

type Service struct {
	*resource.Service[*Prescription]
	repo Repository
}

func NewService(repo Repository, check resource.Checker, beginner db.Beginner) *Service {
	return &Service{
		Service: resource.NewService[*Prescription](repo, check, beginner, descriptor()),
		repo:    repo,
	}
}

func descriptor() resource.Descriptor[*Prescription] {
	return resource.Descriptor[*Prescription]{
		Singular: "prescription",
		Plural:   "prescriptions",
		Table:    "prescription",
		AssignID: true,
		Refs: []resource.RefRule[*Prescription]{
			{
				Table:      "visit",
				Constraint: "fk_prescription_visit",
				ID:         func(p *Prescription) uuid.UUID { return p.VisitID },
				Message: func(p *Prescription) string {
					return "visit " + p.VisitID.String() + " does not exist"
				},
			},
			{
				Table:      "staff",
				Constraint: "fk_prescription_staff",
				ID:         func(p *Prescription) uuid.UUID { return p.StaffID },
				Message: func(p *Prescription) string {
					return "staff member " + p.StaffID.String() + " does not exist"
				},
			},
		},
		Normalize: normalize,
		Validate:  validate,
	}
}

func normalize(p *Prescription) {
	p.Medication = strings.TrimSpace(p.Medication)
	p.Dosage = strings.TrimSpace(p.Dosage)
	p.Frequency = strings.TrimSpace(p.Frequency)
	p.Route = strings.TrimSpace(p.Route)
}

func validate(p *Prescription) error {
	if p.Medication == "" {
		return apperr.Validationf("medication is required")
	}
	if len(p.Medication) > 100 {
		return apperr.Validationf("medication must not exceed 100 characters")
	}
	if p.Dosage == "" {
		return apperr.Validationf("dosage is required")
	}
	if len(p.Dosage) > 50 {
		return apperr.Validationf("dosage must not exceed 50 characters")
	}
	if p.Frequency == "" {
		return apperr.Validationf("frequency is required")
	}
	if len(p.Frequency) > 50 {
		return apperr.Validationf("frequency must not exceed 50 characters")
	}
	if p.Route == "" {
		return apperr.Validationf("route is required")
	}
	if len(p.Route) > 50 {
		return apperr.Validationf("route must not exceed 50 characters")
	}
	if p.StartDate.IsZero() {
		return apperr.Validationf("start_date is required")
	}
	if p.EndDate != nil && p.EndDate.Before(p.StartDate.Time) {
		return apperr.Validationf("end_date must not precede start_date")
	}
	if p.Notes != nil && len(*p.Notes) > 500 {
		return apperr.Validationf("notes must not exceed 500 characters")
	}
	if !validStatus[p.Status] {
		return apperr.Validationf("status must be one of active, suspended, completed, cancelled")
	}
	if p.AdverseReactions != nil && len(*p.AdverseReactions) > 500 {
		return apperr.Validationf("adverse_reactions must not exceed 500 characters")
	}
	if p.VisitID == uuid.Nil {
		return apperr.Validationf("visit_id is required")
	}
	if p.StaffID == uuid.Nil {
		return apperr.Validationf("staff_id is required")
	}
	return nil
}

// Present shapes a prescription with its nested visit and staff summaries.
func (s *Service) Present(ctx context.Context, p *Prescription) (*Response, error) {
	resp := p.Response()
	v, err := s.repo.VisitSummary(ctx, p.VisitID)
	if err != nil {
		return nil, apperr.Internalf(err, "loading visit summary for prescription %s", p.ID)
	}
	st, err := s.repo.StaffSummary(ctx, p.StaffID)
	if err != nil {
		return nil, apperr.Internalf(err, "loading staff summary for prescription %s", p.ID)
	}
	resp.Visit = v
	resp.Staff = st
	return resp, nil
}
