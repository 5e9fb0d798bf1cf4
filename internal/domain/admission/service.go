package admission

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/hospisim/hospisim/internal/platform/apperr"
	"github.com/hospisim/hospisim/internal/platform/db"
	"github.com/hospisim/hospisim/internal/platform/integrity"
	"github.com/hospisim/hospisim/internal/platform/resource"
)

type Service struct {
	*resource.Service[*Admission]
	repo Repository
}

func NewService(repo Repository, check resource.Checker, beginner db.Beginner) *Service {
	return &Service{
		Service: resource.NewService[*Admission](repo, check, beginner, descriptor()),
		repo:    repo,
	}
}

func descriptor() resource.Descriptor[*Admission] {
	return resource.Descriptor[*Admission]{
		Singular: "admission",
		Plural:   "admissions",
		Table:    "admission",
		AssignID: true,
		Unique: []resource.UniqueRule[*Admission]{
			{
				Column:     "visit_id",
				Constraint: "ux_admission_visit",
				OneToOne:   true,
				Value:      func(a *Admission) interface{} { return a.VisitID },
				Message: func(a *Admission) string {
					return "visit " + a.VisitID.String() + " already has an admission"
				},
			},
		},
		Refs: []resource.RefRule[*Admission]{
			{
				Table:      "patient",
				Constraint: "fk_admission_patient",
				ID:         func(a *Admission) uuid.UUID { return a.PatientID },
				Message: func(a *Admission) string {
					return "patient " + a.PatientID.String() + " does not exist"
				},
			},
			{
				Table:      "visit",
				Constraint: "fk_admission_visit",
				ID:         func(a *Admission) uuid.UUID { return a.VisitID },
				Message: func(a *Admission) string {
					return "visit " + a.VisitID.String() + " does not exist"
				},
			},
		},
		Dependents: []integrity.Dependent{
			{Table: "discharge", Column: "admission_id", Message: "admission has a discharge and cannot be deleted"},
		},
		Normalize: normalize,
		Validate:  validate,
	}
}

func normalize(a *Admission) {
	a.Reason = strings.TrimSpace(a.Reason)
	a.Bed = strings.TrimSpace(a.Bed)
	a.Room = strings.TrimSpace(a.Room)
	a.Sector = strings.TrimSpace(a.Sector)
}

func validate(a *Admission) error {
	if a.EntryDate.IsZero() {
		return apperr.Validationf("entry_date is required")
	}
	if a.ExpectedDischarge != nil && a.ExpectedDischarge.Before(a.EntryDate.Time) {
		return apperr.Validationf("expected_discharge must not precede entry_date")
	}
	if a.Reason == "" {
		return apperr.Validationf("reason is required")
	}
	if len(a.Reason) > 200 {
		return apperr.Validationf("reason must not exceed 200 characters")
	}
	if a.Bed == "" {
		return apperr.Validationf("bed is required")
	}
	if len(a.Bed) > 50 {
		return apperr.Validationf("bed must not exceed 50 characters")
	}
	if a.Room == "" {
		return apperr.Validationf("room is required")
	}
	if len(a.Room) > 50 {
		return apperr.Validationf("room must not exceed 50 characters")
	}
	if a.Sector == "" {
		return apperr.Validationf("sector is required")
	}
	if len(a.Sector) > 100 {
		return apperr.Validationf("sector must not exceed 100 characters")
	}
	if a.HealthPlan != nil && len(*a.HealthPlan) > 100 {
		return apperr.Validationf("health_plan must not exceed 100 characters")
	}
	if a.ClinicalNotes != nil && len(*a.ClinicalNotes) > 1000 {
		return apperr.Validationf("clinical_notes must not exceed 1000 characters")
	}
	if !validStatus[a.Status] {
		return apperr.Validationf("status must be one of active, discharged, transferred, deceased")
	}
	if a.PatientID == uuid.Nil {
		return apperr.Validationf("patient_id is required")
	}
	if a.VisitID == uuid.Nil {
		return apperr.Validationf("visit_id is required")
	}
	return nil
}

// Present shapes an admission with its nested patient and visit summaries.
func (s *Service) Present(ctx context.Context, a *Admission) (*Response, error) {
	resp := a.Response()
	pat, err := s.repo.PatientSummary(ctx, a.PatientID)
	if err != nil {
		return nil, apperr.Internalf(err, "loading patient summary for admission %s", a.ID)
	}
	v, err := s.repo.VisitSummary(ctx, a.VisitID)
	if err != nil {
		return nil, apperr.Internalf(err, "loading visit summary for admission %s", a.ID)
	}
	resp.Patient = pat
	resp.Visit = v
	return resp, nil
}
