package discharge

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/hospisim/hospisim/internal/platform/apperr"
	"github.com/hospisim/hospisim/internal/platform/db"
	"github.com/hospisim/hospisim/internal/platform/resource"
)

type Service struct {
	*resource.Service[*Discharge]
	repo Repository
}

func NewService(repo Repository, check resource.Checker, beginner db.Beginner) *Service {
	return &Service{
		Service: resource.NewService[*Discharge](repo, check, beginner, descriptor()),
		repo:    repo,
	}
}

func descriptor() resource.Descriptor[*Discharge] {
	return resource.Descriptor[*Discharge]{
		Singular: "discharge",
		Plural:   "discharges",
		Table:    "discharge",
		IDColumn: "admission_id",
		AssignID: false,
		Unique: []resource.UniqueRule[*Discharge]{
			{
				Column:     "admission_id",
				Constraint: "pk_discharge",
				OneToOne:   true,
				Value:      func(d *Discharge) interface{} { return d.AdmissionID },
				Message: func(d *Discharge) string {
					return "admission " + d.AdmissionID.String() + " has already been discharged"
				},
			},
		},
		Refs: []resource.RefRule[*Discharge]{
			{
				Table:      "admission",
				Constraint: "fk_discharge_admission",
				ID:         func(d *Discharge) uuid.UUID { return d.AdmissionID },
				Message: func(d *Discharge) string {
					return "admission " + d.AdmissionID.String() + " does not exist"
				},
			},
		},
		Normalize: func(d *Discharge) { d.PatientCondition = strings.TrimSpace(d.PatientCondition) },
		Validate:  validate,
	}
}

func validate(d *Discharge) error {
	if d.AdmissionID == uuid.Nil {
		return apperr.Validationf("admission_id is required")
	}
	if d.DischargeDate.IsZero() {
		return apperr.Validationf("discharge_date is required")
	}
	if d.PatientCondition == "" {
		return apperr.Validationf("patient_condition is required")
	}
	if len(d.PatientCondition) > 200 {
		return apperr.Validationf("patient_condition must not exceed 200 characters")
	}
	if d.PostDischargeInstructions != nil && len(*d.PostDischargeInstructions) > 1000 {
		return apperr.Validationf("post_discharge_instructions must not exceed 1000 characters")
	}
	return nil
}

// Present shapes a discharge with its nested admission summary.
func (s *Service) Present(ctx context.Context, d *Discharge) (*Response, error) {
	resp := d.Response()
	a, err := s.repo.AdmissionSummary(ctx, d.AdmissionID)
	if err != nil {
		return nil, apperr.Internalf(err, "loading admission summary for discharge %s", d.AdmissionID)
	}
	resp.Admission = a
	return resp, nil
}
