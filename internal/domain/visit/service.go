package visit

import (
	"context"

	"github.com/google/uuid"

	"github.com/hospisim/hospisim/internal/platform/apperr"
	"github.com/hospisim/hospisim/internal/platform/db"
	"github.com/hospisim/hospisim/internal/platform/integrity"
	"github.com/hospisim/hospisim/internal/platform/resource"
)

type Service struct {
	*resource.Service[*Visit]
	repo Repository
}

func NewService(repo Repository, check resource.Checker, beginner db.Beginner) *Service {
	return &Service{
		Service: resource.NewService[*Visit](repo, check, beginner, descriptor()),
		repo:    repo,
	}
}

func descriptor() resource.Descriptor[*Visit] {
	return resource.Descriptor[*Visit]{
		Singular: "visit",
		Plural:   "visits",
		Table:    "visit",
		AssignID: true,
		Refs: []resource.RefRule[*Visit]{
			{
				Table:      "patient",
				Constraint: "fk_visit_patient",
				ID:         func(v *Visit) uuid.UUID { return v.PatientID },
				Message: func(v *Visit) string {
					return "patient " + v.PatientID.String() + " does not exist"
				},
			},
			{
				Table:      "staff",
				Constraint: "fk_visit_staff",
				ID:         func(v *Visit) uuid.UUID { return v.StaffID },
				Message: func(v *Visit) string {
					return "staff member " + v.StaffID.String() + " does not exist"
				},
			},
			{
				Table:      "record",
				Constraint: "fk_visit_record",
				ID:         func(v *Visit) uuid.UUID { return v.RecordID },
				Message: func(v *Visit) string {
					return "record " + v.RecordID.String() + " does not exist"
				},
			},
		},
		Dependents: []integrity.Dependent{
			{Table: "prescription", Column: "visit_id", Message: "visit has prescriptions and cannot be deleted"},
			{Table: "exam", Column: "visit_id", Message: "visit has exams and cannot be deleted"},
			{Table: "admission", Column: "visit_id", Message: "visit has an admission and cannot be deleted"},
		},
		Validate: validate,
	}
}

func validate(v *Visit) error {
	if v.Date.IsZero() {
		return apperr.Validationf("date is required")
	}
	if !validType[v.Type] {
		return apperr.Validationf("type must be one of emergency, consultation, follow-up")
	}
	if !validStatus[v.Status] {
		return apperr.Validationf("status must be one of scheduled, in-progress, completed, cancelled")
	}
	if v.Location != nil && len(*v.Location) > 100 {
		return apperr.Validationf("location must not exceed 100 characters")
	}
	if v.PatientID == uuid.Nil {
		return apperr.Validationf("patient_id is required")
	}
	if v.StaffID == uuid.Nil {
		return apperr.Validationf("staff_id is required")
	}
	if v.RecordID == uuid.Nil {
		return apperr.Validationf("record_id is required")
	}
	return nil
}

// Present shapes a visit with its nested patient, staff and record summaries.
func (s *Service) Present(ctx context.Context, v *Visit) (*Response, error) {
	resp := v.Response()
	pat, err := s.repo.PatientSummary(ctx, v.PatientID)
	if err != nil {
		return nil, apperr.Internalf(err, "loading patient summary for visit %s", v.ID)
	}
	st, err := s.repo.StaffSummary(ctx, v.StaffID)
	if err != nil {
		return nil, apperr.Internalf(err, "loading staff summary for visit %s", v.ID)
	}
	rec, err := s.repo.RecordSummary(ctx, v.RecordID)
	if err != nil {
		return nil, apperr.Internalf(err, "loading record summary for visit %s", v.ID)
	}
	resp.Patient = pat
	resp.Staff = st
	resp.Record = rec
	return resp, nil
}
