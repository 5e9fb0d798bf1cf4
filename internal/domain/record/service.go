package record

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
	*resource.Service[*Record]
	repo Repository
}

func NewService(repo Repository, check resource.Checker, beginner db.Beginner) *Service {
	return &Service{
		Service: resource.NewService[*Record](repo, check, beginner, descriptor()),
		repo:    repo,
	}
}

func descriptor() resource.Descriptor[*Record] {
	return resource.Descriptor[*Record]{
		Singular: "record",
		Plural:   "records",
		Table:    "record",
		AssignID: true,
		Unique: []resource.UniqueRule[*Record]{{
			Column:     "record_number",
			Constraint: "ux_record_number",
			Value:      func(r *Record) interface{} { return r.RecordNumber },
			Message: func(r *Record) string {
				return "a record numbered " + r.RecordNumber + " already exists"
			},
		}},
		Refs: []resource.RefRule[*Record]{{
			Table:      "patient",
			Constraint: "fk_record_patient",
			ID:         func(r *Record) uuid.UUID { return r.PatientID },
			Message: func(r *Record) string {
				return "patient " + r.PatientID.String() + " does not exist"
			},
		}},
		Dependents: []integrity.Dependent{
			{Table: "visit", Column: "record_id", Message: "record has visits and cannot be deleted"},
		},
		Normalize: func(r *Record) { r.RecordNumber = strings.TrimSpace(r.RecordNumber) },
		Validate:  validate,
	}
}

func validate(r *Record) error {
	if r.RecordNumber == "" {
		return apperr.Validationf("record_number is required")
	}
	if len(r.RecordNumber) > 50 {
		return apperr.Validationf("record_number must not exceed 50 characters")
	}
	if r.OpenedAt.IsZero() {
		return apperr.Validationf("opened_at is required")
	}
	if r.Notes != nil && len(*r.Notes) > 1000 {
		return apperr.Validationf("notes must not exceed 1000 characters")
	}
	if r.PatientID == uuid.Nil {
		return apperr.Validationf("patient_id is required")
	}
	return nil
}

// Present shapes a record with its nested patient summary.
func (s *Service) Present(ctx context.Context, r *Record) (*Response, error) {
	resp := r.Response()
	pat, err := s.repo.PatientSummary(ctx, r.PatientID)
	if err != nil {
		return nil, apperr.Internalf(err, "loading patient summary for record %s", r.ID)
	}
	resp.Patient = pat
	return resp, nil
}
