package patient

import (
	"context"
	"strings"

	"github.com/hospisim/hospisim/internal/platform/apperr"
	"github.com/hospisim/hospisim/internal/platform/db"
	"github.com/hospisim/hospisim/internal/platform/integrity"
	"github.com/hospisim/hospisim/internal/platform/resource"
	"github.com/hospisim/hospisim/pkg/brdoc"
)

type Service struct {
	*resource.Service[*Patient]
}

func NewService(repo Repository, check resource.Checker, beginner db.Beginner) *Service {
	return &Service{resource.NewService[*Patient](repo, check, beginner, descriptor())}
}

func descriptor() resource.Descriptor[*Patient] {
	return resource.Descriptor[*Patient]{
		Singular: "patient",
		Plural:   "patients",
		Table:    "patient",
		AssignID: true,
		Unique: []resource.UniqueRule[*Patient]{{
			Column:     "cpf",
			Constraint: "ux_patient_cpf",
			Value:      func(p *Patient) interface{} { return p.CPF },
			Message: func(p *Patient) string {
				return "a patient with CPF " + brdoc.FormatCPF(p.CPF) + " already exists"
			},
		}},
		Dependents: []integrity.Dependent{
			{Table: "record", Column: "patient_id", Message: "patient has records and cannot be deleted"},
			{Table: "admission", Column: "patient_id", Message: "patient has admissions and cannot be deleted"},
			{Table: "visit", Column: "patient_id", Message: "patient has visits and cannot be deleted"},
		},
		Normalize: normalize,
		Validate:  validate,
	}
}

func normalize(p *Patient) {
	p.FullName = strings.TrimSpace(p.FullName)
	p.CPF = brdoc.Digits(p.CPF)
	if p.Phone != nil {
		digits := brdoc.Digits(*p.Phone)
		p.Phone = &digits
	}
}

func validate(p *Patient) error {
	if p.FullName == "" {
		return apperr.Validationf("full_name is required")
	}
	if len(p.FullName) > 200 {
		return apperr.Validationf("full_name must not exceed 200 characters")
	}
	if !brdoc.IsCPF(p.CPF) {
		return apperr.Validationf("cpf must have exactly 11 digits")
	}
	if p.BirthDate.IsZero() {
		return apperr.Validationf("birth_date is required")
	}
	if !validSex[p.Sex] {
		return apperr.Validationf("sex must be one of male, female, other")
	}
	if !validBloodType[p.BloodType] {
		return apperr.Validationf("blood_type must be a valid ABO/Rh type")
	}
	if !validMaritalStatus[p.MaritalStatus] {
		return apperr.Validationf("marital_status must be one of single, married, divorced, widowed, separated")
	}
	if p.Phone != nil && len(*p.Phone) > 20 {
		return apperr.Validationf("phone must not exceed 20 characters")
	}
	if p.Email != nil && *p.Email != "" {
		if len(*p.Email) > 100 {
			return apperr.Validationf("email must not exceed 100 characters")
		}
		if !strings.Contains(*p.Email, "@") {
			return apperr.Validationf("email is not valid")
		}
	}
	if p.Address != nil && len(*p.Address) > 300 {
		return apperr.Validationf("address must not exceed 300 characters")
	}
	if p.SUSCardNumber != nil && len(*p.SUSCardNumber) > 20 {
		return apperr.Validationf("sus_card_number must not exceed 20 characters")
	}
	return nil
}

// Present shapes a patient for responses. Patients embed no relations, so
// shaping is purely formatting.
func (s *Service) Present(ctx context.Context, p *Patient) (*Response, error) {
	return p.Response(), nil
}
