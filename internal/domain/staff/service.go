package staff

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/hospisim/hospisim/internal/platform/apperr"
	"github.com/hospisim/hospisim/internal/platform/db"
	"github.com/hospisim/hospisim/internal/platform/integrity"
	"github.com/hospisim/hospisim/internal/platform/resource"
	"github.com/hospisim/hospisim/pkg/brdoc"
)

type Service struct {
	*resource.Service[*Staff]
	repo Repository
}

func NewService(repo Repository, check resource.Checker, beginner db.Beginner) *Service {
	return &Service{
		Service: resource.NewService[*Staff](repo, check, beginner, descriptor()),
		repo:    repo,
	}
}

func descriptor() resource.Descriptor[*Staff] {
	return resource.Descriptor[*Staff]{
		Singular: "staff member",
		Plural:   "staff members",
		Table:    "staff",
		AssignID: true,
		Unique: []resource.UniqueRule[*Staff]{
			{
				Column:     "cpf",
				Constraint: "ux_staff_cpf",
				Value:      func(s *Staff) interface{} { return s.CPF },
				Message: func(s *Staff) string {
					return "a staff member with CPF " + brdoc.FormatCPF(s.CPF) + " already exists"
				},
			},
			{
				Column:     "email",
				Constraint: "ux_staff_email",
				Value:      func(s *Staff) interface{} { return s.Email },
				Message: func(s *Staff) string {
					return "a staff member with email " + s.Email + " already exists"
				},
			},
			{
				Column:     "council_registration",
				Constraint: "ux_staff_council_registration",
				Value:      func(s *Staff) interface{} { return s.CouncilRegistration },
				Message: func(s *Staff) string {
					return "a staff member with council registration " + s.CouncilRegistration + " already exists"
				},
			},
		},
		Refs: []resource.RefRule[*Staff]{{
			Table:      "specialty",
			Constraint: "fk_staff_specialty",
			ID:         func(s *Staff) uuid.UUID { return s.SpecialtyID },
			Message: func(s *Staff) string {
				return "specialty " + s.SpecialtyID.String() + " does not exist"
			},
		}},
		Dependents: []integrity.Dependent{
			{Table: "visit", Column: "staff_id", Message: "staff member has visits and cannot be deleted"},
			{Table: "prescription", Column: "staff_id", Message: "staff member has prescriptions and cannot be deleted"},
		},
		Normalize: normalize,
		Validate:  validate,
	}
}

func normalize(s *Staff) {
	s.FullName = strings.TrimSpace(s.FullName)
	s.CPF = brdoc.Digits(s.CPF)
	s.Email = strings.TrimSpace(s.Email)
	s.CouncilRegistration = strings.TrimSpace(s.CouncilRegistration)
	s.RegistrationType = strings.TrimSpace(s.RegistrationType)
	if s.Phone != nil {
		digits := brdoc.Digits(*s.Phone)
		s.Phone = &digits
	}
}

func validate(s *Staff) error {
	if s.FullName == "" {
		return apperr.Validationf("full_name is required")
	}
	if len(s.FullName) > 200 {
		return apperr.Validationf("full_name must not exceed 200 characters")
	}
	if !brdoc.IsCPF(s.CPF) {
		return apperr.Validationf("cpf must have exactly 11 digits")
	}
	if s.Email == "" {
		return apperr.Validationf("email is required")
	}
	if len(s.Email) > 100 {
		return apperr.Validationf("email must not exceed 100 characters")
	}
	if !strings.Contains(s.Email, "@") {
		return apperr.Validationf("email is not valid")
	}
	if s.Phone != nil && len(*s.Phone) > 20 {
		return apperr.Validationf("phone must not exceed 20 characters")
	}
	if s.CouncilRegistration == "" {
		return apperr.Validationf("council_registration is required")
	}
	if len(s.CouncilRegistration) > 50 {
		return apperr.Validationf("council_registration must not exceed 50 characters")
	}
	if s.RegistrationType == "" {
		return apperr.Validationf("registration_type is required")
	}
	if len(s.RegistrationType) > 10 {
		return apperr.Validationf("registration_type must not exceed 10 characters")
	}
	if s.SpecialtyID == uuid.Nil {
		return apperr.Validationf("specialty_id is required")
	}
	if s.AdmissionDate.IsZero() {
		return apperr.Validationf("admission_date is required")
	}
	if s.WeeklyHours < 1 || s.WeeklyHours > 168 {
		return apperr.Validationf("weekly_hours must be between 1 and 168")
	}
	if !validShift[s.Shift] {
		return apperr.Validationf("shift must be one of morning, afternoon, night")
	}
	return nil
}

// Present shapes a staff member with the nested specialty summary.
func (s *Service) Present(ctx context.Context, st *Staff) (*Response, error) {
	resp := st.Response()
	sp, err := s.repo.SpecialtySummary(ctx, st.SpecialtyID)
	if err != nil {
		return nil, apperr.Internalf(err, "loading specialty summary for staff member %s", st.ID)
	}
	resp.Specialty = sp
	return resp, nil
}
