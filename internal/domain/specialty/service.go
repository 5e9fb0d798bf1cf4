package specialty

import (
	"context"
	"strings"

	"github.com/hospisim/hospisim/internal/platform/apperr"
	"github.com/hospisim/hospisim/internal/platform/db"
	"github.com/hospisim/hospisim/internal/platform/integrity"
	"github.com/hospisim/hospisim/internal/platform/resource"
)

type Service struct {
	*resource.Service[*Specialty]
}

func NewService(repo Repository, check resource.Checker, beginner db.Beginner) *Service {
	return &Service{resource.NewService[*Specialty](repo, check, beginner, descriptor())}
}

func descriptor() resource.Descriptor[*Specialty] {
	return resource.Descriptor[*Specialty]{
		Singular: "specialty",
		Plural:   "specialties",
		Table:    "specialty",
		AssignID: true,
		Unique: []resource.UniqueRule[*Specialty]{{
			Column:     "name",
			Constraint: "ux_specialty_name",
			Value:      func(s *Specialty) interface{} { return s.Name },
			Message: func(s *Specialty) string {
				return "a specialty named " + s.Name + " already exists"
			},
		}},
		Dependents: []integrity.Dependent{
			{Table: "staff", Column: "specialty_id", Message: "specialty has staff assigned and cannot be deleted"},
		},
		Normalize: func(s *Specialty) { s.Name = strings.TrimSpace(s.Name) },
		Validate: func(s *Specialty) error {
			if s.Name == "" {
				return apperr.Validationf("name is required")
			}
			if len(s.Name) > 100 {
				return apperr.Validationf("name must not exceed 100 characters")
			}
			return nil
		},
	}
}

func (s *Service) Present(ctx context.Context, sp *Specialty) (*Response, error) {
	return sp.Response(), nil
}
