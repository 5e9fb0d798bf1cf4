package staff

import (
	"github.com/google/uuid"

	"github.com/hospisim/hospisim/internal/domain/specialty"
	"github.com/hospisim/hospisim/internal/platform/resource"
	"github.com/hospisim/hospisim/pkg/brdate"
	"github.com/hospisim/hospisim/pkg/brdoc"
)

type Shift string

const (
	ShiftMorning   Shift = "morning"
	ShiftAfternoon Shift = "afternoon"
	ShiftNight     Shift = "night"
)

var validShift = map[Shift]bool{ShiftMorning: true, ShiftAfternoon: true, ShiftNight: true}

// Staff maps to the staff table (health professionals). CPF and phone are
// stored as bare digits.
type Staff struct {
	resource.Base
	FullName            string      `db:"full_name" json:"full_name"`
	CPF                 string      `db:"cpf" json:"cpf"`
	Email               string      `db:"email" json:"email"`
	Phone               *string     `db:"phone" json:"phone,omitempty"`
	CouncilRegistration string      `db:"council_registration" json:"council_registration"`
	RegistrationType    string      `db:"registration_type" json:"registration_type"`
	SpecialtyID         uuid.UUID   `db:"specialty_id" json:"specialty_id"`
	AdmissionDate       brdate.Date `db:"admission_date" json:"admission_date"`
	WeeklyHours         int         `db:"weekly_hours" json:"weekly_hours"`
	Shift               Shift       `db:"shift" json:"shift"`
	Active              bool        `db:"active" json:"active"`
}

// Summary is the nested form visit and prescription responses embed.
type Summary struct {
	ID                  uuid.UUID `json:"id"`
	FullName            string    `json:"full_name"`
	CouncilRegistration string    `json:"council_registration"`
}

type Response struct {
	ID                  uuid.UUID          `json:"id"`
	FullName            string             `json:"full_name"`
	CPF                 string             `json:"cpf"`
	Email               string             `json:"email"`
	Phone               *string            `json:"phone"`
	CouncilRegistration string             `json:"council_registration"`
	RegistrationType    string             `json:"registration_type"`
	SpecialtyID         uuid.UUID          `json:"specialty_id"`
	Specialty           *specialty.Summary `json:"specialty"`
	AdmissionDate       brdate.Date        `json:"admission_date"`
	WeeklyHours         int                `json:"weekly_hours"`
	Shift               Shift              `json:"shift"`
	Active              bool               `json:"active"`
	Version             int64              `json:"version"`
}

func (s *Staff) Response() *Response {
	resp := &Response{
		ID:                  s.ID,
		FullName:            s.FullName,
		CPF:                 brdoc.FormatCPF(s.CPF),
		Email:               s.Email,
		CouncilRegistration: s.CouncilRegistration,
		RegistrationType:    s.RegistrationType,
		SpecialtyID:         s.SpecialtyID,
		AdmissionDate:       s.AdmissionDate,
		WeeklyHours:         s.WeeklyHours,
		Shift:               s.Shift,
		Active:              s.Active,
		Version:             s.Version,
	}
	if s.Phone != nil {
		formatted := brdoc.FormatPhone(*s.Phone)
		resp.Phone = &formatted
	}
	return resp
}
