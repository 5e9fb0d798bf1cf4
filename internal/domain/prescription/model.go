package prescription

import (
	"github.com/google/uuid"

	"github.com/hospisim/hospisim/internal/domain/staff"
	"github.com/hospisim/hospisim/internal/domain/visit"
	"github.com/hospisim/hospisim/internal/platform/resource"
	"github.com/hospisim/hospisim/pkg/brdate"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusSuspended Status = "suspended"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

var validStatus = map[Status]bool{
	StatusActive: true, StatusSuspended: true,
	StatusCompleted: true, StatusCancelled: true,
}

// Prescription maps to the prescription table.
type Prescription struct {
	resource.Base
	VisitID          uuid.UUID    `db:"visit_id" json:"visit_id"`
	StaffID          uuid.UUID    `db:"staff_id" json:"staff_id"`
	Medication       string       `db:"medication" json:"medication"`
	Dosage           string       `db:"dosage" json:"dosage"`
	Frequency        string       `db:"frequency" json:"frequency"`
	Route            string       `db:"route" json:"route"`
	StartDate        brdate.Date  `db:"start_date" json:"start_date"`
	EndDate          *brdate.Date `db:"end_date" json:"end_date,omitempty"`
	Notes            *string      `db:"notes" json:"notes,omitempty"`
	Status           Status       `db:"status" json:"status"`
	AdverseReactions *string      `db:"adverse_reactions" json:"adverse_reactions,omitempty"`
}

type Response struct {
	ID               uuid.UUID      `json:"id"`
	VisitID          uuid.UUID      `json:"visit_id"`
	Visit            *visit.Summary `json:"visit"`
	StaffID          uuid.UUID      `json:"staff_id"`
	Staff            *staff.Summary `json:"staff"`
	Medication       string         `json:"medication"`
	Dosage           string         `json:"dosage"`
	Frequency        string         `json:"frequency"`
	Route            string         `json:"route"`
	StartDate        brdate.Date    `json:"start_date"`
	EndDate          *brdate.Date   `json:"end_date"`
	Notes            *string        `json:"notes"`
	Status           Status         `json:"status"`
	AdverseReactions *string        `json:"adverse_reactions"`
	Version          int64          `json:"version"`
}

func (p *Prescription) Response() *Response {
	return &Response{
		ID:               p.ID,
		VisitID:          p.VisitID,
		StaffID:          p.StaffID,
		Medication:       p.Medication,
		Dosage:           p.Dosage,
		Frequency:        p.Frequency,
		Route:            p.Route,
		StartDate:        p.StartDate,
		EndDate:          p.EndDate,
		Notes:            p.Notes,
		Status:           p.Status,
		AdverseReactions: p.AdverseReactions,
		Version:          p.Version,
	}
}
