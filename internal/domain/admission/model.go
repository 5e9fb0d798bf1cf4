package admission

import (
	"github.com/google/uuid"

	"github.com/hospisim/hospisim/internal/domain/patient"
	"github.com/hospisim/hospisim/internal/domain/visit"
	"github.com/hospisim/hospisim/internal/platform/resource"
	"github.com/hospisim/hospisim/pkg/brdate"
)

type Status string

const (
	StatusActive      Status = "active"
	StatusDischarged  Status = "discharged"
	StatusTransferred Status = "transferred"
	StatusDeceased    Status = "deceased"
)

var validStatus = map[Status]bool{
	StatusActive: true, StatusDischarged: true,
	StatusTransferred: true, StatusDeceased: true,
}

// Admission maps to the admission table. Each visit carries at most one
// admission.
type Admission struct {
	resource.Base
	PatientID         uuid.UUID    `db:"patient_id" json:"patient_id"`
	VisitID           uuid.UUID    `db:"visit_id" json:"visit_id"`
	EntryDate         brdate.Date  `db:"entry_date" json:"entry_date"`
	ExpectedDischarge *brdate.Date `db:"expected_discharge" json:"expected_discharge,omitempty"`
	Reason            string       `db:"reason" json:"reason"`
	Bed               string       `db:"bed" json:"bed"`
	Room              string       `db:"room" json:"room"`
	Sector            string       `db:"sector" json:"sector"`
	HealthPlan        *string      `db:"health_plan" json:"health_plan,omitempty"`
	ClinicalNotes     *string      `db:"clinical_notes" json:"clinical_notes,omitempty"`
	Status            Status       `db:"status" json:"status"`
}

// Summary is the nested form discharge responses embed.
type Summary struct {
	ID        uuid.UUID   `json:"id"`
	EntryDate brdate.Date `json:"entry_date"`
	Bed       string      `json:"bed"`
	Sector    string      `json:"sector"`
}

type Response struct {
	ID                uuid.UUID        `json:"id"`
	PatientID         uuid.UUID        `json:"patient_id"`
	Patient           *patient.Summary `json:"patient"`
	VisitID           uuid.UUID        `json:"visit_id"`
	Visit             *visit.Summary   `json:"visit"`
	EntryDate         brdate.Date      `json:"entry_date"`
	ExpectedDischarge *brdate.Date     `json:"expected_discharge"`
	Reason            string           `json:"reason"`
	Bed               string           `json:"bed"`
	Room              string           `json:"room"`
	Sector            string           `json:"sector"`
	HealthPlan        *string          `json:"health_plan"`
	ClinicalNotes     *string          `json:"clinical_notes"`
	Status            Status           `json:"status"`
	Version           int64            `json:"version"`
}

func (a *Admission) Response() *Response {
	return &Response{
		ID:                a.ID,
		PatientID:         a.PatientID,
		VisitID:           a.VisitID,
		EntryDate:         a.EntryDate,
		ExpectedDischarge: a.ExpectedDischarge,
		Reason:            a.Reason,
		Bed:               a.Bed,
		Room:              a.Room,
		Sector:            a.Sector,
		HealthPlan:        a.HealthPlan,
		ClinicalNotes:     a.ClinicalNotes,
		Status:            a.Status,
		Version:           a.Version,
	}
}
