package discharge

import (
	"github.com/google/uuid"

	"github.com/hospisim/hospisim/internal/domain/admission"
	"github.com/hospisim/hospisim/pkg/brdate"
)

// Discharge maps to the discharge table. Unlike the other aggregates it has
// no id of its own: the row is keyed by the admission it closes, so the
// admission id doubles as the resource id in every route.
type Discharge struct {
	AdmissionID               uuid.UUID   `db:"admission_id" json:"admission_id"`
	DischargeDate             brdate.Date `db:"discharge_date" json:"discharge_date"`
	PatientCondition          string      `db:"patient_condition" json:"patient_condition"`
	PostDischargeInstructions *string     `db:"post_discharge_instructions" json:"post_discharge_instructions,omitempty"`
	Version                   int64       `db:"version" json:"version"`
}

func (d *Discharge) EntityID() uuid.UUID      { return d.AdmissionID }
func (d *Discharge) SetEntityID(id uuid.UUID) { d.AdmissionID = id }
func (d *Discharge) EntityVersion() int64     { return d.Version }
func (d *Discharge) SetEntityVersion(v int64) { d.Version = v }

type Response struct {
	AdmissionID               uuid.UUID          `json:"admission_id"`
	Admission                 *admission.Summary `json:"admission"`
	DischargeDate             brdate.Date        `json:"discharge_date"`
	PatientCondition          string             `json:"patient_condition"`
	PostDischargeInstructions *string            `json:"post_discharge_instructions"`
	Version                   int64              `json:"version"`
}

func (d *Discharge) Response() *Response {
	return &Response{
		AdmissionID:               d.AdmissionID,
		DischargeDate:             d.DischargeDate,
		PatientCondition:          d.PatientCondition,
		PostDischargeInstructions: d.PostDischargeInstructions,
		Version:                   d.Version,
	}
}
