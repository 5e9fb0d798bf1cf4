package record

import (
	"github.com/google/uuid"

	"github.com/hospisim/hospisim/internal/domain/patient"
	"github.com/hospisim/hospisim/internal/platform/resource"
	"github.com/hospisim/hospisim/pkg/brdate"
)

// Record maps to the record table (a patient's medical record).
type Record struct {
	resource.Base
	RecordNumber string      `db:"record_number" json:"record_number"`
	OpenedAt     brdate.Date `db:"opened_at" json:"opened_at"`
	Notes        *string     `db:"notes" json:"notes,omitempty"`
	PatientID    uuid.UUID   `db:"patient_id" json:"patient_id"`
}

// Summary is the nested form visit responses embed.
type Summary struct {
	ID           uuid.UUID `json:"id"`
	RecordNumber string    `json:"record_number"`
}

type Response struct {
	ID           uuid.UUID        `json:"id"`
	RecordNumber string           `json:"record_number"`
	OpenedAt     brdate.Date      `json:"opened_at"`
	Notes        *string          `json:"notes"`
	PatientID    uuid.UUID        `json:"patient_id"`
	Patient      *patient.Summary `json:"patient"`
	Version      int64            `json:"version"`
}

func (r *Record) Response() *Response {
	return &Response{
		ID:           r.ID,
		RecordNumber: r.RecordNumber,
		OpenedAt:     r.OpenedAt,
		Notes:        r.Notes,
		PatientID:    r.PatientID,
		Version:      r.Version,
	}
}
