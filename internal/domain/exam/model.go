package exam

import (
	"github.com/google/uuid"

	"github.com/hospisim/hospisim/internal/domain/visit"
	"github.com/hospisim/hospisim/internal/platform/resource"
	"github.com/hospisim/hospisim/pkg/brdate"
)

// Exam maps to the exam table.
type Exam struct {
	resource.Base
	Type        string       `db:"type" json:"type"`
	RequestedAt brdate.Date  `db:"requested_at" json:"requested_at"`
	PerformedAt *brdate.Date `db:"performed_at" json:"performed_at,omitempty"`
	Result      *string      `db:"result" json:"result,omitempty"`
	VisitID     uuid.UUID    `db:"visit_id" json:"visit_id"`
}

type Response struct {
	ID          uuid.UUID      `json:"id"`
	Type        string         `json:"type"`
	RequestedAt brdate.Date    `json:"requested_at"`
	PerformedAt *brdate.Date   `json:"performed_at"`
	Result      *string        `json:"result"`
	VisitID     uuid.UUID      `json:"visit_id"`
	Visit       *visit.Summary `json:"visit"`
	Version     int64          `json:"version"`
}

func (e *Exam) Response() *Response {
	return &Response{
		ID:          e.ID,
		Type:        e.Type,
		RequestedAt: e.RequestedAt,
		PerformedAt: e.PerformedAt,
		Result:      e.Result,
		VisitID:     e.VisitID,
		Version:     e.Version,
	}
}
