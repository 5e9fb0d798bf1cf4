package visit

import (
	"github.com/google/uuid"

	"github.com/hospisim/hospisim/internal/domain/patient"
	"github.com/hospisim/hospisim/internal/domain/record"
	"github.com/hospisim/hospisim/internal/domain/staff"
	"github.com/hospisim/hospisim/internal/platform/resource"
	"github.com/hospisim/hospisim/pkg/brdate"
)

type Type string

const (
	TypeEmergency    Type = "emergency"
	TypeConsultation Type = "consultation"
	TypeFollowUp     Type = "follow-up"
)

type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

var validType = map[Type]bool{TypeEmergency: true, TypeConsultation: true, TypeFollowUp: true}

var validStatus = map[Status]bool{
	StatusScheduled: true, StatusInProgress: true,
	StatusCompleted: true, StatusCancelled: true,
}

// Visit maps to the visit table (a patient encounter).
type Visit struct {
	resource.Base
	Date      brdate.Date      `db:"date" json:"date"`
	Time      brdate.TimeOfDay `db:"time" json:"time"`
	Type      Type             `db:"type" json:"type"`
	Status    Status           `db:"status" json:"status"`
	Location  *string          `db:"location" json:"location,omitempty"`
	PatientID uuid.UUID        `db:"patient_id" json:"patient_id"`
	StaffID   uuid.UUID        `db:"staff_id" json:"staff_id"`
	RecordID  uuid.UUID        `db:"record_id" json:"record_id"`
}

// Summary is the nested form prescription, exam and admission responses embed.
type Summary struct {
	ID   uuid.UUID        `json:"id"`
	Date brdate.Date      `json:"date"`
	Time brdate.TimeOfDay `json:"time"`
	Type Type             `json:"type"`
}

type Response struct {
	ID        uuid.UUID        `json:"id"`
	Date      brdate.Date      `json:"date"`
	Time      brdate.TimeOfDay `json:"time"`
	Type      Type             `json:"type"`
	Status    Status           `json:"status"`
	Location  *string          `json:"location"`
	PatientID uuid.UUID        `json:"patient_id"`
	Patient   *patient.Summary `json:"patient"`
	StaffID   uuid.UUID        `json:"staff_id"`
	Staff     *staff.Summary   `json:"staff"`
	RecordID  uuid.UUID        `json:"record_id"`
	Record    *record.Summary  `json:"record"`
	Version   int64            `json:"version"`
}

func (v *Visit) Response() *Response {
	return &Response{
		ID:        v.ID,
		Date:      v.Date,
		Time:      v.Time,
		Type:      v.Type,
		Status:    v.Status,
		Location:  v.Location,
		PatientID: v.PatientID,
		StaffID:   v.StaffID,
		RecordID:  v.RecordID,
		Version:   v.Version,
	}
}
