package patient

import (
	"github.com/google/uuid"

	"github.com/hospisim/hospisim/internal/platform/resource"
	"github.com/hospisim/hospisim/pkg/brdate"
	"github.com/hospisim/hospisim/pkg/brdoc"
)

type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
	SexOther  Sex = "other"
)

type BloodType string

type MaritalStatus string

const (
	MaritalSingle    MaritalStatus = "single"
	MaritalMarried   MaritalStatus = "married"
	MaritalDivorced  MaritalStatus = "divorced"
	MaritalWidowed   MaritalStatus = "widowed"
	MaritalSeparated MaritalStatus = "separated"
)

var validSex = map[Sex]bool{SexMale: true, SexFemale: true, SexOther: true}

var validBloodType = map[BloodType]bool{
	"A+": true, "A-": true, "B+": true, "B-": true,
	"AB+": true, "AB-": true, "O+": true, "O-": true,
}

var validMaritalStatus = map[MaritalStatus]bool{
	MaritalSingle: true, MaritalMarried: true, MaritalDivorced: true,
	MaritalWidowed: true, MaritalSeparated: true,
}

// Patient maps to the patient table. CPF and phone are stored as bare digits;
// the formatted forms are derived on output only.
type Patient struct {
	resource.Base
	FullName      string        `db:"full_name" json:"full_name"`
	CPF           string        `db:"cpf" json:"cpf"`
	BirthDate     brdate.Date   `db:"birth_date" json:"birth_date"`
	Sex           Sex           `db:"sex" json:"sex"`
	BloodType     BloodType     `db:"blood_type" json:"blood_type"`
	Phone         *string       `db:"phone" json:"phone,omitempty"`
	Email         *string       `db:"email" json:"email,omitempty"`
	Address       *string       `db:"address" json:"address,omitempty"`
	SUSCardNumber *string       `db:"sus_card_number" json:"sus_card_number,omitempty"`
	MaritalStatus MaritalStatus `db:"marital_status" json:"marital_status"`
	HasHealthPlan bool          `db:"has_health_plan" json:"has_health_plan"`
}

// Summary is the nested form other resources embed.
type Summary struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"full_name"`
	CPF      string    `json:"cpf"`
}

// Response is the client-facing shape with CPF and phone formatted.
type Response struct {
	ID            uuid.UUID     `json:"id"`
	FullName      string        `json:"full_name"`
	CPF           string        `json:"cpf"`
	BirthDate     brdate.Date   `json:"birth_date"`
	Sex           Sex           `json:"sex"`
	BloodType     BloodType     `json:"blood_type"`
	Phone         *string       `json:"phone"`
	Email         *string       `json:"email"`
	Address       *string       `json:"address"`
	SUSCardNumber *string       `json:"sus_card_number"`
	MaritalStatus MaritalStatus `json:"marital_status"`
	HasHealthPlan bool          `json:"has_health_plan"`
	Version       int64         `json:"version"`
}

func (p *Patient) Response() *Response {
	resp := &Response{
		ID:            p.ID,
		FullName:      p.FullName,
		CPF:           brdoc.FormatCPF(p.CPF),
		BirthDate:     p.BirthDate,
		Sex:           p.Sex,
		BloodType:     p.BloodType,
		Email:         p.Email,
		Address:       p.Address,
		SUSCardNumber: p.SUSCardNumber,
		MaritalStatus: p.MaritalStatus,
		HasHealthPlan: p.HasHealthPlan,
		Version:       p.Version,
	}
	if p.Phone != nil {
		formatted := brdoc.FormatPhone(*p.Phone)
		resp.Phone = &formatted
	}
	return resp
}
