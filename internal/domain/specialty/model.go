package specialty

import (
	"github.com/google/uuid"

	"github.com/hospisim/hospisim/internal/platform/resource"
)

// Specialty maps to the specialty table.
type Specialty struct {
	resource.Base
	Name string `db:"name" json:"name"`
}

// Summary is the nested form staff responses embed.
type Summary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type Response struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Version int64     `json:"version"`
}

func (s *Specialty) Response() *Response {
	return &Response{ID: s.ID, Name: s.Name, Version: s.Version}
}
