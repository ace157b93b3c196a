package models

import (
	"time"

	"github.com/uptrace/bun"
)

type EventStatus string

const (
	EventStatusActive   EventStatus = "ACTIVE"
	EventStatusInactive EventStatus = "INACTIVE"
	EventStatusEnded    EventStatus = "ENDED"
)

type EventMode string

const (
	EventModeInPerson EventMode = "IN_PERSON"
	EventModeOnline   EventMode = "ONLINE"
)

type Event struct {
	bun.BaseModel `bun:"table:events"`

	ID           string      `bun:"id,pk" json:"id"`
	CategoryID   string      `bun:"category_id" json:"categoryId"`
	Name         string      `bun:"name,notnull" json:"name"`
	Description  string      `bun:"description" json:"description"`
	Image        string      `bun:"image" json:"image"`
	Status       EventStatus `bun:"status" json:"status"`
	Mode         EventMode   `bun:"mode" json:"mode"`
	City         string      `bun:"city,nullzero" json:"city,omitempty"`
	Neighborhood string      `bun:"neighborhood,nullzero" json:"neighborhood,omitempty"`
	Address      string      `bun:"address,nullzero" json:"address,omitempty"`
	UF           string      `bun:"uf,nullzero" json:"uf,omitempty"`
	Map          string      `bun:"map,nullzero" json:"map,omitempty"`
	StartDate    time.Time   `bun:"start_date,notnull" json:"startDate"`
	EndDate      time.Time   `bun:"end_date,notnull" json:"endDate"`
	OrganizerID  string      `bun:"organizer_id" json:"organizerId"`
	CreatedAt    time.Time   `bun:"created_at,nullzero,default:current_timestamp" json:"createdAt"`
	UpdatedAt    time.Time   `bun:"updated_at,nullzero" json:"updatedAt"`
}
