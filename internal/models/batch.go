package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Batch is a priced ticket-release window scoped to one event day.
type Batch struct {
	bun.BaseModel `bun:"table:batches"`

	ID        string    `bun:"id,pk" json:"id"`
	EventID   string    `bun:"event_id,notnull" json:"eventId"`
	DayID     string    `bun:"day_id,notnull" json:"dayId"`
	Name      string    `bun:"name,notnull" json:"name"`
	StartDate time.Time `bun:"start_date,notnull" json:"startDate"`
	EndDate   time.Time `bun:"end_date,notnull" json:"endDate"`
	CreatedAt time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"createdAt"`
}
