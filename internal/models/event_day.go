package models

import (
	"time"

	"github.com/uptrace/bun"
)

type EventDay struct {
	bun.BaseModel `bun:"table:event_days"`

	ID        string    `bun:"id,pk" json:"id"`
	EventID   string    `bun:"event_id,notnull" json:"eventId"`
	Date      time.Time `bun:"date,notnull" json:"date"`
	StartTime time.Time `bun:"start_time,notnull" json:"startTime"`
	EndTime   time.Time `bun:"end_time,notnull" json:"endTime"`
	CreatedAt time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"createdAt"`
}
