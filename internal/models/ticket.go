package models

import (
	"time"

	"github.com/uptrace/bun"
)

type TicketStatus string

const (
	TicketStatusAvailable TicketStatus = "AVAILABLE"
	TicketStatusSold      TicketStatus = "SOLD"
	TicketStatusCancelled TicketStatus = "CANCELLED"
)

type TicketGender string

const (
	TicketGenderMale   TicketGender = "MALE"
	TicketGenderFemale TicketGender = "FEMALE"
)

type Ticket struct {
	bun.BaseModel `bun:"table:tickets"`

	ID        string       `bun:"id,pk" json:"id"`
	EventID   string       `bun:"event_id,notnull" json:"eventId"`
	BatchID   string       `bun:"batch_id,nullzero" json:"batchId,omitempty"`
	SectorID  string       `bun:"sector_id,notnull" json:"sectorId"`
	BuyerID   string       `bun:"buyer_id,nullzero" json:"buyerId,omitempty"`
	Price     int          `bun:"price,notnull" json:"price"` // integer cents
	Quantity  int          `bun:"quantity,notnull" json:"quantity"`
	Gender    TicketGender `bun:"gender" json:"gender"`
	Obs       string       `bun:"obs,nullzero" json:"obs,omitempty"`
	File      string       `bun:"file,nullzero" json:"file,omitempty"`
	IsNominal bool         `bun:"is_nominal" json:"isNominal"`
	Status    TicketStatus `bun:"status" json:"status"`
	// QR payload reserved for check-in, which this service does not implement.
	QRCode    string    `bun:"qr_code,nullzero" json:"qrCode,omitempty"`
	CreatedAt time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"createdAt"`
}
