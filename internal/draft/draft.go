// Package draft maintains the mutable Days/Batches/Tickets tree the
// wizard edits. Every node gets a permanent id at creation and all
// addressing goes through those ids, so removing an interior item never
// disturbs the bindings of its siblings.
package draft

import (
	"fmt"

	"github.com/google/uuid"

	"ticketeiro/internal/models"
)

type TicketNode struct {
	ID     string
	Ticket models.TicketDraft
}

type BatchNode struct {
	ID        string
	Name      string
	StartDate models.FlexTime
	EndDate   models.FlexTime
	Tickets   []*TicketNode
}

type DayNode struct {
	ID        string
	Date      models.FlexTime
	StartTime models.FlexTime
	EndTime   models.FlexTime
	Batches   []*BatchNode
}

// Tree is one event draft's repeating groups. The zero value is not
// usable; NewTree seeds the minimum one day, one batch, one ticket.
type Tree struct {
	Days []*DayNode
}

func NewTree() *Tree {
	return &Tree{Days: []*DayNode{newDay()}}
}

func newDay() *DayNode {
	return &DayNode{
		ID:      uuid.NewString(),
		Batches: []*BatchNode{newBatch(models.BatchDraft{})},
	}
}

func newBatch(seed models.BatchDraft) *BatchNode {
	b := &BatchNode{
		ID:        uuid.NewString(),
		Name:      seed.Name,
		StartDate: seed.StartDate,
		EndDate:   seed.EndDate,
	}
	b.Tickets = []*TicketNode{newTicket(models.TicketDraft{Gender: models.TicketGenderMale})}
	return b
}

func newTicket(seed models.TicketDraft) *TicketNode {
	return &TicketNode{ID: uuid.NewString(), Ticket: seed}
}

// AppendDay adds an empty day with its seeded batch and ticket and
// returns the new day's id.
func (t *Tree) AppendDay() string {
	day := newDay()
	t.Days = append(t.Days, day)
	return day.ID
}

// AppendBatch adds a batch to the addressed day. The new batch's start
// date is pre-filled from the previous batch's end date; a chaining
// convenience, never validated.
func (t *Tree) AppendBatch(dayID string) (string, error) {
	day, err := t.day(dayID)
	if err != nil {
		return "", err
	}
	seed := models.BatchDraft{}
	if last := day.Batches[len(day.Batches)-1]; !last.EndDate.IsZero() {
		seed.StartDate = last.EndDate
	}
	batch := newBatch(seed)
	day.Batches = append(day.Batches, batch)
	return batch.ID, nil
}

// AppendTicket adds a ticket to the addressed batch, copying the
// previous ticket's sector, gender and quantity as defaults.
func (t *Tree) AppendTicket(dayID, batchID string) (string, error) {
	batch, err := t.batch(dayID, batchID)
	if err != nil {
		return "", err
	}
	last := batch.Tickets[len(batch.Tickets)-1]
	ticket := newTicket(models.TicketDraft{
		SectorID: last.Ticket.SectorID,
		Gender:   last.Ticket.Gender,
		Quantity: last.Ticket.Quantity,
	})
	batch.Tickets = append(batch.Tickets, ticket)
	return ticket.ID, nil
}

// RemoveDay excises the addressed day. Removing the last remaining day
// is a no-op; each collection keeps at least one item.
func (t *Tree) RemoveDay(dayID string) error {
	if len(t.Days) <= 1 {
		return nil
	}
	for i, day := range t.Days {
		if day.ID == dayID {
			t.Days = append(t.Days[:i], t.Days[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("day %s not found", dayID)
}

func (t *Tree) RemoveBatch(dayID, batchID string) error {
	day, err := t.day(dayID)
	if err != nil {
		return err
	}
	if len(day.Batches) <= 1 {
		return nil
	}
	for i, batch := range day.Batches {
		if batch.ID == batchID {
			day.Batches = append(day.Batches[:i], day.Batches[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("batch %s not found", batchID)
}

func (t *Tree) RemoveTicket(dayID, batchID, ticketID string) error {
	batch, err := t.batch(dayID, batchID)
	if err != nil {
		return err
	}
	if len(batch.Tickets) <= 1 {
		return nil
	}
	for i, ticket := range batch.Tickets {
		if ticket.ID == ticketID {
			batch.Tickets = append(batch.Tickets[:i], batch.Tickets[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("ticket %s not found", ticketID)
}

func (t *Tree) day(dayID string) (*DayNode, error) {
	for _, day := range t.Days {
		if day.ID == dayID {
			return day, nil
		}
	}
	return nil, fmt.Errorf("day %s not found", dayID)
}

func (t *Tree) batch(dayID, batchID string) (*BatchNode, error) {
	day, err := t.day(dayID)
	if err != nil {
		return nil, err
	}
	for _, batch := range day.Batches {
		if batch.ID == batchID {
			return batch, nil
		}
	}
	return nil, fmt.Errorf("batch %s not found", batchID)
}

// Build flattens the tree into the submission shape validated by the
// schema layer.
func (t *Tree) Build() []models.DayDraft {
	days := make([]models.DayDraft, 0, len(t.Days))
	for _, day := range t.Days {
		d := models.DayDraft{
			Date:      day.Date,
			StartTime: day.StartTime,
			EndTime:   day.EndTime,
		}
		for _, batch := range day.Batches {
			b := models.BatchDraft{
				Name:      batch.Name,
				StartDate: batch.StartDate,
				EndDate:   batch.EndDate,
			}
			for _, ticket := range batch.Tickets {
				b.Tickets = append(b.Tickets, ticket.Ticket)
			}
			d.Batches = append(d.Batches, b)
		}
		days = append(days, d)
	}
	return days
}
