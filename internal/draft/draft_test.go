package draft_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"ticketeiro/internal/draft"
	"ticketeiro/internal/models"
)

func flexTime(t *testing.T, value string) models.FlexTime {
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("Failed to parse time %q: %v", value, err)
	}
	return models.FlexTime{Time: parsed}
}

func TestNewTreeSeedsMinimumShape(t *testing.T) {
	tree := draft.NewTree()

	assert.Len(t, tree.Days, 1)
	assert.Len(t, tree.Days[0].Batches, 1)
	assert.Len(t, tree.Days[0].Batches[0].Tickets, 1)

	// The seeded ticket defaults to MALE, matching the form default
	assert.Equal(t, models.TicketGenderMale, tree.Days[0].Batches[0].Tickets[0].Ticket.Gender)
	assert.NotEmpty(t, tree.Days[0].ID)
	assert.NotEmpty(t, tree.Days[0].Batches[0].ID)
	assert.NotEmpty(t, tree.Days[0].Batches[0].Tickets[0].ID)
}

func TestAppendBatchChainsStartDate(t *testing.T) {
	tree := draft.NewTree()
	day := tree.Days[0]
	day.Batches[0].EndDate = flexTime(t, "2024-05-01T20:00:00Z")

	batchID, err := tree.AppendBatch(day.ID)
	assert.NoError(t, err)
	assert.Len(t, day.Batches, 2)

	added := day.Batches[1]
	assert.Equal(t, batchID, added.ID)
	// The new batch picks up where the previous one ends
	assert.Equal(t, flexTime(t, "2024-05-01T20:00:00Z"), added.StartDate)
	assert.True(t, added.EndDate.IsZero())
}

func TestAppendBatchWithoutPreviousEndDate(t *testing.T) {
	tree := draft.NewTree()
	day := tree.Days[0]

	_, err := tree.AppendBatch(day.ID)
	assert.NoError(t, err)
	// No chaining when the previous batch has no end date yet
	assert.True(t, day.Batches[1].StartDate.IsZero())
}

func TestAppendTicketInheritsSeeds(t *testing.T) {
	tree := draft.NewTree()
	day := tree.Days[0]
	batch := day.Batches[0]

	batch.Tickets[0].Ticket.SectorID = "sector-camarote"
	batch.Tickets[0].Ticket.Gender = models.TicketGenderFemale
	batch.Tickets[0].Ticket.Quantity = 80
	batch.Tickets[0].Ticket.Price = 12000
	batch.Tickets[0].Ticket.Obs = "meia-entrada"

	ticketID, err := tree.AppendTicket(day.ID, batch.ID)
	assert.NoError(t, err)
	assert.Len(t, batch.Tickets, 2)

	added := batch.Tickets[1]
	assert.Equal(t, ticketID, added.ID)
	// Sector, gender and quantity carry over; everything else resets
	assert.Equal(t, "sector-camarote", added.Ticket.SectorID)
	assert.Equal(t, models.TicketGenderFemale, added.Ticket.Gender)
	assert.Equal(t, 80, added.Ticket.Quantity)
	assert.Equal(t, 0, added.Ticket.Price)
	assert.Empty(t, added.Ticket.Obs)
}

func TestAppendAddressesUnknownNodes(t *testing.T) {
	tree := draft.NewTree()

	_, err := tree.AppendBatch("no-such-day")
	assert.Error(t, err)

	_, err = tree.AppendTicket(tree.Days[0].ID, "no-such-batch")
	assert.Error(t, err)
}

func TestRemoveLastItemIsNoOp(t *testing.T) {
	tree := draft.NewTree()
	day := tree.Days[0]
	batch := day.Batches[0]

	assert.NoError(t, tree.RemoveDay(day.ID))
	assert.Len(t, tree.Days, 1)

	assert.NoError(t, tree.RemoveBatch(day.ID, batch.ID))
	assert.Len(t, day.Batches, 1)

	assert.NoError(t, tree.RemoveTicket(day.ID, batch.ID, batch.Tickets[0].ID))
	assert.Len(t, batch.Tickets, 1)
}

func TestRemoveInteriorKeepsSiblingIdentities(t *testing.T) {
	tree := draft.NewTree()
	day := tree.Days[0]

	first := day.Batches[0]
	middleID, err := tree.AppendBatch(day.ID)
	assert.NoError(t, err)
	lastID, err := tree.AppendBatch(day.ID)
	assert.NoError(t, err)

	// Removing the middle batch must not shift what the remaining ids
	// point at.
	assert.NoError(t, tree.RemoveBatch(day.ID, middleID))
	assert.Len(t, day.Batches, 2)
	assert.Equal(t, first.ID, day.Batches[0].ID)
	assert.Equal(t, lastID, day.Batches[1].ID)

	err = tree.RemoveBatch(day.ID, "already-gone")
	assert.Error(t, err)
}

func TestRemoveTicketById(t *testing.T) {
	tree := draft.NewTree()
	day := tree.Days[0]
	batch := day.Batches[0]

	keepID := batch.Tickets[0].ID
	removeID, err := tree.AppendTicket(day.ID, batch.ID)
	assert.NoError(t, err)

	assert.NoError(t, tree.RemoveTicket(day.ID, batch.ID, removeID))
	assert.Len(t, batch.Tickets, 1)
	assert.Equal(t, keepID, batch.Tickets[0].ID)
}

func TestBuildFlattensTree(t *testing.T) {
	tree := draft.NewTree()
	day := tree.Days[0]
	day.Date = flexTime(t, "2024-05-01T00:00:00Z")
	day.StartTime = flexTime(t, "2024-05-01T20:00:00Z")
	day.EndTime = flexTime(t, "2024-05-02T02:00:00Z")

	batch := day.Batches[0]
	batch.Name = "1º Lote"
	batch.EndDate = flexTime(t, "2024-04-15T00:00:00Z")
	batch.Tickets[0].Ticket.SectorID = "sector-pista"
	batch.Tickets[0].Ticket.Quantity = 100

	_, err := tree.AppendBatch(day.ID)
	assert.NoError(t, err)
	day.Batches[1].Name = "2º Lote"

	built := tree.Build()
	assert.Len(t, built, 1)
	assert.Len(t, built[0].Batches, 2)
	assert.Equal(t, "1º Lote", built[0].Batches[0].Name)
	assert.Equal(t, "sector-pista", built[0].Batches[0].Tickets[0].SectorID)
	// The chained start date survives the flattening
	assert.Equal(t, flexTime(t, "2024-04-15T00:00:00Z"), built[0].Batches[1].StartDate)
	assert.Equal(t, flexTime(t, "2024-05-01T20:00:00Z"), built[0].StartTime)
}
