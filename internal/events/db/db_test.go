package db_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	_ "github.com/uptrace/bun/driver/sqliteshim"

	"ticketeiro/internal/events/db"
	"ticketeiro/internal/models"
)

func setupTestDB(t *testing.T) (*db.DB, *bun.DB) {
	// Connect to an in-memory SQLite DB for testing
	sqldb, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to connect to in-memory database: %v", err)
	}

	bunDB := bun.NewDB(sqldb, sqlitedialect.New())

	// Create required tables
	for _, model := range []interface{}{
		(*models.Event)(nil),
		(*models.EventDay)(nil),
		(*models.Batch)(nil),
		(*models.Ticket)(nil),
		(*models.Category)(nil),
		(*models.TicketSector)(nil),
	} {
		if _, err := bunDB.NewCreateTable().Model(model).Exec(context.Background()); err != nil {
			t.Fatalf("Failed to create table for %T: %v", model, err)
		}
	}

	return &db.DB{Bun: bunDB}, bunDB
}

func testEvent(organizerID string) models.Event {
	return models.Event{
		ID:          uuid.New().String(),
		CategoryID:  "cat-shows",
		Name:        "Festival de Inverno",
		Description: "Uma noite de shows",
		Image:       "https://files.test/ticketeiro/obj-key",
		Status:      models.EventStatusActive,
		Mode:        models.EventModeOnline,
		StartDate:   time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2024, 5, 2, 2, 0, 0, 0, time.UTC),
		OrganizerID: organizerID,
		CreatedAt:   time.Now(),
	}
}

func TestInsertAndGetEvent(t *testing.T) {
	eventDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	event := testEvent("user-1")

	// Test case: Insert event
	inserted, err := eventDB.InsertEvent(context.Background(), event)
	assert.NoError(t, err)
	assert.NotNil(t, inserted)
	assert.Equal(t, event.ID, inserted.ID)

	// Test case: Get event by ID
	found, err := eventDB.GetEventByID(context.Background(), event.ID)
	assert.NoError(t, err)
	assert.NotNil(t, found)
	assert.Equal(t, "Festival de Inverno", found.Name)
	assert.Equal(t, models.EventStatusActive, found.Status)

	// Test case: Get non-existent event
	found, err = eventDB.GetEventByID(context.Background(), "non-existent")
	assert.Error(t, err)
	assert.Nil(t, found)
}

func TestListEventsByOrganizer(t *testing.T) {
	eventDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	mine := testEvent("user-1")
	theirs := testEvent("user-2")

	_, err := eventDB.InsertEvent(context.Background(), mine)
	assert.NoError(t, err)
	_, err = eventDB.InsertEvent(context.Background(), theirs)
	assert.NoError(t, err)

	listed, err := eventDB.ListEventsByOrganizer(context.Background(), "user-1")
	assert.NoError(t, err)
	assert.Len(t, listed, 1)
	assert.Equal(t, mine.ID, listed[0].ID)

	all, err := eventDB.ListEvents(context.Background())
	assert.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestInsertDayAndBatch(t *testing.T) {
	eventDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	event := testEvent("user-1")
	_, err := eventDB.InsertEvent(context.Background(), event)
	assert.NoError(t, err)

	day := models.EventDay{
		ID:        uuid.New().String(),
		EventID:   event.ID,
		Date:      time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		StartTime: time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2024, 5, 2, 2, 0, 0, 0, time.UTC),
		CreatedAt: time.Now(),
	}
	insertedDay, err := eventDB.InsertDay(context.Background(), day)
	assert.NoError(t, err)
	assert.NotNil(t, insertedDay)

	batch := models.Batch{
		ID:        uuid.New().String(),
		EventID:   event.ID,
		DayID:     day.ID,
		Name:      "1º Lote",
		StartDate: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC),
		CreatedAt: time.Now(),
	}
	insertedBatch, err := eventDB.InsertBatch(context.Background(), batch)
	assert.NoError(t, err)
	assert.NotNil(t, insertedBatch)
	assert.Equal(t, day.ID, insertedBatch.DayID)
}

func TestInsertTicket(t *testing.T) {
	eventDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	event := testEvent("user-1")
	_, err := eventDB.InsertEvent(context.Background(), event)
	assert.NoError(t, err)

	ticket := models.Ticket{
		ID:        uuid.New().String(),
		EventID:   event.ID,
		SectorID:  "sector-pista",
		Price:     5000,
		Quantity:  100,
		Gender:    models.TicketGenderMale,
		File:      "https://files.test/ticketeiro/pdf-key",
		Status:    models.TicketStatusAvailable,
		CreatedAt: time.Now(),
	}
	inserted, err := eventDB.InsertTicket(context.Background(), ticket)
	assert.NoError(t, err)
	assert.NotNil(t, inserted)
	assert.Equal(t, event.ID, inserted.EventID)

	// Duplicate primary key is rejected
	_, err = eventDB.InsertTicket(context.Background(), ticket)
	assert.Error(t, err)
}

func TestListCategoriesAndSectors(t *testing.T) {
	eventDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	ctx := context.Background()
	for _, name := range []string{"Teatro", "Shows e Festas"} {
		category := models.Category{ID: uuid.New().String(), Name: name}
		_, err := bunDB.NewInsert().Model(&category).Exec(ctx)
		assert.NoError(t, err)
	}
	sector := models.TicketSector{ID: uuid.New().String(), Name: "Pista"}
	_, err := bunDB.NewInsert().Model(&sector).Exec(ctx)
	assert.NoError(t, err)

	categories, err := eventDB.ListCategories(ctx)
	assert.NoError(t, err)
	assert.Len(t, categories, 2)
	// Ordered by name
	assert.Equal(t, "Shows e Festas", categories[0].Name)

	sectors, err := eventDB.ListTicketSectors(ctx)
	assert.NoError(t, err)
	assert.Len(t, sectors, 1)
	assert.Equal(t, "Pista", sectors[0].Name)
}
