package db

import (
	"context"

	"github.com/uptrace/bun"

	"ticketeiro/internal/models"
)

type DB struct {
	Bun *bun.DB
}

// InsertEvent persists the event row. It returns nil (no error) when
// the store accepted the statement but produced no row, which the
// pipeline treats as a distinct failure.
func (d *DB) InsertEvent(ctx context.Context, event models.Event) (*models.Event, error) {
	res, err := d.Bun.NewInsert().Model(&event).Exec(ctx)
	if err != nil {
		return nil, err
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return nil, nil
	}
	return &event, nil
}

func (d *DB) InsertTicket(ctx context.Context, ticket models.Ticket) (*models.Ticket, error) {
	res, err := d.Bun.NewInsert().Model(&ticket).Exec(ctx)
	if err != nil {
		return nil, err
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return nil, nil
	}
	return &ticket, nil
}

func (d *DB) InsertDay(ctx context.Context, day models.EventDay) (*models.EventDay, error) {
	_, err := d.Bun.NewInsert().Model(&day).Exec(ctx)
	if err != nil {
		return nil, err
	}
	return &day, nil
}

func (d *DB) InsertBatch(ctx context.Context, batch models.Batch) (*models.Batch, error) {
	_, err := d.Bun.NewInsert().Model(&batch).Exec(ctx)
	if err != nil {
		return nil, err
	}
	return &batch, nil
}

func (d *DB) GetEventByID(ctx context.Context, id string) (*models.Event, error) {
	var event models.Event
	err := d.Bun.NewSelect().
		Model(&event).
		Where("id = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (d *DB) ListEvents(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	err := d.Bun.NewSelect().
		Model(&events).
		Order("created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (d *DB) ListEventsByOrganizer(ctx context.Context, organizerID string) ([]models.Event, error) {
	var events []models.Event
	err := d.Bun.NewSelect().
		Model(&events).
		Where("organizer_id = ?", organizerID).
		Order("created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (d *DB) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := d.Bun.NewSelect().
		Model(&categories).
		Order("name ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (d *DB) ListTicketSectors(ctx context.Context) ([]models.TicketSector, error) {
	var sectors []models.TicketSector
	err := d.Bun.NewSelect().
		Model(&sectors).
		Order("name ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return sectors, nil
}
