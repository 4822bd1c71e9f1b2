package sheetdb

import (
	"context"
	"fmt"

	"kioskcheckin/internal/domain"
)

type eventRepository struct {
	store domain.SheetStore
	sheet string
}

// NewEventRepository returns a read-only EventRepository over the Events tab.
// Events are managed by staff directly in the spreadsheet.
func NewEventRepository(store domain.SheetStore, sheetName string) domain.EventRepository {
	return &eventRepository{store: store, sheet: sheetName}
}

func (r *eventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	binding, rows, err := loadTable(ctx, r.store, r.sheet, EventAliases)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if err := binding.Require("EventTitle"); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	events := make([]*domain.Event, 0, len(rows))
	for _, row := range rows {
		title := binding.Value(row, "EventTitle")
		if title == "" {
			continue
		}
		events = append(events, &domain.Event{
			Title:          title,
			IsActive:       boolCell(binding.Value(row, "IsActive")),
			AllowWalkins:   boolCell(binding.Value(row, "AllowWalkins")),
			GuestListSheet: binding.Value(row, "GuestListSheet"),
		})
	}
	return events, nil
}
