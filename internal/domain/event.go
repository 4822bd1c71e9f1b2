package domain

import "context"

// Event describes a check-in context. Events are externally managed: the
// kiosk reads them at session start and never writes them back.
// swagger:model Event
type Event struct {
	Title          string `json:"title"`
	IsActive       bool   `json:"is_active"`
	AllowWalkins   bool   `json:"allow_walkins"`
	GuestListSheet string `json:"guest_list_sheet"`
}

// EventRepository defines read access to the Events table.
type EventRepository interface {
	List(ctx context.Context) ([]*Event, error)
}

// EventService exposes the event listing the kiosk UI works from.
type EventService interface {
	// ListActive returns active events only.
	ListActive(ctx context.Context) ([]*Event, error)
	// GetActiveByTitle returns the active event with the given title
	// (case-insensitive) or ErrNotFound.
	GetActiveByTitle(ctx context.Context, title string) (*Event, error)
}
