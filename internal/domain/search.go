package domain

import "context"

// GuestRecord is the subset of fields the fuzzy search scores against,
// whether the row came from a per-event guest list or the Visitors table.
type GuestRecord struct {
	VisitorID string `json:"visitor_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	RowIndex  int    `json:"row_index"`
}

// SearchMatch is one ranked candidate. Records already checked in for the
// active context are still returned, flagged so the UI can disable them.
// swagger:model SearchMatch
type SearchMatch struct {
	GuestRecord
	AlreadyCheckedIn bool `json:"already_checked_in"`
}

// SearchService scores a free-text query against the live rows of the active
// context (the event's guest list, or the Visitors table for general visits).
type SearchService interface {
	Search(ctx context.Context, query string, event *Event) ([]*SearchMatch, error)
}
