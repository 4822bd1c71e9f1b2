package domain

import (
	"context"
	"strings"
)

// Subscribed is tri-state in the sheet: "Yes", "No", or blank (unknown).
const (
	SubscribedYes = "Yes"
	SubscribedNo  = "No"
)

// Visitor is the canonical identity record, one row in the Visitors table.
// Email is the sole identity key (case-insensitive, at most one row per
// address); Phone is display/search data only.
// swagger:model Visitor
type Visitor struct {
	VisitorID  string `json:"visitor_id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	DateJoined string `json:"date_joined"`
	Subscribed string `json:"subscribed"`

	// RowIndex is the 1-based sheet row this record was read from, 0 for a
	// record that has not been persisted yet.
	RowIndex int `json:"-"`
}

// FullName joins first and last name with a single space, trimming blanks.
func (v *Visitor) FullName() string {
	return strings.TrimSpace(v.FirstName + " " + v.LastName)
}

// VisitorRepository defines storage operations for the Visitors table.
// List re-reads the live table; there is no caching layer, by design.
type VisitorRepository interface {
	List(ctx context.Context) ([]*Visitor, error)
	Append(ctx context.Context, v *Visitor) error
	UpdateAt(ctx context.Context, rowIndex int, v *Visitor) error
}

// VisitorResolver finds the canonical visitor for a candidate or mints a new
// one. Returns the resolved visitor and whether a new row was created.
// Enrichment is additive-only: blank stored fields may be backfilled from the
// candidate, populated fields are never overwritten.
type VisitorResolver interface {
	Resolve(ctx context.Context, candidate Visitor) (*Visitor, bool, error)
}
