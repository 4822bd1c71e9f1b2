package domain

import "context"

// GeneralVisitTitle is the check-in context recorded when no event is active.
const GeneralVisitTitle = "General Visit"

// CheckinLogEntry is one append-only audit row in the shared Checkins table.
// The presence of a (VisitorID, EventTitle) pair here is the source of truth
// for duplicate detection; guest-list rows are not consulted for that.
// swagger:model CheckinLogEntry
type CheckinLogEntry struct {
	Timestamp  string `json:"timestamp"`
	VisitorID  string `json:"visitor_id"`
	FullName   string `json:"full_name"`
	EventTitle string `json:"event_title"`
}

// CheckinLogRepository defines access to the shared check-in log.
type CheckinLogRepository interface {
	List(ctx context.Context) ([]*CheckinLogEntry, error)
	Append(ctx context.Context, entry *CheckinLogEntry) error
}

// GuestListEntry is one row in a per-event guest list tab. GuestID equals the
// visitor's VisitorID. Pre-seeded rows are updated in place on check-in;
// walk-ins are appended.
// swagger:model GuestListEntry
type GuestListEntry struct {
	GuestID          string `json:"guest_id"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	CheckinTimestamp string `json:"checkin_timestamp"`
	IsWalkin         bool   `json:"is_walkin"`

	// RowIndex is the 1-based sheet row, 0 for an unsaved entry.
	RowIndex int `json:"row_index"`
}

// GuestListRepository defines storage operations against a per-event guest
// list tab. The sheet name comes from the event record.
type GuestListRepository interface {
	List(ctx context.Context, sheetName string) ([]*GuestListEntry, error)
	Append(ctx context.Context, sheetName string, entry *GuestListEntry) error
	UpdateAt(ctx context.Context, sheetName string, rowIndex int, entry *GuestListEntry) error
}

// CheckinStatus is the terminal outcome of a check-in attempt.
type CheckinStatus string

const (
	StatusCheckedIn        CheckinStatus = "checked_in"
	StatusAlreadyCheckedIn CheckinStatus = "already_checked_in"
)

// CheckinRequest carries the guest data a kiosk submits for one check-in
// attempt. For pre-seeded guest-list rows RowIndex addresses the row to
// update in place; walk-ins set IsWalkin and leave RowIndex zero.
type CheckinRequest struct {
	FirstName  string
	LastName   string
	Email      string
	Phone      string
	Subscribed string
	IsWalkin   bool
	RowIndex   int
}

// CheckinResult is the display data returned to the kiosk after an attempt.
// A duplicate check-in is a normal result, not an error.
// swagger:model CheckinResult
type CheckinResult struct {
	Status     CheckinStatus `json:"status"`
	VisitorID  string        `json:"visitor_id"`
	FirstName  string        `json:"first_name"`
	LastName   string        `json:"last_name"`
	EventTitle string        `json:"event_title"`
	Timestamp  string        `json:"timestamp"`
}

// CheckinService is the check-in reconciliation engine. A nil event means a
// general visit: no guest-list write happens and the audit row records
// GeneralVisitTitle.
type CheckinService interface {
	CheckIn(ctx context.Context, req CheckinRequest, event *Event) (*CheckinResult, error)
}
