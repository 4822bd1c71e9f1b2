package domain

import (
	"context"
	"errors"
)

// Sentinel errors shared across the kiosk core.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")

	// ErrSchema marks a sheet whose header row is missing or lacks a column
	// the operation needs. It is a configuration problem with the backing
	// spreadsheet, not a transient per-visitor failure, and callers should
	// surface it as such.
	ErrSchema = errors.New("sheet schema error")

	ErrWalkinsClosed = errors.New("walk-ins are not allowed for this event")
)

// ValueRange is a rectangular block of cells read from the store.
// Values[0] is the header row when a whole table is fetched. Blank cells are
// empty strings; trailing blank cells may be absent entirely.
type ValueRange struct {
	Range  string     `json:"range"`
	Values [][]string `json:"values"`
}

// SheetStore is the gateway to the spreadsheet-backed record store.
// Range specs use A1 notation ("Visitors!A2:E2"); a bare sheet name addresses
// the whole populated table. Implementations own transport concerns (auth,
// timeouts); the core never retries.
type SheetStore interface {
	GetRange(ctx context.Context, rangeSpec string) (*ValueRange, error)
	// AppendRows appends after the last populated row of the sheet and
	// returns the 1-based A1 span that was written.
	AppendRows(ctx context.Context, sheetName string, rows [][]string) (updatedRange string, err error)
	// UpdateRange overwrites exactly the addressed cells.
	UpdateRange(ctx context.Context, rangeSpec string, rows [][]string) error
}
