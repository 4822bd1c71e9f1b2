package sheetdb

import (
	"context"
	"fmt"

	"kioskcheckin/internal/domain"
	"kioskcheckin/internal/sheetcodec"
)

type guestListRepository struct {
	store domain.SheetStore
}

// NewGuestListRepository returns a GuestListRepository. The sheet name is a
// per-call argument because each event points at its own guest list tab.
func NewGuestListRepository(store domain.SheetStore) domain.GuestListRepository {
	return &guestListRepository{store: store}
}

func (r *guestListRepository) List(ctx context.Context, sheetName string) ([]*domain.GuestListEntry, error) {
	binding, rows, err := loadTable(ctx, r.store, sheetName, GuestListAliases)
	if err != nil {
		return nil, fmt.Errorf("list guest list %q: %w", sheetName, err)
	}

	entries := make([]*domain.GuestListEntry, 0, len(rows))
	for i, row := range rows {
		entries = append(entries, &domain.GuestListEntry{
			GuestID:          binding.Value(row, "GuestID"),
			FirstName:        binding.Value(row, "FirstName"),
			LastName:         binding.Value(row, "LastName"),
			Email:            binding.Value(row, "Email"),
			Phone:            binding.Value(row, "Phone"),
			CheckinTimestamp: binding.Value(row, "CheckinTimestamp"),
			IsWalkin:         boolCell(binding.Value(row, "IsWalkin")),
			RowIndex:         i + 2,
		})
	}
	return entries, nil
}

func (r *guestListRepository) Append(ctx context.Context, sheetName string, entry *domain.GuestListEntry) error {
	headers, err := liveHeaders(ctx, r.store, sheetName)
	if err != nil {
		return fmt.Errorf("append guest %q: %w", sheetName, err)
	}
	row, err := sheetcodec.EncodeRow(headers, GuestListAliases, guestRecord(entry))
	if err != nil {
		return fmt.Errorf("append guest %q: %w", sheetName, err)
	}
	if _, err := r.store.AppendRows(ctx, sheetName, [][]string{row}); err != nil {
		return fmt.Errorf("append guest %q: %w", sheetName, err)
	}
	return nil
}

func (r *guestListRepository) UpdateAt(ctx context.Context, sheetName string, rowIndex int, entry *domain.GuestListEntry) error {
	if rowIndex < 2 {
		return fmt.Errorf("update guest %q: %w: row index %d", sheetName, domain.ErrInvalidInput, rowIndex)
	}
	headers, err := liveHeaders(ctx, r.store, sheetName)
	if err != nil {
		return fmt.Errorf("update guest %q: %w", sheetName, err)
	}
	row, err := sheetcodec.EncodeRow(headers, GuestListAliases, guestRecord(entry))
	if err != nil {
		return fmt.Errorf("update guest %q: %w", sheetName, err)
	}
	// Write exactly the span the encoded row occupies.
	spec := sheetcodec.RowRange(sheetName, rowIndex, len(row))
	if err := r.store.UpdateRange(ctx, spec, [][]string{row}); err != nil {
		return fmt.Errorf("update guest %q: %w", sheetName, err)
	}
	return nil
}

func guestRecord(e *domain.GuestListEntry) map[string]string {
	return map[string]string{
		"GuestID":          e.GuestID,
		"FirstName":        e.FirstName,
		"LastName":         e.LastName,
		"Email":            e.Email,
		"Phone":            e.Phone,
		"CheckinTimestamp": e.CheckinTimestamp,
		"IsWalkin":         boolString(e.IsWalkin),
	}
}
