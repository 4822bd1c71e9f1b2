package sheetdb

import (
	"context"
	"fmt"

	"kioskcheckin/internal/domain"
	"kioskcheckin/internal/sheetcodec"
)

type checkinLogRepository struct {
	store domain.SheetStore
	sheet string
}

// NewCheckinLogRepository returns a CheckinLogRepository over the shared
// Checkins tab.
func NewCheckinLogRepository(store domain.SheetStore, sheetName string) domain.CheckinLogRepository {
	return &checkinLogRepository{store: store, sheet: sheetName}
}

func (r *checkinLogRepository) List(ctx context.Context) ([]*domain.CheckinLogEntry, error) {
	binding, rows, err := loadTable(ctx, r.store, r.sheet, CheckinAliases)
	if err != nil {
		return nil, fmt.Errorf("list checkins: %w", err)
	}
	if err := binding.Require("VisitorID"); err != nil {
		return nil, fmt.Errorf("list checkins: %w", err)
	}

	entries := make([]*domain.CheckinLogEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, &domain.CheckinLogEntry{
			Timestamp:  binding.Value(row, "Timestamp"),
			VisitorID:  binding.Value(row, "VisitorID"),
			FullName:   binding.Value(row, "FullName"),
			EventTitle: binding.Value(row, "EventTitle"),
		})
	}
	return entries, nil
}

func (r *checkinLogRepository) Append(ctx context.Context, entry *domain.CheckinLogEntry) error {
	headers, err := liveHeaders(ctx, r.store, r.sheet)
	if err != nil {
		return fmt.Errorf("append checkin: %w", err)
	}
	row, err := sheetcodec.EncodeRow(headers, CheckinAliases, map[string]string{
		"Timestamp":  entry.Timestamp,
		"VisitorID":  entry.VisitorID,
		"FullName":   entry.FullName,
		"EventTitle": entry.EventTitle,
	})
	if err != nil {
		return fmt.Errorf("append checkin: %w", err)
	}
	if _, err := r.store.AppendRows(ctx, r.sheet, [][]string{row}); err != nil {
		return fmt.Errorf("append checkin: %w", err)
	}
	return nil
}
