package sheetdb

import (
	"context"
	"fmt"

	"kioskcheckin/internal/domain"
	"kioskcheckin/internal/sheetcodec"
)

type visitorRepository struct {
	store domain.SheetStore
	sheet string
}

// NewVisitorRepository returns a VisitorRepository over the given sheet tab.
func NewVisitorRepository(store domain.SheetStore, sheetName string) domain.VisitorRepository {
	return &visitorRepository{store: store, sheet: sheetName}
}

func (r *visitorRepository) List(ctx context.Context) ([]*domain.Visitor, error) {
	binding, rows, err := loadTable(ctx, r.store, r.sheet, VisitorAliases)
	if err != nil {
		return nil, fmt.Errorf("list visitors: %w", err)
	}
	// Email is the identity key; a Visitors sheet without an email-like
	// column is misconfigured, not merely sparse.
	if err := binding.Require("Email"); err != nil {
		return nil, fmt.Errorf("list visitors: %w", err)
	}

	visitors := make([]*domain.Visitor, 0, len(rows))
	for i, row := range rows {
		visitors = append(visitors, &domain.Visitor{
			VisitorID:  binding.Value(row, "VisitorID"),
			FirstName:  binding.Value(row, "FirstName"),
			LastName:   binding.Value(row, "LastName"),
			Email:      binding.Value(row, "Email"),
			Phone:      binding.Value(row, "Phone"),
			DateJoined: binding.Value(row, "DateJoined"),
			Subscribed: binding.Value(row, "Subscribed"),
			RowIndex:   i + 2,
		})
	}
	return visitors, nil
}

func (r *visitorRepository) Append(ctx context.Context, v *domain.Visitor) error {
	headers, err := liveHeaders(ctx, r.store, r.sheet)
	if err != nil {
		return fmt.Errorf("append visitor: %w", err)
	}
	row, err := sheetcodec.EncodeRow(headers, VisitorAliases, visitorRecord(v))
	if err != nil {
		return fmt.Errorf("append visitor: %w", err)
	}
	if _, err := r.store.AppendRows(ctx, r.sheet, [][]string{row}); err != nil {
		return fmt.Errorf("append visitor: %w", err)
	}
	return nil
}

func (r *visitorRepository) UpdateAt(ctx context.Context, rowIndex int, v *domain.Visitor) error {
	if rowIndex < 2 {
		return fmt.Errorf("update visitor: %w: row index %d", domain.ErrInvalidInput, rowIndex)
	}
	headers, err := liveHeaders(ctx, r.store, r.sheet)
	if err != nil {
		return fmt.Errorf("update visitor: %w", err)
	}
	row, err := sheetcodec.EncodeRow(headers, VisitorAliases, visitorRecord(v))
	if err != nil {
		return fmt.Errorf("update visitor: %w", err)
	}
	spec := sheetcodec.RowRange(r.sheet, rowIndex, len(row))
	if err := r.store.UpdateRange(ctx, spec, [][]string{row}); err != nil {
		return fmt.Errorf("update visitor: %w", err)
	}
	return nil
}

func visitorRecord(v *domain.Visitor) map[string]string {
	return map[string]string{
		"VisitorID":  v.VisitorID,
		"FirstName":  v.FirstName,
		"LastName":   v.LastName,
		"Email":      v.Email,
		"Phone":      v.Phone,
		"DateJoined": v.DateJoined,
		"Subscribed": v.Subscribed,
	}
}
