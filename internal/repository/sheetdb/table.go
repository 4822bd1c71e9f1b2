// Package sheetdb implements the kiosk repositories over the spreadsheet
// gateway. Every operation re-reads live data before deciding anything, so a
// staff member hand-editing the sheet between calls is tolerated; the cost is
// one extra round trip per write.
package sheetdb

import (
	"context"
	"fmt"

	"kioskcheckin/internal/domain"
	"kioskcheckin/internal/sheetcodec"
)

// loadTable fetches a whole sheet and binds its header row. A sheet with no
// rows at all is a schema error (missing header row); a header-only sheet
// returns an empty dataRows slice. dataRows[i] lives at sheet row i+2.
func loadTable(ctx context.Context, store domain.SheetStore, sheetName string, aliases sheetcodec.AliasMap) (*sheetcodec.HeaderBinding, [][]string, error) {
	vr, err := store.GetRange(ctx, sheetName)
	if err != nil {
		return nil, nil, err
	}
	if len(vr.Values) == 0 {
		return nil, nil, fmt.Errorf("%w: sheet %q is empty or missing a header row", domain.ErrSchema, sheetName)
	}
	binding, err := sheetcodec.BindHeaders(vr.Values[0], aliases)
	if err != nil {
		return nil, nil, fmt.Errorf("sheet %q: %w", sheetName, err)
	}
	return binding, vr.Values[1:], nil
}

// liveHeaders fetches only the header row, the way every write begins.
func liveHeaders(ctx context.Context, store domain.SheetStore, sheetName string) ([]string, error) {
	vr, err := store.GetRange(ctx, sheetcodec.HeaderRange(sheetName))
	if err != nil {
		return nil, err
	}
	if len(vr.Values) == 0 || len(vr.Values[0]) == 0 {
		return nil, fmt.Errorf("%w: sheet %q is empty or missing a header row", domain.ErrSchema, sheetName)
	}
	return vr.Values[0], nil
}

// boolCell interprets the loose boolean-as-string convention used in the
// Events and guest list tables.
func boolCell(s string) bool {
	switch sheetcodec.Normalize(s) {
	case "true", "yes", "y", "1":
		return true
	}
	return false
}

func boolString(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
