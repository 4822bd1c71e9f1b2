package sheetdb

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"kioskcheckin/internal/domain"
)

// fakeStore implements domain.SheetStore over in-memory sheets for tests.
// It understands the three range forms the repositories emit: a bare sheet
// name, "Sheet!1:1", and "Sheet!A5:F5".
type fakeStore struct {
	sheets map[string][][]string

	getErr    error
	appendErr error
	updateErr error

	appendCalls []string
	updateCalls []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{sheets: make(map[string][][]string)}
}

func (f *fakeStore) GetRange(ctx context.Context, rangeSpec string) (*domain.ValueRange, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	sheet, span, _ := strings.Cut(rangeSpec, "!")
	rows, ok := f.sheets[sheet]
	if !ok {
		return nil, fmt.Errorf("no such sheet %q", sheet)
	}
	if span == "" {
		return &domain.ValueRange{Range: rangeSpec, Values: rows}, nil
	}
	if span == "1:1" {
		if len(rows) == 0 {
			return &domain.ValueRange{Range: rangeSpec}, nil
		}
		return &domain.ValueRange{Range: rangeSpec, Values: [][]string{rows[0]}}, nil
	}
	start, end, ok := strings.Cut(span, ":")
	if !ok {
		return nil, fmt.Errorf("unsupported span %q", span)
	}
	startCol, startRow := cellCoords(start)
	endCol, _ := cellCoords(end)
	if startRow > len(rows) {
		return &domain.ValueRange{Range: rangeSpec}, nil
	}
	row := rows[startRow-1]
	var cells []string
	for c := startCol; c <= endCol; c++ {
		if c <= len(row) {
			cells = append(cells, row[c-1])
		} else {
			cells = append(cells, "")
		}
	}
	return &domain.ValueRange{Range: rangeSpec, Values: [][]string{cells}}, nil
}

func (f *fakeStore) AppendRows(ctx context.Context, sheetName string, rows [][]string) (string, error) {
	if f.appendErr != nil {
		return "", f.appendErr
	}
	f.appendCalls = append(f.appendCalls, sheetName)
	start := len(f.sheets[sheetName]) + 1
	f.sheets[sheetName] = append(f.sheets[sheetName], rows...)
	return fmt.Sprintf("%s!A%d:Z%d", sheetName, start, start+len(rows)-1), nil
}

func (f *fakeStore) UpdateRange(ctx context.Context, rangeSpec string, rows [][]string) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updateCalls = append(f.updateCalls, rangeSpec)
	sheet, span, _ := strings.Cut(rangeSpec, "!")
	start, _, ok := strings.Cut(span, ":")
	if !ok {
		return fmt.Errorf("unsupported span %q", span)
	}
	startCol, startRow := cellCoords(start)
	existing := f.sheets[sheet]
	for i, row := range rows {
		target := startRow - 1 + i
		for target >= len(existing) {
			existing = append(existing, nil)
		}
		for j, v := range row {
			col := startCol - 1 + j
			for col >= len(existing[target]) {
				existing[target] = append(existing[target], "")
			}
			existing[target][col] = v
		}
	}
	f.sheets[sheet] = existing
	return nil
}

// cellCoords parses "F5" into (6, 5).
func cellCoords(cell string) (col, row int) {
	i := 0
	for i < len(cell) && cell[i] >= 'A' && cell[i] <= 'Z' {
		col = col*26 + int(cell[i]-'A') + 1
		i++
	}
	row, _ = strconv.Atoi(cell[i:])
	return col, row
}
