// Package workbook implements the record-store gateway against a local .xlsx
// file. Meant for offline kiosks and development; semantics mirror the remote
// values API (header row first, blank cells empty, trailing blanks absent).
package workbook

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/xuri/excelize/v2"

	"kioskcheckin/internal/domain"
)

type store struct {
	mu   sync.Mutex
	file *excelize.File
	path string
}

// Open opens the workbook at path and returns a SheetStore over it.
// The returned store serializes access; excelize files are not safe for
// concurrent use.
func Open(path string) (domain.SheetStore, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %q: %w", path, err)
	}
	return &store{file: f, path: path}, nil
}

func (s *store) GetRange(ctx context.Context, rangeSpec string) (*domain.ValueRange, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sheet, span := splitRangeSpec(rangeSpec)
	if idx, _ := s.file.GetSheetIndex(sheet); idx == -1 {
		return nil, fmt.Errorf("get range %q: sheet %q not found", rangeSpec, sheet)
	}

	rows, err := s.file.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("get range %q: %w", rangeSpec, err)
	}

	if span == "" {
		return &domain.ValueRange{Range: rangeSpec, Values: rows}, nil
	}

	startRow, endRow, startCol, endCol, err := parseSpan(span)
	if err != nil {
		return nil, fmt.Errorf("get range %q: %w", rangeSpec, err)
	}

	var out [][]string
	for r := startRow; r <= endRow && r <= len(rows); r++ {
		row := rows[r-1]
		if startCol == 0 {
			out = append(out, row)
			continue
		}
		var cells []string
		for c := startCol; c <= endCol; c++ {
			if c <= len(row) {
				cells = append(cells, row[c-1])
			} else {
				cells = append(cells, "")
			}
		}
		out = append(out, cells)
	}
	return &domain.ValueRange{Range: rangeSpec, Values: out}, nil
}

func (s *store) AppendRows(ctx context.Context, sheetName string, rows [][]string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.file.GetRows(sheetName)
	if err != nil {
		return "", fmt.Errorf("append to %q: %w", sheetName, err)
	}

	start := len(existing) + 1
	width := 0
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, start+i)
		if err != nil {
			return "", fmt.Errorf("append to %q: %w", sheetName, err)
		}
		values := make([]any, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err := s.file.SetSheetRow(sheetName, cell, &values); err != nil {
			return "", fmt.Errorf("append to %q: %w", sheetName, err)
		}
		if len(row) > width {
			width = len(row)
		}
	}
	if err := s.file.Save(); err != nil {
		return "", fmt.Errorf("save workbook: %w", err)
	}

	end := start + len(rows) - 1
	endCol, err := excelize.ColumnNumberToName(max(width, 1))
	if err != nil {
		return "", fmt.Errorf("append to %q: %w", sheetName, err)
	}
	return fmt.Sprintf("%s!A%d:%s%d", sheetName, start, endCol, end), nil
}

func (s *store) UpdateRange(ctx context.Context, rangeSpec string, rows [][]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sheet, span := splitRangeSpec(rangeSpec)
	if span == "" {
		return fmt.Errorf("update range %q: span is required", rangeSpec)
	}
	startRow, _, startCol, _, err := parseSpan(span)
	if err != nil {
		return fmt.Errorf("update range %q: %w", rangeSpec, err)
	}
	if startCol == 0 {
		startCol = 1
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(startCol, startRow+i)
		if err != nil {
			return fmt.Errorf("update range %q: %w", rangeSpec, err)
		}
		values := make([]any, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err := s.file.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("update range %q: %w", rangeSpec, err)
		}
	}
	if err := s.file.Save(); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

// splitRangeSpec separates "Sheet!A5:F5" into sheet and span; a bare sheet
// name has an empty span.
func splitRangeSpec(spec string) (sheet, span string) {
	if i := strings.LastIndex(spec, "!"); i >= 0 {
		return spec[:i], spec[i+1:]
	}
	return spec, ""
}

// parseSpan handles the two span forms the core emits: "A5:F9" and the
// whole-row form "1:1". startCol of 0 means the span covers full rows.
func parseSpan(span string) (startRow, endRow, startCol, endCol int, err error) {
	parts := strings.SplitN(span, ":", 2)
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}

	if r, convErr := strconv.Atoi(parts[0]); convErr == nil {
		endR, convErr := strconv.Atoi(parts[1])
		if convErr != nil {
			return 0, 0, 0, 0, fmt.Errorf("malformed span %q", span)
		}
		return r, endR, 0, 0, nil
	}

	startCol, startRow, err = excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return 0, 0, 0, 0, fmt.Errorf("malformed span %q: %w", span, err)
	}
	endCol, endRow, err = excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return 0, 0, 0, 0, fmt.Errorf("malformed span %q: %w", span, err)
	}
	return startRow, endRow, startCol, endCol, nil
}
