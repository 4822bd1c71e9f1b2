// Package sheetcodec maps between a sheet's live header row and canonical
// field keys. Binding is alias-based and driven by the headers actually
// present, so reordering or renaming columns in the backing spreadsheet does
// not corrupt reads or writes.
package sheetcodec

import (
	"fmt"
	"strings"

	"kioskcheckin/internal/domain"
)

// FieldAlias declares one canonical key and the header substrings that bind
// to it. Matching is case-insensitive and whitespace-collapsed; a live header
// matches if it contains any alias. Deprecated entries are skipped.
type FieldAlias struct {
	Key        string
	Aliases    []string
	Deprecated bool
}

// AliasMap is an ordered alias configuration. Order matters twice over:
// earlier keys claim columns first, and within a key the leftmost matching
// unclaimed header wins.
type AliasMap []FieldAlias

// Normalize lowercases a header, trims it, and collapses inner whitespace.
func Normalize(header string) string {
	return strings.Join(strings.Fields(strings.ToLower(header)), " ")
}

// HeaderBinding is the result of matching an AliasMap against a live header
// row: each canonical key maps to at most one column index, and no two keys
// share a column.
type HeaderBinding struct {
	headers []string
	cols    map[string]int
}

// BindHeaders matches aliases against liveHeaders. An empty header row is a
// schema error; an alias that matches nothing simply leaves its key unbound.
func BindHeaders(liveHeaders []string, aliases AliasMap) (*HeaderBinding, error) {
	if len(liveHeaders) == 0 {
		return nil, fmt.Errorf("%w: empty header row", domain.ErrSchema)
	}

	normalized := make([]string, len(liveHeaders))
	for i, h := range liveHeaders {
		normalized[i] = Normalize(h)
	}

	cols := make(map[string]int, len(aliases))
	claimed := make(map[int]bool, len(aliases))
	for _, fa := range aliases {
		if fa.Deprecated {
			continue
		}
		for i, header := range normalized {
			if claimed[i] || header == "" {
				continue
			}
			if headerMatches(header, fa.Aliases) {
				cols[fa.Key] = i
				claimed[i] = true
				break
			}
		}
	}

	return &HeaderBinding{headers: liveHeaders, cols: cols}, nil
}

func headerMatches(normalizedHeader string, aliases []string) bool {
	for _, alias := range aliases {
		if a := Normalize(alias); a != "" && strings.Contains(normalizedHeader, a) {
			return true
		}
	}
	return false
}

// Col returns the column index bound to key.
func (b *HeaderBinding) Col(key string) (int, bool) {
	i, ok := b.cols[key]
	return i, ok
}

// Width is the number of live header columns.
func (b *HeaderBinding) Width() int {
	return len(b.headers)
}

// Value extracts the cell bound to key from a data row. Unbound keys and
// missing trailing cells read as the empty string; the result is trimmed.
func (b *HeaderBinding) Value(row []string, key string) string {
	i, ok := b.cols[key]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// Require returns a schema error unless every given key is bound.
func (b *HeaderBinding) Require(keys ...string) error {
	for _, key := range keys {
		if _, ok := b.cols[key]; !ok {
			return fmt.Errorf("%w: no column matching %q", domain.ErrSchema, key)
		}
	}
	return nil
}

// EncodeRow orders record values to match the live header row. Unmapped
// columns and missing record keys become empty cells; the only error is an
// empty header row, which signals a misconfigured sheet.
func EncodeRow(liveHeaders []string, aliases AliasMap, record map[string]string) ([]string, error) {
	binding, err := BindHeaders(liveHeaders, aliases)
	if err != nil {
		return nil, err
	}
	row := make([]string, len(liveHeaders))
	for key, i := range binding.cols {
		if v, ok := record[key]; ok {
			row[i] = v
		}
	}
	return row, nil
}
