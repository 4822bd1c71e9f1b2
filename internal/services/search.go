package services

import (
	"context"
	"fmt"
	"strings"

	"kioskcheckin/internal/domain"
)

// maxNameDistance is the edit-distance threshold for a full-name match.
const maxNameDistance = 2

type searchService struct {
	visitors   domain.VisitorRepository
	guestLists domain.GuestListRepository
	checkins   domain.CheckinLogRepository
}

// NewSearchService creates the per-query fuzzy search. It builds its index
// from live rows on every call; at kiosk scale (hundreds to low thousands of
// rows) the O(rows x name length) scan is fine.
func NewSearchService(
	visitors domain.VisitorRepository,
	guestLists domain.GuestListRepository,
	checkins domain.CheckinLogRepository,
) domain.SearchService {
	return &searchService{
		visitors:   visitors,
		guestLists: guestLists,
		checkins:   checkins,
	}
}

func (s *searchService) Search(ctx context.Context, query string, event *domain.Event) ([]*domain.SearchMatch, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, fmt.Errorf("%w: empty search query", domain.ErrInvalidInput)
	}

	records, err := s.loadRecords(ctx, event)
	if err != nil {
		return nil, err
	}

	checkedIn, err := s.checkedInSet(ctx, event)
	if err != nil {
		return nil, err
	}

	qDigits := digitsOnly(q)
	var matches []*domain.SearchMatch
	for _, rec := range records {
		if !matchesQuery(rec, q, qDigits) {
			continue
		}
		matches = append(matches, &domain.SearchMatch{
			GuestRecord:      *rec,
			AlreadyCheckedIn: rec.VisitorID != "" && checkedIn[rec.VisitorID],
		})
	}
	return matches, nil
}

func (s *searchService) loadRecords(ctx context.Context, event *domain.Event) ([]*domain.GuestRecord, error) {
	if event != nil && event.GuestListSheet != "" {
		entries, err := s.guestLists.List(ctx, event.GuestListSheet)
		if err != nil {
			return nil, fmt.Errorf("load guest list: %w", err)
		}
		records := make([]*domain.GuestRecord, 0, len(entries))
		for _, e := range entries {
			records = append(records, &domain.GuestRecord{
				VisitorID: e.GuestID,
				FirstName: e.FirstName,
				LastName:  e.LastName,
				Email:     e.Email,
				Phone:     e.Phone,
				RowIndex:  e.RowIndex,
			})
		}
		return records, nil
	}

	visitors, err := s.visitors.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load visitors: %w", err)
	}
	records := make([]*domain.GuestRecord, 0, len(visitors))
	for _, v := range visitors {
		records = append(records, &domain.GuestRecord{
			VisitorID: v.VisitorID,
			FirstName: v.FirstName,
			LastName:  v.LastName,
			Email:     v.Email,
			Phone:     v.Phone,
			RowIndex:  v.RowIndex,
		})
	}
	return records, nil
}

// checkedInSet collects visitor IDs already logged for the active context.
func (s *searchService) checkedInSet(ctx context.Context, event *domain.Event) (map[string]bool, error) {
	entries, err := s.checkins.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load checkin log: %w", err)
	}
	title := domain.GeneralVisitTitle
	if event != nil {
		title = event.Title
	}
	set := make(map[string]bool)
	for _, e := range entries {
		if sameTitle(e.EventTitle, title) && e.VisitorID != "" {
			set[e.VisitorID] = true
		}
	}
	return set, nil
}

// matchesQuery applies the four match rules: phone-digit containment, exact
// email, full-name edit distance, and full-name substring.
func matchesQuery(rec *domain.GuestRecord, q, qDigits string) bool {
	if qDigits != "" {
		if pDigits := digitsOnly(rec.Phone); pDigits != "" && strings.Contains(pDigits, qDigits) {
			return true
		}
	}
	if rec.Email != "" && strings.EqualFold(rec.Email, q) {
		return true
	}
	fullName := strings.ToLower(strings.TrimSpace(rec.FirstName + " " + rec.LastName))
	if fullName == "" {
		return false
	}
	if levenshtein(fullName, q) <= maxNameDistance {
		return true
	}
	return strings.Contains(fullName, q)
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// levenshtein is the classic dynamic-programming edit distance: insertions,
// deletions, and substitutions all cost 1, no transpositions.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(ra)+1)
	cur := make([]int, len(ra)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(rb); i++ {
		cur[0] = i
		for j := 1; j <= len(ra); j++ {
			cost := 1
			if ra[j-1] == rb[i-1] {
				cost = 0
			}
			cur[j] = min(prev[j-1]+cost, min(cur[j-1]+1, prev[j]+1))
		}
		prev, cur = cur, prev
	}
	return prev[len(ra)]
}

// sameTitle compares event titles the way the duplicate guard does: trimmed
// and case-insensitive, so hand-edited log rows still count.
func sameTitle(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
