package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"strings"
	"time"

	"kioskcheckin/internal/domain"
)

// timestampLayout is the sheet-friendly format used for DateJoined and
// check-in timestamps.
const timestampLayout = "2006-01-02 15:04:05"

const (
	visitorIDPrefix   = "V-"
	visitorIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	visitorIDLength   = 8
)

type visitorResolver struct {
	visitors domain.VisitorRepository
	now      func() time.Time
}

// NewVisitorResolver creates a VisitorResolver over the Visitors table.
func NewVisitorResolver(visitors domain.VisitorRepository) domain.VisitorResolver {
	return &visitorResolver{visitors: visitors, now: time.Now}
}

// Resolve finds the canonical visitor by email or mints a new one. The full
// Visitors table is re-read on every call so hand edits to the sheet are
// picked up; two near-simultaneous registrations with the same email can
// still race and duplicate a row, which is an accepted limitation of the
// lock-free store.
func (s *visitorResolver) Resolve(ctx context.Context, candidate domain.Visitor) (*domain.Visitor, bool, error) {
	existing, err := s.visitors.List(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("load visitors: %w", err)
	}

	email := strings.ToLower(strings.TrimSpace(candidate.Email))
	if email != "" {
		for _, v := range existing {
			if strings.ToLower(v.Email) != email {
				continue
			}
			merged, changed := enrich(v, &candidate)
			if changed {
				if err := s.visitors.UpdateAt(ctx, v.RowIndex, merged); err != nil {
					return nil, false, fmt.Errorf("enrich visitor %s: %w", v.VisitorID, err)
				}
			}
			return merged, false, nil
		}
	}

	id, err := newVisitorID(existing)
	if err != nil {
		return nil, false, fmt.Errorf("mint visitor id: %w", err)
	}
	v := &domain.Visitor{
		VisitorID:  id,
		FirstName:  strings.TrimSpace(candidate.FirstName),
		LastName:   strings.TrimSpace(candidate.LastName),
		Email:      strings.TrimSpace(candidate.Email),
		Phone:      strings.TrimSpace(candidate.Phone),
		DateJoined: s.now().Format(timestampLayout),
		Subscribed: candidate.Subscribed,
	}
	if v.Subscribed == "" {
		v.Subscribed = domain.SubscribedNo
	}
	if err := s.visitors.Append(ctx, v); err != nil {
		return nil, false, fmt.Errorf("append visitor: %w", err)
	}
	return v, true, nil
}

// enrich overlays blank stored fields with non-blank candidate values.
// Populated fields are never replaced; Email stays as stored (it just
// matched the candidate's, possibly with different casing).
func enrich(stored, candidate *domain.Visitor) (*domain.Visitor, bool) {
	merged := *stored
	changed := false
	fill := func(dst *string, src string) {
		src = strings.TrimSpace(src)
		if *dst == "" && src != "" {
			*dst = src
			changed = true
		}
	}
	fill(&merged.FirstName, candidate.FirstName)
	fill(&merged.LastName, candidate.LastName)
	fill(&merged.Phone, candidate.Phone)
	fill(&merged.Subscribed, candidate.Subscribed)
	return &merged, changed
}

// newVisitorID generates "V-" plus 8 random characters from [A-Z0-9],
// regenerating on collision with any existing ID. At kiosk scale the
// collision probability is negligible, so the loop almost never repeats.
func newVisitorID(existing []*domain.Visitor) (string, error) {
	taken := make(map[string]bool, len(existing))
	for _, v := range existing {
		if v.VisitorID != "" {
			taken[v.VisitorID] = true
		}
	}
	for {
		buf := make([]byte, visitorIDLength)
		if _, err := rand.Read(buf); err != nil {
			return "", err
		}
		for i, b := range buf {
			buf[i] = visitorIDAlphabet[int(b)%len(visitorIDAlphabet)]
		}
		id := visitorIDPrefix + string(buf)
		if !taken[id] {
			return id, nil
		}
	}
}
