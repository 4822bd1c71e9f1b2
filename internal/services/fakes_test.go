package services

import (
	"context"
	"fmt"

	"kioskcheckin/internal/domain"
)

// In-memory repository fakes for service tests.

type fakeVisitorRepo struct {
	visitors []*domain.Visitor

	listErr   error
	appendErr error
	updateErr error

	appends []*domain.Visitor
	updates map[int]*domain.Visitor
}

func newFakeVisitorRepo(visitors ...*domain.Visitor) *fakeVisitorRepo {
	for i, v := range visitors {
		if v.RowIndex == 0 {
			v.RowIndex = i + 2
		}
	}
	return &fakeVisitorRepo{visitors: visitors, updates: make(map[int]*domain.Visitor)}
}

func (f *fakeVisitorRepo) List(ctx context.Context) ([]*domain.Visitor, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.visitors, nil
}

func (f *fakeVisitorRepo) Append(ctx context.Context, v *domain.Visitor) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	saved := *v
	saved.RowIndex = len(f.visitors) + 2
	f.visitors = append(f.visitors, &saved)
	f.appends = append(f.appends, &saved)
	return nil
}

func (f *fakeVisitorRepo) UpdateAt(ctx context.Context, rowIndex int, v *domain.Visitor) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	for i, existing := range f.visitors {
		if existing.RowIndex == rowIndex {
			saved := *v
			saved.RowIndex = rowIndex
			f.visitors[i] = &saved
			f.updates[rowIndex] = &saved
			return nil
		}
	}
	return fmt.Errorf("no visitor at row %d", rowIndex)
}

type fakeCheckinRepo struct {
	entries []*domain.CheckinLogEntry

	listErr   error
	appendErr error

	appends []*domain.CheckinLogEntry
}

func (f *fakeCheckinRepo) List(ctx context.Context) ([]*domain.CheckinLogEntry, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.entries, nil
}

func (f *fakeCheckinRepo) Append(ctx context.Context, entry *domain.CheckinLogEntry) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.entries = append(f.entries, entry)
	f.appends = append(f.appends, entry)
	return nil
}

type fakeGuestListRepo struct {
	entriesBySheet map[string][]*domain.GuestListEntry

	listErr   error
	appendErr error
	updateErr error

	appends []*domain.GuestListEntry
	updates map[int]*domain.GuestListEntry
}

func newFakeGuestListRepo() *fakeGuestListRepo {
	return &fakeGuestListRepo{
		entriesBySheet: make(map[string][]*domain.GuestListEntry),
		updates:        make(map[int]*domain.GuestListEntry),
	}
}

func (f *fakeGuestListRepo) List(ctx context.Context, sheetName string) ([]*domain.GuestListEntry, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.entriesBySheet[sheetName], nil
}

func (f *fakeGuestListRepo) Append(ctx context.Context, sheetName string, entry *domain.GuestListEntry) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.entriesBySheet[sheetName] = append(f.entriesBySheet[sheetName], entry)
	f.appends = append(f.appends, entry)
	return nil
}

func (f *fakeGuestListRepo) UpdateAt(ctx context.Context, sheetName string, rowIndex int, entry *domain.GuestListEntry) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updates[rowIndex] = entry
	return nil
}

type fakeEventRepo struct {
	events []*domain.Event
	err    error
}

func (f *fakeEventRepo) List(ctx context.Context) ([]*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.events, nil
}

type fakeEmailService struct {
	sent []*domain.WelcomeEmailData
	err  error
}

func (f *fakeEmailService) SendWelcome(ctx context.Context, data *domain.WelcomeEmailData) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, data)
	return nil
}
