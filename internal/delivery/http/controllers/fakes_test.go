package controllers

import (
	"context"
	"io"
	"log/slog"

	"kioskcheckin/internal/domain"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeAuthService implements domain.AuthService for handler tests.
type fakeAuthService struct {
	token string
	err   error

	lastPasscode string
}

func (f *fakeAuthService) StartSession(_ context.Context, passcode string) (string, error) {
	f.lastPasscode = passcode
	if f.err != nil {
		return "", f.err
	}
	return f.token, nil
}

// fakeEventService implements domain.EventService for handler tests.
type fakeEventService struct {
	active  []*domain.Event
	listErr error
	getErr  error

	lastGetTitle string
}

func (f *fakeEventService) ListActive(_ context.Context) ([]*domain.Event, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.active, nil
}

func (f *fakeEventService) GetActiveByTitle(_ context.Context, title string) (*domain.Event, error) {
	f.lastGetTitle = title
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, e := range f.active {
		if e.Title == title {
			return e, nil
		}
	}
	return nil, domain.ErrNotFound
}

// fakeSearchService implements domain.SearchService for handler tests.
type fakeSearchService struct {
	matches []*domain.SearchMatch
	err     error

	lastQuery string
	lastEvent *domain.Event
}

func (f *fakeSearchService) Search(_ context.Context, query string, event *domain.Event) ([]*domain.SearchMatch, error) {
	f.lastQuery = query
	f.lastEvent = event
	if f.err != nil {
		return nil, f.err
	}
	return f.matches, nil
}

// fakeCheckinService implements domain.CheckinService for handler tests.
type fakeCheckinService struct {
	result *domain.CheckinResult
	err    error

	lastReq   domain.CheckinRequest
	lastEvent *domain.Event
}

func (f *fakeCheckinService) CheckIn(_ context.Context, req domain.CheckinRequest, event *domain.Event) (*domain.CheckinResult, error) {
	f.lastReq = req
	f.lastEvent = event
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}
