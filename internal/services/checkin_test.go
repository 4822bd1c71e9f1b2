package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"kioskcheckin/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type checkinFixture struct {
	svc      domain.CheckinService
	visitors *fakeVisitorRepo
	checkins *fakeCheckinRepo
	guests   *fakeGuestListRepo
	email    *fakeEmailService
}

func newCheckinFixture(visitors ...*domain.Visitor) *checkinFixture {
	f := &checkinFixture{
		visitors: newFakeVisitorRepo(visitors...),
		checkins: &fakeCheckinRepo{},
		guests:   newFakeGuestListRepo(),
		email:    &fakeEmailService{},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.svc = NewCheckinService(
		NewVisitorResolver(f.visitors),
		f.checkins,
		f.guests,
		f.email,
		logger,
	)
	f.svc.(*checkinService).now = func() time.Time {
		return time.Date(2025, 10, 4, 18, 30, 0, 0, time.UTC)
	}
	return f
}

func fallGala() *domain.Event {
	return &domain.Event{
		Title:          "Fall Gala",
		IsActive:       true,
		AllowWalkins:   true,
		GuestListSheet: "Fall Gala Guests",
	}
}

func TestCheckIn_WalkinNewVisitor(t *testing.T) {
	f := newCheckinFixture()

	res, err := f.svc.CheckIn(context.Background(), domain.CheckinRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@x.com",
		IsWalkin:  true,
	}, fallGala())
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCheckedIn, res.Status)
	assert.Regexp(t, visitorIDPattern, res.VisitorID)
	assert.Equal(t, "Fall Gala", res.EventTitle)
	assert.Equal(t, "2025-10-04 18:30:00", res.Timestamp)

	require.Len(t, f.guests.appends, 1)
	guest := f.guests.appends[0]
	assert.Equal(t, res.VisitorID, guest.GuestID)
	assert.True(t, guest.IsWalkin)
	assert.Equal(t, "2025-10-04 18:30:00", guest.CheckinTimestamp)

	require.Len(t, f.checkins.appends, 1)
	assert.Equal(t, "Jane Doe", f.checkins.appends[0].FullName)
	assert.Equal(t, "Fall Gala", f.checkins.appends[0].EventTitle)
}

func TestCheckIn_PreSeededGuestUpdatesRow(t *testing.T) {
	f := newCheckinFixture(
		&domain.Visitor{VisitorID: "V-AAAA1111", FirstName: "Jane", LastName: "Doe", Email: "jane@x.com"},
	)

	res, err := f.svc.CheckIn(context.Background(), domain.CheckinRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@x.com",
		RowIndex:  5,
	}, fallGala())
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCheckedIn, res.Status)
	assert.Equal(t, "V-AAAA1111", res.VisitorID)
	assert.Empty(t, f.guests.appends)

	updated, ok := f.guests.updates[5]
	require.True(t, ok)
	assert.Equal(t, "V-AAAA1111", updated.GuestID)
	assert.False(t, updated.IsWalkin)
}

func TestCheckIn_PreSeededGuestRequiresRowIndex(t *testing.T) {
	f := newCheckinFixture(
		&domain.Visitor{VisitorID: "V-AAAA1111", FirstName: "Jane", LastName: "Doe", Email: "jane@x.com"},
	)

	_, err := f.svc.CheckIn(context.Background(), domain.CheckinRequest{
		Email: "jane@x.com",
	}, fallGala())
	require.Error(t, err)
	require.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Empty(t, f.checkins.appends)
}

// A second check-in for the same visitor and event must return the duplicate
// outcome without appending anything new anywhere.
func TestCheckIn_DuplicateShortCircuits(t *testing.T) {
	f := newCheckinFixture(
		&domain.Visitor{VisitorID: "V-AAAA1111", FirstName: "Jane", LastName: "Doe", Email: "jane@x.com"},
	)
	f.checkins.entries = []*domain.CheckinLogEntry{
		{Timestamp: "2025-10-04 17:00:00", VisitorID: "V-AAAA1111", FullName: "Jane Doe", EventTitle: "fall gala"},
	}

	res, err := f.svc.CheckIn(context.Background(), domain.CheckinRequest{
		Email:    "jane@x.com",
		IsWalkin: true,
	}, fallGala())
	require.NoError(t, err)

	assert.Equal(t, domain.StatusAlreadyCheckedIn, res.Status)
	assert.Equal(t, "2025-10-04 17:00:00", res.Timestamp)
	assert.Empty(t, f.checkins.appends)
	assert.Empty(t, f.guests.appends)
	assert.Empty(t, f.guests.updates)
}

// The duplicate guard is per event: a General Visit log row does not block a
// Fall Gala check-in.
func TestCheckIn_DuplicateGuardIsPerEvent(t *testing.T) {
	f := newCheckinFixture(
		&domain.Visitor{VisitorID: "V-AAAA1111", FirstName: "Jane", LastName: "Doe", Email: "jane@x.com"},
	)
	f.checkins.entries = []*domain.CheckinLogEntry{
		{VisitorID: "V-AAAA1111", EventTitle: domain.GeneralVisitTitle},
	}

	res, err := f.svc.CheckIn(context.Background(), domain.CheckinRequest{
		Email:    "jane@x.com",
		IsWalkin: true,
	}, fallGala())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCheckedIn, res.Status)
	require.Len(t, f.checkins.appends, 1)
}

func TestCheckIn_GeneralVisitSkipsGuestList(t *testing.T) {
	f := newCheckinFixture()

	res, err := f.svc.CheckIn(context.Background(), domain.CheckinRequest{
		FirstName: "Jane",
		LastName:  "Doe",
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCheckedIn, res.Status)
	assert.Equal(t, domain.GeneralVisitTitle, res.EventTitle)
	assert.Empty(t, f.guests.appends)
	assert.Empty(t, f.guests.updates)
	require.Len(t, f.checkins.appends, 1)
	assert.Equal(t, domain.GeneralVisitTitle, f.checkins.appends[0].EventTitle)
}

func TestCheckIn_WalkinsClosed(t *testing.T) {
	f := newCheckinFixture()
	event := fallGala()
	event.AllowWalkins = false

	_, err := f.svc.CheckIn(context.Background(), domain.CheckinRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		IsWalkin:  true,
	}, event)
	require.Error(t, err)
	require.True(t, errors.Is(err, domain.ErrWalkinsClosed))
	assert.Empty(t, f.visitors.appends)
	assert.Empty(t, f.checkins.appends)
}

func TestCheckIn_BlankRequest(t *testing.T) {
	f := newCheckinFixture()

	_, err := f.svc.CheckIn(context.Background(), domain.CheckinRequest{
		Phone: "555-1234",
	}, nil)
	require.Error(t, err)
	require.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestCheckIn_WelcomeEmailOnlyForNewVisitors(t *testing.T) {
	f := newCheckinFixture()

	_, err := f.svc.CheckIn(context.Background(), domain.CheckinRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@x.com",
		IsWalkin:  true,
	}, fallGala())
	require.NoError(t, err)
	require.Len(t, f.email.sent, 1)
	assert.Equal(t, "jane@x.com", f.email.sent[0].Email)
	assert.Equal(t, "Fall Gala", f.email.sent[0].EventTitle)

	// Returning visitor at the next event gets no second welcome.
	_, err = f.svc.CheckIn(context.Background(), domain.CheckinRequest{
		Email: "jane@x.com",
	}, nil)
	require.NoError(t, err)
	assert.Len(t, f.email.sent, 1)
}

func TestCheckIn_NoEmailAddressNoWelcome(t *testing.T) {
	f := newCheckinFixture()

	_, err := f.svc.CheckIn(context.Background(), domain.CheckinRequest{
		FirstName: "Jane",
		LastName:  "Doe",
	}, nil)
	require.NoError(t, err)
	assert.Empty(t, f.email.sent)
}

func TestCheckIn_EmailFailureIsNotFatal(t *testing.T) {
	f := newCheckinFixture()
	f.email.err = errors.New("ses throttled")

	res, err := f.svc.CheckIn(context.Background(), domain.CheckinRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@x.com",
		IsWalkin:  true,
	}, fallGala())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCheckedIn, res.Status)
	require.Len(t, f.checkins.appends, 1)
}

func TestCheckIn_StepFailuresAbort(t *testing.T) {
	t.Run("resolve", func(t *testing.T) {
		f := newCheckinFixture()
		f.visitors.listErr = errors.New("quota exceeded")

		_, err := f.svc.CheckIn(context.Background(), domain.CheckinRequest{
			FirstName: "Jane", LastName: "Doe", IsWalkin: true,
		}, fallGala())
		require.Error(t, err)
		assert.Empty(t, f.guests.appends)
		assert.Empty(t, f.checkins.appends)
	})

	t.Run("duplicate check", func(t *testing.T) {
		f := newCheckinFixture()
		f.checkins.listErr = errors.New("quota exceeded")

		_, err := f.svc.CheckIn(context.Background(), domain.CheckinRequest{
			FirstName: "Jane", LastName: "Doe", IsWalkin: true,
		}, fallGala())
		require.Error(t, err)
		assert.Empty(t, f.guests.appends)
	})

	t.Run("guest list write", func(t *testing.T) {
		f := newCheckinFixture()
		f.guests.appendErr = errors.New("quota exceeded")

		_, err := f.svc.CheckIn(context.Background(), domain.CheckinRequest{
			FirstName: "Jane", LastName: "Doe", IsWalkin: true,
		}, fallGala())
		require.Error(t, err)
		assert.Empty(t, f.checkins.appends)
	})

	t.Run("audit append", func(t *testing.T) {
		f := newCheckinFixture()
		f.checkins.appendErr = errors.New("quota exceeded")

		_, err := f.svc.CheckIn(context.Background(), domain.CheckinRequest{
			FirstName: "Jane", LastName: "Doe", IsWalkin: true,
		}, fallGala())
		require.Error(t, err)
		assert.Empty(t, f.email.sent)
	})
}
