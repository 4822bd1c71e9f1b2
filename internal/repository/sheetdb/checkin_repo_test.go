package sheetdb

import (
	"context"
	"testing"

	"kioskcheckin/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckinLogRepository_ListAndAppend(t *testing.T) {
	store := newFakeStore()
	store.sheets["Checkins"] = [][]string{
		{"Timestamp", "Visitor ID", "Full Name", "Event"},
		{"2025-10-01 18:02:11", "V-AAAA1111", "Jane Doe", "Fall Gala"},
	}

	repo := NewCheckinLogRepository(store, "Checkins")
	entries, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "V-AAAA1111", entries[0].VisitorID)
	assert.Equal(t, "Fall Gala", entries[0].EventTitle)

	err = repo.Append(context.Background(), &domain.CheckinLogEntry{
		Timestamp:  "2025-10-01 18:10:00",
		VisitorID:  "V-BBBB2222",
		FullName:   "John Smith",
		EventTitle: domain.GeneralVisitTitle,
	})
	require.NoError(t, err)

	require.Len(t, store.sheets["Checkins"], 3)
	assert.Equal(t, []string{"2025-10-01 18:10:00", "V-BBBB2222", "John Smith", "General Visit"},
		store.sheets["Checkins"][2])
}

func TestGuestListRepository_UpdateAt_WritesExactSpan(t *testing.T) {
	store := newFakeStore()
	store.sheets["Fall Gala Guests"] = [][]string{
		{"Guest ID", "First Name", "Last Name", "Email", "Phone", "Check-in Time", "Walk-in"},
		{"", "Jane", "Doe", "jane@x.com", "", "", ""},
	}

	repo := NewGuestListRepository(store)
	err := repo.UpdateAt(context.Background(), "Fall Gala Guests", 2, &domain.GuestListEntry{
		GuestID:          "V-AAAA1111",
		FirstName:        "Jane",
		LastName:         "Doe",
		Email:            "jane@x.com",
		CheckinTimestamp: "2025-10-01 18:02:11",
	})
	require.NoError(t, err)

	require.Len(t, store.updateCalls, 1)
	assert.Equal(t, "Fall Gala Guests!A2:G2", store.updateCalls[0])
	row := store.sheets["Fall Gala Guests"][1]
	assert.Equal(t, "V-AAAA1111", row[0])
	assert.Equal(t, "2025-10-01 18:02:11", row[5])
	assert.Equal(t, "No", row[6])
}

func TestGuestListRepository_Append_Walkin(t *testing.T) {
	store := newFakeStore()
	store.sheets["Open House Guests"] = [][]string{
		{"Guest ID", "First Name", "Last Name", "Email", "Phone", "Check-in Time", "Walk-in"},
	}

	repo := NewGuestListRepository(store)
	err := repo.Append(context.Background(), "Open House Guests", &domain.GuestListEntry{
		GuestID:          "V-CCCC3333",
		FirstName:        "Ana",
		LastName:         "Lopez",
		Email:            "ana@x.com",
		CheckinTimestamp: "2025-10-01 19:00:00",
		IsWalkin:         true,
	})
	require.NoError(t, err)

	rows := store.sheets["Open House Guests"]
	require.Len(t, rows, 2)
	assert.Equal(t, "Yes", rows[1][6])
}

func TestGuestListRepository_List_ParsesWalkinFlag(t *testing.T) {
	store := newFakeStore()
	store.sheets["G"] = [][]string{
		{"Guest ID", "First Name", "Last Name", "Email", "Phone", "Check-in Time", "Walk-in"},
		{"V-1", "A", "B", "a@b.c", "", "", "Yes"},
		{"V-2", "C", "D", "c@d.e", "", "", ""},
	}

	repo := NewGuestListRepository(store)
	entries, err := repo.List(context.Background(), "G")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.True(t, entries[0].IsWalkin)
	assert.False(t, entries[1].IsWalkin)
	assert.Equal(t, 2, entries[0].RowIndex)
	assert.Equal(t, 3, entries[1].RowIndex)
}
