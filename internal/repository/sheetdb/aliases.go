package sheetdb

import "kioskcheckin/internal/sheetcodec"

// Alias maps for the kiosk tables. Order matters: earlier keys claim columns
// first, which keeps generic aliases like "id" from stealing more specific
// headers.

// VisitorAliases binds the Visitors table.
var VisitorAliases = sheetcodec.AliasMap{
	{Key: "VisitorID", Aliases: []string{"visitor id", "visitorid", "id"}},
	{Key: "FirstName", Aliases: []string{"first name", "first", "given name"}},
	{Key: "LastName", Aliases: []string{"last name", "last", "family name", "surname"}},
	{Key: "Email", Aliases: []string{"email", "e-mail"}},
	{Key: "Phone", Aliases: []string{"phone", "contact number"}},
	{Key: "DateJoined", Aliases: []string{"date joined", "joined", "member since"}},
	{Key: "Subscribed", Aliases: []string{"subscribed", "newsletter", "mailing list"}},
}

// CheckinAliases binds the shared Checkins audit log.
var CheckinAliases = sheetcodec.AliasMap{
	{Key: "Timestamp", Aliases: []string{"timestamp", "check-in time", "date", "time"}},
	{Key: "VisitorID", Aliases: []string{"visitor id", "visitorid", "id"}},
	{Key: "FullName", Aliases: []string{"full name", "visitor name", "name"}},
	{Key: "EventTitle", Aliases: []string{"event title", "event", "context"}},
}

// EventAliases binds the Events table.
var EventAliases = sheetcodec.AliasMap{
	{Key: "EventTitle", Aliases: []string{"event title", "title", "event name", "name"}},
	{Key: "IsActive", Aliases: []string{"is active", "active"}},
	{Key: "AllowWalkins", Aliases: []string{"allow walk", "walk-in", "walkin"}},
	{Key: "GuestListSheet", Aliases: []string{"guest list sheet", "guest list", "sheet name"}},
}

// GuestListAliases binds per-event guest list tabs.
var GuestListAliases = sheetcodec.AliasMap{
	{Key: "GuestID", Aliases: []string{"guest id", "visitor id", "id"}},
	{Key: "FirstName", Aliases: []string{"first name", "first", "given name"}},
	{Key: "LastName", Aliases: []string{"last name", "last", "family name", "surname"}},
	{Key: "Email", Aliases: []string{"email", "e-mail"}},
	{Key: "Phone", Aliases: []string{"phone", "contact number"}},
	{Key: "CheckinTimestamp", Aliases: []string{"check-in time", "checkin time", "checked in", "timestamp", "arrived"}},
	{Key: "IsWalkin", Aliases: []string{"walk-in", "walkin"}},
}
