package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"kioskcheckin/internal/domain"
)

type checkinService struct {
	resolver   domain.VisitorResolver
	checkins   domain.CheckinLogRepository
	guestLists domain.GuestListRepository
	email      domain.EmailService
	logger     *slog.Logger
	now        func() time.Time
}

// NewCheckinService creates the check-in reconciliation engine. The email
// service may be nil; confirmation mail is best-effort either way.
func NewCheckinService(
	resolver domain.VisitorResolver,
	checkins domain.CheckinLogRepository,
	guestLists domain.GuestListRepository,
	email domain.EmailService,
	logger *slog.Logger,
) domain.CheckinService {
	return &checkinService{
		resolver:   resolver,
		checkins:   checkins,
		guestLists: guestLists,
		email:      email,
		logger:     logger,
		now:        time.Now,
	}
}

// CheckIn runs the reconciliation state machine: resolve identity, check the
// audit log for a duplicate, write the guest-list row, append the audit row.
// Steps are strictly sequential; a failure after the guest-list write leaves
// a partially-applied state that is corrected by hand, not compensated.
func (s *checkinService) CheckIn(ctx context.Context, req domain.CheckinRequest, event *domain.Event) (*domain.CheckinResult, error) {
	if strings.TrimSpace(req.FirstName) == "" && strings.TrimSpace(req.LastName) == "" &&
		strings.TrimSpace(req.Email) == "" {
		return nil, fmt.Errorf("%w: a name or email is required", domain.ErrInvalidInput)
	}
	if event != nil && req.IsWalkin && !event.AllowWalkins {
		return nil, domain.ErrWalkinsClosed
	}

	// Step 1: resolve. Nothing has been written if this fails (a failed
	// enrichment write inside Resolve aborts before any check-in state).
	visitor, created, err := s.resolver.Resolve(ctx, domain.Visitor{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Phone:      req.Phone,
		Subscribed: req.Subscribed,
	})
	if err != nil {
		return nil, fmt.Errorf("resolve visitor: %w", err)
	}

	title := domain.GeneralVisitTitle
	if event != nil {
		title = event.Title
	}

	// Step 2: duplicate check against the audit log, the sole duplicate
	// guard. Guest-list rows may pre-exist unchecked, so they don't count.
	entries, err := s.checkins.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load checkin log: %w", err)
	}
	for _, e := range entries {
		if e.VisitorID == visitor.VisitorID && sameTitle(e.EventTitle, title) {
			return &domain.CheckinResult{
				Status:     domain.StatusAlreadyCheckedIn,
				VisitorID:  visitor.VisitorID,
				FirstName:  visitor.FirstName,
				LastName:   visitor.LastName,
				EventTitle: title,
				Timestamp:  e.Timestamp,
			}, nil
		}
	}

	timestamp := s.now().Format(timestampLayout)

	// Step 3: guest-list write. General visits have no guest list.
	if event != nil && event.GuestListSheet != "" {
		entry := &domain.GuestListEntry{
			GuestID:          visitor.VisitorID,
			FirstName:        visitor.FirstName,
			LastName:         visitor.LastName,
			Email:            visitor.Email,
			Phone:            visitor.Phone,
			CheckinTimestamp: timestamp,
			IsWalkin:         req.IsWalkin,
		}
		if req.IsWalkin {
			if err := s.guestLists.Append(ctx, event.GuestListSheet, entry); err != nil {
				return nil, fmt.Errorf("append walk-in guest: %w", err)
			}
		} else {
			if req.RowIndex < 2 {
				return nil, fmt.Errorf("%w: guest-list row index is required for pre-seeded guests", domain.ErrInvalidInput)
			}
			if err := s.guestLists.UpdateAt(ctx, event.GuestListSheet, req.RowIndex, entry); err != nil {
				return nil, fmt.Errorf("update guest row: %w", err)
			}
		}
	}

	// Step 4: audit append.
	if err := s.checkins.Append(ctx, &domain.CheckinLogEntry{
		Timestamp:  timestamp,
		VisitorID:  visitor.VisitorID,
		FullName:   visitor.FullName(),
		EventTitle: title,
	}); err != nil {
		return nil, fmt.Errorf("append checkin log: %w", err)
	}

	if created && visitor.Email != "" && s.email != nil {
		if err := s.email.SendWelcome(ctx, &domain.WelcomeEmailData{
			Email:      visitor.Email,
			FirstName:  visitor.FirstName,
			EventTitle: title,
		}); err != nil {
			s.logger.WarnContext(ctx, "welcome email failed", "visitor_id", visitor.VisitorID, "err", err)
		}
	}

	return &domain.CheckinResult{
		Status:     domain.StatusCheckedIn,
		VisitorID:  visitor.VisitorID,
		FirstName:  visitor.FirstName,
		LastName:   visitor.LastName,
		EventTitle: title,
		Timestamp:  timestamp,
	}, nil
}
