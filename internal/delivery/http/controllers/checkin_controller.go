package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	h "kioskcheckin/internal/delivery/http/helpers"
	"kioskcheckin/internal/domain"
)

// CheckinRequest is the request body for POST /api/checkins. A pre-seeded
// guest check-in carries the row_index returned by search; a walk-in or
// general visit leaves it zero.
type CheckinRequest struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Subscribed string `json:"subscribed"`
	Event      string `json:"event"`
	IsWalkin   bool   `json:"is_walkin"`
	RowIndex   int    `json:"row_index"`
}

// Validate implements Validator.
func (c CheckinRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.FirstName) == "" && strings.TrimSpace(c.LastName) == "" &&
		strings.TrimSpace(c.Email) == "" {
		errs = append(errs, "a name or email is required")
	}
	if c.RowIndex < 0 {
		errs = append(errs, "row_index must not be negative")
	}
	return errs
}

// RegisterRequest is the request body for POST /api/checkins/register.
// Registration always enters as a walk-in, so no row_index is accepted.
type RegisterRequest struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Subscribed bool   `json:"subscribed"`
	Event      string `json:"event"`
}

// Validate implements Validator.
func (r RegisterRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.FirstName) == "" {
		errs = append(errs, "first_name is required")
	}
	if strings.TrimSpace(r.LastName) == "" {
		errs = append(errs, "last_name is required")
	}
	return errs
}

// CheckinView is the response body for both check-in endpoints.
type CheckinView struct {
	Status    string `json:"status"`
	VisitorID string `json:"visitor_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Event     string `json:"event"`
	Timestamp string `json:"timestamp"`
}

type CheckinController struct {
	Logger  *slog.Logger
	Checkin domain.CheckinService
	Events  domain.EventService
}

func NewCheckinController(logger *slog.Logger, checkin domain.CheckinService, events domain.EventService) *CheckinController {
	return &CheckinController{
		Logger:  logger,
		Checkin: checkin,
		Events:  events,
	}
}

// CheckIn godoc
// @Summary Check a visitor in
// @Description Resolve the visitor and record a check-in. With an event the guest-list row is written (updated in place for pre-seeded guests, appended for walk-ins); without one the visit is logged as a General Visit. A repeat check-in for the same event returns status already_checked_in.
// @Tags checkins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CheckinRequest true "Check-in data"
// @Success 200 {object} helpers.APIResponse "data contains status, visitor_id, event, timestamp"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (unknown or inactive event)"
// @Failure 409 {object} helpers.APIResponse "error.code: walkins_closed"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error or schema_error"
// @Router /api/checkins [post]
func (c *CheckinController) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req CheckinRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}

	event, ok := c.resolveEvent(w, r, req.Event)
	if !ok {
		return
	}

	res, err := c.Checkin.CheckIn(r.Context(), domain.CheckinRequest{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Phone:      req.Phone,
		Subscribed: req.Subscribed,
		IsWalkin:   req.IsWalkin,
		RowIndex:   req.RowIndex,
	}, event)
	if err != nil {
		c.logFailure(r, err)
		h.WriteDomainError(w, err)
		return
	}

	h.WriteJSONSuccess(w, http.StatusOK, checkinView(res))
}

// Register godoc
// @Summary Register and check in a new visitor
// @Description Register a walk-in visitor and check them in. An existing visitor with the same email is reused and enriched rather than duplicated.
// @Tags checkins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body RegisterRequest true "Registration data"
// @Success 201 {object} helpers.APIResponse "data contains status, visitor_id, event, timestamp"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (unknown or inactive event)"
// @Failure 409 {object} helpers.APIResponse "error.code: walkins_closed"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error or schema_error"
// @Router /api/checkins/register [post]
func (c *CheckinController) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}

	event, ok := c.resolveEvent(w, r, req.Event)
	if !ok {
		return
	}

	subscribed := domain.SubscribedNo
	if req.Subscribed {
		subscribed = domain.SubscribedYes
	}
	res, err := c.Checkin.CheckIn(r.Context(), domain.CheckinRequest{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Phone:      req.Phone,
		Subscribed: subscribed,
		IsWalkin:   true,
	}, event)
	if err != nil {
		c.logFailure(r, err)
		h.WriteDomainError(w, err)
		return
	}

	h.WriteJSONSuccess(w, http.StatusCreated, checkinView(res))
}

// resolveEvent looks up the named active event, or returns nil for
// general-visit mode. On failure it writes the error response and returns
// ok=false.
func (c *CheckinController) resolveEvent(w http.ResponseWriter, r *http.Request, title string) (*domain.Event, bool) {
	if strings.TrimSpace(title) == "" {
		return nil, true
	}
	event, err := c.Events.GetActiveByTitle(r.Context(), title)
	if err != nil {
		c.logFailure(r, err)
		h.WriteDomainError(w, err)
		return nil, false
	}
	return event, true
}

func checkinView(res *domain.CheckinResult) CheckinView {
	return CheckinView{
		Status:    string(res.Status),
		VisitorID: res.VisitorID,
		FirstName: res.FirstName,
		LastName:  res.LastName,
		Event:     res.EventTitle,
		Timestamp: res.Timestamp,
	}
}

func (c *CheckinController) logFailure(r *http.Request, err error) {
	if errors.Is(err, domain.ErrInvalidInput) || errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrWalkinsClosed) {
		return
	}
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
}
