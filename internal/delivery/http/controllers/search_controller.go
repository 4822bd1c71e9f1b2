package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	h "kioskcheckin/internal/delivery/http/helpers"
	"kioskcheckin/internal/domain"
)

// SearchMatchView is one search result row.
type SearchMatchView struct {
	VisitorID        string `json:"visitor_id"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	RowIndex         int    `json:"row_index"`
	AlreadyCheckedIn bool   `json:"already_checked_in"`
}

type SearchController struct {
	Logger *slog.Logger
	Search domain.SearchService
	Events domain.EventService
}

func NewSearchController(logger *slog.Logger, search domain.SearchService, events domain.EventService) *SearchController {
	return &SearchController{
		Logger: logger,
		Search: search,
		Events: events,
	}
}

// SearchVisitors godoc
// @Summary Search visitors or an event guest list
// @Description Fuzzy search by name, email, or phone digits. With an event parameter the event's guest list is searched; without one the Visitors sheet is.
// @Tags visitors
// @Produce json
// @Security BearerAuth
// @Param q query string true "Search query"
// @Param event query string false "Active event title"
// @Success 200 {object} helpers.APIResponse "data contains the list of matches"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (unknown or inactive event)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error or schema_error"
// @Router /api/visitors/search [get]
func (c *SearchController) SearchVisitors(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	var event *domain.Event
	if title := r.URL.Query().Get("event"); title != "" {
		e, err := c.Events.GetActiveByTitle(r.Context(), title)
		if err != nil {
			c.logFailure(r, err)
			h.WriteDomainError(w, err)
			return
		}
		event = e
	}

	matches, err := c.Search.Search(r.Context(), query, event)
	if err != nil {
		c.logFailure(r, err)
		h.WriteDomainError(w, err)
		return
	}

	views := make([]SearchMatchView, 0, len(matches))
	for _, m := range matches {
		views = append(views, SearchMatchView{
			VisitorID:        m.VisitorID,
			FirstName:        m.FirstName,
			LastName:         m.LastName,
			Email:            m.Email,
			Phone:            m.Phone,
			RowIndex:         m.RowIndex,
			AlreadyCheckedIn: m.AlreadyCheckedIn,
		})
	}
	h.WriteJSONSuccess(w, http.StatusOK, views)
}

// logFailure records server-side failures; expected client errors stay quiet.
func (c *SearchController) logFailure(r *http.Request, err error) {
	if errors.Is(err, domain.ErrInvalidInput) || errors.Is(err, domain.ErrNotFound) {
		return
	}
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
}
