package controllers

import (
	"log/slog"
	"net/http"

	h "kioskcheckin/internal/delivery/http/helpers"
	"kioskcheckin/internal/domain"
)

// EventView is the event shape returned to the kiosk.
type EventView struct {
	Title        string `json:"title"`
	AllowWalkins bool   `json:"allow_walkins"`
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// ListActive godoc
// @Summary List active events
// @Description Returns events marked active in the Events sheet, in sheet order. An empty list means the kiosk runs in general-visit mode.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the list of active events"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error or schema_error"
// @Router /api/events [get]
func (c *EventController) ListActive(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.ListActive(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteDomainError(w, err)
		return
	}

	views := make([]EventView, 0, len(events))
	for _, e := range events {
		views = append(views, EventView{Title: e.Title, AllowWalkins: e.AllowWalkins})
	}
	h.WriteJSONSuccess(w, http.StatusOK, views)
}
