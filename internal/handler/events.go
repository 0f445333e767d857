package handler

import (
	"net/http"

	"einsatzplan/internal/apierror"
	"einsatzplan/internal/dto"
	"einsatzplan/internal/middleware"
	"einsatzplan/internal/service"

	"github.com/gin-gonic/gin"
)

type EventsHandler struct{ svc service.EventService }

func NewEventsHandler(svc service.EventService) *EventsHandler { return &EventsHandler{svc: svc} }

// List GET /events — the derived calendar view for the caller.
func (h *EventsHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context(), middleware.GetPrincipal(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Create POST /events
func (h *EventsHandler) Create(c *gin.Context) {
	var req dto.CreateEventRequest
	if !bindAndValidate(c, &req) {
		return
	}
	id, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "id": id})
}

// Update POST /events/update — full field replace by event_id.
func (h *EventsHandler) Update(c *gin.Context) {
	var req dto.UpdateEventRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Update(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Delete DELETE /events/:event_id
func (h *EventsHandler) Delete(c *gin.Context) {
	id := c.Param("event_id")
	if id == "" {
		c.JSON(http.StatusBadRequest, apierror.New("event_id fehlt"))
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Release POST /events/release — flips the event to "offen" so employees
// can book in.
func (h *EventsHandler) Release(c *gin.Context) {
	var req dto.ReleaseEventRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Release(c.Request.Context(), req.EventID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Duplicate POST /events/duplicate
func (h *EventsHandler) Duplicate(c *gin.Context) {
	var req dto.DuplicateEventRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Duplicate(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
