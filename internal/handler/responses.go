package handler

import (
	"net/http"

	"einsatzplan/internal/dto"
	"einsatzplan/internal/middleware"
	"einsatzplan/internal/service"

	"github.com/gin-gonic/gin"
)

type ResponsesHandler struct{ svc service.ResponseService }

func NewResponsesHandler(svc service.ResponseService) *ResponsesHandler {
	return &ResponsesHandler{svc: svc}
}

// Respond POST /events/respond — employee accept/decline/withdraw.
func (h *ResponsesHandler) Respond(c *gin.Context) {
	var req dto.RespondRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Respond(c.Request.Context(), middleware.GetPrincipal(c), req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// EndTime POST /events/endtime — write-once end time.
func (h *ResponsesHandler) EndTime(c *gin.Context) {
	var req dto.EndTimeRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.SetEndTime(c.Request.Context(), middleware.GetPrincipal(c), req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Assign POST /events/assign_user
func (h *ResponsesHandler) Assign(c *gin.Context) {
	var req dto.AssignUserRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Assign(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Remove POST /events/remove_user
func (h *ResponsesHandler) Remove(c *gin.Context) {
	var req dto.RemoveUserRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Remove(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Confirm POST /events/confirm
func (h *ResponsesHandler) Confirm(c *gin.Context) {
	var req dto.ConfirmRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Confirm(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// EditEntry POST /events/edit_entry
func (h *ResponsesHandler) EditEntry(c *gin.Context) {
	var req dto.EditEntryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.EditEntry(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// SendMailAll POST /events/send_mail_all
func (h *ResponsesHandler) SendMailAll(c *gin.Context) {
	resp, err := h.svc.SendMailAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
