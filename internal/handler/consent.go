package handler

import (
	"net/http"

	"einsatzplan/internal/dto"
	"einsatzplan/internal/middleware"
	"einsatzplan/internal/service"

	"github.com/gin-gonic/gin"
)

type ConsentHandler struct{ svc service.AuthService }

func NewConsentHandler(svc service.AuthService) *ConsentHandler { return &ConsentHandler{svc: svc} }

// Status GET /consent_status
func (h *ConsentHandler) Status(c *gin.Context) {
	p := middleware.GetPrincipal(c)
	resp, err := h.svc.ConsentStatus(c.Request.Context(), p.Username)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Set POST /consent
func (h *ConsentHandler) Set(c *gin.Context) {
	var req dto.SetConsentRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.SetConsent(c.Request.Context(), middleware.GetPrincipal(c), req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
