package handler

import (
	"net/http"

	"einsatzplan/internal/middleware"
	"einsatzplan/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct{ svc service.ReportService }

func NewReportHandler(svc service.ReportService) *ReportHandler { return &ReportHandler{svc: svc} }

// WorkedHours GET /events/report?month=YYYY-MM
func (h *ReportHandler) WorkedHours(c *gin.Context) {
	resp, err := h.svc.WorkedHours(c.Request.Context(), middleware.GetPrincipal(c), c.Query("month"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
