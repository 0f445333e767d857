package handler

import (
	"net/http"

	"einsatzplan/internal/apierror"
	"einsatzplan/internal/dto"
	"einsatzplan/internal/middleware"
	"einsatzplan/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// Login godoc
// @Summary Benutzer-Login
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Zugangsdaten"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} apierror.APIError
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New("Login fehlgeschlagen"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Dashboard tells the client which dashboard variant to render.
func (h *AuthHandler) Dashboard(c *gin.Context) {
	p := middleware.GetPrincipal(c)
	dashboard := "mitarbeiter"
	if p.IsManager() {
		dashboard = "chef"
	}
	c.JSON(http.StatusOK, dto.DashboardResponse{
		User:      p.Username,
		Role:      p.Role,
		Dashboard: dashboard,
	})
}

// Logout exists for frontend symmetry; tokens are stateless and simply
// discarded client-side.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
