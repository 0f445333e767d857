package handler

import (
	"net/http"

	"einsatzplan/internal/apierror"
	"einsatzplan/internal/dto"
	"einsatzplan/internal/service"

	"github.com/gin-gonic/gin"
)

type UsersHandler struct{ svc service.UserService }

func NewUsersHandler(svc service.UserService) *UsersHandler { return &UsersHandler{svc: svc} }

// Create POST /users
func (h *UsersHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Create(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// List GET /users — full personnel rows, bootstrap accounts excluded.
func (h *UsersHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Benutzerliste konnte nicht geladen werden"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListPublic GET /users_public — name-only roster for the planning views.
func (h *UsersHandler) ListPublic(c *gin.Context) {
	resp, err := h.svc.ListPublic(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Benutzerliste konnte nicht geladen werden"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update PUT /users/:username
func (h *UsersHandler) Update(c *gin.Context) {
	var req dto.UpdateUserRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Update(c.Request.Context(), c.Param("username"), req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Delete DELETE /users/:username
func (h *UsersHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("username")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Rename POST /users/rename — keeps all responses attached.
func (h *UsersHandler) Rename(c *gin.Context) {
	var req dto.RenameUserRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Rename(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
