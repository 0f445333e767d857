package handler

import (
	"errors"
	"net/http"

	"einsatzplan/internal/apierror"
	"einsatzplan/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Ungültiges JSON: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusBadRequest, apierror.NewValidation(fields))
		return false
	}
	return true
}

// respondError maps service error kinds onto HTTP status codes. Anything
// that is not a typed service error becomes a logged 500.
func respondError(c *gin.Context, err error) {
	var svcErr *service.Error
	if errors.As(err, &svcErr) {
		status := http.StatusBadRequest
		switch svcErr.Kind {
		case service.KindNotFound:
			status = http.StatusNotFound
		case service.KindForbidden, service.KindConsent, service.KindUnauthorized:
			// missing authentication is answered 403, like every other
			// access denial
			status = http.StatusForbidden
		}
		c.JSON(status, apierror.New(svcErr.Msg))
		return
	}

	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, apierror.New("Interner Serverfehler"))
}
