package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildHealthReport(t *testing.T) {
	t.Run("all dependencies up", func(t *testing.T) {
		r := buildHealthReport(nil, nil)
		assert.Equal(t, http.StatusOK, r.status)
		assert.Equal(t, "ok", r.database)
		assert.Equal(t, "ok", r.queue)
	})

	t.Run("database down", func(t *testing.T) {
		r := buildHealthReport(errors.New("connection refused"), nil)
		assert.Equal(t, http.StatusServiceUnavailable, r.status)
		assert.Equal(t, "error", r.database)
		assert.Equal(t, "ok", r.queue)
	})

	t.Run("queue down", func(t *testing.T) {
		r := buildHealthReport(nil, errors.New("connection refused"))
		assert.Equal(t, http.StatusServiceUnavailable, r.status)
		assert.Equal(t, "error", r.queue)
	})
}
