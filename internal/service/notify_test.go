package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDateDE(t *testing.T) {
	assert.Equal(t, "01.05.2024", formatDateDE("2024-05-01T18:30"))
	assert.Equal(t, "24.12.2023", formatDateDE("2023-12-24"))
	assert.Equal(t, "TT.MM.JJJJ", formatDateDE("kaputt"))
	assert.Equal(t, "TT.MM.JJJJ", formatDateDE(""))
}

func TestBuildChangeMail(t *testing.T) {
	t.Run("both changes listed", func(t *testing.T) {
		body := buildChangeMail("Max Mustermann", "Stadtfest", "2024-05-01T18:30", "Halle 3", "schwarz", "19:00", "Bitte früher da sein")
		assert.Contains(t, body, "Hallo Max Mustermann,")
		assert.Contains(t, body, "am 01.05.2024")
		assert.Contains(t, body, "Neue Startzeit: 19:00 ✅")
		assert.Contains(t, body, "Neue Bemerkung: Bitte früher da sein ✅")
		assert.Contains(t, body, "Einsatz:  Stadtfest")
		assert.Contains(t, body, "Dienstkleidung: schwarz")
		assert.Contains(t, body, "Ort: Halle 3")
		assert.True(t, strings.HasSuffix(body, mailSignature))
	})

	t.Run("unchanged fields omitted, blanks dashed", func(t *testing.T) {
		body := buildChangeMail("Max", "Stadtfest", "2024-05-01T18:30", "", "", "19:00", "")
		assert.Contains(t, body, "Neue Startzeit: 19:00 ✅")
		assert.NotContains(t, body, "Neue Bemerkung")
		assert.Contains(t, body, "Dienstkleidung: -")
		assert.Contains(t, body, "Ort: -")
	})
}

func TestBroadcastBody(t *testing.T) {
	assert.Contains(t, broadcastBody, "neue Einsätze zum Einbuchen")
	assert.Contains(t, broadcastBody, "Rückmeldefrist")
	assert.Contains(t, broadcastBody, mailSignature)
}
