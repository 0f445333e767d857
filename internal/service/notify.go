package service

// notify.go — composition of the plaintext notification mails. Delivery is
// behind the Notifier interface so it can run through the async worker
// queue in production and a recorder in tests.

import (
	"context"
	"strings"
	"time"
)

// Notifier hands a mail off for delivery. Implementations must never fail
// the calling request: errors are logged and swallowed downstream.
type Notifier interface {
	Notify(ctx context.Context, to, subject, body string)
}

const (
	mailSignature = "Viele Grüße\nCV Planung"

	broadcastSubject = "Neue Einsätze zum Einbuchen"
	broadcastBody    = "Hallo,\n\n" +
		"es wurden neue Einsätze zum Einbuchen im Online-Portal eingestellt.\n\n" +
		"Bitte die Rückmeldefrist beachten.\n\n" +
		mailSignature + "\n"
)

var startLayouts = []string{"2006-01-02T15:04", "2006-01-02T15:04:05", "2006-01-02"}

// formatDateDE renders an ISO-ish event start as "DD.MM.YYYY";
// the placeholder "TT.MM.JJJJ" stands in when the value is unparseable.
func formatDateDE(start string) string {
	s := strings.TrimSpace(strings.Replace(start, "Z", "", 1))
	for _, layout := range startLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d.Format("02.01.2006")
		}
	}
	return "TT.MM.JJJJ"
}

// buildChangeMail composes the update notification for an employee whose
// start time or remark was edited by a manager. Only changed fields get a
// line; the event basics are always included.
func buildChangeMail(employeeName, eventTitle, eventStart, ort, dienstkleidung, newStartTime, newRemark string) string {
	lines := []string{
		"Hallo " + employeeName + ",",
		"",
		"es gibt eine Aktualisierung zu deinem Einsatz am " + formatDateDE(eventStart) + ".",
		"",
	}

	if st := strings.TrimSpace(newStartTime); st != "" {
		lines = append(lines, "Neue Startzeit: "+st+" ✅")
	}
	if rm := strings.TrimSpace(newRemark); rm != "" {
		lines = append(lines, "Neue Bemerkung: "+rm+" ✅")
	}

	orDash := func(v string) string {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
		return "-"
	}
	lines = append(lines,
		"",
		"Einsatz:  "+orDash(eventTitle),
		"Dienstkleidung: "+orDash(dienstkleidung),
		"Ort: "+orDash(ort),
		"",
		mailSignature,
	)
	return strings.Join(lines, "\n")
}
