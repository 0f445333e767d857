package service

// view.go — the derived event view: CSS status tokens for the calendar
// frontend, effective hourly rates and worked-hours arithmetic.

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"einsatzplan/internal/dto"
	"einsatzplan/internal/model"
)

var (
	umlautFolder = strings.NewReplacer("ä", "ae", "ö", "oe", "ü", "ue", "ß", "ss")
	nonSlugRun   = regexp.MustCompile(`[^a-z0-9_-]+`)
	hyphenRun    = regexp.MustCompile(`-{2,}`)

	datePattern     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	isoTimePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T(\d{2}:\d{2})`)
	bareTimePattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
)

// StatusToken normalizes a status string into a safe CSS class token:
// lowercase, umlauts folded (ä→ae, ö→oe, ü→ue, ß→ss), runs outside
// [a-z0-9_-] collapsed to a single hyphen, leading/trailing hyphens trimmed.
func StatusToken(value string) string {
	s := strings.ToLower(strings.TrimSpace(value))
	if s == "" {
		return ""
	}
	s = umlautFolder.Replace(s)
	s = nonSlugRun.ReplaceAllString(s, "-")
	s = hyphenRun.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// classNames assembles the calendar CSS tokens for one event:
// category, event status, capacity (only while "offen") and — for
// employees — their own response status.
func classNames(e *model.Event, rmap map[string]dto.ResponseView, p model.Principal) []string {
	cls := []string{"cat-" + strings.ToLower(model.NormalizeCategory(e.Category))}

	if tok := StatusToken(e.Status); tok != "" {
		cls = append(cls, "status-event-"+tok)
	}

	confirmed := 0
	applications := false
	for _, rv := range rmap {
		st := model.ResponseStatus(strings.TrimSpace(rv.Status))
		if st.IsConfirmed() {
			confirmed++
		}
		if st.IsApplication() {
			applications = true
		}
	}

	if strings.ToLower(strings.TrimSpace(e.Status)) == model.EventOffen {
		if e.RequiredStaff > 0 && confirmed >= e.RequiredStaff {
			cls = append(cls, "status-event-voll")
		} else if applications {
			cls = append(cls, "status-event-bewerbung")
		}
	}

	if !p.IsManager() {
		if my, ok := rmap[p.Username]; ok {
			if tok := StatusToken(my.Status); tok != "" {
				cls = append(cls, "status-"+tok)
			}
		}
	}
	return cls
}

// myRate resolves the caller's effective hourly rate for an event.
// Managers always get 0. For employees the event rate applies when the
// effective use_event_rate is 1 (NULL counts as 1, an explicit 0 does not),
// otherwise the profile rate; missing rates resolve to 0.
func myRate(e *model.Event, isManager bool, profileRate float64) float64 {
	if isManager {
		return 0
	}
	if e.EffectiveUseEventRate() == 1 {
		if e.Stundensatz == nil {
			return 0
		}
		return *e.Stundensatz
	}
	return profileRate
}

// parseClock parses "HH:MM" (or "H:MM") into minutes since midnight.
func parseClock(v string) (int, bool) {
	m := bareTimePattern.FindStringSubmatch(strings.TrimSpace(v))
	if m == nil {
		return 0, false
	}
	h, _ := strconv.Atoi(m[1])
	min, _ := strconv.Atoi(m[2])
	if h > 23 || min > 59 {
		return 0, false
	}
	return h*60 + min, true
}

// workedHours computes the hours between two clock strings. An end before
// the start is taken as crossing midnight and wraps by 24h.
func workedHours(startTime, endTime string) (float64, bool) {
	start, ok := parseClock(startTime)
	if !ok {
		return 0, false
	}
	end, ok := parseClock(endTime)
	if !ok {
		return 0, false
	}
	minutes := end - start
	if minutes < 0 {
		minutes += 24 * 60
	}
	return float64(minutes) / 60.0, true
}

// timeOfDay extracts "HH:MM" from an event start ("YYYY-MM-DDTHH:MM" or a
// bare clock value); defaults to 09:00 when unparseable.
func timeOfDay(start string) string {
	s := strings.TrimSpace(start)
	if m := isoTimePattern.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	if m := bareTimePattern.FindStringSubmatch(s); m != nil {
		h, _ := strconv.Atoi(m[1])
		return fmt.Sprintf("%02d:%s", h, m[2])
	}
	return "09:00"
}

// responseViewMap turns rows into the username-keyed view map, normalizing
// missing text fields to "".
func responseViewMap(rows []model.Response) map[string]dto.ResponseView {
	rmap := make(map[string]dto.ResponseView, len(rows))
	for _, r := range rows {
		rmap[r.Username] = dto.ResponseView{
			Status:       string(r.Status),
			Remark:       r.Remark,
			StartTime:    r.StartTime,
			EndTime:      r.EndTime,
			RateOverride: r.RateOverride,
		}
	}
	return rmap
}
