package dto

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CreateEventRequest struct {
	Title          string   `json:"title"`
	Ort            string   `json:"ort"`
	Dienstkleidung string   `json:"dienstkleidung"`
	Auftraggeber   string   `json:"auftraggeber"`
	Start          string   `json:"start"`
	PlannedEndTime string   `json:"planned_end_time"`
	Frist          string   `json:"frist"`
	Status         string   `json:"status"`
	Category       string   `json:"category"`
	RequiredStaff  int      `json:"required_staff" validate:"min=0"`
	UseEventRate   *int     `json:"use_event_rate"`
	Stundensatz    *float64 `json:"stundensatz"`
}

type UpdateEventRequest struct {
	EventID string `json:"event_id" validate:"required"`
	CreateEventRequest
}

type ReleaseEventRequest struct {
	EventID string `json:"event_id" validate:"required"`
}

// DuplicateEventRequest targets either a list of calendar dates
// ("YYYY-MM-DD" each, invalid entries skipped) or a single explicit start.
type DuplicateEventRequest struct {
	EventID string   `json:"event_id" validate:"required"`
	Dates   []string `json:"dates"`
	Start   string   `json:"start"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type DuplicateEventResponse struct {
	Status      string   `json:"status"`
	NewEventIDs []string `json:"new_event_ids,omitempty"`
	NewEventID  string   `json:"new_event_id,omitempty"`
}

// ResponseView is one user's response as embedded in the event view.
// Missing text fields are normalized to "".
type ResponseView struct {
	Status       string   `json:"status"`
	Remark       string   `json:"remark"`
	StartTime    string   `json:"start_time"`
	EndTime      string   `json:"end_time"`
	RateOverride *float64 `json:"rate_override"`
}

// EventView is the derived listing row: the raw event plus the response map,
// the caller's effective hourly rate and the calendar CSS class tokens.
type EventView struct {
	ID             string                  `json:"id"`
	Title          string                  `json:"title"`
	Ort            string                  `json:"ort"`
	Dienstkleidung string                  `json:"dienstkleidung"`
	Auftraggeber   string                  `json:"auftraggeber"`
	Start          string                  `json:"start"`
	PlannedEndTime string                  `json:"planned_end_time"`
	Frist          string                  `json:"frist"`
	Status         string                  `json:"status"`
	Category       string                  `json:"category"`
	RequiredStaff  int                     `json:"required_staff"`
	UseEventRate   *int                    `json:"use_event_rate"`
	Stundensatz    *float64                `json:"stundensatz"`
	Responses      map[string]ResponseView `json:"responses"`
	ClassNames     []string                `json:"classNames"`
	MyRate         float64                 `json:"my_rate"`
}
