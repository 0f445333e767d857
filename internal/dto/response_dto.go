package dto

// ── Employee self-service ─────────────────────────────────────────────────────

// RespondRequest: response is "zugesagt", "abgelehnt" or "" (withdraw).
type RespondRequest struct {
	EventID  string `json:"event_id" validate:"required"`
	Response string `json:"response"`
	Remark   string `json:"remark"`
}

type EndTimeRequest struct {
	EventID string `json:"event_id" validate:"required"`
	EndTime string `json:"end_time" validate:"required"`
}

// ── Manager response administration ───────────────────────────────────────────

type AssignUserRequest struct {
	EventID  string `json:"event_id" validate:"required"`
	Username string `json:"username" validate:"required"`
}

type RemoveUserRequest struct {
	EventID  string `json:"event_id" validate:"required"`
	Username string `json:"username" validate:"required"`
}

type ConfirmRequest struct {
	EventID  string `json:"event_id" validate:"required"`
	Username string `json:"username" validate:"required"`
	Decision string `json:"decision" validate:"required"`
}

// EditEntryRequest: empty time fields keep the prior value; remark and
// rate_override are overwritten as given.
type EditEntryRequest struct {
	EventID      string   `json:"event_id" validate:"required"`
	Username     string   `json:"username" validate:"required"`
	StartTime    string   `json:"start_time"`
	EndTime      string   `json:"end_time"`
	Remark       string   `json:"remark"`
	RateOverride *float64 `json:"rate_override"`
}

type SendMailAllResponse struct {
	Status string `json:"status"`
	Sent   int    `json:"sent"`
}
