package dto

// ── Request DTOs ──────────────────────────────────────────────────────────────

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int          `json:"expires_in"`
	User        UserResponse `json:"user"`
}

// DashboardResponse tells the client which dashboard variant to render.
type DashboardResponse struct {
	User      string `json:"user"`
	Role      string `json:"role"`
	Dashboard string `json:"dashboard"` // "chef" | "mitarbeiter"
}
