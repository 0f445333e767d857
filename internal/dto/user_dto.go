package dto

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CreateUserRequest struct {
	Username     string   `json:"username" validate:"required"`
	Password     string   `json:"password"`
	Role         string   `json:"role"`
	Vorname      string   `json:"vorname"`
	Nachname     string   `json:"nachname"`
	Email        string   `json:"email"`
	S34a         string   `json:"s34a"`
	S34aArt      string   `json:"s34a_art"`
	Pschein      string   `json:"pschein"`
	BewachID     string   `json:"bewach_id"`
	Steuernummer string   `json:"steuernummer"`
	Bsw          string   `json:"bsw"`
	Sanitaeter   string   `json:"sanitaeter"`
	Stundensatz  *float64 `json:"stundensatz"`
}

// UpdateUserRequest carries partial updates: nil pointers keep the prior
// value. A blank s34a_art also keeps the prior value so saving the email
// does not wipe the Sachkunde qualification.
type UpdateUserRequest struct {
	Password     *string  `json:"password"`
	Role         *string  `json:"role"`
	Vorname      *string  `json:"vorname"`
	Nachname     *string  `json:"nachname"`
	Email        *string  `json:"email"`
	S34a         *string  `json:"s34a"`
	S34aArt      *string  `json:"s34a_art"`
	Pschein      *string  `json:"pschein"`
	BewachID     *string  `json:"bewach_id"`
	Steuernummer *string  `json:"steuernummer"`
	Bsw          *string  `json:"bsw"`
	Sanitaeter   *string  `json:"sanitaeter"`
	Stundensatz  *float64 `json:"stundensatz"`
}

type RenameUserRequest struct {
	OldUsername string `json:"old_username" validate:"required"`
	NewUsername string `json:"new_username" validate:"required"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type UserResponse struct {
	Username     string   `json:"username"`
	Role         string   `json:"role"`
	Vorname      string   `json:"vorname"`
	Nachname     string   `json:"nachname"`
	Email        string   `json:"email"`
	S34a         string   `json:"s34a"`
	S34aArt      string   `json:"s34a_art"`
	Pschein      string   `json:"pschein"`
	BewachID     string   `json:"bewach_id"`
	Steuernummer string   `json:"steuernummer"`
	Bsw          string   `json:"bsw"`
	Sanitaeter   string   `json:"sanitaeter"`
	Stundensatz  *float64 `json:"stundensatz"`
	ConsentGiven bool     `json:"consent_given"`
	ConsentName  string   `json:"consent_name"`
	ConsentDate  string   `json:"consent_date"`
}

// PublicUserResponse is the name-only roster for planning roles.
type PublicUserResponse struct {
	Username string `json:"username"`
	Vorname  string `json:"vorname"`
	Nachname string `json:"nachname"`
}
