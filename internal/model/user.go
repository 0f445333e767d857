package model

import (
	"strings"
	"time"
)

// User stores accounts with role-based access.
// Role: see role.go for the canonical tokens.
type User struct {
	Username     string `gorm:"primaryKey"`
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"not null;default:mitarbeiter"`
	Vorname      string
	Nachname     string
	Email        *string

	// Qualification fields ("ja"/"nein" flags and licence numbers)
	S34a         string
	S34aArt      string
	Pschein      string
	BewachID     string
	Steuernummer string
	Bsw          string
	Sanitaeter   string

	// Stundensatz is the profile hourly rate; nil = not set
	Stundensatz *float64

	// DSGVO consent
	ConsentGiven bool `gorm:"not null;default:false"`
	ConsentName  string
	ConsentDate  string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// FullName joins vorname and nachname, trimming stray whitespace.
func (u *User) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(u.Vorname) + " " + strings.TrimSpace(u.Nachname))
}

// NormalizeS34aArt unifies the spelling of the Sachkunde qualification.
func NormalizeS34aArt(v string) string {
	s := strings.TrimSpace(v)
	if s == "" {
		return ""
	}
	if strings.EqualFold(s, "sachkunde") {
		return "Sachkunde"
	}
	return s
}
