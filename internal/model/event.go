package model

import (
	"strings"
	"time"
)

// Event statuses.
const (
	EventGeplant = "geplant"
	EventOffen   = "offen"
)

// Event categories.
const (
	CategoryCP = "CP"
	CategoryCV = "CV"
)

// Event is a schedulable work assignment ("Einsatz").
//
// Start, PlannedEndTime and Frist are kept as the original wire strings
// ("YYYY-MM-DDTHH:MM" / "HH:MM") rather than time.Time: the calendar frontend
// reads and writes them verbatim and they carry no timezone.
type Event struct {
	ID             string `gorm:"primaryKey"`
	Title          string
	Ort            string
	Dienstkleidung string
	Auftraggeber   string
	Start          string
	PlannedEndTime string
	Frist          string
	Status         string `gorm:"default:geplant"`
	Category       string `gorm:"default:CP"`
	RequiredStaff  int    `gorm:"not null;default:0"`

	// UseEventRate: 1 = the event's own Stundensatz applies, 0 = the
	// responding user's profile rate. NULL is treated as 1; an explicit 0
	// must be preserved.
	UseEventRate *int
	Stundensatz  *float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NormalizeCategory coerces anything outside {CP, CV} to CP.
func NormalizeCategory(c string) string {
	cat := strings.ToUpper(strings.TrimSpace(c))
	if cat != CategoryCP && cat != CategoryCV {
		return CategoryCP
	}
	return cat
}

// EffectiveUseEventRate resolves the nullable flag: NULL means 1,
// an explicit 0 stays 0.
func (e *Event) EffectiveUseEventRate() int {
	if e.UseEventRate == nil {
		return 1
	}
	return *e.UseEventRate
}
