package model

import "time"

// ResponseStatus enumerates the per-(event, user) states. The wire values
// are the German tokens the frontend renders; comparisons go through the
// typed constants and predicate methods, never ad-hoc string literals.
type ResponseStatus string

const (
	// ResponseNone is an empty/withdrawn response (row kept, status NULL).
	ResponseNone ResponseStatus = ""
	// ResponseAccepted: the employee offered to take the assignment.
	ResponseAccepted ResponseStatus = "zugesagt"
	// ResponseDeclined: the employee turned the assignment down.
	ResponseDeclined ResponseStatus = "abgelehnt"
	// ResponseConfirmed: a manager confirmed the employee for the assignment.
	ResponseConfirmed ResponseStatus = "bestätigt"
	// ResponseRejectedByManager: a manager rejected the employee's offer.
	ResponseRejectedByManager ResponseStatus = "abgelehnt_chef"
	// ResponseRemovedByManager: a manager removed the employee (soft delete).
	ResponseRemovedByManager ResponseStatus = "entfernt_chef"
)

// IsApplication reports whether the status counts towards the
// applications tally (offers plus confirmations).
func (s ResponseStatus) IsApplication() bool {
	return s == ResponseAccepted || s == ResponseConfirmed
}

// IsConfirmed reports whether the status counts towards required_staff.
func (s ResponseStatus) IsConfirmed() bool { return s == ResponseConfirmed }

// ValidEmployeeInput reports whether the value is acceptable on the
// employee self-service endpoint (withdraw, accept, decline).
func (s ResponseStatus) ValidEmployeeInput() bool {
	return s == ResponseNone || s == ResponseAccepted || s == ResponseDeclined
}

// Response is the join entity between an event and a user. A pair is unique;
// removal is modeled as ResponseRemovedByManager rather than a hard delete so
// the history stays auditable.
type Response struct {
	ID        int64          `gorm:"primaryKey"`
	EventID   string         `gorm:"uniqueIndex:idx_responses_event_user;not null"`
	Username  string         `gorm:"uniqueIndex:idx_responses_event_user;not null"`
	Status    ResponseStatus `gorm:"type:text"`
	Remark    string
	StartTime string // "HH:MM"
	EndTime   string // "HH:MM", write-once on the employee endpoint

	// RateOverride supersedes the computed hourly rate in payroll.
	RateOverride *float64

	CreatedAt time.Time
	UpdatedAt time.Time
}
