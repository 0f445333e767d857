package dto

import "github.com/shopspring/decimal"

// ReportEntry is one confirmed, end-timed response folded into payroll.
type ReportEntry struct {
	EventID   string          `json:"event_id"`
	Title     string          `json:"title"`
	Date      string          `json:"date"` // "YYYY-MM-DD"
	StartTime string          `json:"start_time"`
	EndTime   string          `json:"end_time"`
	Hours     float64         `json:"hours"`
	Rate      float64         `json:"rate"`
	Pay       decimal.Decimal `json:"pay"`
}

type EmployeeReport struct {
	Username   string          `json:"username"`
	Name       string          `json:"name"`
	TotalHours float64         `json:"total_hours"`
	TotalPay   decimal.Decimal `json:"total_pay"`
	Entries    []ReportEntry   `json:"entries"`
}

type ReportResponse struct {
	Month     string           `json:"month,omitempty"`
	Employees []EmployeeReport `json:"employees"`
}
