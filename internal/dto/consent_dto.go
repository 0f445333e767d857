package dto

// SetConsentRequest records DSGVO consent. Yes is intentionally untyped:
// the frontend has historically sent true, "true", "1", "ja" or "yes".
type SetConsentRequest struct {
	Yes  any    `json:"yes"`
	Name string `json:"name"`
	Date string `json:"date"` // "YYYY-MM-DD", defaults to today
}

type ConsentStatusResponse struct {
	Given    bool   `json:"given"`
	Name     string `json:"name"`
	Date     string `json:"date"`
	FullName string `json:"full_name"`
}
