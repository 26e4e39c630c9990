package dto

// ImportResponse reports a completed CSV import.
type ImportResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}
