package enquiryapi

// ErrorResponse is the JSON error body for generation endpoints: a single
// flat message, `{"error": "..."}`.
type ErrorResponse struct {
	Error string `json:"error"`
}
