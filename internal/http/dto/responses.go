package dto

// ErrorResponse is the envelope for every failed request. Code is a stable
// machine-readable value clients can branch on.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}
