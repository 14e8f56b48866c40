package request

// LoginRequest is the request body for admin login
type LoginRequest struct {
	Password string `json:"password"`
}

// ParseRequest is the request body for a dry-run roster parse
type ParseRequest struct {
	Text string `json:"text"`
	// Filter runs the candidate-line heuristic first, for text that came
	// out of a PDF or other loosely structured source
	Filter bool `json:"filter,omitempty"`
}
