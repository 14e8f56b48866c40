package response

// LoginResponse is the response for a successful login
type LoginResponse struct {
	Token   string `json:"token"`
	Trusted bool   `json:"trusted,omitempty"`
}

// VerifyResponse is the response for a token verification
type VerifyResponse struct {
	Valid   bool `json:"valid"`
	Trusted bool `json:"trusted,omitempty"`
}

// SaveResponse acknowledges a collection write
type SaveResponse struct {
	Success bool `json:"success"`
}

// ExportResponse carries a rendered export artifact as JSON, for callers
// that want the filename alongside the content instead of a download
type ExportResponse struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}
