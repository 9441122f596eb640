package rest

// Payload is one outgoing call to the ArangoDB HTTP API
type Payload struct {
	Method string

	// Path relative to the database, for example "_api/cursor".
	Path string

	Content []byte
}

// Result is the raw reply to a Payload
type Result struct {
	StatusCode int
	Content    []byte
}

// ErrorResponse is the body ArangoDB returns together with an error status
type ErrorResponse struct {
	Error        bool   `json:"error"`
	Code         int    `json:"code"`
	ErrorNum     int    `json:"errorNum"`
	ErrorMessage string `json:"errorMessage"`
}
