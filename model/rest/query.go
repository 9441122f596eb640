package rest

// Query is the body of a cursor request
type Query struct {
	// AQL text, bound parameters are referenced as @name or @@name for collections.
	Query string `json:"query"`

	// Bound parameters. Keys are unique by construction.
	Parameters map[string]interface{} `json:"bindVars,omitempty"`
}

// QueryResult is the response of the cursor endpoint
type QueryResult[T any] struct {
	Result  []T    `json:"result"`
	HasMore bool   `json:"hasMore"`
	Count   int    `json:"count,omitempty"`
	Id      string `json:"id,omitempty"`
	Error   bool   `json:"error"`
	Code    int    `json:"code"`
}
