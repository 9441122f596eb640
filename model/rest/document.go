package rest

// UpdatedDocument is the document header echoed by insert and update requests.
// New holds the complete document when returnNew=true was requested.
type UpdatedDocument[T any] struct {
	Id     string `json:"_id"`
	Key    string `json:"_key"`
	Rev    string `json:"_rev"`
	OldRev string `json:"_oldRev,omitempty"`
	New    *T     `json:"new,omitempty"`
}
