package types

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ChatResponse is returned by POST /api/chat on success.
type ChatResponse struct {
	Response string `json:"response"`
	Success  bool   `json:"success"`
	ThreadID string `json:"thread_id"`
}

// RootResponse is the body of the root health probe.
type RootResponse struct {
	Response string `json:"response"`
}

type StatusResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}
