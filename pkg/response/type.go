package response

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// AckResp is the body GitHub receives for an accepted delivery.
type AckResp struct {
	OK bool `json:"ok"`
}
