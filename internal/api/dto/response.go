package dto

// APIResponse is the envelope returned by every endpoint.
type APIResponse struct {
	IsSuccess     bool     `json:"is_success"`
	Result        any      `json:"result,omitempty"`
	ErrorMessages []string `json:"error_messages,omitempty"`
}

// Success wraps a payload in a successful envelope.
func Success(result any) APIResponse {
	return APIResponse{IsSuccess: true, Result: result}
}

// Failure wraps error messages in a failed envelope.
func Failure(messages ...string) APIResponse {
	return APIResponse{IsSuccess: false, ErrorMessages: messages}
}
