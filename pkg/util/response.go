package util

// APIResponse is the success envelope returned by every endpoint.
type APIResponse struct {
	StatusCode int    `json:"status_code"`
	Data       any    `json:"data"`
	Message    string `json:"message"`
}

// NewResponse builds a success envelope, defaulting the message to "Success".
func NewResponse(statusCode int, data any, message string) APIResponse {
	if message == "" {
		message = "Success"
	}
	return APIResponse{StatusCode: statusCode, Data: data, Message: message}
}
