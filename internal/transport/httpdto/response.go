package httpdto

// ErrorResponse is the error body for the chat endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the advisory body for the auth/profile endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

func NewErrorResponse(err string) ErrorResponse {
	return ErrorResponse{Error: err}
}

func NewMessageResponse(msg string) MessageResponse {
	return MessageResponse{Message: msg}
}
