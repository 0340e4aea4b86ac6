// internal/api/types/response.go
package types

// MessageResponse is the envelope for success acknowledgements and simple
// failure messages.
type MessageResponse struct {
	Message string `json:"message"`
}

// ValidationErrorResponse carries the full list of input violations for a
// rejected request.
type ValidationErrorResponse struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors"`
}
