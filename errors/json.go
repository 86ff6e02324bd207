package errors

import (
	"encoding/json"
)

// ErrorResponse is the serialized form of an error chain.
// Message is the outermost message, Causes the remaining links, most
// specific last.
type ErrorResponse struct {
	// Message is the outermost message of the chain.
	Message string `json:"message"`

	// Causes holds the messages of all causes, innermost last.
	// Omitted from JSON if the error has no cause.
	Causes []string `json:"causes,omitempty"`
}

// ToJSON converts any error to an ErrorResponse suitable for JSON serialization.
// Returns nil if err is nil.
//
// Example:
//
//	if err := run(); err != nil {
//	    _ = json.NewEncoder(os.Stdout).Encode(errors.ToJSON(err))
//	}
func ToJSON(err error) *ErrorResponse {
	chain := Chain(err)
	if len(chain) == 0 {
		return nil
	}

	response := &ErrorResponse{Message: chain[0]}
	if len(chain) > 1 {
		response.Causes = chain[1:]
	}
	return response
}

// MarshalJSON implements json.Marshaler for ContextualError.
// The output has the same shape as ErrorResponse:
//
//	{"message":"Failed to load configuration","causes":["File not found"]}
func (e *ContextualError) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(ToJSON(e))
	if err != nil {
		return nil, Wrap(err, "failed to marshal error response")
	}
	return data, nil
}
