package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const fallbackMessage = "Something went wrong"

var (
	ErrTransport       = errors.New("backend unreachable")
	ErrInvalidResponse = errors.New("invalid backend response")
)

// APIError is a non-2xx answer from the backend
type APIError struct {
	StatusCode int
	Messages   []string
}

func (e *APIError) Error() string {
	if len(e.Messages) == 0 {
		return fallbackMessage
	}
	return strings.Join(e.Messages, ", ")
}

// ErrorMessage returns the single human-readable line a form shows for err.
func ErrorMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Error()
	}
	return fallbackMessage
}

// messages decodes a "message" value sent either as a string or as a list of strings.
type messages []string

func (m *messages) UnmarshalJSON(data []byte) error {
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		if one != "" {
			*m = messages{one}
		}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("message is neither a string nor a list: %w", err)
	}
	*m = many
	return nil
}

func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status}
	var payload struct {
		Message messages `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		apiErr.Messages = payload.Message
	}
	return apiErr
}
