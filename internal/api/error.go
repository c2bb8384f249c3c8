package api

import (
	"fmt"

	"github.com/cjsavings/savings-client/internal/common"
)

// Error is the normalized failure shape for every gateway call: the HTTP
// status plus the backend's message and machine code when the body carried
// them.
type Error struct {
	Status  int
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

// Unwrap lets callers match a rejected session with
// errors.Is(err, common.ErrUnauthorized).
func (e *Error) Unwrap() error {
	if e.Status == 401 {
		return common.ErrUnauthorized
	}
	return nil
}
