package get_available_slots

import (
	"fmt"

	"github.com/google/uuid"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SessionID == uuid.Nil {
		return fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}
	return nil
}
