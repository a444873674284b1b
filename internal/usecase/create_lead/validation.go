package create_lead

import (
	"fmt"

	"github.com/velalaser/VLL-SchedulingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ClientID == "" {
		return fmt.Errorf("%w: clientID is required", ErrInvalidInput)
	}

	if req.UnitID <= 0 {
		return fmt.Errorf("%w: unitID must be positive", ErrInvalidInput)
	}

	if fieldErrs := domain.ValidateContact(req.Name, req.Phone); len(fieldErrs) > 0 {
		return fmt.Errorf("%w: %s: %s", ErrInvalidInput, fieldErrs[0].Field, fieldErrs[0].Message)
	}

	return nil
}
