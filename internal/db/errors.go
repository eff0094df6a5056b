package db

import (
	"fmt"

	"github.com/google/uuid"
)

// ApplicationNotFoundError indicates an application id did not resolve.
type ApplicationNotFoundError struct {
	ApplicationID uuid.UUID
}

func (e *ApplicationNotFoundError) Error() string {
	return fmt.Sprintf("application not found: %s", e.ApplicationID)
}
