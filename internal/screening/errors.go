package screening

import (
	"fmt"

	"github.com/google/uuid"
)

// PostingNotFoundError indicates the posting id did not resolve. The filter
// run produces no partial result in that case.
type PostingNotFoundError struct {
	PostingID uuid.UUID
}

func (e *PostingNotFoundError) Error() string {
	return fmt.Sprintf("posting not found: %s", e.PostingID)
}
