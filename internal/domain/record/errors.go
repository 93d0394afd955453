package record

import "errors"

// Shared by the service-level advisory check and the repository's
// unique-violation mapping, so a duplicate caught at either layer
// surfaces as the same error.
var (
	ErrRecordNotFound   = errors.New("record not found")
	ErrNationalIDExists = errors.New("a record with this national id already exists")
)
