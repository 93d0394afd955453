package record

import (
	"time"
)

type (
	Record struct {
		ID           int64
		FullName     string
		NationalID   string
		PostalCode   string
		Street       string
		Neighborhood string
		City         string
		State        string

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Records []*Record
)
