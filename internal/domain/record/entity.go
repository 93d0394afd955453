package record

import (
	"time"
)

type (
	ID     int64
	Record struct {
		ID           ID
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
