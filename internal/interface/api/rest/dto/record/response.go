package record

import (
	"time"
)

type (
	Record struct {
		ID           int64     `json:"id"`
		FullName     string    `json:"fullName"`
		NationalID   string    `json:"nationalId"`
		PostalCode   string    `json:"postalCode"`
		Street       string    `json:"street"`
		Neighborhood string    `json:"neighborhood"`
		City         string    `json:"city"`
		State        string    `json:"state"`
		CreatedAt    time.Time `json:"createdAt"`
		UpdatedAt    time.Time `json:"updatedAt"`
	}
	Records []Record
)
