package validator

import (
	"strconv"
	"strings"

	domain "record-manager-api/internal/domain/record"
	"record-manager-api/internal/interface/api/rest/dto/record"
)

func IsRecordID(s string) (bool, domain.ID) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return false, 0
	}
	return true, domain.ID(id)
}

// ValidateRecord checks that every field carries a non-blank value.
// The address fields are free-form on purpose: format checking of the
// national id and postal code lives in the frontend, the backend only
// refuses blanks.
func ValidateRecord(r record.Request) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(r.FullName) == "" {
		errs["fullName"] = "fullName is required"
	}
	if strings.TrimSpace(r.NationalID) == "" {
		errs["nationalId"] = "nationalId is required"
	}
	if strings.TrimSpace(r.PostalCode) == "" {
		errs["postalCode"] = "postalCode is required"
	}
	if strings.TrimSpace(r.Street) == "" {
		errs["street"] = "street is required"
	}
	if strings.TrimSpace(r.Neighborhood) == "" {
		errs["neighborhood"] = "neighborhood is required"
	}
	if strings.TrimSpace(r.City) == "" {
		errs["city"] = "city is required"
	}
	if strings.TrimSpace(r.State) == "" {
		errs["state"] = "state is required"
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}
