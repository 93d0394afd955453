package record

import (
	domain "record-manager-api/internal/domain/record"
)

func ToResponseRecord(rDomain domain.Record) Record {
	var r = Record{
		ID:           int64(rDomain.ID),
		FullName:     rDomain.FullName,
		NationalID:   rDomain.NationalID,
		PostalCode:   rDomain.PostalCode,
		Street:       rDomain.Street,
		Neighborhood: rDomain.Neighborhood,
		City:         rDomain.City,
		State:        rDomain.State,
		CreatedAt:    rDomain.CreatedAt,
		UpdatedAt:    rDomain.UpdatedAt,
	}

	return r
}

func ToResponseRecords(rsDomain domain.Records) Records {
	rs := make(Records, len(rsDomain))
	for idx, r := range rsDomain {
		rs[idx] = ToResponseRecord(*r)
	}

	return rs
}

func ToDomainRecord(rRequest Request) domain.Record {
	var r = domain.Record{
		FullName:     rRequest.FullName,
		NationalID:   rRequest.NationalID,
		PostalCode:   rRequest.PostalCode,
		Street:       rRequest.Street,
		Neighborhood: rRequest.Neighborhood,
		City:         rRequest.City,
		State:        rRequest.State,
	}

	return r
}
