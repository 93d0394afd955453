package record

import (
	domain "record-manager-api/internal/domain/record"
)

func fromDBModel(model *Record) *domain.Record {
	var r = &domain.Record{
		ID:           domain.ID(model.ID),
		FullName:     model.FullName,
		NationalID:   model.NationalID,
		PostalCode:   model.PostalCode,
		Street:       model.Street,
		Neighborhood: model.Neighborhood,
		City:         model.City,
		State:        model.State,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}

	return r
}

func fromDBModels(models *Records) domain.Records {
	rs := make(domain.Records, len(*models))
	for idx, r := range *models {
		rs[idx] = fromDBModel(r)
	}

	return rs
}
