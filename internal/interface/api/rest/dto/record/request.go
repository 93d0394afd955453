package record

type Request struct {
	FullName     string `json:"fullName"`
	NationalID   string `json:"nationalId"`
	PostalCode   string `json:"postalCode"`
	Street       string `json:"street"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
}
