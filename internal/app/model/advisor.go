package model

type AdvisorsResponse []AdvisorResponse

type AdvisorResponse struct {
	ID           string `json:"_id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	LoginEnabled bool   `json:"loginEnabled"`
}

type AddAdvisoryRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type CountsResponse struct {
	AdvisoryCount int `json:"advisoryCount"`
	ProductCount  int `json:"productCount"`
}
