package model

type CustomerResponse struct {
	ID                string `json:"_id"`
	Name              string `json:"name"`
	MobileNumber      string `json:"mobileNumber"`
	AlternativeNumber string `json:"alternativeNumber"`
	Village           string `json:"village"`
	Taluka            string `json:"taluka"`
	District          string `json:"district"`
	State             string `json:"state"`
	Pincode           string `json:"pincode"`
	NearbyLocation    string `json:"nearbyLocation"`
	PostOffice        string `json:"postOffice"`
}

type AddCustomerRequest struct {
	MobileNumber string `json:"mobileNumber"`
	Name         string `json:"name"`
}

type AddCustomerResponse struct {
	Message  string           `json:"message"`
	Customer CustomerResponse `json:"customer"`
}

type UpdateCustomerRequest struct {
	Name              string `json:"name"`
	AlternativeNumber string `json:"alternativeNumber"`
	Village           string `json:"village"`
	Taluka            string `json:"taluka"`
	District          string `json:"district"`
	State             string `json:"state"`
	Pincode           string `json:"pincode"`
	NearbyLocation    string `json:"nearbyLocation"`
	PostOffice        string `json:"postOffice"`
}

type RemarksResponse []RemarkResponse

type RemarkResponse struct {
	AdvisoryID string `json:"advisoryId"`
	Remark     string `json:"remark"`
	CreatedAt  string `json:"createdAt"`
}

type AddRemarkRequest struct {
	AdvisoryID string `json:"advisoryId"`
	Remark     string `json:"remark"`
}

type AddRemarkResponse struct {
	Remark RemarkResponse `json:"remark"`
}
