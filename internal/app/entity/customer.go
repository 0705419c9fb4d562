package entity

import "time"

type CustomerID string

func (id CustomerID) String() string {
	return string(id)
}

// Customer carries the denormalized farmer record the advisory console works
// with. Address fields are optional until the advisor fills them in; an empty
// string means the field has never been provided.
type Customer struct {
	ID                CustomerID
	Name              string
	MobileNumber      string
	AlternativeNumber string
	Village           string
	Taluka            string
	District          string
	State             string
	Pincode           string
	NearbyLocation    string
	PostOffice        string
}

type Remarks []Remark

type Remark struct {
	AdvisorID AdvisorID
	Text      string
	CreatedAt time.Time
}
