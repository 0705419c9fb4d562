package entity

type AdvisorID string

func (id AdvisorID) String() string {
	return string(id)
}

type Advisors []Advisor

type Advisor struct {
	ID           AdvisorID
	Name         string
	Email        string
	LoginEnabled bool
}

// Profile is the identity the dashboard endpoint returns for the currently
// authenticated session.
type Profile struct {
	ID    string
	Name  string
	Email string
}
