// Package pincode resolves Indian postal pincodes to their post offices and
// the address fields that hang off them. The directory ships with the console
// as embedded master data, the same way the browser console bundled it.
package pincode

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kisaanstar/console/internal/app/entity"
)

//go:embed directory.json
var directoryData []byte

var ErrNoRecords = errors.New("no records found for this pincode")

type PostOffice struct {
	Name     string `json:"officename"`
	Taluka   string `json:"taluka"`
	District string `json:"district"`
	State    string `json:"state"`
}

type Directory struct {
	offices map[string][]PostOffice
}

// Load parses the embedded directory.
func Load() (*Directory, error) {
	offices := make(map[string][]PostOffice)
	if err := json.Unmarshal(directoryData, &offices); err != nil {
		return nil, fmt.Errorf("error while parsing pincode directory: %w", err)
	}

	return &Directory{offices: offices}, nil
}

// NewDirectory builds a directory over the given mapping.
func NewDirectory(offices map[string][]PostOffice) *Directory {
	return &Directory{offices: offices}
}

// Lookup returns the post offices serving a pincode.
func (d *Directory) Lookup(pincode string) ([]PostOffice, error) {
	offices, ok := d.offices[pincode]
	if !ok {
		return nil, ErrNoRecords
	}

	return offices, nil
}

// Apply writes the pincode onto the customer and cascades the dependent
// address fields. A known pincode with a valid post office selection fills
// taluka, district and state from the directory; an unknown pincode or an
// office outside the pincode's list clears all dependent fields so stale
// values never survive a pincode change.
func (d *Directory) Apply(customer *entity.Customer, pincode, officeName string) error {
	customer.Pincode = pincode

	offices, err := d.Lookup(pincode)
	if err != nil {
		clearDependentFields(customer)
		return err
	}

	for _, office := range offices {
		if office.Name == officeName {
			customer.PostOffice = office.Name
			customer.Taluka = office.Taluka
			customer.District = office.District
			customer.State = office.State
			return nil
		}
	}

	clearDependentFields(customer)

	return nil
}

func clearDependentFields(customer *entity.Customer) {
	customer.Taluka = ""
	customer.District = ""
	customer.State = ""
	customer.PostOffice = ""
}
