package entity

type ProductID string

func (id ProductID) String() string {
	return string(id)
}

type Products []Product

type Product struct {
	ID          ProductID
	Name        string
	Description string
	Category    string
	Subcategory string
	Price       float64
	Images      []string
}
