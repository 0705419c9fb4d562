package model

type ProductsResponse []ProductResponse

type ProductResponse struct {
	ID          string   `json:"_id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Subcategory string   `json:"subcategory"`
	Price       float64  `json:"price"`
	Images      []string `json:"images"`
}

type SaveProductRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Subcategory string   `json:"subcategory"`
	Price       float64  `json:"price"`
	Images      []string `json:"images"`
}
