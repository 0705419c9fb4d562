package converter

import (
	"github.com/kisaanstar/console/internal/app/entity"
	"github.com/kisaanstar/console/internal/app/model"
)

func ConvertProductsResponseToProducts(response model.ProductsResponse) entity.Products {
	products := make(entity.Products, 0, len(response))

	for _, productResponse := range response {
		products = append(products, ConvertProductResponseToProduct(productResponse))
	}

	return products
}

func ConvertProductResponseToProduct(response model.ProductResponse) entity.Product {
	return entity.Product{
		ID:          entity.ProductID(response.ID),
		Name:        response.Name,
		Description: response.Description,
		Category:    response.Category,
		Subcategory: response.Subcategory,
		Price:       response.Price,
		Images:      response.Images,
	}
}

func ConvertProductToSaveRequest(product entity.Product) model.SaveProductRequest {
	return model.SaveProductRequest{
		Name:        product.Name,
		Description: product.Description,
		Category:    product.Category,
		Subcategory: product.Subcategory,
		Price:       product.Price,
		Images:      product.Images,
	}
}
