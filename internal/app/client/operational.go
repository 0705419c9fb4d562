package client

import (
	"context"
	"net/url"

	"github.com/kisaanstar/console/internal/app/converter"
	"github.com/kisaanstar/console/internal/app/entity"
	"github.com/kisaanstar/console/internal/app/model"
)

const (
	adminProductsPath    = `/api/operational-admin/products`
	adminAddAdvisoryPath = `/api/operational-admin/add-advisory`
	adminAdvisoriesPath  = `/api/operational-admin/advisories`
	adminCountsPath      = `/api/operational-admin/counts`
	adminRegisterPath    = `/api/operational-admin/register`
)

func (c *Client) Products(ctx context.Context) (entity.Products, error) {
	var response model.ProductsResponse
	err := c.get(ctx, adminProductsPath, &response)
	if err != nil {
		return nil, err
	}

	return converter.ConvertProductsResponseToProducts(response), nil
}

func (c *Client) Product(ctx context.Context, productID entity.ProductID) (entity.Product, error) {
	var response model.ProductResponse
	err := c.get(ctx, adminProductsPath+"/"+url.PathEscape(productID.String()), &response)
	if err != nil {
		return entity.Product{}, err
	}

	return converter.ConvertProductResponseToProduct(response), nil
}

func (c *Client) CreateProduct(ctx context.Context, product entity.Product) error {
	return c.post(ctx, adminProductsPath, converter.ConvertProductToSaveRequest(product), nil)
}

func (c *Client) UpdateProduct(ctx context.Context, product entity.Product) error {
	request := converter.ConvertProductToSaveRequest(product)

	return c.patch(ctx, adminProductsPath+"/"+url.PathEscape(product.ID.String()), request, nil)
}

func (c *Client) DeleteProduct(ctx context.Context, productID entity.ProductID) error {
	return c.delete(ctx, adminProductsPath+"/"+url.PathEscape(productID.String()))
}

// AddAdvisory onboards a field advisor; the server generates the first
// password and mails it to the given address.
func (c *Client) AddAdvisory(ctx context.Context, name, email string) error {
	request := model.AddAdvisoryRequest{
		Name:  name,
		Email: email,
	}

	return c.post(ctx, adminAddAdvisoryPath, request, nil)
}

func (c *Client) Advisories(ctx context.Context) (entity.Advisors, error) {
	var response model.AdvisorsResponse
	err := c.get(ctx, adminAdvisoriesPath, &response)
	if err != nil {
		return nil, err
	}

	return converter.ConvertAdvisorsResponseToAdvisors(response), nil
}

func (c *Client) Advisory(ctx context.Context, advisorID entity.AdvisorID) (entity.Advisor, error) {
	var response model.AdvisorResponse
	err := c.get(ctx, adminAdvisoriesPath+"/"+url.PathEscape(advisorID.String()), &response)
	if err != nil {
		return entity.Advisor{}, err
	}

	return converter.ConvertAdvisorResponseToAdvisor(response), nil
}

// ToggleAdvisoryLogin flips the login-enabled flag and returns the new state.
func (c *Client) ToggleAdvisoryLogin(ctx context.Context, advisorID entity.AdvisorID) (entity.Advisor, error) {
	var response model.AdvisorResponse
	path := adminAdvisoriesPath + "/" + url.PathEscape(advisorID.String()) + "/toggle-login"
	err := c.patch(ctx, path, nil, &response)
	if err != nil {
		return entity.Advisor{}, err
	}

	return converter.ConvertAdvisorResponseToAdvisor(response), nil
}

func (c *Client) Counts(ctx context.Context) (entity.ConsoleCounts, error) {
	var response model.CountsResponse
	err := c.get(ctx, adminCountsPath, &response)
	if err != nil {
		return entity.ConsoleCounts{}, err
	}

	return entity.ConsoleCounts{
		Advisories: response.AdvisoryCount,
		Products:   response.ProductCount,
	}, nil
}

func (c *Client) Register(ctx context.Context, name, email string) error {
	request := model.RegisterRequest{
		Name:  name,
		Email: email,
	}

	return c.post(ctx, adminRegisterPath, request, nil)
}
