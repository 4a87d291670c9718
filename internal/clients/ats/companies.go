package ats

import (
	"context"
	"fmt"
	"net/http"
)

func (c *Client) GetCompany(ctx context.Context, companyID int) (Company, error) {

	body, err := c.get(ctx, fmt.Sprintf("/companies/%d", companyID), nil)
	if err != nil {
		return Company{}, err
	}

	return decodeInto[Company](body)
}

type UpdateCompanyRequest struct {
	Name    string `json:"name"`
	Website string `json:"website"`
	Phone   string `json:"phone"`
}

func (c *Client) UpdateCompany(ctx context.Context, companyID int, request UpdateCompanyRequest) (Company, error) {

	body, err := c.send(ctx, http.MethodPut, fmt.Sprintf("/companies/%d", companyID), nil, request)
	if err != nil {
		return Company{}, err
	}

	return decodeInto[Company](body)
}

type listCompaniesResponse struct {
	Companies []Company `json:"items"`
	PageInfo
}

// ListCompanies is the admin surface; non-admin callers get a 403 which
// unwraps to ErrUnauthorized.
func (c *Client) ListCompanies(ctx context.Context, filters ListFilters) ([]Company, PageInfo, error) {

	if err := filters.Validate(); err != nil {
		return nil, PageInfo{}, fmt.Errorf("invalid filters: %w", err)
	}

	body, err := c.get(ctx, "/admin/companies", filters.ToUrlParams())
	if err != nil {
		return nil, PageInfo{}, err
	}

	response, err := decodeInto[listCompaniesResponse](body)
	if err != nil {
		return nil, PageInfo{}, err
	}
	return response.Companies, response.PageInfo, nil
}

func (c *Client) ApproveCompany(ctx context.Context, companyID int) error {

	_, err := c.send(ctx, http.MethodPost, fmt.Sprintf("/admin/companies/%d/approve", companyID), nil, nil)
	return err
}
