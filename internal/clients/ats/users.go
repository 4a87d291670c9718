package ats

import (
	"context"
	"fmt"
	"net/http"
)

func (c *Client) ListUsers(ctx context.Context, companyID int) ([]User, error) {

	body, err := c.get(ctx, fmt.Sprintf("/companies/%d/users", companyID), nil)
	if err != nil {
		return nil, err
	}

	return decodeInto[[]User](body)
}

type UserRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

func (c *Client) CreateUser(ctx context.Context, companyID int, request UserRequest) (User, error) {

	body, err := c.send(ctx, http.MethodPost, fmt.Sprintf("/companies/%d/users", companyID), nil, request)
	if err != nil {
		return User{}, err
	}

	return decodeInto[User](body)
}

func (c *Client) UpdateUser(ctx context.Context, companyID int, userID int, request UserRequest) (User, error) {

	body, err := c.send(ctx, http.MethodPut, fmt.Sprintf("/companies/%d/users/%d", companyID, userID), nil, request)
	if err != nil {
		return User{}, err
	}

	return decodeInto[User](body)
}

func (c *Client) DeleteUser(ctx context.Context, companyID int, userID int) error {

	_, err := c.send(ctx, http.MethodDelete, fmt.Sprintf("/companies/%d/users/%d", companyID, userID), nil, nil)
	return err
}
