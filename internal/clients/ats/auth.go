package ats

import (
	"context"
	"net/http"
	"net/url"
)

type signInResponse struct {
	Token string `json:"token"`
}

// SignIn exchanges credentials for a bearer token. The caller persists the
// token through the session store; the client itself holds no session state.
func (c *Client) SignIn(ctx context.Context, email string, password string) (string, error) {

	body, err := c.send(ctx, http.MethodPost, "/auth/sign-in", nil,
		map[string]string{"email": email, "password": password})
	if err != nil {
		return "", err
	}

	response, err := decodeInto[signInResponse](body)
	if err != nil {
		return "", err
	}
	return response.Token, nil
}

type CompleteRegistrationRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Password  string `json:"password"`
}

// CompleteRegistration finishes an invitation flow using the one-time token
// from the invitation link.
func (c *Client) CompleteRegistration(ctx context.Context, registrationToken string, request CompleteRegistrationRequest) error {

	params := url.Values{}
	params.Add("token", registrationToken)

	_, err := c.send(ctx, http.MethodPost, "/auth/complete-registration", params, request)
	return err
}
