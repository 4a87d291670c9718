package ats

import (
	"context"
	"fmt"
	"net/http"
)

type listApplicantsResponse struct {
	Applicants []Applicant `json:"items"`
	PageInfo
}

func (c *Client) ListApplicants(ctx context.Context, jobID int, stage Stage, filters ListFilters) ([]Applicant, PageInfo, error) {

	if err := filters.Validate(); err != nil {
		return nil, PageInfo{}, fmt.Errorf("invalid filters: %w", err)
	}

	params := filters.ToUrlParams()
	params.Add("stage", string(stage))

	body, err := c.get(ctx, fmt.Sprintf("/jobs/%d/applicants", jobID), params)
	if err != nil {
		return nil, PageInfo{}, err
	}

	response, err := decodeInto[listApplicantsResponse](body)
	if err != nil {
		return nil, PageInfo{}, err
	}
	return response.Applicants, response.PageInfo, nil
}

func (c *Client) RateApplicant(ctx context.Context, applicantID int, rating int) error {

	if rating < 1 || rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5")
	}

	_, err := c.send(ctx, http.MethodPatch, fmt.Sprintf("/applicants/%d/rating", applicantID), nil,
		map[string]int{"rating": rating})
	return err
}

func (c *Client) AddComment(ctx context.Context, applicantID int, text string) (Comment, error) {

	if text == "" {
		return Comment{}, fmt.Errorf("comment text must not be empty")
	}

	body, err := c.send(ctx, http.MethodPost, fmt.Sprintf("/applicants/%d/comments", applicantID), nil,
		map[string]string{"text": text})
	if err != nil {
		return Comment{}, err
	}

	return decodeInto[Comment](body)
}

func (c *Client) SendHireLetter(ctx context.Context, applicantID int, letter HireLetter) error {

	_, err := c.send(ctx, http.MethodPost, fmt.Sprintf("/applicants/%d/hire-letter", applicantID), nil, letter)
	return err
}

func (c *Client) ListDocuments(ctx context.Context, applicantID int) ([]Document, error) {

	body, err := c.get(ctx, fmt.Sprintf("/applicants/%d/documents", applicantID), nil)
	if err != nil {
		return nil, err
	}

	return decodeInto[[]Document](body)
}
