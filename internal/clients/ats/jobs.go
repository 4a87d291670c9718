package ats

import (
	"context"
	"fmt"
	"net/http"
)

type listJobsResponse struct {
	Jobs []Job `json:"items"`
	PageInfo
}

func (c *Client) ListJobs(ctx context.Context, companyID int, filters ListFilters) ([]Job, PageInfo, error) {

	if err := filters.Validate(); err != nil {
		return nil, PageInfo{}, fmt.Errorf("invalid filters: %w", err)
	}

	body, err := c.get(ctx, fmt.Sprintf("/companies/%d/jobs", companyID), filters.ToUrlParams())
	if err != nil {
		return nil, PageInfo{}, err
	}

	response, err := decodeInto[listJobsResponse](body)
	if err != nil {
		return nil, PageInfo{}, err
	}
	return response.Jobs, response.PageInfo, nil
}

func (c *Client) GetJob(ctx context.Context, jobID int) (Job, error) {

	body, err := c.get(ctx, fmt.Sprintf("/jobs/%d", jobID), nil)
	if err != nil {
		return Job{}, err
	}

	return decodeInto[Job](body)
}

func (c *Client) CreateJob(ctx context.Context, companyID int, request CreateJobRequest) (Job, error) {

	body, err := c.send(ctx, http.MethodPost, fmt.Sprintf("/companies/%d/jobs", companyID), nil, request)
	if err != nil {
		return Job{}, err
	}

	return decodeInto[Job](body)
}

func (c *Client) UpdateJobStatus(ctx context.Context, jobID int, status JobStatus) error {

	_, err := c.send(ctx, http.MethodPatch, fmt.Sprintf("/jobs/%d/status", jobID), nil,
		map[string]string{"status": string(status)})
	return err
}

func (c *Client) UpdateJobVisibility(ctx context.Context, jobID int, visibility JobVisibility) error {

	_, err := c.send(ctx, http.MethodPatch, fmt.Sprintf("/jobs/%d/visibility", jobID), nil,
		map[string]string{"visibility": string(visibility)})
	return err
}

func (c *Client) ListJobCategories(ctx context.Context) ([]JobCategory, error) {

	body, err := c.get(ctx, "/job-categories", nil)
	if err != nil {
		return nil, err
	}

	return decodeInto[[]JobCategory](body)
}

func (c *Client) ListHiringManagers(ctx context.Context, companyID int) ([]HiringManager, error) {

	body, err := c.get(ctx, fmt.Sprintf("/companies/%d/hiring-managers", companyID), nil)
	if err != nil {
		return nil, err
	}

	return decodeInto[[]HiringManager](body)
}
