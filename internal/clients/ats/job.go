package ats

import "time"

type JobStatus string

const (
	JobStatusOpen   JobStatus = "open"
	JobStatusPaused JobStatus = "paused"
	JobStatusClosed JobStatus = "closed"
)

type JobVisibility string

const (
	JobVisibilityPublic   JobVisibility = "public"
	JobVisibilityInternal JobVisibility = "internal"
)

type Job struct {
	ID              int           `json:"id"`
	CompanyID       int           `json:"companyId"`
	Title           string        `json:"title"`
	Category        string        `json:"category"`
	PayRate         string        `json:"payRate"`
	City            string        `json:"city"`
	StateProvince   string        `json:"stateProvince"`
	Country         string        `json:"country"`
	IsRemote        bool          `json:"isRemote"`
	Description     string        `json:"description"`
	Status          JobStatus     `json:"status"`
	Visibility      JobVisibility `json:"visibility"`
	HiringManagerID int           `json:"hiringManagerId"`
	ApplicantCount  int           `json:"applicantCount"`
	CreatedAt       time.Time     `json:"createdAt"`
}

type CreateJobRequest struct {
	Title           string   `json:"title"`
	Category        string   `json:"category"`
	PayRate         string   `json:"payRate"`
	City            string   `json:"city"`
	StateProvince   string   `json:"stateProvince"`
	Country         string   `json:"country"`
	IsRemote        bool     `json:"isRemote"`
	Description     string   `json:"description"`
	EmploymentTypes []string `json:"employmentTypes"`
	HiringManagerID int      `json:"hiringManagerId"`
}

type JobCategory struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type HiringManager struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// PageInfo accompanies every listing response.
type PageInfo struct {
	TotalPages int `json:"totalPages"`
	TotalCount int `json:"totalCount"`
}
