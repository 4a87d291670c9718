package pages

import (
	"context"
	"fmt"
	"sync"

	"github.com/asaskevich/EventBus"
	"github.com/carehive/ats-admin/internal/clients/ats"
	"github.com/carehive/ats-admin/internal/events"
	"github.com/carehive/ats-admin/internal/logger"
	"github.com/carehive/ats-admin/internal/notify"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type jobsAPI interface {
	ListJobs(ctx context.Context, companyID int, filters ats.ListFilters) ([]ats.Job, ats.PageInfo, error)
	UpdateJobStatus(ctx context.Context, jobID int, status ats.JobStatus) error
	UpdateJobVisibility(ctx context.Context, jobID int, visibility ats.JobVisibility) error
}

// JobsPage drives the jobs listing. A failed fetch leaves the current rows
// and filters untouched and only raises an error banner.
type JobsPage struct {
	api           jobsAPI
	notifications *notify.Channel
	companyID     int

	mu      sync.Mutex
	filters ats.ListFilters
	listing listing[ats.Job]
}

func NewJobsPage(api jobsAPI, notifications *notify.Channel, bus EventBus.Bus, companyID int) (*JobsPage, error) {

	if api == nil {
		return nil, errors.New("api client is nil")
	}

	if notifications == nil {
		return nil, errors.New("notification channel is nil")
	}

	p := &JobsPage{
		api:           api,
		notifications: notifications,
		companyID:     companyID,
	}

	if bus != nil {
		err := bus.Subscribe(events.JobCreatedTopic, func(event events.JobCreated) {
			if event.CompanyID == p.companyID {
				_ = p.Refresh(context.Background())
			}
		})
		if err != nil {
			return nil, err
		}
	}

	return p, nil
}

func (p *JobsPage) Jobs() ([]ats.Job, ats.PageInfo) {
	return p.listing.snapshot()
}

func (p *JobsPage) Filters() ats.ListFilters {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.filters
}

func (p *JobsPage) Refresh(ctx context.Context) error {

	p.mu.Lock()
	filters := p.filters
	p.mu.Unlock()

	seq := p.listing.begin()

	jobs, pageInfo, err := p.api.ListJobs(ctx, p.companyID, filters)
	if err != nil {
		p.fail("Error fetching jobs", err)
		return err
	}

	p.listing.commit(seq, jobs, pageInfo)
	return nil
}

// SetFilters validates, stores and applies a new filter set. Invalid filters
// are rejected before anything changes.
func (p *JobsPage) SetFilters(ctx context.Context, filters ats.ListFilters) error {

	if err := filters.Validate(); err != nil {
		return err
	}

	p.mu.Lock()
	p.filters = filters
	p.mu.Unlock()

	return p.Refresh(ctx)
}

func (p *JobsPage) ClearFilters(ctx context.Context) error {
	return p.SetFilters(ctx, ats.ListFilters{})
}

func (p *JobsPage) UpdateStatus(ctx context.Context, jobID int, status ats.JobStatus) error {

	if err := p.api.UpdateJobStatus(ctx, jobID, status); err != nil {
		p.fail("Error updating job status", err)
		return err
	}
	return p.Refresh(ctx)
}

func (p *JobsPage) UpdateVisibility(ctx context.Context, jobID int, visibility ats.JobVisibility) error {

	if err := p.api.UpdateJobVisibility(ctx, jobID, visibility); err != nil {
		p.fail("Error updating job visibility", err)
		return err
	}
	return p.Refresh(ctx)
}

func (p *JobsPage) fail(prefix string, err error) {
	log.WithField(logger.ErrorTypeField, logger.ErrorTypeAtsApi).
		Errorf("%s: %v", prefix, err)
	p.notifications.Set(notify.SlotError, fmt.Sprintf("%s: %s", prefix, errorMessage(err)))
}
