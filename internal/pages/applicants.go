package pages

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/carehive/ats-admin/internal/clients/ats"
	"github.com/carehive/ats-admin/internal/logger"
	"github.com/carehive/ats-admin/internal/notify"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type applicantsAPI interface {
	ListApplicants(ctx context.Context, jobID int, stage ats.Stage, filters ats.ListFilters) ([]ats.Applicant, ats.PageInfo, error)
	RateApplicant(ctx context.Context, applicantID int, rating int) error
	AddComment(ctx context.Context, applicantID int, text string) (ats.Comment, error)
	SendHireLetter(ctx context.Context, applicantID int, letter ats.HireLetter) error
	UploadScreeningCSV(ctx context.Context, jobID int, filename string, file io.Reader) (ats.ScreeningImportResult, error)
}

// ApplicantsPage drives one stage tab of a job's applicant pipeline. Actions
// that change an applicant re-fetch the listing on success so the rows always
// reflect the server.
type ApplicantsPage struct {
	api           applicantsAPI
	notifications *notify.Channel
	companyID     int
	jobID         int
	stage         ats.Stage

	mu      sync.Mutex
	filters ats.ListFilters
	listing listing[ats.Applicant]
}

func NewApplicantsPage(api applicantsAPI, notifications *notify.Channel, companyID, jobID int, stage ats.Stage) (*ApplicantsPage, error) {

	if api == nil {
		return nil, errors.New("api client is nil")
	}

	if notifications == nil {
		return nil, errors.New("notification channel is nil")
	}

	return &ApplicantsPage{
		api:           api,
		notifications: notifications,
		companyID:     companyID,
		jobID:         jobID,
		stage:         stage,
	}, nil
}

func (p *ApplicantsPage) Applicants() ([]ats.Applicant, ats.PageInfo) {
	return p.listing.snapshot()
}

func (p *ApplicantsPage) Refresh(ctx context.Context) error {

	p.mu.Lock()
	filters := p.filters
	p.mu.Unlock()

	seq := p.listing.begin()

	applicants, pageInfo, err := p.api.ListApplicants(ctx, p.jobID, p.stage, filters)
	if err != nil {
		p.fail(fmt.Sprintf("Error fetching %s applicants", p.stage), err)
		return err
	}

	p.listing.commit(seq, applicants, pageInfo)
	return nil
}

func (p *ApplicantsPage) SetFilters(ctx context.Context, filters ats.ListFilters) error {

	if err := filters.Validate(); err != nil {
		return err
	}

	p.mu.Lock()
	p.filters = filters
	p.mu.Unlock()

	return p.Refresh(ctx)
}

func (p *ApplicantsPage) ClearFilters(ctx context.Context) error {
	return p.SetFilters(ctx, ats.ListFilters{})
}

func (p *ApplicantsPage) Rate(ctx context.Context, applicantID int, rating int) error {

	if err := p.api.RateApplicant(ctx, applicantID, rating); err != nil {
		p.fail("Error rating applicant", err)
		return err
	}
	return p.Refresh(ctx)
}

func (p *ApplicantsPage) AddComment(ctx context.Context, applicantID int, text string) error {

	if _, err := p.api.AddComment(ctx, applicantID, text); err != nil {
		p.fail("Error adding comment", err)
		return err
	}
	return p.Refresh(ctx)
}

// Hire sends the hire letter and posts a success banner tied to the company
// and applicant, so it stays visible until explicitly cleared.
func (p *ApplicantsPage) Hire(ctx context.Context, applicantID int, letter ats.HireLetter) error {

	if err := p.api.SendHireLetter(ctx, applicantID, letter); err != nil {
		p.fail("Error sending hire letter", err)
		return err
	}

	p.notifications.Set(notify.SlotSuccess, "Hire letter sent",
		notify.WithRelatedIDs(p.companyID, applicantID))
	return p.Refresh(ctx)
}

// ImportCSV bulk-imports screening applicants for the page's job. The file
// extension is rejected client-side before any network traffic.
func (p *ApplicantsPage) ImportCSV(ctx context.Context, filename string, file io.Reader) (ats.ScreeningImportResult, error) {

	result, err := p.api.UploadScreeningCSV(ctx, p.jobID, filename, file)
	if err != nil {
		p.fail("Error importing screening applicants", err)
		return ats.ScreeningImportResult{}, err
	}

	p.notifications.Set(notify.SlotSuccess,
		fmt.Sprintf("Imported %d applicants, skipped %d", result.Imported, result.Skipped))
	return result, p.Refresh(ctx)
}

func (p *ApplicantsPage) fail(prefix string, err error) {
	log.WithField(logger.ErrorTypeField, logger.ErrorTypeAtsApi).
		Errorf("%s: %v", prefix, err)
	p.notifications.Set(notify.SlotError, fmt.Sprintf("%s: %s", prefix, errorMessage(err)))
}
