package wizard

import (
	"context"
	"strings"

	"github.com/asaskevich/EventBus"
	"github.com/carehive/ats-admin/internal/clients/ats"
	"github.com/carehive/ats-admin/internal/drafts"
	"github.com/carehive/ats-admin/internal/events"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

type Step int

const (
	StepDetails Step = iota
	StepDescription
	StepPreview
)

func (s Step) String() string {
	switch s {
	case StepDetails:
		return "details"
	case StepDescription:
		return "description"
	case StepPreview:
		return "preview"
	default:
		return "unknown"
	}
}

var (
	ErrStepIncomplete = errors.New("current step is not complete")
	ErrNotAtPreview   = errors.New("submit is only available from the preview step")
)

type jobCreator interface {
	CreateJob(ctx context.Context, companyID int, request ats.CreateJobRequest) (ats.Job, error)
}

// Details is what the first wizard step collects.
type Details struct {
	Title           string
	Category        string
	PayRate         string
	City            string
	StateProvince   string
	Country         string
	IsRemote        bool
	EmploymentTypes []string
	HiringManagerID int
}

// Wizard is the linear Details -> Description -> Preview flow. Each forward
// move is gated on the current step being minimally complete; moving back is
// always allowed. Every mutation persists the draft so a restart resumes it.
type Wizard struct {
	drafts    *drafts.Store
	jobs      jobCreator
	bus       EventBus.Bus
	companyID int
	step      Step
	draft     drafts.JobDraft
}

func New(ctx context.Context, draftStore *drafts.Store, jobs jobCreator, bus EventBus.Bus, companyID int) (*Wizard, error) {

	if draftStore == nil {
		return nil, errors.New("draft store is nil")
	}

	if jobs == nil {
		return nil, errors.New("job creator is nil")
	}

	if bus == nil {
		return nil, errors.New("bus is nil")
	}

	draft, err := draftStore.Load(ctx)
	if err != nil {
		return nil, err
	}

	return &Wizard{
		drafts:    draftStore,
		jobs:      jobs,
		bus:       bus,
		companyID: companyID,
		draft:     draft,
	}, nil
}

func (w *Wizard) Step() Step {
	return w.step
}

func (w *Wizard) Draft() drafts.JobDraft {
	return w.draft
}

func (w *Wizard) SetDetails(ctx context.Context, details Details) error {

	w.draft.Title = strings.TrimSpace(details.Title)
	w.draft.Category = details.Category
	w.draft.PayRate = details.PayRate
	w.draft.City = details.City
	w.draft.StateProvince = details.StateProvince
	w.draft.Country = details.Country
	w.draft.IsRemote = details.IsRemote
	w.draft.EmploymentTypes = lo.Uniq(lo.Map(details.EmploymentTypes, func(item string, _ int) string {
		return strings.TrimSpace(item)
	}))
	w.draft.HiringManagerID = details.HiringManagerID

	return w.drafts.Save(ctx, w.draft)
}

func (w *Wizard) SetDescription(ctx context.Context, description string) error {
	w.draft.Description = description
	return w.drafts.Save(ctx, w.draft)
}

// Next advances to the following step when the current one is complete.
func (w *Wizard) Next() error {

	if w.step >= StepPreview {
		return nil
	}

	if !w.stepComplete(w.step) {
		return ErrStepIncomplete
	}

	w.step++
	return nil
}

// Back always succeeds; earlier steps stay editable.
func (w *Wizard) Back() {
	if w.step > StepDetails {
		w.step--
	}
}

// Submit creates the job from the full draft, then resets the flow to the
// initial record.
func (w *Wizard) Submit(ctx context.Context) (ats.Job, error) {

	if w.step != StepPreview {
		return ats.Job{}, ErrNotAtPreview
	}

	if !w.stepComplete(StepDetails) || !w.stepComplete(StepDescription) {
		return ats.Job{}, ErrStepIncomplete
	}

	job, err := w.jobs.CreateJob(ctx, w.companyID, w.toCreateRequest())
	if err != nil {
		return ats.Job{}, err
	}

	if err = w.reset(ctx); err != nil {
		return job, err
	}

	w.bus.Publish(events.JobCreatedTopic, events.JobCreated{
		JobID:     job.ID,
		CompanyID: w.companyID,
		Title:     job.Title,
	})
	return job, nil
}

// Cancel abandons the flow and clears the persisted draft.
func (w *Wizard) Cancel(ctx context.Context) error {
	return w.reset(ctx)
}

func (w *Wizard) reset(ctx context.Context) error {
	w.step = StepDetails
	w.draft = drafts.DefaultDraft()
	return w.drafts.Reset(ctx)
}

func (w *Wizard) stepComplete(step Step) bool {
	switch step {
	case StepDetails:
		return w.draft.Title != "" && w.draft.Category != ""
	case StepDescription:
		return w.draft.Description != ""
	default:
		return true
	}
}

func (w *Wizard) toCreateRequest() ats.CreateJobRequest {
	return ats.CreateJobRequest{
		Title:           w.draft.Title,
		Category:        w.draft.Category,
		PayRate:         w.draft.PayRate,
		City:            w.draft.City,
		StateProvince:   w.draft.StateProvince,
		Country:         w.draft.Country,
		IsRemote:        w.draft.IsRemote,
		Description:     w.draft.Description,
		EmploymentTypes: w.draft.EmploymentTypes,
		HiringManagerID: w.draft.HiringManagerID,
	}
}
