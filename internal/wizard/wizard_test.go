package wizard

import (
	"context"
	"testing"

	"github.com/asaskevich/EventBus"
	"github.com/carehive/ats-admin/internal/clients/ats"
	"github.com/carehive/ats-admin/internal/drafts"
	"github.com/carehive/ats-admin/internal/events"
	"github.com/stretchr/testify/assert"
	testifyassert "github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockStateRepo struct {
	entries map[string][]byte
}

func newMockStateRepo() *mockStateRepo {
	return &mockStateRepo{entries: map[string][]byte{}}
}

func (m *mockStateRepo) Save(_ context.Context, id string, data []byte) error {
	m.entries[id] = data
	return nil
}

func (m *mockStateRepo) Load(_ context.Context, id string) ([]byte, error) {
	return m.entries[id], nil
}

func (m *mockStateRepo) Remove(_ context.Context, id string) error {
	delete(m.entries, id)
	return nil
}

type mockJobCreator struct {
	mock.Mock
}

func (m *mockJobCreator) CreateJob(ctx context.Context, companyID int, request ats.CreateJobRequest) (ats.Job, error) {
	args := m.Called(ctx, companyID, request)
	return args.Get(0).(ats.Job), args.Error(1)
}

func newTestWizard(t *testing.T, state *mockStateRepo, jobs jobCreator) *Wizard {

	w, err := New(context.Background(), drafts.NewStore(state), jobs, EventBus.New(), 7)
	assert.NoError(t, err)
	return w
}

func validDetails() Details {
	return Details{
		Title:           "Night shift caregiver",
		Category:        "Senior Care",
		PayRate:         "24/hr",
		City:            "Austin",
		StateProvince:   "TX",
		Country:         "United States",
		EmploymentTypes: []string{"full-time", " full-time ", "part-time"},
		HiringManagerID: 3,
	}
}

func Test_Wizard_WhenDetailsIncomplete_ShouldNotAdvance(t *testing.T) {

	assert := assert.New(t)
	w := newTestWizard(t, newMockStateRepo(), &mockJobCreator{})

	assert.ErrorIs(w.Next(), ErrStepIncomplete)

	assert.NoError(w.SetDetails(context.Background(), Details{Title: "No category yet"}))
	assert.ErrorIs(w.Next(), ErrStepIncomplete)
	assert.Equal(StepDetails, w.Step())
}

func Test_Wizard_WhenStepsComplete_ShouldAdvanceAndAllowBack(t *testing.T) {

	assert := assert.New(t)
	ctx := context.Background()
	w := newTestWizard(t, newMockStateRepo(), &mockJobCreator{})

	assert.NoError(w.SetDetails(ctx, validDetails()))
	assert.NoError(w.Next())
	assert.Equal(StepDescription, w.Step())

	assert.ErrorIs(w.Next(), ErrStepIncomplete)

	assert.NoError(w.SetDescription(ctx, "<p>Overnight care for two clients.</p>"))
	assert.NoError(w.Next())
	assert.Equal(StepPreview, w.Step())

	w.Back()
	assert.Equal(StepDescription, w.Step())
	w.Back()
	w.Back() // already at the first step
	assert.Equal(StepDetails, w.Step())
}

func Test_Wizard_SetDetails_ShouldNormalizeEmploymentTypes(t *testing.T) {

	assert := assert.New(t)
	w := newTestWizard(t, newMockStateRepo(), &mockJobCreator{})

	assert.NoError(w.SetDetails(context.Background(), validDetails()))
	assert.Equal([]string{"full-time", "part-time"}, w.Draft().EmploymentTypes)
}

func Test_Wizard_Draft_ShouldSurviveRestartWithinWindow(t *testing.T) {

	assert := assert.New(t)
	ctx := context.Background()
	state := newMockStateRepo()

	w := newTestWizard(t, state, &mockJobCreator{})
	assert.NoError(w.SetDetails(ctx, validDetails()))
	assert.NoError(w.SetDescription(ctx, "Partially written"))

	restarted := newTestWizard(t, state, &mockJobCreator{})
	assert.Equal("Night shift caregiver", restarted.Draft().Title)
	assert.Equal("Partially written", restarted.Draft().Description)
}

func Test_Wizard_Cancel_ShouldResetDraftToDefaults(t *testing.T) {

	assert := assert.New(t)
	ctx := context.Background()
	state := newMockStateRepo()

	w := newTestWizard(t, state, &mockJobCreator{})
	assert.NoError(w.SetDetails(ctx, validDetails()))
	assert.NoError(w.Next())
	assert.NoError(w.Cancel(ctx))

	assert.Equal(StepDetails, w.Step())
	assert.Equal(drafts.DefaultDraft(), w.Draft())

	restarted := newTestWizard(t, state, &mockJobCreator{})
	assert.Equal("", restarted.Draft().Title)
	assert.True(restarted.Draft().IsRemote)
	assert.Equal("United States", restarted.Draft().Country)
}

func Test_Wizard_Submit_BeforePreview_ShouldFail(t *testing.T) {

	assert := assert.New(t)
	jobs := &mockJobCreator{}
	w := newTestWizard(t, newMockStateRepo(), jobs)

	_, err := w.Submit(context.Background())
	assert.ErrorIs(err, ErrNotAtPreview)
	jobs.AssertNotCalled(t, "CreateJob")
}

func Test_Wizard_Submit_ShouldCreateJobAndReset(t *testing.T) {

	assert := assert.New(t)
	ctx := context.Background()
	state := newMockStateRepo()
	jobs := &mockJobCreator{}

	bus := EventBus.New()
	created := make([]events.JobCreated, 0)
	err := bus.Subscribe(events.JobCreatedTopic, func(event events.JobCreated) {
		created = append(created, event)
	})
	assert.NoError(err)

	w, err := New(ctx, drafts.NewStore(state), jobs, bus, 7)
	assert.NoError(err)

	assert.NoError(w.SetDetails(ctx, validDetails()))
	assert.NoError(w.Next())
	assert.NoError(w.SetDescription(ctx, "Overnight care"))
	assert.NoError(w.Next())

	jobs.On("CreateJob", ctx, 7, mock.MatchedBy(func(req ats.CreateJobRequest) bool {
		return req.Title == "Night shift caregiver" && req.Category == "Senior Care"
	})).Return(ats.Job{ID: 42, Title: "Night shift caregiver"}, nil)

	job, err := w.Submit(ctx)
	assert.NoError(err)
	assert.Equal(42, job.ID)

	assert.Equal(StepDetails, w.Step())
	assert.Equal(drafts.DefaultDraft(), w.Draft())

	assert.Len(created, 1)
	assert.Equal(42, created[0].JobID)
	assert.Equal(7, created[0].CompanyID)
	jobs.AssertExpectations(t)
}

func Test_Wizard_Submit_WhenCreateFails_ShouldKeepDraft(t *testing.T) {

	assert := assert.New(t)
	ctx := context.Background()
	state := newMockStateRepo()
	jobs := &mockJobCreator{}

	w := newTestWizard(t, state, jobs)
	assert.NoError(w.SetDetails(ctx, validDetails()))
	assert.NoError(w.Next())
	assert.NoError(w.SetDescription(ctx, "Overnight care"))
	assert.NoError(w.Next())

	jobs.On("CreateJob", mock.Anything, mock.Anything, mock.Anything).
		Return(ats.Job{}, testifyassert.AnError)

	_, err := w.Submit(ctx)
	assert.Error(err)
	assert.Equal(StepPreview, w.Step())
	assert.Equal("Night shift caregiver", w.Draft().Title)
}
