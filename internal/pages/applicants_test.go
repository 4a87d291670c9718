package pages

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/carehive/ats-admin/internal/clients/ats"
	"github.com/carehive/ats-admin/internal/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockApplicantsAPI struct {
	mock.Mock
}

func (m *mockApplicantsAPI) ListApplicants(ctx context.Context, jobID int, stage ats.Stage, filters ats.ListFilters) ([]ats.Applicant, ats.PageInfo, error) {
	args := m.Called(ctx, jobID, stage, filters)
	applicants, _ := args.Get(0).([]ats.Applicant)
	return applicants, args.Get(1).(ats.PageInfo), args.Error(2)
}

func (m *mockApplicantsAPI) RateApplicant(ctx context.Context, applicantID int, rating int) error {
	args := m.Called(ctx, applicantID, rating)
	return args.Error(0)
}

func (m *mockApplicantsAPI) AddComment(ctx context.Context, applicantID int, text string) (ats.Comment, error) {
	args := m.Called(ctx, applicantID, text)
	return args.Get(0).(ats.Comment), args.Error(1)
}

func (m *mockApplicantsAPI) SendHireLetter(ctx context.Context, applicantID int, letter ats.HireLetter) error {
	args := m.Called(ctx, applicantID, letter)
	return args.Error(0)
}

func (m *mockApplicantsAPI) UploadScreeningCSV(ctx context.Context, jobID int, filename string, file io.Reader) (ats.ScreeningImportResult, error) {
	args := m.Called(ctx, jobID, filename, file)
	return args.Get(0).(ats.ScreeningImportResult), args.Error(1)
}

func newDeclinedPage(t *testing.T, api *mockApplicantsAPI, channel *notify.Channel) *ApplicantsPage {
	page, err := NewApplicantsPage(api, channel, 7, 12, ats.StageDeclined)
	assert.NoError(t, err)
	return page
}

func Test_ApplicantsPage_WhenFetchFails_ShouldWrapMessageWithStage(t *testing.T) {

	assert := assert.New(t)
	api := &mockApplicantsAPI{}
	channel := newTestChannel(t)
	page := newDeclinedPage(t, api, channel)

	api.On("ListApplicants", mock.Anything, 12, ats.StageDeclined, ats.ListFilters{}).
		Return(nil, ats.PageInfo{}, &ats.APIError{StatusCode: http.StatusForbidden, Message: "Forbidden"})

	assert.Error(page.Refresh(context.Background()))

	notification, ok := channel.Get(notify.SlotError)
	assert.True(ok)
	assert.Equal("Error fetching declined applicants: Forbidden", notification.Message)
}

func Test_ApplicantsPage_Rate_ShouldRefetchOnSuccess(t *testing.T) {

	assert := assert.New(t)
	api := &mockApplicantsAPI{}
	page := newDeclinedPage(t, api, newTestChannel(t))

	api.On("RateApplicant", mock.Anything, 3, 5).Return(nil)
	api.On("ListApplicants", mock.Anything, 12, ats.StageDeclined, ats.ListFilters{}).
		Return([]ats.Applicant{{ID: 3, Rating: 5}}, ats.PageInfo{TotalCount: 1}, nil)

	assert.NoError(page.Rate(context.Background(), 3, 5))

	applicants, _ := page.Applicants()
	assert.Len(applicants, 1)
	assert.Equal(5, applicants[0].Rating)
}

func Test_ApplicantsPage_Rate_WhenItFails_ShouldNotRefetch(t *testing.T) {

	assert := assert.New(t)
	api := &mockApplicantsAPI{}
	channel := newTestChannel(t)
	page := newDeclinedPage(t, api, channel)

	api.On("RateApplicant", mock.Anything, 3, 5).
		Return(&ats.APIError{StatusCode: http.StatusNotFound, Message: "Applicant not found"})

	assert.Error(page.Rate(context.Background(), 3, 5))
	api.AssertNotCalled(t, "ListApplicants")

	notification, ok := channel.Get(notify.SlotError)
	assert.True(ok)
	assert.Equal("Error rating applicant: Applicant not found", notification.Message)
}

func Test_ApplicantsPage_ImportCSV_ShouldRefetchAndPostSummary(t *testing.T) {

	assert := assert.New(t)
	api := &mockApplicantsAPI{}
	channel := newTestChannel(t)
	page, err := NewApplicantsPage(api, channel, 7, 12, ats.StageScreening)
	assert.NoError(err)

	file := strings.NewReader("first_name,last_name\nAnna,Lopez\n")
	api.On("UploadScreeningCSV", mock.Anything, 12, "applicants.csv", file).
		Return(ats.ScreeningImportResult{Imported: 1, Skipped: 0}, nil)
	api.On("ListApplicants", mock.Anything, 12, ats.StageScreening, ats.ListFilters{}).
		Return([]ats.Applicant{{ID: 9, FirstName: "Anna"}}, ats.PageInfo{TotalCount: 1}, nil)

	result, err := page.ImportCSV(context.Background(), "applicants.csv", file)
	assert.NoError(err)
	assert.Equal(1, result.Imported)

	notification, ok := channel.Get(notify.SlotSuccess)
	assert.True(ok)
	assert.Equal("Imported 1 applicants, skipped 0", notification.Message)
}

func Test_ApplicantsPage_Hire_ShouldPostPersistentSuccess(t *testing.T) {

	assert := assert.New(t)
	api := &mockApplicantsAPI{}
	channel := newTestChannel(t)
	page := newDeclinedPage(t, api, channel)

	letter := ats.HireLetter{Subject: "Welcome aboard", Body: "Start Monday."}
	api.On("SendHireLetter", mock.Anything, 3, letter).Return(nil)
	api.On("ListApplicants", mock.Anything, 12, ats.StageDeclined, ats.ListFilters{}).
		Return(nil, ats.PageInfo{}, nil)

	assert.NoError(page.Hire(context.Background(), 3, letter))

	notification, ok := channel.Get(notify.SlotSuccess)
	assert.True(ok)
	assert.Equal("Hire letter sent", notification.Message)
	assert.Equal(7, notification.CompanyID)
	assert.Equal(3, notification.ApplicantID)
}
