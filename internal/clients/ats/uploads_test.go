package ats

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func someDate(t *testing.T) time.Time {
	t.Helper()
	return time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
}

func Test_UploadResume_WhenWrongExtension_ShouldFailWithoutNetworkCall(t *testing.T) {

	assert := assert.New(t)

	mockClient := &mockHTTPClient{}
	client := newTestClient(&staticTokens{token: "tok"}, mockClient)

	_, err := client.UploadResume(context.Background(), 1, "resume.exe", strings.NewReader("nope"))
	assert.Error(err)
	assert.Contains(err.Error(), "resume must be a .pdf or .docx file")

	_, err = client.UploadScreeningCSV(context.Background(), 1, "import.xlsx", strings.NewReader("nope"))
	assert.Error(err)
	assert.Contains(err.Error(), ".csv")

	mockClient.AssertNotCalled(t, "Do", mock.Anything)
}

func Test_UploadResume_ShouldSendMultipartRequest(t *testing.T) {

	assert := assert.New(t)

	mockClient := &mockHTTPClient{}
	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		if req.URL.String() != "https://api.example.com/applicants/7/documents/resume" {
			return false
		}
		if !strings.HasPrefix(req.Header.Get("Content-Type"), "multipart/form-data") {
			return false
		}
		body, _ := io.ReadAll(req.Body)
		return strings.Contains(string(body), `filename="resume.pdf"`) &&
			strings.Contains(string(body), "resume bytes")
	})).Return(jsonResponse(200, `{"id": 11, "applicantId": 7, "kind": "resume", "fileName": "resume.pdf"}`), nil)

	client := newTestClient(&staticTokens{token: "tok"}, mockClient)

	document, err := client.UploadResume(context.Background(), 7, "resume.pdf", strings.NewReader("resume bytes"))
	assert.NoError(err)
	assert.Equal(11, document.ID)
	assert.Equal(DocumentResume, document.Kind)
}

func Test_UploadExtensions_AreCaseInsensitive(t *testing.T) {

	mockClient := &mockHTTPClient{}
	mockClient.On("Do", mock.Anything).Return(jsonResponse(200, `{"id": 1}`), nil)

	client := newTestClient(&staticTokens{token: "tok"}, mockClient)

	_, err := client.UploadCoverLetter(context.Background(), 7, "Letter.DOCX", strings.NewReader("hello"))
	assert.NoError(t, err)
}
