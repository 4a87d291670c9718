package ats

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"slices"
	"strings"
)

var (
	resumeExtensions        = []string{".pdf", ".docx"}
	coverLetterExtensions   = []string{".pdf", ".docx"}
	qualificationExtensions = []string{".pdf", ".docx", ".jpg", ".png"}
	screeningExtensions     = []string{".csv"}
)

// validateExtension runs before any network traffic: a rejected file never
// leaves the client.
func validateExtension(kind string, filename string, allowed []string) error {

	ext := strings.ToLower(filepath.Ext(filename))
	if slices.Contains(allowed, ext) {
		return nil
	}
	return fmt.Errorf("%s must be a %s file", kind, strings.Join(allowed, " or "))
}

func (c *Client) UploadResume(ctx context.Context, applicantID int, filename string, file io.Reader) (Document, error) {

	if err := validateExtension("resume", filename, resumeExtensions); err != nil {
		return Document{}, err
	}

	return c.uploadDocument(ctx, fmt.Sprintf("/applicants/%d/documents/resume", applicantID), filename, file)
}

func (c *Client) UploadCoverLetter(ctx context.Context, applicantID int, filename string, file io.Reader) (Document, error) {

	if err := validateExtension("cover letter", filename, coverLetterExtensions); err != nil {
		return Document{}, err
	}

	return c.uploadDocument(ctx, fmt.Sprintf("/applicants/%d/documents/cover-letter", applicantID), filename, file)
}

func (c *Client) UploadQualificationDocument(ctx context.Context, applicantID int, filename string, file io.Reader) (Document, error) {

	if err := validateExtension("qualification document", filename, qualificationExtensions); err != nil {
		return Document{}, err
	}

	return c.uploadDocument(ctx, fmt.Sprintf("/applicants/%d/documents/qualification", applicantID), filename, file)
}

// UploadScreeningCSV imports screening applicants in bulk; parsing semantics
// live server-side, the client only ships the file.
func (c *Client) UploadScreeningCSV(ctx context.Context, jobID int, filename string, file io.Reader) (ScreeningImportResult, error) {

	if err := validateExtension("screening import", filename, screeningExtensions); err != nil {
		return ScreeningImportResult{}, err
	}

	body, err := c.uploadFile(ctx, fmt.Sprintf("/jobs/%d/screenings/csv", jobID), filename, file)
	if err != nil {
		return ScreeningImportResult{}, err
	}

	return decodeInto[ScreeningImportResult](body)
}

func (c *Client) uploadDocument(ctx context.Context, path string, filename string, file io.Reader) (Document, error) {

	body, err := c.uploadFile(ctx, path, filename, file)
	if err != nil {
		return Document{}, err
	}

	return decodeInto[Document](body)
}

func (c *Client) uploadFile(ctx context.Context, path string, filename string, file io.Reader) ([]byte, error) {

	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)

	part, err := writer.CreateFormFile("file", filepath.Base(filename))
	if err != nil {
		return nil, fmt.Errorf("error creating multipart body: %w", err)
	}

	if _, err = io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}

	if err = writer.Close(); err != nil {
		return nil, fmt.Errorf("error finalizing multipart body: %w", err)
	}

	return c.sendRequest(ctx, http.MethodPost, c.baseURL+path, writer.FormDataContentType(), buf)
}
