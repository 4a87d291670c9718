package ats

import "time"

// Stage is the pipeline position an applicant listing is scoped to.
type Stage string

const (
	StageScreening  Stage = "screening"
	StageCandidates Stage = "candidates"
	StageHires      Stage = "hires"
	StageDeclined   Stage = "declined"
	StageOnboarding Stage = "onboarding"
)

type Applicant struct {
	ID        int       `json:"id"`
	JobID     int       `json:"jobId"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Stage     Stage     `json:"stage"`
	Rating    int       `json:"rating"`
	AppliedAt time.Time `json:"appliedAt"`
}

type Comment struct {
	ID          int       `json:"id"`
	ApplicantID int       `json:"applicantId"`
	AuthorID    int       `json:"authorId"`
	Text        string    `json:"text"`
	CreatedAt   time.Time `json:"createdAt"`
}

type DocumentKind string

const (
	DocumentResume        DocumentKind = "resume"
	DocumentCoverLetter   DocumentKind = "coverLetter"
	DocumentQualification DocumentKind = "qualification"
)

type Document struct {
	ID          int          `json:"id"`
	ApplicantID int          `json:"applicantId"`
	Kind        DocumentKind `json:"kind"`
	FileName    string       `json:"fileName"`
	URL         string       `json:"url"`
}

type HireLetter struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type ScreeningImportResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}
