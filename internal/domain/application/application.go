package application

import (
	"time"

	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/common"
)

type Status string

const (
	StatusApplied   Status = "Applied"
	StatusInterview Status = "Interview"
	StatusRejected  Status = "Rejected"
	StatusAccepted  Status = "Accepted"
)

func IsKnownStatus(status Status) bool {
	switch status {
	case StatusApplied, StatusInterview, StatusRejected, StatusAccepted:
		return true
	default:
		return false
	}
}

type Application struct {
	ID                common.UUID `json:"id"`
	JobID             common.UUID `json:"jobId"`
	ApplicantID       common.UUID `json:"applicantId"`
	ResumeURL         string      `json:"resumeUrl"`
	ResumeName        string      `json:"resumeName,omitempty"`
	CoverLetter       string      `json:"coverLetter,omitempty"`
	Email             string      `json:"email"`
	Phone             string      `json:"phone"`
	Status            Status      `json:"status"`
	InterviewDate     *time.Time  `json:"interviewDate,omitempty"`
	InterviewTime     string      `json:"interviewTime,omitempty"`
	InterviewLocation string      `json:"interviewLocation,omitempty"`
	AppliedAt         time.Time   `json:"appliedAt"`
	UpdatedAt         time.Time   `json:"updatedAt"`
}

// JobSummary is the slice of the parent posting joined into listings.
type JobSummary struct {
	ID       common.UUID `json:"id"`
	Title    string      `json:"title"`
	Company  string      `json:"company"`
	Location string      `json:"location"`
}

// ApplicantSummary is the slice of the applying user joined into listings.
type ApplicantSummary struct {
	ID    common.UUID `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
}

type WithJob struct {
	Application
	Job JobSummary `json:"job"`
}

type WithApplicant struct {
	Application
	Applicant ApplicantSummary `json:"applicant"`
}

// Detailed joins both sides, for employer and admin listings.
type Detailed struct {
	Application
	Job       JobSummary       `json:"job"`
	Applicant ApplicantSummary `json:"applicant"`
}
