package job

import (
	"time"

	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/common"
)

type Status string

const (
	StatusActive Status = "Active"
	StatusClosed Status = "Closed"
)

type Job struct {
	ID          common.UUID `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Company     string      `json:"company"`
	Location    string      `json:"location"`
	Salary      string      `json:"salary"`
	Status      Status      `json:"status"`
	PostedBy    common.UUID `json:"postedBy"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// WithPoster carries the poster's display name alongside the posting.
type WithPoster struct {
	Job
	PosterName string `json:"postedByName"`
}

// WithApplication annotates a listing entry with the caller's application, if any.
type WithApplication struct {
	WithPoster
	HasApplied        bool    `json:"hasApplied"`
	ApplicationStatus *string `json:"applicationStatus"`
}

// WithCount annotates an employer's posting with its application count.
type WithCount struct {
	WithPoster
	ApplicationCount int `json:"applicationCount"`
}

// Filter narrows public listings. Location and Company are case-insensitive
// substring matches; Search matches against title or description.
type Filter struct {
	Location string
	Company  string
	Search   string
}

// Update carries the mutable fields of a posting; nil means leave unchanged.
type Update struct {
	Title       *string
	Description *string
	Company     *string
	Location    *string
	Salary      *string
	Status      *Status
}
