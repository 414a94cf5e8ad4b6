// Package types holds the shared data structures passed between the
// ingestion, scoring, and storage layers.
package types

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Job is a normalized job posting. The scoring core only reads these fields;
// the store owns times_seen and the notification flags.
type Job struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location"`
	Description string     `json:"description"`
	URL         string     `json:"url"`
	Source      string     `json:"source"`
	SalaryMin   int        `json:"salary_min,omitempty"`
	SalaryMax   int        `json:"salary_max,omitempty"`
	Remote      bool       `json:"remote"`
	CreatedAt   time.Time  `json:"created_at"`
	TimesSeen   int        `json:"times_seen"`
	Notified    bool       `json:"notified"`
	DigestSent  bool       `json:"digest_sent"`
	NotifiedAt  *time.Time `json:"notified_at,omitempty"`
}

// AgeDays returns how many days ago the posting was first seen.
func (j *Job) AgeDays(now time.Time) float64 {
	if j.CreatedAt.IsZero() {
		return 0
	}
	return now.Sub(j.CreatedAt).Hours() / 24
}

// SearchText returns the combined text used for keyword and list matching.
func (j *Job) SearchText() string {
	return strings.ToLower(j.Title + "\n" + j.Description)
}
