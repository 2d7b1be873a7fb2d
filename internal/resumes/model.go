package resumes

import "time"

// Resume is a stored resume owned by a user. ResumeText holds the plain
// text used for analysis; StorageKey points at the uploaded file when the
// resume came in through the upload endpoint.
type Resume struct {
	ID             string
	UserID         string
	Title          string
	ResumeText     string
	TargetRole     string
	JobDescription string
	StorageKey     string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
