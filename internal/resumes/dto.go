package resumes

import "time"

type createRequest struct {
	Title          string `json:"title" binding:"required"`
	ResumeText     string `json:"resume_text" binding:"required"`
	TargetRole     string `json:"target_role"`
	JobDescription string `json:"job_description"`
}

type updateRequest struct {
	Title          string `json:"title" binding:"required"`
	ResumeText     string `json:"resume_text" binding:"required"`
	TargetRole     string `json:"target_role"`
	JobDescription string `json:"job_description"`
}

// ResumeResponse is the outward-facing representation of a resume.
type ResumeResponse struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	ResumeText     string    `json:"resume_text"`
	TargetRole     string    `json:"target_role,omitempty"`
	JobDescription string    `json:"job_description,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func toResponse(r Resume) ResumeResponse {
	return ResumeResponse{
		ID:             r.ID,
		Title:          r.Title,
		ResumeText:     r.ResumeText,
		TargetRole:     r.TargetRole,
		JobDescription: r.JobDescription,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}
