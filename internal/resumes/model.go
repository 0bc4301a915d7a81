package resumes

import "time"

// Resume is one rewrite attempt. Records are insert-only; a user accumulates
// one per submission.
type Resume struct {
	ID          string
	UserID      string
	Filename    string
	JobTitle    string
	ResumeText  string
	Score       string
	CreatedDate string
	CreatedAt   time.Time
}

// Summary is the listing projection returned by get_resume_details.
type Summary struct {
	Filename    string `json:"filename"`
	ResumeID    string `json:"resume_id"`
	JobTitle    string `json:"job_title"`
	CreatedDate string `json:"created_date"`
}

// Summarize projects a Resume into its listing shape.
func Summarize(r Resume) Summary {
	return Summary{
		Filename:    r.Filename,
		ResumeID:    r.ID,
		JobTitle:    r.JobTitle,
		CreatedDate: r.CreatedDate,
	}
}
