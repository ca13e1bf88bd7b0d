package proto

// JobFields are the mutable columns of a job record. UpdateJob sends them as
// the partial record; identity and date_applied never travel in an update.
type JobFields struct {
	Company        string `json:"company"`
	Role           string `json:"role"`
	Location       string `json:"location"`
	Salary         string `json:"salary"`
	Email          string `json:"email"`
	Description    string `json:"description"`
	Status         string `json:"status"`
	Origin         string `json:"origin,omitempty"`
	CoverLetter    string `json:"cover_letter,omitempty"`
	InterviewGuide string `json:"interview_guide,omitempty"`
}

type Job struct {
	ID          string `json:"id"`
	DateApplied string `json:"date_applied"`
	JobFields
}

type CreateJobRequest struct {
	DateApplied string    `json:"date_applied"`
	Fields      JobFields `json:"fields"`
}

type CreateJobResponse struct {
	ID string `json:"id"`
}

type UpdateJobRequest struct {
	ID     string    `json:"id"`
	Fields JobFields `json:"fields"`
}

type UpdateJobResponse struct{}

type DeleteJobRequest struct {
	ID string `json:"id"`
}

type DeleteJobResponse struct{}

type ListJobsRequest struct{}

type ListJobsResponse struct {
	Jobs []*Job `json:"jobs"`
}

type ResumeEntry struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Company string `json:"company"`
	Date    string `json:"date"`
	Details string `json:"details"`
}

type ResumeProject struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Technologies string `json:"technologies"`
	Link         string `json:"link"`
	Description  string `json:"description"`
}

type Resume struct {
	FullName   string          `json:"full_name"`
	Email      string          `json:"email"`
	Phone      string          `json:"phone"`
	Summary    string          `json:"summary"`
	Skills     string          `json:"skills"`
	Experience []ResumeEntry   `json:"experience"`
	Education  []ResumeEntry   `json:"education"`
	Projects   []ResumeProject `json:"projects"`
	Avatar     string          `json:"avatar,omitempty"`
}

type GetResumeRequest struct{}

type GetResumeResponse struct {
	Resume *Resume `json:"resume,omitempty"`
	Found  bool    `json:"found"`
}

type SaveResumeRequest struct {
	Resume *Resume `json:"resume"`
}

type SaveResumeResponse struct{}

type GetAvatarUploadUrlRequest struct {
	Digest      string `json:"digest"`
	ContentType string `json:"content_type"`
}

type GetAvatarUploadUrlResponse struct {
	Key string `json:"key"`
	Url string `json:"url"`
}

type GetAvatarUrlRequest struct {
	Key string `json:"key"`
}

type GetAvatarUrlResponse struct {
	Url string `json:"url"`
}

type PingRequest struct{}

type PingResponse struct {
	Status string `json:"status"`
}
