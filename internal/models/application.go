package models

// ApplicationRequest is the wire shape of a job-application submission.
// Resume content travels base64-encoded; recaptchaToken is accepted but
// verification is not wired up yet.
type ApplicationRequest struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	Position          string `json:"position"`
	ResumeData        string `json:"resumeData,omitempty"`
	ResumeFileName    string `json:"resumeFileName,omitempty"`
	ResumeContentType string `json:"resumeContentType,omitempty"`
	RecaptchaToken    string `json:"recaptchaToken,omitempty"`
}

// Application is a submission after sanitization, scoped to one request.
type Application struct {
	Name     string
	Email    string
	Position string
	Origin   string
}
