package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/strataworks/website-api/internal/models"
)

// RejectError marks a client-side failure whose reason is safe to return.
type RejectError struct {
	Reason string
}

func (e *RejectError) Error() string { return e.Reason }

// ErrRateLimited marks a submission denied by the per-email cap.
var ErrRateLimited = errors.New("too many submission attempts")

// Collaborator contracts of the submission pipeline. Each implementation is
// a stateless client safe to share across concurrent requests.
type (
	RateLimiter interface {
		CheckAndRecord(ctx context.Context, email, origin string) bool
	}
	AttachmentStore interface {
		Store(ctx context.Context, data []byte, filename, contentType, ownerEmail string) (string, error)
	}
	Notifier interface {
		Notify(ctx context.Context, app *models.Application, attachmentURL string) error
	}
)

// SubmissionService sequences a job application through validation, the
// rate-limit check, the optional resume upload, and notification dispatch.
// Any step's rejection short-circuits the pipeline. Side effects are not
// transactional: a notification failure after the rate-limit record and the
// upload committed leaves both in place. That is accepted best-effort
// semantics, not a bug to correct here.
type SubmissionService struct {
	limiter     RateLimiter
	attachments AttachmentStore
	notifier    Notifier
}

func NewSubmissionService(limiter RateLimiter, attachments AttachmentStore, notifier Notifier) *SubmissionService {
	return &SubmissionService{limiter: limiter, attachments: attachments, notifier: notifier}
}

// Submit runs the pipeline and returns the confirmation message on success.
// Failures map to the handler's taxonomy: *RejectError for 400,
// ErrRateLimited for 429, anything else for 500.
func (s *SubmissionService) Submit(ctx context.Context, req *models.ApplicationRequest, origin string) (string, error) {
	app := &models.Application{
		Name:     Sanitize(req.Name),
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Position: Sanitize(req.Position),
		Origin:   origin,
	}

	if app.Name == "" || app.Email == "" || app.Position == "" {
		return "", &RejectError{Reason: "Missing required fields"}
	}
	if n := len([]rune(app.Name)); n < 2 || n > 100 {
		return "", &RejectError{Reason: "Name must be between 2 and 100 characters"}
	}
	if !ValidateEmail(app.Email) {
		return "", &RejectError{Reason: "Invalid email format"}
	}

	// The challenge token is carried through but not verified against the
	// provider; verification is not wired up.
	if req.RecaptchaToken != "" {
		log.Printf("apply: challenge token present for %s, verification skipped", app.Email)
	}

	if !s.limiter.CheckAndRecord(ctx, app.Email, origin) {
		return "", ErrRateLimited
	}

	var attachmentURL string
	if req.ResumeData != "" {
		if !ValidateFileName(req.ResumeFileName) {
			return "", &RejectError{Reason: "Invalid file type. Allowed: .pdf, .doc, .docx, .txt"}
		}
		data, err := base64.StdEncoding.DecodeString(req.ResumeData)
		if err != nil {
			return "", &RejectError{Reason: "Invalid resume encoding"}
		}
		if len(data) > MaxResumeSize {
			return "", &RejectError{Reason: "Resume file exceeds the 5 MB limit"}
		}

		attachmentURL, err = s.attachments.Store(ctx, data, req.ResumeFileName, req.ResumeContentType, app.Email)
		if err != nil {
			return "", fmt.Errorf("upload resume: %w", err)
		}
	}

	if err := s.notifier.Notify(ctx, app, attachmentURL); err != nil {
		return "", err
	}

	return "Application submitted successfully. Our team will be in touch within 24-48 hours.", nil
}
