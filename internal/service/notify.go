package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/strataworks/website-api/internal/models"
)

// Mailer is the email-sending collaborator.
type Mailer interface {
	Send(ctx context.Context, msg *models.Message) error
}

// NotifyService composes and dispatches the two messages of a submission:
// the internal notification to the talent team and the applicant
// acknowledgment. Both are sent concurrently; the notification is reported
// successful only if both dispatches succeed.
type NotifyService struct {
	mailer  Mailer
	sender  string
	careers string
}

func NewNotifyService(mailer Mailer, sender, careers string) *NotifyService {
	return &NotifyService{mailer: mailer, sender: sender, careers: careers}
}

func (s *NotifyService) Notify(ctx context.Context, app *models.Application, attachmentURL string) error {
	internal := s.internalNotification(app, attachmentURL)
	ack := s.acknowledgment(app, attachmentURL != "")

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.mailer.Send(gctx, internal) })
	g.Go(func() error { return s.mailer.Send(gctx, ack) })
	if err := g.Wait(); err != nil {
		return fmt.Errorf("dispatch notifications: %w", err)
	}
	return nil
}

func (s *NotifyService) internalNotification(app *models.Application, attachmentURL string) *models.Message {
	resumeText := "Resume: not provided"
	resumeHTML := "<p><strong>Resume:</strong> not provided</p>"
	if attachmentURL != "" {
		resumeText = "Resume: " + attachmentURL
		resumeHTML = fmt.Sprintf(`<p><strong>Resume:</strong> <a href="%s">%s</a></p>`, attachmentURL, attachmentURL)
	}

	return &models.Message{
		From:    s.sender,
		To:      []string{s.careers},
		ReplyTo: app.Email, // talent team replies straight to the applicant
		Subject: fmt.Sprintf("New Job Application: %s", app.Position),
		TextBody: fmt.Sprintf(
			"New application received.\n\nName: %s\nEmail: %s\nPosition: %s\nSubmitted from: %s\n%s\n",
			app.Name, app.Email, app.Position, app.Origin, resumeText),
		HTMLBody: fmt.Sprintf(
			`<h2>New application received</h2>
<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> <a href="mailto:%s">%s</a></p>
<p><strong>Position:</strong> %s</p>
<p><strong>Submitted from:</strong> %s</p>
%s`,
			app.Name, app.Email, app.Email, app.Position, app.Origin, resumeHTML),
	}
}

func (s *NotifyService) acknowledgment(app *models.Application, hasResume bool) *models.Message {
	resumeText := "We did not receive a resume with your application."
	if hasResume {
		resumeText = "Your resume was received."
	}

	return &models.Message{
		From:    s.sender,
		To:      []string{app.Email},
		ReplyTo: s.careers,
		Subject: "We've received your application",
		TextBody: fmt.Sprintf(
			"Hi %s,\n\nThank you for applying for the %s position. %s\n\n"+
				"Our team will review your application and get back to you at %s within 24-48 hours.\n\n"+
				"Best regards,\nThe StrataWorks Talent Team\n",
			app.Name, app.Position, resumeText, app.Email),
		HTMLBody: fmt.Sprintf(
			`<p>Hi %s,</p>
<p>Thank you for applying for the <strong>%s</strong> position. %s</p>
<p>Our team will review your application and get back to you at %s within <strong>24-48 hours</strong>.</p>
<p>Best regards,<br>The StrataWorks Talent Team</p>`,
			app.Name, app.Position, resumeText, app.Email),
	}
}
