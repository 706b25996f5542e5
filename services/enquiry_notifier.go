package services

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/klypso/agency-backend/models"
)

// EnquiryNotifier emails the team when a new lead comes in. Delivery is
// best effort: failures are logged and never surfaced to the caller.
type EnquiryNotifier struct {
	mailer    *Mailer
	recipient string
	logger    zerolog.Logger
}

func NewEnquiryNotifier(mailer *Mailer, recipient string) *EnquiryNotifier {
	return &EnquiryNotifier{
		mailer:    mailer,
		recipient: recipient,
		logger:    log.With().Str("serviceName", "enquiryNotifier").Logger(),
	}
}

// NotifyNewEnquiry sends the notification email for a persisted enquiry.
// Callers run this on its own goroutine; the request has already been
// answered by the time delivery succeeds or fails.
func (n *EnquiryNotifier) NotifyNewEnquiry(enquiry models.Enquiry) {
	if n.recipient == "" {
		n.logger.Warn().Msg("no notification recipient configured, skipping enquiry email")
		return
	}

	subject := EnquirySubject(enquiry)
	body := EnquiryEmailBody(enquiry)

	if err := n.mailer.Send(subject, body, []string{n.recipient}); err != nil {
		n.logger.Error().Err(err).
			Str("enquiryID", enquiry.ID.String()).
			Msg("failed to send enquiry notification email")
		return
	}

	n.logger.Info().Str("enquiryID", enquiry.ID.String()).Msg("enquiry notification sent")
}

// EnquirySubject builds the notification subject line for an enquiry.
func EnquirySubject(enquiry models.Enquiry) string {
	return fmt.Sprintf("New Project Enquiry: %s from %s", enquiry.ProjectType, enquiry.Name)
}

// EnquiryEmailBody renders the HTML notification for an enquiry.
func EnquiryEmailBody(enquiry models.Enquiry) string {
	phone := "N/A"
	if enquiry.Phone != nil && *enquiry.Phone != "" {
		phone = *enquiry.Phone
	}

	budget := "Not provided"
	if enquiry.Budget != nil && *enquiry.Budget != "" {
		budget = *enquiry.Budget
	}

	timeline := "Not provided"
	if enquiry.Timeline != nil && *enquiry.Timeline != "" {
		timeline = *enquiry.Timeline
	}

	links := "None"
	if len(enquiry.ReferenceLinks) > 0 {
		links = strings.Join(enquiry.ReferenceLinks, ", ")
	}

	var b strings.Builder
	b.WriteString("<h3>New Project Enquiry Received!</h3>")
	fmt.Fprintf(&b, `<p><strong>Client:</strong> %s (<a href="mailto:%s">%s</a>)</p>`,
		enquiry.Name, enquiry.Email, enquiry.Email)
	fmt.Fprintf(&b, "<p><strong>Phone:</strong> %s</p>", phone)
	b.WriteString("<hr /><h4>Project Details</h4><ul>")
	fmt.Fprintf(&b, "<li><strong>Service:</strong> %s</li>", enquiry.Service)
	fmt.Fprintf(&b, "<li><strong>Type:</strong> %s</li>", enquiry.ProjectType)
	fmt.Fprintf(&b, "<li><strong>Budget:</strong> %s</li>", budget)
	fmt.Fprintf(&b, "<li><strong>Timeline:</strong> %s</li>", timeline)
	b.WriteString("</ul>")
	b.WriteString("<p><strong>Message:</strong></p>")
	fmt.Fprintf(&b, `<blockquote style="background: #f9f9f9; padding: 10px; border-left: 5px solid #ccc;">%s</blockquote>`,
		enquiry.Message)
	fmt.Fprintf(&b, "<p><strong>Reference Links:</strong> %s</p>", links)
	return b.String()
}
