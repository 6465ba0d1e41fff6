package email

import (
	"fmt"
	"html"
	"net/smtp"

	"github.com/rs/zerolog/log"

	"portfolio-server/model"
)

// Service relays contact-form messages over SMTP. With Enabled false the
// service logs the message and reports success, which keeps development
// setups working without credentials.
type Service struct {
	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	FromEmail    string
	FromName     string
	OwnerEmail   string
	Enabled      bool
}

// NewService creates a new mail service
func NewService(host, port, username, password, fromEmail, fromName, ownerEmail string, enabled bool) *Service {
	return &Service{
		SMTPHost:     host,
		SMTPPort:     port,
		SMTPUsername: username,
		SMTPPassword: password,
		FromEmail:    fromEmail,
		FromName:     fromName,
		OwnerEmail:   ownerEmail,
		Enabled:      enabled,
	}
}

// SendContactMessage forwards a contact submission to the site owner.
func (s *Service) SendContactMessage(sub model.ContactSubmission) error {
	if !s.Enabled {
		log.Warn().Msg("Email service disabled - contact message not relayed")
		log.Info().
			Str("from", sub.Email).
			Str("subject", sub.Subject).
			Msg("Contact message (email disabled)")
		return nil
	}

	subject := fmt.Sprintf("[Portfolio] %s", sub.Subject)
	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: linear-gradient(135deg, #667eea 0%%, #764ba2 100%%); color: white; padding: 30px; text-align: center; border-radius: 10px 10px 0 0; }
        .content { background: #f9f9f9; padding: 30px; border-radius: 0 0 10px 10px; }
        .field { margin: 12px 0; }
        .field strong { display: inline-block; width: 90px; }
        .message { background: white; border-left: 4px solid #667eea; padding: 15px; margin-top: 20px; white-space: pre-wrap; }
        .footer { text-align: center; margin-top: 20px; font-size: 12px; color: #666; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>New Contact Message</h1>
        </div>
        <div class="content">
            <div class="field"><strong>Name:</strong> %s</div>
            <div class="field"><strong>Email:</strong> %s</div>
            <div class="field"><strong>Subject:</strong> %s</div>
            <div class="message">%s</div>
        </div>
        <div class="footer">
            <p>Submission %s</p>
        </div>
    </div>
</body>
</html>
`,
		html.EscapeString(sub.Name),
		html.EscapeString(sub.Email),
		html.EscapeString(sub.Subject),
		html.EscapeString(sub.Message),
		sub.ID,
	)

	return s.sendEmail(s.OwnerEmail, sub.Email, subject, body)
}

// SendContactConfirmation acknowledges the submission to its sender.
func (s *Service) SendContactConfirmation(sub model.ContactSubmission) error {
	if !s.Enabled {
		log.Warn().Msg("Email service disabled - confirmation not sent")
		return nil
	}

	subject := "Thanks for getting in touch"
	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: linear-gradient(135deg, #667eea 0%%, #764ba2 100%%); color: white; padding: 30px; text-align: center; border-radius: 10px 10px 0 0; }
        .content { background: #f9f9f9; padding: 30px; border-radius: 0 0 10px 10px; }
        .footer { text-align: center; margin-top: 20px; font-size: 12px; color: #666; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Message received</h1>
        </div>
        <div class="content">
            <p>Hi %s,</p>
            <p>Your message "%s" arrived safely. I usually answer within one business day.</p>
        </div>
        <div class="footer">
            <p>This is an automated confirmation. Please do not reply.</p>
        </div>
    </div>
</body>
</html>
`,
		html.EscapeString(sub.Name),
		html.EscapeString(sub.Subject),
	)

	return s.sendEmail(sub.Email, "", subject, body)
}

// sendEmail sends an email using SMTP. replyTo is optional.
func (s *Service) sendEmail(to, replyTo, subject, body string) error {
	from := fmt.Sprintf("%s <%s>", s.FromName, s.FromEmail)

	headers := fmt.Sprintf("From: %s\r\nTo: %s\r\n", from, to)
	if replyTo != "" {
		headers += fmt.Sprintf("Reply-To: %s\r\n", replyTo)
	}
	msg := []byte(fmt.Sprintf(
		"%sSubject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s\r\n",
		headers, subject, body,
	))

	auth := smtp.PlainAuth("", s.SMTPUsername, s.SMTPPassword, s.SMTPHost)
	addr := fmt.Sprintf("%s:%s", s.SMTPHost, s.SMTPPort)

	if err := smtp.SendMail(addr, auth, s.FromEmail, []string{to}, msg); err != nil {
		log.Error().Err(err).Str("to", to).Msg("Failed to send email")
		return err
	}

	log.Info().Str("to", to).Str("subject", subject).Msg("Email sent successfully")
	return nil
}
