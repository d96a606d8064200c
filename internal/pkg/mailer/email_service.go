package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendSuggestion(toEmail, suggestionType, message string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
}

func NewEmailService(host string, port int, username, password, senderEmail, senderName string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		senderName:  senderName,
	}
}

func (s *emailService) SendSuggestion(toEmail, suggestionType, message string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.senderEmail, s.senderName)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("AI Assistant Suggestion: %s", suggestionType))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Your assistant has a suggestion</h2>
			<p>%s</p>
			<p>Open the app to mark it as read or act on it.</p>
		</div>
	`, message)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send suggestion to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Suggestion sent to %s\n", toEmail)
	return nil
}
