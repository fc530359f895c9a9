package notification

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"carcare/config"
	"carcare/models"

	"gopkg.in/gomail.v2"
)

// MailNotificationService is the SMTP implementation of NotificationService.
type MailNotificationService struct {
	Host       string
	Port       int
	Username   string
	Password   string
	From       string
	AdminEmail string
}

// NewMailNotificationService builds a mailer from the loaded configuration.
func NewMailNotificationService() *MailNotificationService {
	cfg := config.AppConfig
	return &MailNotificationService{
		Host:       cfg.SMTPHost,
		Port:       cfg.SMTPPort,
		Username:   cfg.SMTPUsername,
		Password:   cfg.SMTPPassword,
		From:       cfg.SMTPFrom,
		AdminEmail: cfg.AdminEmail,
	}
}

// NotifyBookingReceived sends the customer acknowledgement and, in parallel,
// an alert to the staff address. Both attempts are made even if one fails.
func (s *MailNotificationService) NotifyBookingReceived(booking *models.Booking) Result {
	var failures []string

	body, err := renderTemplate(receivedCustomerTmpl, booking)
	if err != nil {
		failures = append(failures, err.Error())
	} else if err := s.send(booking.Email, "We received your booking request", body); err != nil {
		failures = append(failures, fmt.Sprintf("customer: %v", err))
	}

	if s.AdminEmail != "" {
		body, err := renderTemplate(receivedAdminTmpl, booking)
		if err != nil {
			failures = append(failures, err.Error())
		} else if err := s.send(s.AdminEmail, "New booking request: "+booking.Name, body); err != nil {
			failures = append(failures, fmt.Sprintf("admin: %v", err))
		}
	}

	if len(failures) > 0 {
		return Result{Ok: false, Error: strings.Join(failures, "; ")}
	}
	return Result{Ok: true}
}

// NotifyBookingConfirmed tells the customer their booking was accepted.
func (s *MailNotificationService) NotifyBookingConfirmed(booking *models.Booking) Result {
	body, err := renderTemplate(confirmedTmpl, booking)
	if err != nil {
		return Result{Ok: false, Error: err.Error()}
	}
	if err := s.send(booking.Email, "Your booking is confirmed", body); err != nil {
		return Result{Ok: false, Error: err.Error()}
	}
	return Result{Ok: true}
}

// send makes a single SMTP delivery attempt.
func (s *MailNotificationService) send(to, subject, body string) error {
	if s.Host == "" || s.From == "" {
		return fmt.Errorf("mail transport not configured")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.Host, s.Port, s.Username, s.Password)
	return d.DialAndSend(m)
}

func renderTemplate(t *template.Template, booking *models.Booking) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, booking); err != nil {
		return "", fmt.Errorf("failed to render email template: %w", err)
	}
	return buf.String(), nil
}

var (
	receivedCustomerTmpl = template.Must(template.New("receivedCustomer").Parse(`
<h2>Thank you, {{.Name}}!</h2>
<p>We received your booking request and will confirm it shortly.</p>
<ul>
  <li>Service: {{.ServiceName}}</li>
  {{range .AdditionalServices}}<li>Additional: {{.Name}}</li>{{end}}
  <li>Vehicle: {{.VehicleBrand}} {{.VehicleModel}}</li>
  <li>Date: {{.BookingDate}} at {{.BookingTime}}</li>
</ul>
<p>You will get another email once our team accepts your request.</p>`))

	receivedAdminTmpl = template.Must(template.New("receivedAdmin").Parse(`
<h2>New booking request</h2>
<ul>
  <li>Customer: {{.Name}} ({{.Email}}, {{.CountryCode}} {{.Phone}})</li>
  <li>Service: {{.ServiceName}}</li>
  {{range .AdditionalServices}}<li>Additional: {{.Name}}</li>{{end}}
  <li>Vehicle: {{.VehicleBrand}} {{.VehicleModel}}</li>
  <li>Date: {{.BookingDate}} at {{.BookingTime}}</li>
  <li>Notes: {{.Notes}}</li>
</ul>`))

	confirmedTmpl = template.Must(template.New("confirmed").Parse(`
<h2>Your booking is confirmed!</h2>
<p>Hi {{.Name}}, we have accepted your booking.</p>
<ul>
  <li>Service: {{.ServiceName}}</li>
  {{range .AdditionalServices}}<li>Additional: {{.Name}}</li>{{end}}
  <li>Vehicle: {{.VehicleBrand}} {{.VehicleModel}}</li>
  <li>Date: {{.BookingDate}} at {{.BookingTime}}</li>
</ul>
<p>See you then!</p>`))
)
