package email

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"
	"mime/multipart"
	"net/smtp"
	"net/textproto"

	"github.com/sudipjangam/tasty-bite-harbor-sub001/internal/domain/entity"
)

// EmailConfig holds SMTP configuration
type EmailConfig struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromName     string
	FromEmail    string
}

// EmailService sends guest bill receipts over SMTP
type EmailService struct {
	config EmailConfig
}

// NewEmailService creates a new email service
func NewEmailService(config EmailConfig) *EmailService {
	return &EmailService{config: config}
}

// SendReceipt emails the rendered receipt to the guest with the PDF attached.
func (s *EmailService) SendReceipt(toEmail string, receipt *entity.Receipt, pdfData []byte, pdfName string) error {
	htmlContent, err := renderReceiptEmail(receipt)
	if err != nil {
		return fmt.Errorf("failed to render receipt email: %w", err)
	}

	subject := fmt.Sprintf("Your bill %s from %s", receipt.BillNo, receipt.Header.RestaurantName)
	message, err := s.buildMessage(toEmail, subject, htmlContent, pdfData, pdfName)
	if err != nil {
		return fmt.Errorf("failed to build receipt email: %w", err)
	}

	return s.sendEmail(toEmail, message)
}

// sendEmail sends an email using SMTP
func (s *EmailService) sendEmail(to string, message []byte) error {
	addr := fmt.Sprintf("%s:%d", s.config.SMTPHost, s.config.SMTPPort)
	auth := smtp.PlainAuth("", s.config.SMTPUsername, s.config.SMTPPassword, s.config.SMTPHost)
	return smtp.SendMail(addr, auth, s.config.FromEmail, []string{to}, message)
}

// buildMessage builds a multipart MIME message with an HTML body and a PDF
// attachment.
func (s *EmailService) buildMessage(to, subject, htmlBody string, pdfData []byte, pdfName string) ([]byte, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	headers := fmt.Sprintf("From: %s <%s>\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: multipart/mixed; boundary=%q\r\n\r\n",
		s.config.FromName, s.config.FromEmail, to, subject, writer.Boundary())
	buf2 := bytes.NewBufferString(headers)

	htmlPart, err := writer.CreatePart(textproto.MIMEHeader{
		"Content-Type": {"text/html; charset=UTF-8"},
	})
	if err != nil {
		return nil, err
	}
	if _, err := htmlPart.Write([]byte(htmlBody)); err != nil {
		return nil, err
	}

	if len(pdfData) > 0 {
		attachment, err := writer.CreatePart(textproto.MIMEHeader{
			"Content-Type":              {"application/pdf"},
			"Content-Transfer-Encoding": {"base64"},
			"Content-Disposition":       {fmt.Sprintf("attachment; filename=%q", pdfName)},
		})
		if err != nil {
			return nil, err
		}
		encoded := base64.StdEncoding.EncodeToString(pdfData)
		// RFC 2045 limits encoded lines to 76 characters
		for len(encoded) > 76 {
			if _, err := attachment.Write([]byte(encoded[:76] + "\r\n")); err != nil {
				return nil, err
			}
			encoded = encoded[76:]
		}
		if _, err := attachment.Write([]byte(encoded + "\r\n")); err != nil {
			return nil, err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, err
	}

	buf2.Write(buf.Bytes())
	return buf2.Bytes(), nil
}

var receiptEmailTmpl = template.Must(template.New("receipt").Parse(`
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2 style="margin-bottom: 4px;">{{.Header.RestaurantName}}</h2>
  <p style="margin-top: 0;">Thank you for staying with us, {{.GuestName}}!</p>
  <p>Your bill <strong>{{.BillNo}}</strong> for room {{.RoomNumber}}
  ({{.CheckinDate}} to {{.CheckoutDate}}, {{.DaysStayed}} night(s)) comes to
  <strong>{{.Currency}} {{printf "%.2f" .NetTotal}}</strong>.</p>
  <p>The full itemized receipt is attached as a PDF.</p>
  <p style="color: #888; font-size: 12px;">{{.FooterNote}}</p>
</body>
</html>
`))

func renderReceiptEmail(r *entity.Receipt) (string, error) {
	var buf bytes.Buffer
	if err := receiptEmailTmpl.Execute(&buf, r); err != nil {
		return "", err
	}
	return buf.String(), nil
}
