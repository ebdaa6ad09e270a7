package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/lumen-edu/lumen/internal/domain/purchase"
	"github.com/lumen-edu/lumen/internal/shared/config"
	"github.com/lumen-edu/lumen/internal/shared/logger"
)

// sender is satisfied by *gomail.Dialer
type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type SMTPEmailService struct {
	fromAddress string
	fromName    string
	dialer      sender
	logger      logger.Interface
}

func NewSMTPEmailService(cfg *config.EmailConfig, logger logger.Interface) *SMTPEmailService {
	return &SMTPEmailService{
		fromAddress: cfg.FromAddress,
		fromName:    cfg.FromName,
		dialer:      gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		logger:      logger,
	}
}

// SendPurchaseReceipt mails the receipt of a recorded purchase
func (s *SMTPEmailService) SendPurchaseReceipt(ctx context.Context, to string, p *purchase.Purchase) error {
	subject, htmlBody, plainBody, err := RenderReceipt(s.fromName, p)
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.sendEmail(to, subject, htmlBody, plainBody); err != nil {
		return err
	}

	s.logger.Infow("purchase receipt sent", "purchase_id", p.ID(), "to", to)
	return nil
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.fromAddress, s.fromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
