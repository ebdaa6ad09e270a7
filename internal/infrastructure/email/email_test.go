package email

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"github.com/lumen-edu/lumen/internal/domain/purchase"
	"github.com/lumen-edu/lumen/internal/shared/logger"
)

type captureSender struct {
	messages []*gomail.Message
	err      error
}

func (c *captureSender) DialAndSend(m ...*gomail.Message) error {
	if c.err != nil {
		return c.err
	}
	c.messages = append(c.messages, m...)
	return nil
}

func testPurchase(t *testing.T) *purchase.Purchase {
	code := "NEWYEAR25"
	p, err := purchase.NewPurchase("user-1", &code, purchase.Totals{
		Subtotal: decimal.RequireFromString("300"),
		Discount: decimal.RequireFromString("75"),
		Total:    decimal.RequireFromString("225"),
	}, "USD", "pay_42", []purchase.Line{
		{SubjectID: "s1", SubjectTitle: "Mathematics", IsBundle: true, Price: decimal.RequireFromString("250")},
		{SubjectID: "s2", SubjectTitle: "Physics", ContentTypeID: "ct", ContentTypeName: "Notes", Price: decimal.RequireFromString("50")},
	})
	require.NoError(t, err)
	return p
}

func TestFormatAmount(t *testing.T) {
	assert.Contains(t, FormatAmount(decimal.RequireFromString("187.5"), "USD"), "187.50")
	assert.Contains(t, FormatAmount(decimal.RequireFromString("187.5"), "USD"), "$")
	assert.Equal(t, "10.00 ZZZ1", FormatAmount(decimal.RequireFromString("10"), "ZZZ1"))
}

func TestRenderReceipt(t *testing.T) {
	subject, html, text, err := RenderReceipt("Lumen", testPurchase(t))
	require.NoError(t, err)

	assert.Contains(t, subject, "Lumen receipt")
	assert.Contains(t, subject, "225.00")
	assert.Contains(t, html, "Mathematics (complete bundle)")
	assert.Contains(t, html, "Discount (NEWYEAR25)")
	assert.Contains(t, text, "Physics - Notes")
	assert.Contains(t, text, "pay_42")
}

func TestSendPurchaseReceipt(t *testing.T) {
	capture := &captureSender{}
	svc := &SMTPEmailService{
		fromAddress: "noreply@lumen.local",
		fromName:    "Lumen",
		dialer:      capture,
		logger:      logger.NewNop(),
	}

	require.NoError(t, svc.SendPurchaseReceipt(context.Background(), "ada@example.com", testPurchase(t)))
	require.Len(t, capture.messages, 1)

	msg := capture.messages[0]
	assert.Equal(t, []string{"ada@example.com"}, msg.GetHeader("To"))

	var raw bytes.Buffer
	_, err := msg.WriteTo(&raw)
	require.NoError(t, err)
	assert.Contains(t, raw.String(), "pay_42")
}

func TestSendPurchaseReceipt_DialFailure(t *testing.T) {
	svc := &SMTPEmailService{dialer: &captureSender{err: errors.New("connection refused")}, logger: logger.NewNop()}

	err := svc.SendPurchaseReceipt(context.Background(), "ada@example.com", testPurchase(t))
	assert.ErrorContains(t, err, "failed to send email")
}
