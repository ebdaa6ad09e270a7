package email

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"

	"github.com/lumen-edu/lumen/internal/domain/purchase"
	"github.com/lumen-edu/lumen/internal/shared/biztime"
)

type receiptLine struct {
	Title string
	Price string
}

type receiptView struct {
	Brand     string
	Reference string
	Date      string
	Lines     []receiptLine
	Subtotal  string
	Discount  string
	HasOffer  bool
	OfferCode string
	Total     string
}

const receiptHTML = `<html>
<body>
	<h2>Thank you for your purchase</h2>
	<p>Payment reference: {{.Reference}}<br>Date: {{.Date}}</p>
	<table>
	{{- range .Lines}}
		<tr><td>{{.Title}}</td><td>{{.Price}}</td></tr>
	{{- end}}
		<tr><td>Subtotal</td><td>{{.Subtotal}}</td></tr>
	{{- if .HasOffer}}
		<tr><td>Discount ({{.OfferCode}})</td><td>-{{.Discount}}</td></tr>
	{{- end}}
		<tr><td><strong>Total</strong></td><td><strong>{{.Total}}</strong></td></tr>
	</table>
	<p>Your content is now available in your {{.Brand}} library.</p>
</body>
</html>`

const receiptText = `Thank you for your purchase

Payment reference: {{.Reference}}
Date: {{.Date}}
{{range .Lines}}
{{.Title}}: {{.Price}}{{end}}

Subtotal: {{.Subtotal}}
{{- if .HasOffer}}
Discount ({{.OfferCode}}): -{{.Discount}}
{{- end}}
Total: {{.Total}}

Your content is now available in your {{.Brand}} library.
`

var (
	receiptHTMLTmpl = htmltemplate.Must(htmltemplate.New("receipt.html").Parse(receiptHTML))
	receiptTextTmpl = texttemplate.Must(texttemplate.New("receipt.txt").Parse(receiptText))
)

func lineTitle(l purchase.Line) string {
	if l.IsBundle {
		return l.SubjectTitle + " (complete bundle)"
	}
	return l.SubjectTitle + " - " + l.ContentTypeName
}

func newReceiptView(brand string, p *purchase.Purchase) receiptView {
	view := receiptView{
		Brand:     brand,
		Reference: p.PaymentReference(),
		Date:      biztime.FormatInBizTimezone(p.CreatedAt(), "2006-01-02 15:04"),
		Subtotal:  FormatAmount(p.Subtotal(), p.Currency()),
		Discount:  FormatAmount(p.Discount(), p.Currency()),
		Total:     FormatAmount(p.Total(), p.Currency()),
	}
	if code := p.OfferCode(); code != nil && p.Discount().IsPositive() {
		view.HasOffer = true
		view.OfferCode = *code
	}
	for _, l := range p.Lines() {
		view.Lines = append(view.Lines, receiptLine{
			Title: lineTitle(l),
			Price: FormatAmount(l.Price, p.Currency()),
		})
	}
	return view
}

// RenderReceipt returns the subject, HTML body and plain-text body of a purchase receipt
func RenderReceipt(brand string, p *purchase.Purchase) (subject, htmlBody, plainBody string, err error) {
	view := newReceiptView(brand, p)

	var html, text bytes.Buffer
	if err := receiptHTMLTmpl.Execute(&html, view); err != nil {
		return "", "", "", fmt.Errorf("failed to render receipt html: %w", err)
	}
	if err := receiptTextTmpl.Execute(&text, view); err != nil {
		return "", "", "", fmt.Errorf("failed to render receipt text: %w", err)
	}

	subject = fmt.Sprintf("Your %s receipt (%s)", brand, view.Total)
	return subject, html.String(), text.String(), nil
}
