// Package upilink formats NPCI `upi://pay` deep links. The builder is a pure
// formatting rule: callers validate inputs, the builder never does.
package upilink

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	scheme      = "upi://pay"
	currency    = "INR"
	defaultNote = "Payment"
)

type Params struct {
	UPIID     string
	PayeeName string
	// Amount is omitted from the link when nil, producing a flexible-amount
	// link where the payer types the amount in their UPI app.
	Amount *float64
	Note   string
}

// Build renders `upi://pay?pa=...&pn=...[&am=...]&cu=INR&tn=...`.
// Free-text fields are percent-encoded; the UPI ID is emitted verbatim. The
// same params always produce the same string.
func Build(params Params) string {
	var b strings.Builder
	b.WriteString(scheme)
	b.WriteString("?pa=")
	b.WriteString(params.UPIID)
	b.WriteString("&pn=")
	b.WriteString(url.QueryEscape(params.PayeeName))
	if params.Amount != nil && *params.Amount > 0 {
		b.WriteString("&am=")
		b.WriteString(FormatAmount(*params.Amount))
	}
	b.WriteString("&cu=")
	b.WriteString(currency)
	b.WriteString("&tn=")
	note := params.Note
	if strings.TrimSpace(note) == "" {
		note = defaultNote
	}
	b.WriteString(url.QueryEscape(note))

	return b.String()
}

// FormatAmount renders an amount with the fewest digits that round-trip, so
// 250.50 becomes "250.5" and 100 becomes "100".
func FormatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
