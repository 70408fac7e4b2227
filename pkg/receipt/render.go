// Package receipt renders stored receipts as fixed-width text suitable for
// a hard-copy printer.
package receipt

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"kasir/internal/models"
)

const lineWidth = 40

// Render formats a receipt for hard copy. Output is deterministic for a
// given receipt.
func Render(r *models.Receipt) string {
	p := message.NewPrinter(language.English)
	rule := strings.Repeat("=", lineWidth)
	thin := strings.Repeat("-", lineWidth)

	var b strings.Builder
	b.WriteString(rule + "\n")
	b.WriteString(center("KASIR POINT OF SALE") + "\n")
	b.WriteString(rule + "\n")
	b.WriteString(p.Sprintf("Receipt #%d", r.ReceiptID) + "\n")
	b.WriteString("Date: " + r.Date.Format("2006-01-02 15:04:05") + "\n")
	b.WriteString(thin + "\n")

	for _, item := range r.Items {
		label := p.Sprintf("%s x%d", item.ProductName, item.Quantity)
		amount := p.Sprintf("$%.2f", item.Price*float64(item.Quantity))
		b.WriteString(padLine(label, amount) + "\n")
	}

	b.WriteString(thin + "\n")
	b.WriteString(padLine("TOTAL", p.Sprintf("$%.2f", r.Total)) + "\n")
	b.WriteString(padLine("Amount Paid", p.Sprintf("$%.2f", r.AmountPaid)) + "\n")
	b.WriteString(padLine("Change", p.Sprintf("$%.2f", r.Change)) + "\n")
	b.WriteString(rule + "\n")
	b.WriteString(center("Thank you for your purchase!") + "\n")
	return b.String()
}

// padLine left-aligns label and right-aligns amount on one line.
func padLine(label, amount string) string {
	gap := lineWidth - len(label) - len(amount)
	if gap < 1 {
		gap = 1
	}
	return label + strings.Repeat(" ", gap) + amount
}

func center(s string) string {
	if len(s) >= lineWidth {
		return s
	}
	return strings.Repeat(" ", (lineWidth-len(s))/2) + s
}
