package notify

import (
	"fmt"
	"net/url"
	"strings"

	"storefront/internal/models"
	"storefront/internal/rates"
)

// BuildMessage composes the plain-text order notification: itemized lines,
// totals in both currencies, the payment address and, when provided, the
// shipping block. The text references the order snapshot handed in, never
// the live cart.
func BuildMessage(orderID string, items []models.CartLine, usdTotal float64, btcAmount, btcAddress, shippingText string) string {
	itemLines := make([]string, 0, len(items))
	for _, item := range items {
		itemLines = append(itemLines, fmt.Sprintf("• %s x%d - %s", item.Name, item.Quantity, rates.FormatBase(item.LineTotal())))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🛒 *New Order*\n\n")
	fmt.Fprintf(&b, "*Order ID:* %s\n\n", orderID)
	fmt.Fprintf(&b, "*Items:*\n%s\n\n", strings.Join(itemLines, "\n"))
	fmt.Fprintf(&b, "*Total (USD):* %s\n", rates.FormatBase(usdTotal))
	fmt.Fprintf(&b, "*Total (BTC):* ₿%s\n\n", btcAmount)
	fmt.Fprintf(&b, "*Payment Address:*\n%s", btcAddress)

	if shippingText != "" {
		fmt.Fprintf(&b, "\n\n📦 *Shipping Details:*\n%s", shippingText)
	}

	b.WriteString("\n\nI have sent the BTC payment. Please confirm receipt.")
	return b.String()
}

// WhatsAppURL builds the deep link that opens the messaging channel with
// the message percent-encoded into the text parameter.
func WhatsAppURL(number, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, url.QueryEscape(message))
}

// PaymentURI is the bitcoin: link encoded into the payment QR code.
func PaymentURI(btcAddress, btcAmount string) string {
	return fmt.Sprintf("bitcoin:%s?amount=%s", btcAddress, btcAmount)
}
