package notify

import (
	"net/url"
	"strings"
	"testing"

	"storefront/internal/models"
)

func TestBuildMessageContents(t *testing.T) {
	items := []models.CartLine{
		{Product: models.Product{ID: "a", Name: "Widget", Price: 10}, Quantity: 2},
		{Product: models.Product{ID: "b", Name: "Gadget", Price: 5}, Quantity: 1},
	}

	msg := BuildMessage("BTC-TEST-1", items, 25, "0.00026316", "1BjzXaypGt9knasWRHLeJ5M7BLEGESHhvG", "")

	for _, want := range []string{
		"*Order ID:* BTC-TEST-1",
		"• Widget x2 - $20.00",
		"• Gadget x1 - $5.00",
		"*Total (USD):* $25.00",
		"*Total (BTC):* ₿0.00026316",
		"1BjzXaypGt9knasWRHLeJ5M7BLEGESHhvG",
		"I have sent the BTC payment",
	} {
		if !strings.Contains(msg, want) {
			t.Fatalf("message missing %q:\n%s", want, msg)
		}
	}
	if strings.Contains(msg, "Shipping Details") {
		t.Fatal("shipping block rendered without shipping text")
	}
}

func TestBuildMessageIncludesShippingBlock(t *testing.T) {
	msg := BuildMessage("BTC-TEST-1", nil, 0, "0", "addr", "*Name:* Jo Doe")
	if !strings.Contains(msg, "*Shipping Details:*") || !strings.Contains(msg, "*Name:* Jo Doe") {
		t.Fatalf("expected shipping block in message:\n%s", msg)
	}
}

func TestWhatsAppURLEncoding(t *testing.T) {
	raw := WhatsAppURL("1234567890", "hello & goodbye")

	parsed, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("built url does not parse: %v", err)
	}
	if parsed.Host != "wa.me" || parsed.Path != "/1234567890" {
		t.Fatalf("unexpected target: %s", raw)
	}
	if got := parsed.Query().Get("text"); got != "hello & goodbye" {
		t.Fatalf("text did not round-trip through encoding: %q", got)
	}
}

func TestPaymentURI(t *testing.T) {
	if got := PaymentURI("addr123", "0.00200000"); got != "bitcoin:addr123?amount=0.00200000" {
		t.Fatalf("unexpected payment uri: %s", got)
	}
}
