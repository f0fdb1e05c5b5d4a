package rates

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Service fetches the USD price of one BTC from a remote quote source and
// converts cart totals into the settlement currency. It holds no mutable
// state and is safe for concurrent use.
type Service struct {
	QuoteURL string
	Fallback float64
	Client   *http.Client
}

func New(quoteURL string, fallback float64, timeout time.Duration) *Service {
	return &Service{
		QuoteURL: quoteURL,
		Fallback: fallback,
		Client:   &http.Client{Timeout: timeout},
	}
}

type quoteResponse struct {
	Bitcoin struct {
		USD float64 `json:"usd"`
	} `json:"bitcoin"`
}

// FetchRate returns the current USD-per-BTC rate. Any failure — transport
// error, non-200 status, unparseable body, non-positive price — falls back
// to the configured stale-but-usable default so checkout never blocks on the
// quote source. There is no retry beyond this one attempt.
func (s *Service) FetchRate(ctx context.Context) float64 {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.QuoteURL, nil)
	if err != nil {
		log.Println("[RATES] bad quote url, using fallback:", err)
		return s.Fallback
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		log.Println("[RATES] quote fetch failed, using fallback:", err)
		return s.Fallback
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Println("[RATES] quote source returned status", resp.StatusCode, "- using fallback")
		return s.Fallback
	}

	var quote quoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&quote); err != nil {
		log.Println("[RATES] quote decode failed, using fallback:", err)
		return s.Fallback
	}
	if quote.Bitcoin.USD <= 0 {
		log.Println("[RATES] quote source returned non-positive price, using fallback")
		return s.Fallback
	}

	return quote.Bitcoin.USD
}

// Convert turns a USD amount into BTC at the given rate. A non-positive rate
// yields zero instead of a division fault.
func Convert(usdAmount, btcPrice float64) float64 {
	if btcPrice <= 0 {
		return 0
	}
	return usdAmount / btcPrice
}

// FormatSettlement renders a BTC amount with exactly eight fractional
// digits, rounding half to even. Equal inputs always produce equal strings.
func FormatSettlement(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 8, 64)
}

var usdPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatBase renders a USD amount as a currency string with a dollar sign,
// thousands grouping and two decimals.
func FormatBase(amount float64) string {
	return usdPrinter.Sprintf("$%v", number.Decimal(amount,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}
