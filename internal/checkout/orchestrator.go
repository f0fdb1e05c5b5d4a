package checkout

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"storefront/internal/cart"
	"storefront/internal/models"
	"storefront/internal/notify"
	"storefront/internal/orders"
	"storefront/internal/rates"
	"storefront/internal/shipping"
)

type Step string

const (
	StepShipping Step = "shipping"
	StepPayment  Step = "payment"
)

var (
	ErrEmptyCart = errors.New("cart is empty")
	ErrNoSession = errors.New("no checkout in progress")
	ErrWrongStep = errors.New("operation not allowed in current step")
	ErrConfirmed = errors.New("checkout already confirmed")
)

// session is one checkout attempt. The order id is pre-generated at Begin
// and the rate is fetched once and held for the whole session; the order
// itself exists only provisionally until Confirm records it.
type session struct {
	Token     string
	OrderID   string
	BTCPrice  float64
	Step      Step
	Confirmed bool
}

// Orchestrator sequences the two-step checkout: capture shipping, show
// payment instructions, then record the order, notify and reset the cart,
// strictly in that order.
type Orchestrator struct {
	mu       sync.Mutex
	cart     *cart.Engine
	shipping *shipping.Store
	ledger   *orders.Ledger
	rates    *rates.Service

	btcAddress     string
	whatsAppNumber string

	current *session
}

func New(c *cart.Engine, s *shipping.Store, l *orders.Ledger, r *rates.Service, btcAddress, whatsAppNumber string) *Orchestrator {
	return &Orchestrator{
		cart:           c,
		shipping:       s,
		ledger:         l,
		rates:          r,
		btcAddress:     btcAddress,
		whatsAppNumber: whatsAppNumber,
	}
}

type BeginResult struct {
	Token    string                 `json:"token"`
	OrderID  string                 `json:"orderId"`
	Step     Step                   `json:"step"`
	Defaults models.ShippingProfile `json:"defaults"`
}

// Begin starts a checkout session. An empty cart is refused up front; the
// order id is generated now and the rate fetched once, both reused for the
// rest of the session. A Begin while another session is open replaces it —
// one browsing session checks out one cart at a time.
func (o *Orchestrator) Begin(ctx context.Context) (BeginResult, error) {
	if o.cart.ItemCount() == 0 {
		return BeginResult{}, ErrEmptyCart
	}

	s := &session{
		Token:    uuid.NewString(),
		OrderID:  orders.GenerateID(),
		BTCPrice: o.rates.FetchRate(ctx),
		Step:     StepShipping,
	}

	o.mu.Lock()
	o.current = s
	o.mu.Unlock()

	log.Printf("[CHECKOUT] session started, order id %s at rate %.2f", s.OrderID, s.BTCPrice)
	return BeginResult{
		Token:    s.Token,
		OrderID:  s.OrderID,
		Step:     s.Step,
		Defaults: o.shipping.Load(),
	}, nil
}

// SubmitShipping validates the candidate profile. Field errors come back as
// data and leave the session where it was; a valid profile is saved and
// moves the session to the payment step.
func (o *Orchestrator) SubmitShipping(p models.ShippingProfile) (map[string]string, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.current == nil {
		return nil, ErrNoSession
	}
	if o.current.Confirmed {
		return nil, ErrConfirmed
	}

	validated, fieldErrors := o.shipping.Validate(p)
	if len(fieldErrors) > 0 {
		return fieldErrors, nil
	}
	if err := o.shipping.Save(validated); err != nil {
		return nil, err
	}

	o.current.Step = StepPayment
	return nil, nil
}

type Quote struct {
	OrderID      string  `json:"orderId"`
	USDTotal     float64 `json:"usdTotal"`
	USDFormatted string  `json:"usdFormatted"`
	BTCAmount    string  `json:"btcAmount"`
	BTCPrice     float64 `json:"btcPrice"`
	BTCAddress   string  `json:"btcAddress"`
	PaymentURI   string  `json:"paymentUri"`
}

// Quote computes the payment instructions from the live cart total at the
// session rate. It is recomputed on every call, so a cart edited after
// entering the payment step quotes fresh numbers; the amount freezes only
// at confirmation.
func (o *Orchestrator) Quote() (Quote, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.current == nil {
		return Quote{}, ErrNoSession
	}
	if o.current.Step != StepPayment || o.current.Confirmed {
		return Quote{}, ErrWrongStep
	}

	usdTotal := o.cart.Total()
	btcAmount := rates.FormatSettlement(rates.Convert(usdTotal, o.current.BTCPrice))
	return Quote{
		OrderID:      o.current.OrderID,
		USDTotal:     usdTotal,
		USDFormatted: rates.FormatBase(usdTotal),
		BTCAmount:    btcAmount,
		BTCPrice:     o.current.BTCPrice,
		BTCAddress:   o.btcAddress,
		PaymentURI:   notify.PaymentURI(o.btcAddress, btcAmount),
	}, nil
}

// Back returns from the payment step to shipping. The saved profile stays
// saved; nothing is discarded.
func (o *Orchestrator) Back() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.current == nil {
		return ErrNoSession
	}
	if o.current.Step != StepPayment || o.current.Confirmed {
		return ErrWrongStep
	}
	o.current.Step = StepShipping
	return nil
}

type ConfirmResult struct {
	OrderID     string `json:"orderId"`
	WhatsAppURL string `json:"whatsappUrl"`
}

// Confirm is the terminal transition, triggered by "I have sent the
// payment". It snapshots the cart, profile, amount and rate into a pending
// order, records it, builds the notification link from the snapshot, and
// only then clears the cart. Recording happens before clearing so a failure
// can never lose the order; a failure after recording is logged and does
// not roll the order back.
func (o *Orchestrator) Confirm() (ConfirmResult, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.current == nil {
		return ConfirmResult{}, ErrNoSession
	}
	if o.current.Confirmed {
		return ConfirmResult{}, ErrConfirmed
	}
	if o.current.Step != StepPayment {
		return ConfirmResult{}, ErrWrongStep
	}

	items := o.cart.Items()
	if len(items) == 0 {
		return ConfirmResult{}, ErrEmptyCart
	}

	var usdTotal float64
	for _, line := range items {
		usdTotal += line.LineTotal()
	}
	btcAmount := rates.FormatSettlement(rates.Convert(usdTotal, o.current.BTCPrice))
	profile := o.shipping.Load()

	order := models.Order{
		ID:         o.current.OrderID,
		Items:      items,
		USDTotal:   usdTotal,
		BTCAmount:  btcAmount,
		BTCAddress: o.btcAddress,
		BTCPrice:   o.current.BTCPrice,
		CreatedAt:  time.Now().UTC(),
		Status:     models.OrderStatusPending,
		Shipping:   profile,
	}

	if err := o.ledger.Record(order); err != nil {
		return ConfirmResult{}, err
	}

	message := notify.BuildMessage(order.ID, order.Items, order.USDTotal, order.BTCAmount, order.BTCAddress, shipping.FormatForMessage(profile))
	whatsAppURL := notify.WhatsAppURL(o.whatsAppNumber, message)

	if err := o.cart.Clear(); err != nil {
		log.Printf("[CHECKOUT] cart clear failed after recording %s: %v", order.ID, err)
	}

	o.current.Confirmed = true
	log.Printf("[CHECKOUT] order %s confirmed", order.ID)
	return ConfirmResult{OrderID: order.ID, WhatsAppURL: whatsAppURL}, nil
}

// Step reports the current step of the open session.
func (o *Orchestrator) Step() (Step, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.current == nil {
		return "", ErrNoSession
	}
	if o.current.Confirmed {
		return "", ErrConfirmed
	}
	return o.current.Step, nil
}
