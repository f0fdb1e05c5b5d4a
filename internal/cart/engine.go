package cart

import (
	"errors"
	"log"
	"sync"

	"storefront/internal/models"
	"storefront/internal/storage"
)

// ErrNotReady is returned by mutations attempted before the persisted cart
// has been loaded. Accepting a write earlier could persist an empty startup
// cart over a customer's stored one.
var ErrNotReady = errors.New("cart not loaded yet")

// Engine owns the cart: one line per product id, every quantity >= 1,
// insertion order preserved for display. Every successful mutation is
// written through to storage before subscribers are notified. Handlers call
// in concurrently, so the engine guards itself.
type Engine struct {
	mu    sync.Mutex
	db    *storage.Store
	lines []models.CartLine
	ready bool
	subs  []func()
}

func NewEngine(db *storage.Store) *Engine {
	return &Engine{db: db}
}

// Load rehydrates the last persisted snapshot. It must run once, before any
// mutation; a corrupt or missing record loads as an empty cart. Lines that
// would violate the invariants (duplicate ids, non-positive quantities) are
// dropped rather than trusted.
func (e *Engine) Load() {
	e.mu.Lock()
	defer e.mu.Unlock()

	var stored []models.CartLine
	if e.db.Get(storage.KeyCart, &stored) {
		seen := make(map[string]bool, len(stored))
		for _, line := range stored {
			if line.ID == "" || line.Quantity < 1 || seen[line.ID] {
				log.Printf("[CART] dropping invalid stored line %q", line.ID)
				continue
			}
			seen[line.ID] = true
			e.lines = append(e.lines, line)
		}
	}
	e.ready = true
	log.Printf("[CART] loaded %d lines", len(e.lines))
}

// Ready reports whether Load has completed.
func (e *Engine) Ready() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ready
}

// Subscribe registers fn to run after every successful mutation. The
// callback fires outside the engine's lock, so it may read the cart freely.
func (e *Engine) Subscribe(fn func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.subs = append(e.subs, fn)
}

// Add merges quantity into the existing line for the product, or appends a
// new line. The quantity must be positive; that is the caller's contract.
func (e *Engine) Add(product models.Product, quantity int) error {
	err := e.mutate(func() {
		for i := range e.lines {
			if e.lines[i].ID == product.ID {
				e.lines[i].Quantity += quantity
				return
			}
		}
		e.lines = append(e.lines, models.CartLine{Product: product, Quantity: quantity})
	})
	return err
}

// Remove deletes the line for the product id. Absent ids are a no-op.
func (e *Engine) Remove(productID string) error {
	return e.mutate(func() {
		for i := range e.lines {
			if e.lines[i].ID == productID {
				e.lines = append(e.lines[:i], e.lines[i+1:]...)
				return
			}
		}
	})
}

// SetQuantity replaces the line's quantity in place, keeping its position.
// A quantity of zero or less removes the line; an absent id is a no-op.
func (e *Engine) SetQuantity(productID string, quantity int) error {
	if quantity <= 0 {
		return e.Remove(productID)
	}
	return e.mutate(func() {
		for i := range e.lines {
			if e.lines[i].ID == productID {
				e.lines[i].Quantity = quantity
				return
			}
		}
	})
}

// Clear empties the cart.
func (e *Engine) Clear() error {
	return e.mutate(func() {
		e.lines = nil
	})
}

// Items returns a copy of the cart lines in insertion order. Mutating the
// result never touches the live cart.
func (e *Engine) Items() []models.CartLine {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]models.CartLine, len(e.lines))
	copy(out, e.lines)
	return out
}

// Total is the sum of price times quantity over all lines, recomputed on
// every read.
func (e *Engine) Total() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	var total float64
	for _, line := range e.lines {
		total += line.LineTotal()
	}
	return total
}

// ItemCount is the sum of quantities over all lines.
func (e *Engine) ItemCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	count := 0
	for _, line := range e.lines {
		count += line.Quantity
	}
	return count
}

// mutate applies fn under the lock, persists the full snapshot, and then
// notifies subscribers. The persist happens before the notification so a
// subscriber always observes stored state.
func (e *Engine) mutate(fn func()) error {
	e.mu.Lock()
	if !e.ready {
		e.mu.Unlock()
		return ErrNotReady
	}
	fn()
	snapshot := make([]models.CartLine, len(e.lines))
	copy(snapshot, e.lines)
	subs := e.subs
	e.mu.Unlock()

	if err := e.db.Put(storage.KeyCart, snapshot); err != nil {
		log.Println("[CART] persist failed:", err)
		return err
	}
	for _, fn := range subs {
		fn()
	}
	return nil
}
