package orders

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"storefront/internal/models"
	"storefront/internal/storage"
)

var ErrNotFound = errors.New("order not found")

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// GenerateID produces a human-shareable order id: a fixed prefix, the
// current time in base36 and six random base36 characters, uppercased.
// Collisions are negligible at normal volume but not cryptographically
// ruled out; the id identifies an order, it does not protect one.
func GenerateID() string {
	timestamp := strconv.FormatInt(time.Now().UnixMilli(), 36)

	random := make([]byte, 6)
	for i := range random {
		random[i] = idAlphabet[rand.Intn(len(idAlphabet))]
	}

	return strings.ToUpper(fmt.Sprintf("BTC-%s-%s", timestamp, random))
}

// Ledger is the append-only order record. Orders are never edited after
// recording except for the status field, and never deleted.
type Ledger struct {
	mu sync.Mutex
	db *storage.Store
}

func NewLedger(db *storage.Store) *Ledger {
	return &Ledger{db: db}
}

// Record appends the order to the persisted list. The list grows without
// bound; pruning is out of scope.
func (l *Ledger) Record(order models.Order) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	all := l.loadAll()
	all = append(all, order)
	if err := l.db.Put(storage.KeyOrders, all); err != nil {
		return err
	}
	log.Printf("[ORDERS] recorded order %s (%d items, %s)", order.ID, len(order.Items), order.BTCAmount)
	return nil
}

// GetByID returns the order with the given id, oldest-first linear scan.
func (l *Ledger) GetByID(orderID string) (models.Order, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, order := range l.loadAll() {
		if order.ID == orderID {
			return order, true
		}
	}
	return models.Order{}, false
}

// List returns every recorded order, oldest first.
func (l *Ledger) List() []models.Order {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loadAll()
}

// SetStatus rewrites the matching order's status and nothing else. The
// caller is expected to move the status forward (pending, paid, completed)
// but no transition guard is enforced beyond the value being known.
func (l *Ledger) SetStatus(orderID string, status models.OrderStatus) error {
	if !models.ValidOrderStatus(status) {
		return fmt.Errorf("unknown order status %q", status)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	all := l.loadAll()
	for i := range all {
		if all[i].ID == orderID {
			all[i].Status = status
			return l.db.Put(storage.KeyOrders, all)
		}
	}
	return ErrNotFound
}

// loadAll reads the persisted list; corrupt or missing storage reads as an
// empty ledger. Callers hold the lock.
func (l *Ledger) loadAll() []models.Order {
	var all []models.Order
	l.db.Get(storage.KeyOrders, &all)
	return all
}
