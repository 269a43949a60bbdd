// Package ledger owns the authoritative in-memory set of confirmed
// bookings. All mutation is funneled through Update, which holds the
// write lock for the full check-then-commit sequence so an overlap check
// and the subsequent append are observed as one atomic unit.
package ledger

import (
	"sync"

	"bookable/pkg/model"
)

type Ledger struct {
	mu       sync.RWMutex
	bookings []model.Booking
}

func New() *Ledger {
	return &Ledger{}
}

// Tx gives Update callbacks exclusive access to the ledger. It must not
// escape the callback.
type Tx struct {
	l *Ledger
}

// Update runs fn under the write lock. Reads inside fn observe the ledger
// with all prior mutations applied; no other reader or writer can
// interleave until fn returns. An error from fn aborts nothing that fn
// already applied — callbacks are expected to mutate only after their own
// checks pass.
func (l *Ledger) Update(fn func(tx *Tx) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return fn(&Tx{l: l})
}

// ForResource returns the bookings for one resource in insertion order.
// The slice is a copy; the suggestion walk anchors on first-found
// conflicts, so the stable order matters.
func (tx *Tx) ForResource(resourceID string) []model.Booking {
	return filter(tx.l.bookings, func(b model.Booking) bool {
		return b.ResourceID == resourceID
	})
}

// Append commits a booking. The caller has already established that the
// booking does not conflict.
func (tx *Tx) Append(b model.Booking) {
	tx.l.bookings = append(tx.l.bookings, b)
}

// Remove deletes the booking identified by (tenantID, bookingID),
// returning the removed booking and whether it existed. Insertion order
// of the remaining bookings is preserved.
func (tx *Tx) Remove(tenantID, bookingID string) (model.Booking, bool) {
	for i, b := range tx.l.bookings {
		if b.ID == bookingID && b.TenantID == tenantID {
			tx.l.bookings = append(tx.l.bookings[:i], tx.l.bookings[i+1:]...)
			return b, true
		}
	}
	return model.Booking{}, false
}

// ListForTenant returns a snapshot of the tenant's bookings in insertion
// order. Safe to call concurrently with other reads.
func (l *Ledger) ListForTenant(tenantID string) []model.Booking {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return filter(l.bookings, func(b model.Booking) bool {
		return b.TenantID == tenantID
	})
}

// ForResource returns a read snapshot of one resource's bookings. Unlike
// Tx.ForResource it does not block writers beyond the copy.
func (l *Ledger) ForResource(resourceID string) []model.Booking {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return filter(l.bookings, func(b model.Booking) bool {
		return b.ResourceID == resourceID
	})
}

// Seed loads pre-existing bookings, preserving the given order. Intended
// for startup fixtures and tests; it performs no conflict checking.
func (l *Ledger) Seed(bookings ...model.Booking) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.bookings = append(l.bookings, bookings...)
}

// Len reports the total number of confirmed bookings across all tenants.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.bookings)
}

func filter(bookings []model.Booking, keep func(model.Booking) bool) []model.Booking {
	out := make([]model.Booking, 0)
	for _, b := range bookings {
		if keep(b) {
			out = append(out, b)
		}
	}
	return out
}
