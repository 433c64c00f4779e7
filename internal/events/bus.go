// Package events carries committed store changes to live views.
package events

import "sync"

// Kind is the type of mutation a Change describes.
type Kind string

const (
	KindCreated Kind = "created"
	KindUpdated Kind = "updated"
	KindDeleted Kind = "deleted"
)

// Entity names the record type a Change touched.
type Entity string

const (
	EntityBudgetType  Entity = "budget_type"
	EntityBudgetTotal Entity = "budget_total"
	EntityExpense     Entity = "expense"
)

// Change describes one committed mutation. Year and Month are the period of
// the affected budget total; they are zero for budget type changes.
type Change struct {
	Kind          Kind   `json:"kind"`
	Entity        Entity `json:"entity"`
	ID            string `json:"id"`
	BudgetTotalID string `json:"budget_total_id,omitempty"`
	Year          int    `json:"year,omitempty"`
	Month         int    `json:"month,omitempty"`
}

// InPeriod reports whether the change affects the given year and month.
func (c Change) InPeriod(year, month int) bool {
	return c.Year == year && c.Month == month
}

// AnyInPeriod reports whether at least one change affects the given period.
func AnyInPeriod(changes []Change, year, month int) bool {
	for _, c := range changes {
		if c.InPeriod(year, month) {
			return true
		}
	}
	return false
}

// Bus fans committed changes out to subscribers. Each Publish call delivers
// its changes as one batch, synchronously on the publishing goroutine.
type Bus struct {
	mu   sync.RWMutex
	next int
	subs []subscription
}

type subscription struct {
	id int
	fn func([]Change)
}

// NewBus creates an empty Bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers fn for every future change and returns a function that
// removes it. Cancelling twice is harmless.
func (b *Bus) Subscribe(fn func([]Change)) (cancel func()) {
	b.mu.Lock()
	id := b.next
	b.next++
	b.subs = append(b.subs, subscription{id: id, fn: fn})
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			for i, s := range b.subs {
				if s.id == id {
					b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
					return
				}
			}
		})
	}
}

// Publish delivers the changes of one committed operation to all current
// subscribers in subscription order. Subscribers may publish or subscribe from
// within their callback.
func (b *Bus) Publish(changes ...Change) {
	if b == nil || len(changes) == 0 {
		return
	}

	b.mu.RLock()
	subs := make([]subscription, len(b.subs))
	copy(subs, b.subs)
	b.mu.RUnlock()

	for _, s := range subs {
		s.fn(changes)
	}
}

// Len returns the number of active subscribers.
func (b *Bus) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
