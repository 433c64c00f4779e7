package services

import (
	"sync"

	"quickbudg/internal/events"
	"quickbudg/internal/logger"
	"quickbudg/internal/models"
)

// PeriodQuery is a live view of the budget totals of one month. It reloads
// whenever a committed change touches its period, so Results always reflects
// the latest writes without the caller re-issuing the query.
type PeriodQuery struct {
	year  int
	month int

	source PeriodLister

	mu        sync.Mutex
	results   []models.BudgetTotal
	listeners map[int]func([]models.BudgetTotal)
	nextID    int
	cancel    func()
	closed    bool
}

func newPeriodQuery(source PeriodLister, bus *events.Bus, year, month int) (*PeriodQuery, error) {
	q := &PeriodQuery{
		year:      year,
		month:     month,
		source:    source,
		listeners: make(map[int]func([]models.BudgetTotal)),
	}

	// Hold the lock across subscribe and load so no change slips in between.
	q.mu.Lock()
	q.cancel = bus.Subscribe(q.onChange)
	results, err := source.ListByYearMonth(year, month)
	if err != nil {
		q.mu.Unlock()
		q.cancel()
		return nil, err
	}
	q.results = results
	q.mu.Unlock()

	return q, nil
}

// Year returns the year the query is bound to.
func (q *PeriodQuery) Year() int { return q.year }

// Month returns the month the query is bound to.
func (q *PeriodQuery) Month() int { return q.month }

// Results returns the current snapshot in insertion order.
func (q *PeriodQuery) Results() []models.BudgetTotal {
	q.mu.Lock()
	defer q.mu.Unlock()
	return cloneTotals(q.results)
}

// Subscribe registers fn to receive every new snapshot. The returned function
// removes it.
func (q *PeriodQuery) Subscribe(fn func([]models.BudgetTotal)) (cancel func()) {
	q.mu.Lock()
	id := q.nextID
	q.nextID++
	q.listeners[id] = fn
	q.mu.Unlock()

	return func() {
		q.mu.Lock()
		delete(q.listeners, id)
		q.mu.Unlock()
	}
}

// Close detaches the query from the store. The last snapshot stays readable.
func (q *PeriodQuery) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	cancel := q.cancel
	q.listeners = make(map[int]func([]models.BudgetTotal))
	q.mu.Unlock()

	cancel()
}

func (q *PeriodQuery) onChange(changes []events.Change) {
	if !events.AnyInPeriod(changes, q.year, q.month) {
		return
	}

	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	results, err := q.source.ListByYearMonth(q.year, q.month)
	if err != nil {
		q.mu.Unlock()
		logger.Get().Warnw("live query refresh failed, keeping previous results",
			"year", q.year, "month", q.month, "error", err)
		return
	}
	q.results = results

	listeners := make([]func([]models.BudgetTotal), 0, len(q.listeners))
	for id := 0; id < q.nextID; id++ {
		if fn, ok := q.listeners[id]; ok {
			listeners = append(listeners, fn)
		}
	}
	q.mu.Unlock()

	for _, fn := range listeners {
		fn(cloneTotals(results))
	}
}

func cloneTotals(totals []models.BudgetTotal) []models.BudgetTotal {
	out := make([]models.BudgetTotal, len(totals))
	for i, t := range totals {
		expenses := make([]models.Expense, len(t.Expenses))
		copy(expenses, t.Expenses)
		t.Expenses = expenses
		if t.BudgetType != nil {
			bt := *t.BudgetType
			t.BudgetType = &bt
		}
		out[i] = t
	}
	return out
}
