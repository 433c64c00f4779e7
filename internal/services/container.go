package services

import (
	"gorm.io/gorm"

	"quickbudg/internal/events"
)

// Container holds all the services, sharing one store handle and one change bus.
type Container struct {
	BudgetTypes  BudgetTypeServicer
	BudgetTotals BudgetTotalServicer
	Expenses     ExpenseServicer
	Bus          *events.Bus
}

// NewContainer wires the services onto db. A nil bus gets a fresh one.
func NewContainer(db *gorm.DB, bus *events.Bus) *Container {
	if bus == nil {
		bus = events.NewBus()
	}
	return &Container{
		BudgetTypes:  NewBudgetTypeService(db, bus),
		BudgetTotals: NewBudgetTotalService(db, bus),
		Expenses:     NewExpenseService(db, bus),
		Bus:          bus,
	}
}

var (
	_ BudgetTypeServicer  = (*budgetTypeService)(nil)
	_ BudgetTotalServicer = (*budgetTotalService)(nil)
	_ ExpenseServicer     = (*expenseService)(nil)
)
