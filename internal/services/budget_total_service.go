package services

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "quickbudg/internal/errors"
	"quickbudg/internal/events"
	"quickbudg/internal/models"
)

// budgetTotalService is the ledger of monthly allocations per budget type.
type budgetTotalService struct {
	db  *gorm.DB
	bus *events.Bus
}

// NewBudgetTotalService creates a new BudgetTotalServicer.
func NewBudgetTotalService(db *gorm.DB, bus *events.Bus) BudgetTotalServicer {
	return &budgetTotalService{db: db, bus: bus}
}

// CreateBudgetTotal allocates amount to a budget type for one month. The type
// is resolved by id when budgetTypeID is set, otherwise by get-or-create on
// budgetTypeName, inside the same transaction as the new total.
func (s *budgetTotalService) CreateBudgetTotal(
	year, month int,
	amount *decimal.Decimal,
	budgetTypeID string,
	budgetTypeName string,
) (*models.BudgetTotal, error) {
	if err := validatePeriod(year, month); err != nil {
		return nil, err
	}
	if err := validateAmount("total amount", amount); err != nil {
		return nil, err
	}
	if budgetTypeID == "" && strings.TrimSpace(budgetTypeName) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "a budget type id or name is required")
	}

	var (
		total   *models.BudgetTotal
		changes []events.Change
	)
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var (
			budgetType *models.BudgetType
			err        error
		)
		if budgetTypeID != "" {
			budgetType, err = findBudgetTypeByID(tx, budgetTypeID)
		} else {
			var created bool
			budgetType, created, err = getOrCreateBudgetTypeWithDB(tx, budgetTypeName)
			if err == nil && created {
				changes = append(changes, events.Change{Kind: events.KindCreated, Entity: events.EntityBudgetType, ID: budgetType.ID})
			}
		}
		if err != nil {
			return err
		}

		var existing int64
		if err := tx.Model(&models.BudgetTotal{}).
			Where("budget_type_id = ? AND year = ? AND month = ?", budgetType.ID, year, month).
			Count(&existing).Error; err != nil {
			return storeError("count budget totals", err)
		}
		if existing > 0 {
			return apperrors.ErrDuplicateBudgetTotal
		}

		total = &models.BudgetTotal{
			Year:         year,
			Month:        month,
			TotalAmount:  *amount,
			BudgetTypeID: budgetType.ID,
		}
		if err := tx.Omit(clause.Associations).Create(total).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.ErrDuplicateBudgetTotal
			}
			return storeError("create budget total", err)
		}
		total.BudgetType = budgetType
		total.Expenses = []models.Expense{}

		changes = append(changes, events.Change{
			Kind:   events.KindCreated,
			Entity: events.EntityBudgetTotal,
			ID:     total.ID,
			Year:   year,
			Month:  month,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.bus.Publish(changes...)
	return total, nil
}

// GetBudgetTotalByID returns a budget total with its type and expenses.
func (s *budgetTotalService) GetBudgetTotalByID(id string) (*models.BudgetTotal, error) {
	return findBudgetTotal(withOwned(s.db), id)
}

// UpdateTotalAmount replaces the allocated amount of a budget total.
func (s *budgetTotalService) UpdateTotalAmount(id string, amount *decimal.Decimal) (*models.BudgetTotal, error) {
	if err := validateAmount("total amount", amount); err != nil {
		return nil, err
	}

	var total *models.BudgetTotal
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		total, err = findBudgetTotal(tx, id)
		if err != nil {
			return err
		}

		if err := tx.Model(total).Update("total_amount", *amount).Error; err != nil {
			return storeError("update budget total", err)
		}
		total.TotalAmount = *amount

		total, err = findBudgetTotal(withOwned(tx), id)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.bus.Publish(events.Change{
		Kind:   events.KindUpdated,
		Entity: events.EntityBudgetTotal,
		ID:     total.ID,
		Year:   total.Year,
		Month:  total.Month,
	})
	return total, nil
}

// DeleteBudgetTotal deletes a budget total and every expense it owns in one
// transaction. Its budget type is kept.
func (s *budgetTotalService) DeleteBudgetTotal(id string) error {
	var changes []events.Change
	err := s.db.Transaction(func(tx *gorm.DB) error {
		total, err := findBudgetTotal(tx, id)
		if err != nil {
			return err
		}

		var expenseIDs []string
		if err := tx.Model(&models.Expense{}).Where("budget_total_id = ?", id).Order("rowid").Pluck("id", &expenseIDs).Error; err != nil {
			return storeError("list owned expenses", err)
		}

		if err := tx.Where("budget_total_id = ?", id).Delete(&models.Expense{}).Error; err != nil {
			return storeError("delete owned expenses", err)
		}
		if err := tx.Where("id = ?", id).Delete(&models.BudgetTotal{}).Error; err != nil {
			return storeError("delete budget total", err)
		}

		for _, expenseID := range expenseIDs {
			changes = append(changes, events.Change{
				Kind:          events.KindDeleted,
				Entity:        events.EntityExpense,
				ID:            expenseID,
				BudgetTotalID: id,
				Year:          total.Year,
				Month:         total.Month,
			})
		}
		changes = append(changes, events.Change{
			Kind:   events.KindDeleted,
			Entity: events.EntityBudgetTotal,
			ID:     id,
			Year:   total.Year,
			Month:  total.Month,
		})
		return nil
	})
	if err != nil {
		return err
	}

	s.bus.Publish(changes...)
	return nil
}

// ListByYearMonth returns the budget totals of one month in insertion order.
func (s *budgetTotalService) ListByYearMonth(year, month int) ([]models.BudgetTotal, error) {
	if err := validatePeriod(year, month); err != nil {
		return nil, err
	}

	totals := []models.BudgetTotal{}
	if err := withOwned(s.db).Where("year = ? AND month = ?", year, month).Order("rowid").Find(&totals).Error; err != nil {
		return nil, storeError("list budget totals", err)
	}
	return totals, nil
}

// FilterByYearMonth returns a live view of the budget totals of one month.
func (s *budgetTotalService) FilterByYearMonth(year, month int) (*PeriodQuery, error) {
	if err := validatePeriod(year, month); err != nil {
		return nil, err
	}
	return newPeriodQuery(s, s.bus, year, month)
}

// withOwned preloads the budget type and the owned expenses in insertion order.
func withOwned(db *gorm.DB) *gorm.DB {
	return db.Preload("BudgetType").Preload("Expenses", func(db *gorm.DB) *gorm.DB {
		return db.Order("rowid")
	})
}

func findBudgetTotal(db *gorm.DB, id string) (*models.BudgetTotal, error) {
	var total models.BudgetTotal
	if err := db.Where("id = ?", id).Take(&total).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBudgetTotalNotFound
		}
		return nil, storeError("find budget total", err)
	}
	return &total, nil
}
