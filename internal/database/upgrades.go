package database

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"quickbudg/internal/uuid"
)

// UncategorizedTypeName is the budget type assigned to version 1 totals that
// carried no type name.
const UncategorizedTypeName = "Uncategorized"

// budgetTotalV1 is a budget_totals row as written by schema version 1, where
// the category was a free-text name on the total itself.
type budgetTotalV1 struct {
	ID             string
	Year           int
	Month          int
	BudgetTypeName *string
}

// budgetTotalV2 is the same row after the version 2 upgrade: the category is
// a reference to budget_types and the legacy name is cleared.
type budgetTotalV2 struct {
	ID             string
	Year           int
	Month          int
	BudgetTypeID   string
	BudgetTypeName *string
}

// upgradeBudgetTypeRefs moves version 1 data onto the budget type references
// added by schema step 2.
func upgradeBudgetTypeRefs(tx *gorm.DB) error {
	if err := foldDuplicateTypeNames(tx); err != nil {
		return err
	}

	var rows []budgetTotalV1
	if err := tx.Raw("SELECT id, year, month, budget_type_name FROM budget_totals ORDER BY rowid").Scan(&rows).Error; err != nil {
		return fmt.Errorf("read budget_totals: %w", err)
	}

	typeIDs := make(map[string]string)
	upgraded := make([]budgetTotalV2, 0, len(rows))
	for _, old := range rows {
		next, err := budgetTotalToV2(tx, old, typeIDs)
		if err != nil {
			return err
		}
		if err := tx.Exec("UPDATE budget_totals SET budget_type_id = ?, budget_type_name = ? WHERE id = ?",
			next.BudgetTypeID, next.BudgetTypeName, next.ID).Error; err != nil {
			return fmt.Errorf("update budget total %s: %w", next.ID, err)
		}
		upgraded = append(upgraded, next)
	}

	if err := foldDuplicateTotals(tx, upgraded); err != nil {
		return err
	}

	// Expenses inherit the type and period of their owner.
	err := tx.Exec(`UPDATE expenses SET
		budget_type_id = (SELECT bt.budget_type_id FROM budget_totals bt WHERE bt.id = expenses.budget_total_id),
		year = (SELECT bt.year FROM budget_totals bt WHERE bt.id = expenses.budget_total_id),
		month = (SELECT bt.month FROM budget_totals bt WHERE bt.id = expenses.budget_total_id)`).Error
	if err != nil {
		return fmt.Errorf("copy owner fields onto expenses: %w", err)
	}
	return nil
}

func budgetTotalToV2(tx *gorm.DB, old budgetTotalV1, typeIDs map[string]string) (budgetTotalV2, error) {
	name := UncategorizedTypeName
	if old.BudgetTypeName != nil && strings.TrimSpace(*old.BudgetTypeName) != "" {
		name = *old.BudgetTypeName
	}

	typeID, err := resolveTypeID(tx, name, typeIDs)
	if err != nil {
		return budgetTotalV2{}, err
	}

	return budgetTotalV2{
		ID:           old.ID,
		Year:         old.Year,
		Month:        old.Month,
		BudgetTypeID: typeID,
	}, nil
}

// resolveTypeID returns the id of the budget type with the given name,
// creating it when missing.
func resolveTypeID(tx *gorm.DB, name string, cache map[string]string) (string, error) {
	if id, ok := cache[name]; ok {
		return id, nil
	}

	var id string
	err := tx.Raw("SELECT id FROM budget_types WHERE name = ? ORDER BY rowid LIMIT 1", name).Row().Scan(&id)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		id = uuid.New()
		now := time.Now().UTC()
		if err := tx.Exec("INSERT INTO budget_types (id, name, created_at, updated_at) VALUES (?, ?, ?, ?)",
			id, name, now, now).Error; err != nil {
			return "", fmt.Errorf("create budget type %q: %w", name, err)
		}
	case err != nil:
		return "", fmt.Errorf("find budget type %q: %w", name, err)
	}

	cache[name] = id
	return id, nil
}

// foldDuplicateTypeNames keeps the earliest budget type of each name. Nothing
// references budget types before this upgrade, so the rest are dropped.
func foldDuplicateTypeNames(tx *gorm.DB) error {
	err := tx.Exec(`DELETE FROM budget_types WHERE rowid NOT IN (
		SELECT MIN(rowid) FROM budget_types GROUP BY name
	)`).Error
	if err != nil {
		return fmt.Errorf("fold duplicate budget types: %w", err)
	}
	return nil
}

// foldDuplicateTotals keeps the earliest total per (type, year, month) and
// moves the expenses of the others onto it.
func foldDuplicateTotals(tx *gorm.DB, rows []budgetTotalV2) error {
	type period struct {
		typeID      string
		year, month int
	}

	keep := make(map[period]string)
	for _, row := range rows {
		key := period{typeID: row.BudgetTypeID, year: row.Year, month: row.Month}
		survivor, seen := keep[key]
		if !seen {
			keep[key] = row.ID
			continue
		}

		if err := tx.Exec("UPDATE expenses SET budget_total_id = ? WHERE budget_total_id = ?", survivor, row.ID).Error; err != nil {
			return fmt.Errorf("move expenses of %s: %w", row.ID, err)
		}
		if err := tx.Exec("DELETE FROM budget_totals WHERE id = ?", row.ID).Error; err != nil {
			return fmt.Errorf("delete duplicate total %s: %w", row.ID, err)
		}
	}
	return nil
}
