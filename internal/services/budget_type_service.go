package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "quickbudg/internal/errors"
	"quickbudg/internal/events"
	"quickbudg/internal/models"
	"quickbudg/internal/pagination"
)

// budgetTypeService is the registry of named budget categories.
type budgetTypeService struct {
	db  *gorm.DB
	bus *events.Bus
}

// NewBudgetTypeService creates a new BudgetTypeServicer.
func NewBudgetTypeService(db *gorm.DB, bus *events.Bus) BudgetTypeServicer {
	return &budgetTypeService{db: db, bus: bus}
}

// FindByName returns the budget type with exactly the given name.
func (s *budgetTypeService) FindByName(name string) (*models.BudgetType, error) {
	return findBudgetTypeByName(s.db, name)
}

// FindByID returns the budget type with the given id.
func (s *budgetTypeService) FindByID(id string) (*models.BudgetType, error) {
	return findBudgetTypeByID(s.db, id)
}

// GetOrCreate returns the budget type named name, creating it if none exists.
func (s *budgetTypeService) GetOrCreate(name string) (*models.BudgetType, error) {
	var (
		budgetType *models.BudgetType
		created    bool
	)
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var txErr error
		budgetType, created, txErr = getOrCreateBudgetTypeWithDB(tx, name)
		return txErr
	})
	if err != nil {
		return nil, err
	}

	if created {
		s.bus.Publish(events.Change{Kind: events.KindCreated, Entity: events.EntityBudgetType, ID: budgetType.ID})
	}
	return budgetType, nil
}

// ListBudgetTypes returns a page of budget types ordered by name.
func (s *budgetTypeService) ListBudgetTypes(page pagination.PageRequest) (*pagination.PageResponse[models.BudgetType], error) {
	page.Defaults()

	var totalItems int64
	if err := s.db.Model(&models.BudgetType{}).Count(&totalItems).Error; err != nil {
		return nil, storeError("count budget types", err)
	}

	var budgetTypes []models.BudgetType
	if err := s.db.Order("name").Scopes(pagination.Paginate(page)).Find(&budgetTypes).Error; err != nil {
		return nil, storeError("list budget types", err)
	}

	result := pagination.NewPageResponse(budgetTypes, page.Page, page.PageSize, totalItems)
	return &result, nil
}

func findBudgetTypeByName(db *gorm.DB, name string) (*models.BudgetType, error) {
	var budgetType models.BudgetType
	if err := db.Where("name = ?", name).Order("rowid").Take(&budgetType).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBudgetTypeNotFound
		}
		return nil, storeError("find budget type by name", err)
	}
	return &budgetType, nil
}

func findBudgetTypeByID(db *gorm.DB, id string) (*models.BudgetType, error) {
	var budgetType models.BudgetType
	if err := db.Where("id = ?", id).Take(&budgetType).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBudgetTypeNotFound
		}
		return nil, storeError("find budget type", err)
	}
	return &budgetType, nil
}

// getOrCreateBudgetTypeWithDB runs the check-then-create on the given
// connection, so callers can make it part of a larger transaction.
func getOrCreateBudgetTypeWithDB(tx *gorm.DB, name string) (*models.BudgetType, bool, error) {
	if strings.TrimSpace(name) == "" {
		return nil, false, apperrors.WithMessage(apperrors.ErrInvalidInput, "budget type name is required")
	}

	existing, err := findBudgetTypeByName(tx, name)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, apperrors.ErrBudgetTypeNotFound) {
		return nil, false, err
	}

	budgetType := &models.BudgetType{Name: name}
	if err := tx.Create(budgetType).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Created by another writer since the lookup.
			if existing, findErr := findBudgetTypeByName(tx, name); findErr == nil {
				return existing, false, nil
			}
		}
		return nil, false, storeError("create budget type", err)
	}
	return budgetType, true, nil
}
