package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "dompet/internal/errors"
	"dompet/internal/models"
)

// allowed column names for partial other-expense updates.
var otherExpenseColumns = map[string]bool{
	"amount":       true,
	"expense_date": true,
	"description":  true,
	"category":     true,
}

// otherExpenseService handles ad-hoc parking/gas expense records.
type otherExpenseService struct {
	db *gorm.DB
}

// NewOtherExpenseService creates a new OtherExpenseServicer.
func NewOtherExpenseService(db *gorm.DB) OtherExpenseServicer {
	return &otherExpenseService{db: db}
}

// CreateOtherExpense records an expense against a cycle.
func (s *otherExpenseService) CreateOtherExpense(cycleID uint, category models.ExpenseCategory, amount int64, expenseDate string, description *string) (*models.OtherExpense, error) {
	var cycle models.Cycle
	if err := s.db.First(&cycle, cycleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCycleNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	expense := &models.OtherExpense{
		CycleID:     cycleID,
		Category:    category,
		Amount:      amount,
		ExpenseDate: expenseDate,
		Description: description,
	}
	if err := s.db.Create(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expense, nil
}

// UpdateOtherExpense applies a partial update to an expense.
func (s *otherExpenseService) UpdateOtherExpense(id uint, updates map[string]interface{}) (*models.OtherExpense, error) {
	filtered := make(map[string]interface{}, len(updates))
	for k, v := range updates {
		if otherExpenseColumns[k] {
			filtered[k] = v
		}
	}
	if len(filtered) == 0 {
		return nil, apperrors.ErrNoFieldsToUpdate
	}

	var expense models.OtherExpense
	if err := s.db.First(&expense, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExpenseNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.db.Model(&expense).Updates(filtered).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.db.First(&expense, id).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &expense, nil
}

// DeleteOtherExpense removes an expense record.
func (s *otherExpenseService) DeleteOtherExpense(id uint) error {
	result := s.db.Delete(&models.OtherExpense{}, id)
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrExpenseNotFound
	}
	return nil
}
