package models

// ExpenseCategory is the kind of ad-hoc transport expense.
type ExpenseCategory string

const (
	ExpenseCategoryParking ExpenseCategory = "parking"
	ExpenseCategoryGas     ExpenseCategory = "gas"
)

// OtherExpense is an ad-hoc parking or gas expense logged independently
// of the daily food budget. It contributes to cycle totals by category
// but never to per-day variance.
type OtherExpense struct {
	Base
	CycleID     uint            `gorm:"not null;index" json:"cycle_id"`
	Category    ExpenseCategory `gorm:"size:16;not null" json:"category"`
	Amount      int64           `gorm:"not null" json:"amount"`
	ExpenseDate string          `gorm:"size:10;not null" json:"expense_date"`
	Description *string         `json:"description"`

	Cycle Cycle `gorm:"foreignKey:CycleID;constraint:OnDelete:CASCADE" json:"-"`
}
