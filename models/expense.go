package models

import (
	"time"

	"gorm.io/gorm"
)

type ExpenseStatus string

const (
	ExpensePending  ExpenseStatus = "pending"
	ExpenseApproved ExpenseStatus = "approved"
	ExpenseRejected ExpenseStatus = "rejected"
)

type Expense struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	Title      string         `json:"title"`
	Category   string         `json:"category"` // e.g., "travel", "office", "software"
	Amount     float64        `json:"amount"`
	IncurredAt time.Time      `json:"incurred_at"`
	Status     ExpenseStatus  `json:"status"`
	CreatedBy  uint           `json:"created_by"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.Status == "" {
		e.Status = ExpensePending
	}
	return nil
}
