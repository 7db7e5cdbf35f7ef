package models

import (
	"time"
)

type Payment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	InvoiceID uint      `json:"invoice_id" gorm:"index"`
	Invoice   Invoice   `json:"invoice,omitempty" gorm:"foreignKey:InvoiceID"`
	ClientID  uint      `json:"client_id"`
	Client    Client    `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	Amount    float64   `json:"amount"`
	Mode      string    `json:"mode"` // e.g., "upi", "bank_transfer", "cash"
	Reference string    `json:"reference,omitempty"`
	PaidAt    time.Time `json:"paid_at"`
	CreatedAt time.Time `json:"created_at"`
}
