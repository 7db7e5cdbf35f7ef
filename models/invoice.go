package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type InvoiceStatus string

const (
	InvoiceDraft     InvoiceStatus = "draft"
	InvoiceSent      InvoiceStatus = "sent"
	InvoicePaid      InvoiceStatus = "paid"
	InvoiceCancelled InvoiceStatus = "cancelled"
)

type Invoice struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Number    string         `json:"number" gorm:"unique"`
	ClientID  uint           `json:"client_id"`
	Client    Client         `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	Amount    float64        `json:"amount"`
	Tax       float64        `json:"tax"`
	Status    InvoiceStatus  `json:"status"`
	DueDate   *time.Time     `json:"due_date,omitempty"`
	PaidAt    *time.Time     `json:"paid_at,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.Status == "" {
		i.Status = InvoiceDraft
	}
	return nil
}

// Total returns amount plus tax.
func (i *Invoice) Total() float64 {
	return i.Amount + i.Tax
}

// MarkPaid records a payment against the invoice and flips its status.
// Paying an already-paid or cancelled invoice is rejected.
func (i *Invoice) MarkPaid(tx *gorm.DB, payment *Payment) error {
	if i.Status == InvoicePaid {
		return fmt.Errorf("invoice %s is already paid", i.Number)
	}
	if i.Status == InvoiceCancelled {
		return fmt.Errorf("invoice %s is cancelled", i.Number)
	}

	now := time.Now()
	payment.InvoiceID = i.ID
	payment.ClientID = i.ClientID
	if payment.PaidAt.IsZero() {
		payment.PaidAt = now
	}
	if err := tx.Create(payment).Error; err != nil {
		return err
	}

	i.Status = InvoicePaid
	i.PaidAt = &now
	return tx.Save(i).Error
}
