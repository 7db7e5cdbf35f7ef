package models

import (
	"fmt"

	"gorm.io/gorm"
)

// Counter is a named sequence row. Ticket numbers are allocated with an
// atomic in-database increment so two concurrent creations can never
// observe the same value.
type Counter struct {
	ID    uint   `json:"id" gorm:"primaryKey"`
	Name  string `json:"name" gorm:"unique"`
	Value uint64 `json:"value"`
}

const TicketCounter = "ticket_number"

// NextTicketNumber increments the ticket counter inside tx and returns the
// new value formatted as a zero-padded 6-digit string. Must be called
// within a transaction; the incremented row stays locked until commit.
func NextTicketNumber(tx *gorm.DB) (string, error) {
	result := tx.Model(&Counter{}).
		Where("name = ?", TicketCounter).
		Update("value", gorm.Expr("value + 1"))
	if result.Error != nil {
		return "", result.Error
	}
	if result.RowsAffected == 0 {
		if err := tx.Create(&Counter{Name: TicketCounter, Value: 1}).Error; err != nil {
			return "", err
		}
		return fmt.Sprintf("%06d", 1), nil
	}

	var counter Counter
	if err := tx.Where("name = ?", TicketCounter).First(&counter).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", counter.Value), nil
}
