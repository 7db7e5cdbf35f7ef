package models

import (
	"time"
)

// Notification event types.
const (
	NotifTicketCreated = "ticket_created"
	NotifTicketUpdated = "ticket_updated"
	NotifTaskAssigned  = "task_assigned"
	NotifGeneral       = "general"
)

type Notification struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"index"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	Link        string    `json:"link,omitempty"`
	IsRead      bool      `json:"is_read" gorm:"default:false"`
	CreatedAt   time.Time `json:"created_at"`
}
