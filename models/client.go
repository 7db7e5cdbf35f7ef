package models

import (
	"time"

	"gorm.io/gorm"
)

type Client struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	FirmName      string         `json:"firm_name"`
	ContactPerson string         `json:"contact_person"`
	Email         string         `json:"email"`
	Mobile        string         `json:"mobile"`
	State         string         `json:"state"`
	Type          string         `json:"type"` // e.g., "proprietorship", "partnership", "pvt_ltd"
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// ClientSnapshot is the client detail embedded into a ticket at creation
// time. It is a copy, not a live reference; later edits to the client do
// not rewrite history on existing tickets.
type ClientSnapshot struct {
	ClientID      uint   `json:"client_id"`
	FirmName      string `json:"firm_name"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email"`
	Mobile        string `json:"mobile"`
	State         string `json:"state"`
	Type          string `json:"type"`
}

func (c *Client) Snapshot() ClientSnapshot {
	return ClientSnapshot{
		ClientID:      c.ID,
		FirmName:      c.FirmName,
		ContactPerson: c.ContactPerson,
		Email:         c.Email,
		Mobile:        c.Mobile,
		State:         c.State,
		Type:          c.Type,
	}
}
