package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type TicketStatus string

const (
	StatusOpen       TicketStatus = "open"
	StatusInProgress TicketStatus = "in_progress"
	StatusClosed     TicketStatus = "closed"
)

type TicketPriority string

const (
	PriorityLow    TicketPriority = "low"
	PriorityMedium TicketPriority = "medium"
	PriorityHigh   TicketPriority = "high"
)

// TicketCategory routes tickets: a category bound to a fixed assignee always
// wins over a manually chosen user at creation time.
type TicketCategory struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	Name       string         `json:"name" gorm:"unique"` // slug, e.g., "gst-filing"
	Label      string         `json:"label"`
	AssigneeID *uint          `json:"assignee_id"`
	Assignee   *User          `json:"assignee,omitempty" gorm:"foreignKey:AssigneeID"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// Assignee is the responsible-user snapshot carried on a ticket. A ticket
// always has exactly one assignee once created.
type Assignee struct {
	AssigneeID     uint   `json:"assignee_id"`
	AssigneeName   string `json:"assignee_name"`
	AssigneeMobile string `json:"assignee_mobile"`
}

type Ticket struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Number      string         `json:"number" gorm:"uniqueIndex"` // zero-padded, e.g., "000042"
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Client      ClientSnapshot `json:"client" gorm:"embedded;embeddedPrefix:client_"`
	Priority    TicketPriority `json:"priority"`
	Status      TicketStatus   `json:"status"`
	Category    string         `json:"category"`
	Assignee    Assignee       `json:"assignee" gorm:"embedded"`
	DueDate     *time.Time     `json:"due_date,omitempty"`
	Attachment  string         `json:"attachment,omitempty"`
	Source      string         `json:"source,omitempty"`
	Remarks     []TicketRemark `json:"remarks,omitempty" gorm:"foreignKey:TicketID"`
	ClosedAt    *time.Time     `json:"closed_at,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// TicketRemark is an append-only comment on a ticket. Remarks are never
// edited or removed; concurrent appends both survive.
type TicketRemark struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	TicketID   uint      `json:"ticket_id" gorm:"index"`
	AuthorID   uint      `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Comment    string    `json:"comment"`
	Attachment string    `json:"attachment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func (t *Ticket) BeforeCreate(tx *gorm.DB) error {
	if t.Status == "" {
		t.Status = StatusOpen
	}
	if t.Priority == "" {
		t.Priority = PriorityMedium
	}
	return nil
}

// ValidStatus reports whether s is one of the known ticket statuses.
func ValidStatus(s TicketStatus) bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusClosed:
		return true
	}
	return false
}

// UpdateStatus moves the ticket to newStatus and persists it. Any move
// between known statuses is allowed, including reopening a closed ticket.
// The first transition to closed stamps ClosedAt; re-closing later keeps
// the original stamp.
func (t *Ticket) UpdateStatus(tx *gorm.DB, newStatus TicketStatus) error {
	if !ValidStatus(newStatus) {
		return fmt.Errorf("invalid ticket status: %s", newStatus)
	}

	t.Status = newStatus
	if newStatus == StatusClosed && t.ClosedAt == nil {
		now := time.Now()
		t.ClosedAt = &now
	}

	return tx.Save(t).Error
}
