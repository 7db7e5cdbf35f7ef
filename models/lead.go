package models

import (
	"time"

	"gorm.io/gorm"
)

type LeadStatus string

const (
	LeadNew       LeadStatus = "new"
	LeadContacted LeadStatus = "contacted"
	LeadQualified LeadStatus = "qualified"
	LeadConverted LeadStatus = "converted"
	LeadLost      LeadStatus = "lost"
)

type Lead struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	FirmName      string         `json:"firm_name"`
	ContactPerson string         `json:"contact_person"`
	Email         string         `json:"email"`
	Mobile        string         `json:"mobile"`
	State         string         `json:"state"`
	Status        LeadStatus     `json:"status"`
	Notes         string         `json:"notes,omitempty"`
	ClientID      *uint          `json:"client_id,omitempty"` // set on conversion
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

func (l *Lead) BeforeCreate(tx *gorm.DB) error {
	if l.Status == "" {
		l.Status = LeadNew
	}
	return nil
}
