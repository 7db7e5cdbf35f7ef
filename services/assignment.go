package services

import (
	"errors"
	"fmt"

	"github.com/bizdesk/bizdesk-api/models"
	"gorm.io/gorm"
)

// ErrNoAssignee is returned when neither the category binding nor a manual
// choice yields a responsible user. Ticket creation must fail rather than
// default to anyone.
var ErrNoAssignee = errors.New("no assignee determinable")

// ResolveAssignee determines the single responsible user for a ticket.
// A category bound to a fixed assignee always wins; the manual choice is
// ignored even if supplied, so a stale form value can never override
// category routing.
func ResolveAssignee(database *gorm.DB, categoryName string, manualUserID uint) (models.Assignee, error) {
	var category models.TicketCategory
	if err := database.Where("name = ?", categoryName).First(&category).Error; err != nil {
		return models.Assignee{}, fmt.Errorf("ticket category %q not found", categoryName)
	}

	if category.AssigneeID != nil {
		var fixed models.User
		if err := database.First(&fixed, *category.AssigneeID).Error; err != nil {
			return models.Assignee{}, fmt.Errorf("fixed assignee for category %q not found", categoryName)
		}
		return models.Assignee{
			AssigneeID:     fixed.ID,
			AssigneeName:   fixed.Name,
			AssigneeMobile: fixed.Mobile,
		}, nil
	}

	if manualUserID != 0 {
		var user models.User
		if err := database.First(&user, manualUserID).Error; err != nil {
			return models.Assignee{}, fmt.Errorf("user %d not found", manualUserID)
		}
		return models.Assignee{
			AssigneeID:     user.ID,
			AssigneeName:   user.Name,
			AssigneeMobile: user.Mobile,
		}, nil
	}

	return models.Assignee{}, ErrNoAssignee
}
