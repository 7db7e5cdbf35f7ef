package services

import (
	"log"

	"github.com/bizdesk/bizdesk-api/models"
	"github.com/bizdesk/bizdesk-api/redis"
	"gorm.io/gorm"
)

// NotificationEvent is the payload fanned out to every recipient.
type NotificationEvent struct {
	Title       string
	Description string
	Type        string
	Link        string
}

// NotifyFanOut writes one notification row for the primary user plus every
// user holding an elevated role, deduplicated by user id. It is strictly
// best-effort: failures are logged and swallowed so the triggering business
// operation always succeeds regardless.
func NotifyFanOut(database *gorm.DB, primaryUserID uint, event NotificationEvent) {
	recipients := make([]uint, 0, 4)
	seen := make(map[uint]bool)

	var primary models.User
	if err := database.First(&primary, primaryUserID).Error; err != nil {
		log.Printf("notification fan-out: primary user %d not found: %v", primaryUserID, err)
	} else {
		recipients = append(recipients, primary.ID)
		seen[primary.ID] = true
	}

	var elevatedRoles []models.Role
	if err := database.Where("is_elevated = ?", true).Find(&elevatedRoles).Error; err != nil {
		log.Printf("notification fan-out: failed to load elevated roles: %v", err)
	} else if len(elevatedRoles) > 0 {
		roleIDs := make([]uint, 0, len(elevatedRoles))
		for _, role := range elevatedRoles {
			roleIDs = append(roleIDs, role.ID)
		}

		var elevatedUsers []models.User
		if err := database.Where("role_id IN (?)", roleIDs).Find(&elevatedUsers).Error; err != nil {
			log.Printf("notification fan-out: failed to load elevated users: %v", err)
		} else {
			for _, user := range elevatedUsers {
				if !seen[user.ID] {
					recipients = append(recipients, user.ID)
					seen[user.ID] = true
				}
			}
		}
	}

	if len(recipients) == 0 {
		log.Printf("notification fan-out: no recipients for %s event, skipping", event.Type)
		return
	}

	notifications := make([]models.Notification, 0, len(recipients))
	for _, userID := range recipients {
		notifications = append(notifications, models.Notification{
			UserID:      userID,
			Title:       event.Title,
			Description: event.Description,
			Type:        event.Type,
			Link:        event.Link,
			IsRead:      false,
		})
	}

	err := database.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&notifications).Error
	})
	if err != nil {
		log.Printf("notification fan-out: failed to write %s notifications: %v", event.Type, err)
		return
	}

	// Unread counts changed for everyone in the audience.
	for _, userID := range recipients {
		redis.InvalidateUnreadCount(userID)
	}
}
