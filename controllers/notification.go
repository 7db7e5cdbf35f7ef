package controllers

import (
	"github.com/bizdesk/bizdesk-api/db"
	"github.com/bizdesk/bizdesk-api/models"
	"github.com/bizdesk/bizdesk-api/redis"
	"github.com/gofiber/fiber/v2"
)

// GetMyNotifications returns the caller's notifications, newest first
func GetMyNotifications(c *fiber.Ctx) error {
	userID, _ := currentUser(c)

	var notifications []models.Notification
	if err := db.DB.Where("user_id = ?", userID).Order("created_at desc").Find(&notifications).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch notifications",
		})
	}
	return c.JSON(notifications)
}

// GetUnreadCount returns the caller's unread notification count. The count
// is cached in Redis and falls back to a DB count on a miss.
func GetUnreadCount(c *fiber.Ctx) error {
	userID, _ := currentUser(c)

	if count, ok := redis.GetUnreadCount(userID); ok {
		return c.JSON(fiber.Map{"unread": count})
	}

	var count int64
	if err := db.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to count notifications",
		})
	}
	redis.SetUnreadCount(userID, count)

	return c.JSON(fiber.Map{"unread": count})
}

// MarkNotificationRead flips a single notification's read flag
func MarkNotificationRead(c *fiber.Ctx) error {
	userID, _ := currentUser(c)
	id := c.Params("id")

	var notification models.Notification
	if err := db.DB.Where("id = ? AND user_id = ?", id, userID).First(&notification).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Notification not found",
		})
	}

	if err := db.DB.Model(&notification).Update("is_read", true).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to mark notification read",
		})
	}
	redis.InvalidateUnreadCount(userID)

	return c.JSON(notification)
}

// MarkAllNotificationsRead flips every unread notification for the caller
func MarkAllNotificationsRead(c *fiber.Ctx) error {
	userID, _ := currentUser(c)

	if err := db.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to mark notifications read",
		})
	}
	redis.InvalidateUnreadCount(userID)

	return c.JSON(fiber.Map{
		"message": "All notifications marked read",
	})
}
