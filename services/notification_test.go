package services

import (
	"testing"

	"github.com/bizdesk/bizdesk-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func elevatedRole(t *testing.T, database *gorm.DB) models.Role {
	t.Helper()
	role := models.Role{Name: "admin", Level: 1, IsElevated: true}
	require.NoError(t, database.Create(&role).Error)
	return role
}

func notificationCount(t *testing.T, database *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, database.Model(&models.Notification{}).Count(&count).Error)
	return count
}

func TestNotifyFanOutReachesPrimaryAndElevated(t *testing.T) {
	database := setupTestDB(t)
	admin := elevatedRole(t, database)

	target := createUser(t, database, "assignee", 0)
	boss := createUser(t, database, "boss", admin.ID)

	NotifyFanOut(database, target.ID, NotificationEvent{
		Title: "New ticket assigned",
		Type:  models.NotifTicketCreated,
	})

	assert.Equal(t, int64(2), notificationCount(t, database))

	var rows []models.Notification
	require.NoError(t, database.Order("user_id asc").Find(&rows).Error)
	ids := []uint{rows[0].UserID, rows[1].UserID}
	assert.Contains(t, ids, target.ID)
	assert.Contains(t, ids, boss.ID)
	for _, row := range rows {
		assert.False(t, row.IsRead)
	}
}

func TestNotifyFanOutDeduplicatesElevatedPrimary(t *testing.T) {
	database := setupTestDB(t)
	admin := elevatedRole(t, database)

	// Primary target holds the elevated role; exactly one row expected
	boss := createUser(t, database, "boss", admin.ID)

	NotifyFanOut(database, boss.ID, NotificationEvent{
		Title: "Ticket status changed",
		Type:  models.NotifTicketUpdated,
	})

	assert.Equal(t, int64(1), notificationCount(t, database))
}

func TestNotifyFanOutSkipsEmptyAudience(t *testing.T) {
	database := setupTestDB(t)

	// Unknown primary user and no elevated roles: nothing written, no panic
	assert.NotPanics(t, func() {
		NotifyFanOut(database, 4242, NotificationEvent{
			Title: "Orphan event",
			Type:  models.NotifGeneral,
		})
	})

	assert.Equal(t, int64(0), notificationCount(t, database))
}

func TestNotifyFanOutSurvivesMissingPrimary(t *testing.T) {
	database := setupTestDB(t)
	admin := elevatedRole(t, database)
	boss := createUser(t, database, "boss", admin.ID)

	// Primary lookup misses but elevated users still get notified
	NotifyFanOut(database, 4242, NotificationEvent{
		Title: "Ticket status changed",
		Type:  models.NotifTicketUpdated,
	})

	var rows []models.Notification
	require.NoError(t, database.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, boss.ID, rows[0].UserID)
}
