package services

import (
	"errors"
	"testing"

	"github.com/bizdesk/bizdesk-api/models"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := database.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.AutoMigrate(
		&models.User{}, &models.Role{}, &models.Permission{},
		&models.Client{}, &models.TicketCategory{}, &models.Ticket{}, &models.TicketRemark{},
		&models.Counter{}, &models.Notification{},
	))
	return database
}

func createUser(t *testing.T, database *gorm.DB, name string, roleID uint) models.User {
	t.Helper()
	user := models.User{Name: name, Email: name + "@example.com", Mobile: "9876500000", RoleID: roleID}
	require.NoError(t, database.Create(&user).Error)
	return user
}

func TestResolveAssigneeCategoryBindingWins(t *testing.T) {
	database := setupTestDB(t)
	fixed := createUser(t, database, "fixed-owner", 0)
	manual := createUser(t, database, "manual-pick", 0)

	category := models.TicketCategory{Name: "gst-filing", Label: "GST Filing", AssigneeID: &fixed.ID}
	require.NoError(t, database.Create(&category).Error)

	// Manual selection must be ignored when the category is bound
	assignee, err := ResolveAssignee(database, "gst-filing", manual.ID)
	require.NoError(t, err)
	assert.Equal(t, fixed.ID, assignee.AssigneeID)
	assert.Equal(t, fixed.Name, assignee.AssigneeName)
}

func TestResolveAssigneeManualFallback(t *testing.T) {
	database := setupTestDB(t)
	manual := createUser(t, database, "manual-pick", 0)

	category := models.TicketCategory{Name: "general", Label: "General"}
	require.NoError(t, database.Create(&category).Error)

	assignee, err := ResolveAssignee(database, "general", manual.ID)
	require.NoError(t, err)
	assert.Equal(t, manual.ID, assignee.AssigneeID)
	assert.Equal(t, manual.Mobile, assignee.AssigneeMobile)
}

func TestResolveAssigneeUnknownManualUser(t *testing.T) {
	database := setupTestDB(t)

	category := models.TicketCategory{Name: "general", Label: "General"}
	require.NoError(t, database.Create(&category).Error)

	_, err := ResolveAssignee(database, "general", 9999)
	assert.Error(t, err)
}

func TestResolveAssigneeNoCandidate(t *testing.T) {
	database := setupTestDB(t)

	category := models.TicketCategory{Name: "general", Label: "General"}
	require.NoError(t, database.Create(&category).Error)

	_, err := ResolveAssignee(database, "general", 0)
	assert.True(t, errors.Is(err, ErrNoAssignee))
}

func TestResolveAssigneeUnknownCategory(t *testing.T) {
	database := setupTestDB(t)

	_, err := ResolveAssignee(database, "does-not-exist", 0)
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrNoAssignee))
}
