package models

import (
	"testing"

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
		&User{}, &Role{}, &Permission{},
		&Client{}, &TicketCategory{}, &Ticket{}, &TicketRemark{},
		&Counter{}, &Notification{},
	))
	return database
}

func TestTicketDefaultsOnCreate(t *testing.T) {
	database := setupTestDB(t)

	ticket := Ticket{Number: "000001", Title: "GST filing overdue"}
	require.NoError(t, database.Create(&ticket).Error)

	assert.Equal(t, StatusOpen, ticket.Status)
	assert.Equal(t, PriorityMedium, ticket.Priority)
	assert.Nil(t, ticket.ClosedAt)
}

func TestUpdateStatusStampsClosedAtOnce(t *testing.T) {
	database := setupTestDB(t)

	ticket := Ticket{Number: "000001", Title: "Portal login broken"}
	require.NoError(t, database.Create(&ticket).Error)

	require.NoError(t, ticket.UpdateStatus(database, StatusClosed))
	require.NotNil(t, ticket.ClosedAt)
	firstClose := *ticket.ClosedAt

	// Reopening is allowed and keeps the original close stamp
	require.NoError(t, ticket.UpdateStatus(database, StatusOpen))
	assert.Equal(t, StatusOpen, ticket.Status)
	require.NotNil(t, ticket.ClosedAt)

	// Closing again must not overwrite the first stamp
	require.NoError(t, ticket.UpdateStatus(database, StatusClosed))
	assert.Equal(t, firstClose, *ticket.ClosedAt)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	database := setupTestDB(t)

	ticket := Ticket{Number: "000001", Title: "Misc"}
	require.NoError(t, database.Create(&ticket).Error)

	err := ticket.UpdateStatus(database, TicketStatus("resolved"))
	assert.Error(t, err)
}

func TestNextTicketNumberIsSequentialAndPadded(t *testing.T) {
	database := setupTestDB(t)
	require.NoError(t, database.Create(&Counter{Name: TicketCounter, Value: 0}).Error)

	var numbers []string
	for i := 0; i < 3; i++ {
		err := database.Transaction(func(tx *gorm.DB) error {
			number, err := NextTicketNumber(tx)
			if err != nil {
				return err
			}
			numbers = append(numbers, number)
			return nil
		})
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"000001", "000002", "000003"}, numbers)
}

func TestNextTicketNumberCreatesMissingCounter(t *testing.T) {
	database := setupTestDB(t)

	err := database.Transaction(func(tx *gorm.DB) error {
		number, err := NextTicketNumber(tx)
		if err != nil {
			return err
		}
		assert.Equal(t, "000001", number)
		return nil
	})
	require.NoError(t, err)
}
