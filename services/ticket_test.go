package services

import (
	"testing"

	"github.com/bizdesk/bizdesk-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func ticketFixtures(t *testing.T, database *gorm.DB) (models.Client, models.User) {
	t.Helper()

	client := models.Client{
		FirmName:      "Sharma Traders",
		ContactPerson: "R Sharma",
		Email:         "sharma@example.com",
		Mobile:        "9876512345",
		State:         "MH",
		Type:          "proprietorship",
	}
	require.NoError(t, database.Create(&client).Error)

	assignee := createUser(t, database, "handler", 0)

	category := models.TicketCategory{Name: "general", Label: "General"}
	require.NoError(t, database.Create(&category).Error)

	require.NoError(t, database.Create(&models.Counter{Name: models.TicketCounter, Value: 0}).Error)

	return client, assignee
}

func TestCreateTicketHappyPath(t *testing.T) {
	database := setupTestDB(t)
	client, assignee := ticketFixtures(t, database)

	ticket, err := CreateTicket(database, CreateTicketInput{
		Title:            "GST return pending",
		Description:      "Q2 return not yet filed",
		ClientID:         client.ID,
		Category:         "general",
		ManualAssigneeID: assignee.ID,
		CreatorID:        assignee.ID,
		CreatorName:      assignee.Name,
	})
	require.NoError(t, err)

	assert.Equal(t, "000001", ticket.Number)
	assert.Equal(t, models.StatusOpen, ticket.Status)
	assert.Equal(t, models.PriorityMedium, ticket.Priority)
	assert.Equal(t, assignee.ID, ticket.Assignee.AssigneeID)

	// Client details are snapshotted, not referenced
	assert.Equal(t, client.ID, ticket.Client.ClientID)
	assert.Equal(t, "Sharma Traders", ticket.Client.FirmName)

	// Description is seeded as the first remark
	var remarks []models.TicketRemark
	require.NoError(t, database.Where("ticket_id = ?", ticket.ID).Find(&remarks).Error)
	require.Len(t, remarks, 1)
	assert.Equal(t, "Q2 return not yet filed", remarks[0].Comment)

	// Assignee got a creation notification
	var notifications []models.Notification
	require.NoError(t, database.Where("user_id = ?", assignee.ID).Find(&notifications).Error)
	require.Len(t, notifications, 1)
	assert.Equal(t, models.NotifTicketCreated, notifications[0].Type)
}

func TestCreateTicketNumbersAreMonotonic(t *testing.T) {
	database := setupTestDB(t)
	client, assignee := ticketFixtures(t, database)

	input := CreateTicketInput{
		Title:            "Recurring issue",
		Description:      "again",
		ClientID:         client.ID,
		Category:         "general",
		ManualAssigneeID: assignee.ID,
	}

	first, err := CreateTicket(database, input)
	require.NoError(t, err)
	second, err := CreateTicket(database, input)
	require.NoError(t, err)
	third, err := CreateTicket(database, input)
	require.NoError(t, err)

	assert.Equal(t, "000001", first.Number)
	assert.Equal(t, "000002", second.Number)
	assert.Equal(t, "000003", third.Number)
}

func TestCreateTicketRequiresClient(t *testing.T) {
	database := setupTestDB(t)
	_, assignee := ticketFixtures(t, database)

	_, err := CreateTicket(database, CreateTicketInput{
		Title:            "Orphan ticket",
		Description:      "no such client",
		ClientID:         9999,
		Category:         "general",
		ManualAssigneeID: assignee.ID,
	})
	assert.Error(t, err)

	// Nothing was written
	var count int64
	database.Model(&models.Ticket{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCreateTicketRequiresResolvableAssignee(t *testing.T) {
	database := setupTestDB(t)
	client, _ := ticketFixtures(t, database)

	_, err := CreateTicket(database, CreateTicketInput{
		Title:       "Unroutable",
		Description: "nobody to own this",
		ClientID:    client.ID,
		Category:    "general",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoAssignee)
}

func TestChangeTicketStatusNotifiesAssignee(t *testing.T) {
	database := setupTestDB(t)
	client, assignee := ticketFixtures(t, database)

	ticket, err := CreateTicket(database, CreateTicketInput{
		Title:            "Login issue",
		Description:      "cannot log in",
		ClientID:         client.ID,
		Category:         "general",
		ManualAssigneeID: assignee.ID,
	})
	require.NoError(t, err)

	updated, err := ChangeTicketStatus(database, ticket.ID, models.StatusClosed)
	require.NoError(t, err)
	assert.Equal(t, models.StatusClosed, updated.Status)
	require.NotNil(t, updated.ClosedAt)

	var count int64
	database.Model(&models.Notification{}).
		Where("user_id = ? AND type = ?", assignee.ID, models.NotifTicketUpdated).
		Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestUpdateTicketFieldsNotifiesAssignee(t *testing.T) {
	database := setupTestDB(t)
	client, assignee := ticketFixtures(t, database)

	ticket, err := CreateTicket(database, CreateTicketInput{
		Title:            "before",
		Description:      "typo in the title",
		ClientID:         client.ID,
		Category:         "general",
		ManualAssigneeID: assignee.ID,
	})
	require.NoError(t, err)

	// A title-only edit, no status change
	updated, err := UpdateTicketFields(database, ticket.ID, map[string]interface{}{
		"title": "after",
	})
	require.NoError(t, err)
	assert.Equal(t, "after", updated.Title)
	assert.Equal(t, models.StatusOpen, updated.Status)

	var notifications []models.Notification
	require.NoError(t, database.
		Where("user_id = ? AND type = ?", assignee.ID, models.NotifTicketUpdated).
		Find(&notifications).Error)
	require.Len(t, notifications, 1)
	// The notification reports the ticket's current status
	assert.Contains(t, notifications[0].Description, string(models.StatusOpen))
}

func TestUpdateTicketFieldsEmptyUpdateIsSilent(t *testing.T) {
	database := setupTestDB(t)
	client, assignee := ticketFixtures(t, database)

	ticket, err := CreateTicket(database, CreateTicketInput{
		Title:            "unchanged",
		Description:      "x",
		ClientID:         client.ID,
		Category:         "general",
		ManualAssigneeID: assignee.ID,
	})
	require.NoError(t, err)

	_, err = UpdateTicketFields(database, ticket.ID, map[string]interface{}{})
	require.NoError(t, err)

	var count int64
	database.Model(&models.Notification{}).
		Where("user_id = ? AND type = ?", assignee.ID, models.NotifTicketUpdated).
		Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestAddTicketRemarkIsAdditive(t *testing.T) {
	database := setupTestDB(t)
	client, assignee := ticketFixtures(t, database)

	ticket, err := CreateTicket(database, CreateTicketInput{
		Title:            "Slow portal",
		Description:      "pages time out",
		ClientID:         client.ID,
		Category:         "general",
		ManualAssigneeID: assignee.ID,
	})
	require.NoError(t, err)

	// Two appends from different authors; both must survive
	_, err = AddTicketRemark(database, ticket.ID, models.TicketRemark{
		AuthorID: assignee.ID, AuthorName: assignee.Name, Comment: "Looking into it",
	})
	require.NoError(t, err)
	_, err = AddTicketRemark(database, ticket.ID, models.TicketRemark{
		AuthorID: 77, AuthorName: "someone-else", Comment: "Any update?",
	})
	require.NoError(t, err)

	var remarks []models.TicketRemark
	require.NoError(t, database.Where("ticket_id = ?", ticket.ID).Order("created_at asc").Find(&remarks).Error)
	// Initial description remark plus the two appends
	assert.Len(t, remarks, 3)
}

func TestAddTicketRemarkRejectsEmptyComment(t *testing.T) {
	database := setupTestDB(t)
	client, assignee := ticketFixtures(t, database)

	ticket, err := CreateTicket(database, CreateTicketInput{
		Title:            "Misc",
		Description:      "misc",
		ClientID:         client.ID,
		Category:         "general",
		ManualAssigneeID: assignee.ID,
	})
	require.NoError(t, err)

	_, err = AddTicketRemark(database, ticket.ID, models.TicketRemark{AuthorID: 1})
	assert.Error(t, err)
}

func TestReassignTicketSwapsAssigneeOnly(t *testing.T) {
	database := setupTestDB(t)
	client, assignee := ticketFixtures(t, database)
	replacement := createUser(t, database, "replacement", 0)

	ticket, err := CreateTicket(database, CreateTicketInput{
		Title:            "Handover",
		Description:      "original owner on leave",
		ClientID:         client.ID,
		Category:         "general",
		ManualAssigneeID: assignee.ID,
	})
	require.NoError(t, err)

	updated, err := ReassignTicket(database, ticket.ID, replacement.ID)
	require.NoError(t, err)
	assert.Equal(t, replacement.ID, updated.Assignee.AssigneeID)
	assert.Equal(t, replacement.Name, updated.Assignee.AssigneeName)
	assert.Equal(t, ticket.Number, updated.Number)
	assert.Equal(t, ticket.Title, updated.Title)

	var count int64
	database.Model(&models.Notification{}).Where("user_id = ?", replacement.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestReassignTicketUnknownUser(t *testing.T) {
	database := setupTestDB(t)
	client, assignee := ticketFixtures(t, database)

	ticket, err := CreateTicket(database, CreateTicketInput{
		Title:            "Handover",
		Description:      "x",
		ClientID:         client.ID,
		Category:         "general",
		ManualAssigneeID: assignee.ID,
	})
	require.NoError(t, err)

	_, err = ReassignTicket(database, ticket.ID, 9999)
	assert.Error(t, err)
}
