package services

import (
	"fmt"
	"log"
	"time"

	"github.com/bizdesk/bizdesk-api/models"
	"github.com/bizdesk/bizdesk-api/utils"
	"gorm.io/gorm"
)

// CreateTicketInput carries everything needed to open a ticket.
type CreateTicketInput struct {
	Title            string                `json:"title"`
	Description      string                `json:"description"`
	ClientID         uint                  `json:"client_id"`
	Category         string                `json:"category"`
	ManualAssigneeID uint                  `json:"assignee_id"`
	Priority         models.TicketPriority `json:"priority"`
	Status           models.TicketStatus   `json:"status"`
	DueDate          *time.Time            `json:"due_date"`
	Attachment       string                `json:"attachment"`
	Source           string                `json:"source"`
	CreatorID        uint                  `json:"-"`
	CreatorName      string                `json:"-"`
}

// CreateTicket validates the input, snapshots the client, resolves the
// assignee, allocates a sequential number and writes the ticket with its
// initial remark in one transaction. Notification fan-out and the
// assignment email run after the write and never fail the creation.
func CreateTicket(database *gorm.DB, input CreateTicketInput) (*models.Ticket, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("ticket title is required")
	}
	if input.Status != "" && !models.ValidStatus(input.Status) {
		return nil, fmt.Errorf("invalid ticket status: %s", input.Status)
	}

	var client models.Client
	if err := database.First(&client, input.ClientID).Error; err != nil {
		return nil, fmt.Errorf("client %d not found", input.ClientID)
	}

	assignee, err := ResolveAssignee(database, input.Category, input.ManualAssigneeID)
	if err != nil {
		return nil, err
	}

	var ticket models.Ticket
	err = database.Transaction(func(tx *gorm.DB) error {
		number, err := models.NextTicketNumber(tx)
		if err != nil {
			return err
		}

		ticket = models.Ticket{
			Number:      number,
			Title:       input.Title,
			Description: input.Description,
			Client:      client.Snapshot(),
			Priority:    input.Priority,
			Status:      input.Status,
			Category:    input.Category,
			Assignee:    assignee,
			DueDate:     input.DueDate,
			Attachment:  input.Attachment,
			Source:      input.Source,
			Remarks: []models.TicketRemark{{
				AuthorID:   input.CreatorID,
				AuthorName: input.CreatorName,
				Comment:    input.Description,
			}},
		}
		return tx.Create(&ticket).Error
	})
	if err != nil {
		return nil, err
	}

	NotifyFanOut(database, ticket.Assignee.AssigneeID, NotificationEvent{
		Title:       "New ticket assigned",
		Description: fmt.Sprintf("Ticket %s: %s", ticket.Number, ticket.Title),
		Type:        models.NotifTicketCreated,
		Link:        fmt.Sprintf("/support/tickets/%d", ticket.ID),
	})
	emailAssignee(database, &ticket, "You have been assigned a new ticket")

	return &ticket, nil
}

// UpdateTicketFields merges general field edits and notifies the current
// assignee about the change. Status moves go through ChangeTicketStatus
// instead so ClosedAt stamping is not bypassed.
func UpdateTicketFields(database *gorm.DB, ticketID uint, updates map[string]interface{}) (*models.Ticket, error) {
	var ticket models.Ticket
	if err := database.First(&ticket, ticketID).Error; err != nil {
		return nil, fmt.Errorf("ticket %d not found", ticketID)
	}

	if len(updates) == 0 {
		return &ticket, nil
	}

	if err := database.Model(&ticket).Updates(updates).Error; err != nil {
		return nil, err
	}
	if err := database.First(&ticket, ticketID).Error; err != nil {
		return nil, err
	}

	NotifyFanOut(database, ticket.Assignee.AssigneeID, NotificationEvent{
		Title:       "Ticket updated",
		Description: fmt.Sprintf("Ticket %s was updated, status %s", ticket.Number, ticket.Status),
		Type:        models.NotifTicketUpdated,
		Link:        fmt.Sprintf("/support/tickets/%d", ticket.ID),
	})

	return &ticket, nil
}

// ChangeTicketStatus moves a ticket through its lifecycle and notifies the
// current assignee.
func ChangeTicketStatus(database *gorm.DB, ticketID uint, newStatus models.TicketStatus) (*models.Ticket, error) {
	var ticket models.Ticket
	if err := database.First(&ticket, ticketID).Error; err != nil {
		return nil, fmt.Errorf("ticket %d not found", ticketID)
	}

	if err := ticket.UpdateStatus(database, newStatus); err != nil {
		return nil, err
	}

	NotifyFanOut(database, ticket.Assignee.AssigneeID, NotificationEvent{
		Title:       "Ticket status changed",
		Description: fmt.Sprintf("Ticket %s is now %s", ticket.Number, newStatus),
		Type:        models.NotifTicketUpdated,
		Link:        fmt.Sprintf("/support/tickets/%d", ticket.ID),
	})

	return &ticket, nil
}

// AddTicketRemark appends a remark to the ticket. Remarks are insert-only
// child rows, so two concurrent additions both survive.
func AddTicketRemark(database *gorm.DB, ticketID uint, remark models.TicketRemark) (*models.TicketRemark, error) {
	if remark.Comment == "" {
		return nil, fmt.Errorf("remark comment is required")
	}

	var ticket models.Ticket
	if err := database.First(&ticket, ticketID).Error; err != nil {
		return nil, fmt.Errorf("ticket %d not found", ticketID)
	}

	remark.TicketID = ticket.ID
	if err := database.Create(&remark).Error; err != nil {
		return nil, err
	}
	database.Model(&ticket).Update("updated_at", time.Now())

	NotifyFanOut(database, ticket.Assignee.AssigneeID, NotificationEvent{
		Title:       "New comment on ticket",
		Description: fmt.Sprintf("Ticket %s: %s commented", ticket.Number, remark.AuthorName),
		Type:        models.NotifTicketUpdated,
		Link:        fmt.Sprintf("/support/tickets/%d", ticket.ID),
	})

	return &remark, nil
}

// ReassignTicket swaps only the assignee snapshot and notifies the new
// assignee.
func ReassignTicket(database *gorm.DB, ticketID uint, userID uint) (*models.Ticket, error) {
	var ticket models.Ticket
	if err := database.First(&ticket, ticketID).Error; err != nil {
		return nil, fmt.Errorf("ticket %d not found", ticketID)
	}

	var user models.User
	if err := database.First(&user, userID).Error; err != nil {
		return nil, fmt.Errorf("user %d not found", userID)
	}

	ticket.Assignee = models.Assignee{
		AssigneeID:     user.ID,
		AssigneeName:   user.Name,
		AssigneeMobile: user.Mobile,
	}
	if err := database.Save(&ticket).Error; err != nil {
		return nil, err
	}

	NotifyFanOut(database, ticket.Assignee.AssigneeID, NotificationEvent{
		Title:       "Ticket reassigned to you",
		Description: fmt.Sprintf("Ticket %s: %s", ticket.Number, ticket.Title),
		Type:        models.NotifTicketUpdated,
		Link:        fmt.Sprintf("/support/tickets/%d", ticket.ID),
	})
	emailAssignee(database, &ticket, "A ticket has been reassigned to you")

	return &ticket, nil
}

// emailAssignee sends a best-effort mail to the ticket's assignee. Failures
// are logged and swallowed.
func emailAssignee(database *gorm.DB, ticket *models.Ticket, subject string) {
	var assignee models.User
	if err := database.First(&assignee, ticket.Assignee.AssigneeID).Error; err != nil {
		log.Printf("assignment email: assignee %d not found: %v", ticket.Assignee.AssigneeID, err)
		return
	}

	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Ticket <strong>%s</strong> needs your attention.</p>
		<ul>
			<li><strong>Title:</strong> %s</li>
			<li><strong>Client:</strong> %s</li>
			<li><strong>Priority:</strong> %s</li>
			<li><strong>Status:</strong> %s</li>
		</ul>
		<p>Best regards,</p>
		<p>BizDesk</p>
	`, assignee.Name, ticket.Number, ticket.Title, ticket.Client.FirmName, ticket.Priority, ticket.Status)

	if err := utils.SendEmail(assignee.Email, fmt.Sprintf("%s - %s", subject, ticket.Number), body); err != nil {
		log.Printf("assignment email: failed to send to %s: %v", assignee.Email, err)
	}
}
