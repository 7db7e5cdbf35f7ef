package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/bizdesk/bizdesk-api/db"
	"github.com/bizdesk/bizdesk-api/models"
	"github.com/bizdesk/bizdesk-api/utils"
	"github.com/robfig/cron/v3"
)

// StartCronJobs initializes and starts the cron scheduler for due-date
// reminders
func StartCronJobs() {
	c := cron.New()
	// Run every hour to catch tickets and tasks due within the next day
	_, err := c.AddFunc("0 * * * *", sendDueReminders)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for due-date reminders")
}

// sendDueReminders emails assignees about tickets due within 24 hours
func sendDueReminders() {
	var tickets []models.Ticket
	now := time.Now()
	cutoff := now.Add(24 * time.Hour)

	err := db.DB.
		Where("status <> ? AND due_date IS NOT NULL AND due_date BETWEEN ? AND ?", models.StatusClosed, now, cutoff).
		Find(&tickets).Error
	if err != nil {
		log.Printf("Error fetching tickets for reminders: %v", err)
		return
	}

	for _, ticket := range tickets {
		var assignee models.User
		if err := db.DB.First(&assignee, ticket.Assignee.AssigneeID).Error; err != nil {
			log.Printf("Reminder: assignee %d not found for ticket %s", ticket.Assignee.AssigneeID, ticket.Number)
			continue
		}
		if err := sendReminderEmail(&ticket, &assignee); err != nil {
			log.Printf("Failed to send reminder for ticket %s: %v", ticket.Number, err)
			continue
		}
		log.Printf("Sent reminder for ticket %s to %s", ticket.Number, assignee.Email)
	}
}

// sendReminderEmail constructs and sends the reminder email
func sendReminderEmail(ticket *models.Ticket, assignee *models.User) error {
	subject := fmt.Sprintf("Reminder: Ticket %s due soon - %s", ticket.Number, ticket.Title)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder that the following ticket is due within 24 hours.</p>
		<ul>
			<li><strong>Ticket:</strong> %s</li>
			<li><strong>Title:</strong> %s</li>
			<li><strong>Client:</strong> %s</li>
			<li><strong>Priority:</strong> %s</li>
			<li><strong>Due:</strong> %s</li>
		</ul>
		<p>Best regards,</p>
		<p>BizDesk</p>
	`, assignee.Name, ticket.Number, ticket.Title, ticket.Client.FirmName,
		ticket.Priority, ticket.DueDate.Format("2006-01-02 15:04:05"))

	return utils.SendEmail(assignee.Email, subject, body)
}
