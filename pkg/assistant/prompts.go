package assistant

import (
	"fmt"
	"strings"
	"time"
)

// Prompt context limits for the chat fallback. Stores may return more
// rows; only this many are embedded in the prompt.
const (
	chatPromptTasks  = 5
	chatPromptEmails = 3
	chatPromptEvents = 3
)

func buildChatSystemPrompt(user User, tasks []Task, emails []Email, events []Event) string {
	var prompt strings.Builder

	prompt.WriteString(fmt.Sprintf("You are an AI assistant for %s. You help with tasks, emails, and calendar management.\n\n", user.Name))
	prompt.WriteString("Current Context:\n")
	prompt.WriteString(fmt.Sprintf("- User: %s (%s)\n", user.Name, user.Email))
	prompt.WriteString(fmt.Sprintf("- Timezone: %s\n", user.Timezone))

	prompt.WriteString(fmt.Sprintf("\nRecent Tasks (%d):\n", len(tasks)))
	for i, task := range tasks {
		if i >= chatPromptTasks {
			break
		}
		prompt.WriteString(fmt.Sprintf("- %s (%s, %s)\n", task.Title, task.Priority, task.Status))
	}

	prompt.WriteString(fmt.Sprintf("\nRecent Emails (%d):\n", len(emails)))
	for i, email := range emails {
		if i >= chatPromptEmails {
			break
		}
		prompt.WriteString(fmt.Sprintf("- %s from %s\n", email.Subject, email.Sender))
	}

	prompt.WriteString(fmt.Sprintf("\nUpcoming Events (%d):\n", len(events)))
	for i, event := range events {
		if i >= chatPromptEvents {
			break
		}
		prompt.WriteString(fmt.Sprintf("- %s at %s\n", event.Title, event.StartTime.Format(time.RFC3339)))
	}

	prompt.WriteString(`
You can:
1. Create tasks with priority (low/medium/high/urgent)
2. Suggest email replies
3. Schedule calendar events
4. Provide helpful information and reminders

Respond naturally and suggest actions when appropriate. Use JSON format for actions:
{
  "actions": [
    {
      "type": "create_task",
      "title": "Task title",
      "priority": "medium",
      "description": "Task description"
    }
  ]
}
`)

	return prompt.String()
}

func buildReviewPrompt(tasks []Task, emails []Email, events []Event, now time.Time) string {
	taskTitles := make([]string, len(tasks))
	for i, t := range tasks {
		taskTitles[i] = t.Title
	}
	emailSubjects := make([]string, len(emails))
	for i, e := range emails {
		emailSubjects[i] = e.Subject
	}
	eventTitles := make([]string, len(events))
	for i, e := range events {
		eventTitles[i] = e.Title
	}

	var prompt strings.Builder
	prompt.WriteString("You are a proactive assistant. Review the following data and suggest actionable reminders or nudges.\n")
	prompt.WriteString(fmt.Sprintf("Tasks: %s\n", formatList(taskTitles)))
	prompt.WriteString(fmt.Sprintf("Emails: %s\n", formatList(emailSubjects)))
	prompt.WriteString(fmt.Sprintf("Events: %s\n", formatList(eventTitles)))
	prompt.WriteString(fmt.Sprintf("Now: %s\n", now.UTC().Format(time.RFC3339)))
	prompt.WriteString("Output a JSON list of suggestions, each with type, message, and optionally related_task_id, related_email_id, or related_event_id.")

	return prompt.String()
}

func formatList(items []string) string {
	if len(items) == 0 {
		return "[]"
	}
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = fmt.Sprintf("%q", item)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
