package assistant

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"
)

const (
	routerTaskLimit   = 10
	routerEventLimit  = 10
	routerEmailLimit  = 10
	routerWebResults  = 5
	routerCallTimeout = 10 * time.Second
)

// Router dispatches a classified message to the matching sub-handler.
// Exactly one branch executes per message; any branch whose backing call
// fails answers with a branch-local apology instead of raising. Intents
// with no matching branch fall through to the chat fallback.
type Router struct {
	tasks  TaskStore
	events EventStore
	emails EmailStore
	files  FileFinder
	web    WebSearch
	logger *log.Logger
}

func NewRouter(tasks TaskStore, events EventStore, emails EmailStore, files FileFinder, web WebSearch, logger *log.Logger) *Router {
	return &Router{
		tasks:  tasks,
		events: events,
		emails: emails,
		files:  files,
		web:    web,
		logger: logger,
	}
}

// Route answers (reply, true) when a specialized branch handled the
// message, and ("", false) when the caller should run the chat fallback.
func (r *Router) Route(ctx context.Context, userID, message string, ci ClassifiedIntent) (string, bool) {
	switch ci.Intent {
	case IntentFile, IntentApp:
		return r.handleFile(ctx, message, ci), true
	case IntentTask:
		switch ci.Action {
		case ActionCreate:
			return r.createTask(ctx, userID, message, ci), true
		case ActionList:
			return r.listTasks(ctx, userID), true
		}
	case IntentCalendar:
		switch ci.Action {
		case ActionCreate:
			return r.createEvent(ctx, userID, message, ci), true
		case ActionList:
			return r.listEvents(ctx, userID), true
		}
	case IntentEmail:
		if ci.Action == ActionList {
			return r.listEmails(ctx, userID), true
		}
	case IntentWeb:
		if ci.Action == ActionSearch {
			return r.searchWeb(ctx, message, ci), true
		}
	}
	return "", false
}

func (r *Router) handleFile(ctx context.Context, message string, ci ClassifiedIntent) string {
	query := entityString(ci.Entities, "file_name")
	if query == "" {
		query = entityString(ci.Entities, "app_name")
	}
	if query == "" {
		query = message
	}

	ctx, cancel := context.WithTimeout(ctx, routerCallTimeout)
	defer cancel()

	matches, err := r.files.Search(ctx, query)
	if err != nil {
		r.logger.Printf("[ERROR] file search failed: %v", err)
		return "Sorry, I couldn't search for files right now."
	}
	if len(matches) == 0 {
		return fmt.Sprintf("I couldn't find any file or app matching '%s'.", query)
	}

	best := matches[0]
	switch ci.Action {
	case ActionOpen:
		open, err := r.files.Open(ctx, best.Name)
		if err != nil || open.Status != "opened" {
			detail := ""
			if err != nil {
				r.logger.Printf("[ERROR] file open failed: %v", err)
			} else {
				detail = open.Message
			}
			return fmt.Sprintf("I found '%s', but couldn't open it. %s", best.Name, detail)
		}
		return fmt.Sprintf("I found and opened '%s' (last updated %s).", best.Name, best.LastModified)
	case ActionLastUpdated:
		return fmt.Sprintf("The file '%s' was last updated on %s.", best.Name, best.LastModified)
	default:
		return fmt.Sprintf("I found '%s' at %s (last updated %s).", best.Name, best.Path, best.LastModified)
	}
}

func (r *Router) createTask(ctx context.Context, userID, message string, ci ClassifiedIntent) string {
	title := entityString(ci.Entities, "title")
	if title == "" {
		title = message
	}

	input := TaskInput{Title: title}
	if raw := entityString(ci.Entities, "due_date"); raw != "" {
		if due, err := parseISOTime(raw); err == nil {
			input.DueDate = &due
		}
	}

	ctx, cancel := context.WithTimeout(ctx, routerCallTimeout)
	defer cancel()

	if _, err := r.tasks.Create(ctx, userID, input); err != nil {
		r.logger.Printf("[ERROR] task create failed: %v", err)
		return "Sorry, I couldn't create the task."
	}
	return fmt.Sprintf("Task created: %s", title)
}

func (r *Router) listTasks(ctx context.Context, userID string) string {
	ctx, cancel := context.WithTimeout(ctx, routerCallTimeout)
	defer cancel()

	tasks, err := r.tasks.ListRecent(ctx, userID, routerTaskLimit)
	if err != nil {
		r.logger.Printf("[ERROR] task list failed: %v", err)
		return "Sorry, I couldn't fetch your tasks."
	}
	if len(tasks) == 0 {
		return "You have no tasks."
	}

	lines := make([]string, len(tasks))
	for i, t := range tasks {
		lines[i] = fmt.Sprintf("- %s (due %s)", t.Title, formatDueDate(t.DueDate))
	}
	return fmt.Sprintf("Here are your tasks:\n%s", strings.Join(lines, "\n"))
}

func (r *Router) createEvent(ctx context.Context, userID, message string, ci ClassifiedIntent) string {
	title := entityString(ci.Entities, "title")
	if title == "" {
		title = message
	}

	input := EventInput{Title: title}
	if raw := entityString(ci.Entities, "start_time"); raw != "" {
		if start, err := parseISOTime(raw); err == nil {
			input.StartTime = start
		}
	}
	if raw := entityString(ci.Entities, "end_time"); raw != "" {
		if end, err := parseISOTime(raw); err == nil {
			input.EndTime = end
		}
	}

	ctx, cancel := context.WithTimeout(ctx, routerCallTimeout)
	defer cancel()

	if _, err := r.events.Create(ctx, userID, input); err != nil {
		r.logger.Printf("[ERROR] event create failed: %v", err)
		return "Sorry, I couldn't create the event."
	}
	return fmt.Sprintf("Event created: %s", title)
}

func (r *Router) listEvents(ctx context.Context, userID string) string {
	ctx, cancel := context.WithTimeout(ctx, routerCallTimeout)
	defer cancel()

	events, err := r.events.ListUpcoming(ctx, userID, routerEventLimit)
	if err != nil {
		r.logger.Printf("[ERROR] event list failed: %v", err)
		return "Sorry, I couldn't fetch your events."
	}
	if len(events) == 0 {
		return "You have no upcoming events."
	}

	lines := make([]string, len(events))
	for i, e := range events {
		lines[i] = fmt.Sprintf("- %s (%s)", e.Title, e.StartTime.Format(time.RFC3339))
	}
	return fmt.Sprintf("Here are your upcoming events:\n%s", strings.Join(lines, "\n"))
}

func (r *Router) listEmails(ctx context.Context, userID string) string {
	ctx, cancel := context.WithTimeout(ctx, routerCallTimeout)
	defer cancel()

	emails, err := r.emails.ListRecent(ctx, userID, routerEmailLimit)
	if err != nil {
		r.logger.Printf("[ERROR] email list failed: %v", err)
		return "Sorry, I couldn't fetch your emails."
	}
	if len(emails) == 0 {
		return "You have no recent emails."
	}

	lines := make([]string, len(emails))
	for i, e := range emails {
		lines[i] = fmt.Sprintf("- %s from %s", e.Subject, e.Sender)
	}
	return fmt.Sprintf("Here are your recent emails:\n%s", strings.Join(lines, "\n"))
}

func (r *Router) searchWeb(ctx context.Context, message string, ci ClassifiedIntent) string {
	query := entityString(ci.Entities, "query")
	if query == "" {
		query = message
	}

	ctx, cancel := context.WithTimeout(ctx, routerCallTimeout)
	defer cancel()

	results, err := r.web.Search(ctx, query, routerWebResults)
	if err != nil {
		r.logger.Printf("[ERROR] web search failed: %v", err)
		return "Sorry, I couldn't search the web right now."
	}
	if len(results) == 0 {
		return "No web results found."
	}

	lines := make([]string, len(results))
	for i, res := range results {
		lines[i] = fmt.Sprintf("- %s: %s", res.Title, res.Snippet)
	}
	return fmt.Sprintf("Here are some web results:\n%s", strings.Join(lines, "\n"))
}

func entityString(entities map[string]any, key string) string {
	if entities == nil {
		return ""
	}
	if v, ok := entities[key]; ok {
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

func formatDueDate(due *time.Time) string {
	if due == nil {
		return "no due date"
	}
	return due.Format("2006-01-02")
}
