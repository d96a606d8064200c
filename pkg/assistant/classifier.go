package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"ai-assistant-be/pkg/llm"
)

const classifyTimeout = 15 * time.Second

// Classifier turns one free-text message into a ClassifiedIntent using a
// single deterministic completion. Any failure degrades to the none intent;
// classification never surfaces an error to the end user.
type Classifier struct {
	llmProvider llm.LLMProvider
	cache       ClassificationCache
	logger      *log.Logger
}

// NewClassifier creates a classifier. cache may be nil to disable memoization.
func NewClassifier(llmProvider llm.LLMProvider, cache ClassificationCache, logger *log.Logger) *Classifier {
	return &Classifier{
		llmProvider: llmProvider,
		cache:       cache,
		logger:      logger,
	}
}

// Classify resolves the (intent, action, entities) triple for message.
// The returned intent is IntentNone whenever the model call or JSON parse
// fails; callers route that to the chat fallback.
func (c *Classifier) Classify(ctx context.Context, message string) ClassifiedIntent {
	if c.cache != nil {
		if ci, ok := c.cache.Get(message); ok {
			return ci
		}
	}

	ctx, cancel := context.WithTimeout(ctx, classifyTimeout)
	defer cancel()

	prompt := c.buildPrompt(message)

	response, err := c.llmProvider.Generate(ctx, prompt,
		llm.WithTemperature(0.0),
		llm.WithMaxTokens(300),
	)
	if err != nil {
		c.logger.Printf("[WARN] intent classification failed: %v", err)
		return NoneIntent()
	}

	ci, err := c.parse(response)
	if err != nil {
		c.logger.Printf("[WARN] intent parse failed, falling back to chat: %v", err)
		return NoneIntent()
	}

	c.logger.Printf("[INTENT] resolved: %s/%s", ci.Intent, ci.Action)

	if c.cache != nil {
		c.cache.Set(message, ci)
	}
	return ci
}

func (c *Classifier) buildPrompt(message string) string {
	var prompt strings.Builder

	prompt.WriteString("You are an AI assistant. For the following user message, extract the main intent ")
	prompt.WriteString("(task, calendar, email, file, app, web, chat), ")
	prompt.WriteString("the action (create, list, open, find, last_updated, search, summarize, etc.), ")
	prompt.WriteString("and any relevant entities (title, date, file_name, app_name, query, etc.). ")
	prompt.WriteString("Respond ONLY with a JSON object like: {\"intent\":..., \"action\":..., \"entities\":{...}}.\n")
	prompt.WriteString(fmt.Sprintf("User: %s", message))

	return prompt.String()
}

func (c *Classifier) parse(response string) (ClassifiedIntent, error) {
	jsonContent := extractJSONObject(response)
	if jsonContent == "" {
		return ClassifiedIntent{}, fmt.Errorf("no JSON found in response")
	}

	var ci ClassifiedIntent
	if err := json.Unmarshal([]byte(jsonContent), &ci); err != nil {
		return ClassifiedIntent{}, fmt.Errorf("JSON unmarshal failed: %w", err)
	}

	ci.Intent = strings.ToLower(strings.TrimSpace(ci.Intent))
	ci.Action = strings.ToLower(strings.TrimSpace(ci.Action))
	if ci.Intent == "" {
		return ClassifiedIntent{}, fmt.Errorf("missing intent key")
	}
	if ci.Entities == nil {
		ci.Entities = map[string]any{}
	}

	return ci, nil
}
