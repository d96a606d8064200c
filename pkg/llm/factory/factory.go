package factory

import (
	"fmt"

	"ai-assistant-be/pkg/llm"
	"ai-assistant-be/pkg/llm/huggingface"
	"ai-assistant-be/pkg/llm/ollama"
)

func NewLLMProvider(providerType, modelName, baseURL, apiKey string) (llm.LLMProvider, error) {
	switch providerType {
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, modelName), nil
	case "huggingface":
		return huggingface.NewHuggingFaceProvider(apiKey, "", modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
