package factory

import (
	"fmt"

	"viralpost-be/pkg/llm"
	"viralpost-be/pkg/llm/gemini"
	"viralpost-be/pkg/llm/ollama"
	"viralpost-be/pkg/llm/openai"
)

type ProviderConfig struct {
	Provider string // "gemini", "ollama", "openai"
	Model    string
	APIKey   string
	BaseURL  string // Ollama base URL or OpenAI-compatible endpoint
}

func NewProvider(cfg ProviderConfig) (llm.Provider, error) {
	switch cfg.Provider {
	case "gemini":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("gemini api key is required")
		}
		return gemini.NewGeminiProvider(cfg.APIKey, cfg.Model), nil
	case "ollama":
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, cfg.Model), nil
	case "openai":
		return openai.NewOpenAIProvider(cfg.APIKey, cfg.Model, cfg.BaseURL)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}
