package agent

import (
	"net/http"

	openai "github.com/sashabaranov/go-openai"

	"github.com/ballinwear/assistant-backend/pkg/config"
)

// NewOpenAIClient builds the chat model client from config. BaseURL lets the
// service target any OpenAI-compatible endpoint.
func NewOpenAIClient(cfg config.AgentConfig) *openai.Client {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	clientCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	return openai.NewClientWithConfig(clientCfg)
}

// OptionsFromConfig maps the agent section of the config onto Options.
func OptionsFromConfig(cfg config.AgentConfig) Options {
	return Options{
		Model:       cfg.Model,
		Temperature: cfg.Temperature,
		MaxSteps:    cfg.MaxSteps,
		MaxHistory:  cfg.MaxHistory,
	}
}
