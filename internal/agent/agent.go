// Package agent runs the support assistant: a chat model that answers from
// the store by calling the registered tools, with per-thread memory.
package agent

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	pkgerrors "github.com/ballinwear/assistant-backend/pkg/errors"
	"github.com/ballinwear/assistant-backend/pkg/logger"
)

const (
	defaultMaxSteps   = 8
	defaultMaxHistory = 60
)

// ChatModel is the slice of the OpenAI client the agent needs.
type ChatModel interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// ToolInvoker advertises and runs tools; *tools.Registry satisfies it.
type ToolInvoker interface {
	Definitions() []openai.Tool
	Invoke(ctx context.Context, name, rawArgs string) string
}

type Options struct {
	Model       string
	Temperature float32
	// MaxSteps bounds model calls per turn. The last step is offered no tools
	// so the model has to answer.
	MaxSteps     int
	MaxHistory   int
	SystemPrompt string
}

type Agent struct {
	model  ChatModel
	tools  ToolInvoker
	memory Memory
	opts   Options
	logg   *logger.Logger
}

func New(model ChatModel, tools ToolInvoker, memory Memory, opts Options, logg *logger.Logger) (*Agent, error) {
	if model == nil {
		return nil, fmt.Errorf("chat model required")
	}
	if tools == nil {
		return nil, fmt.Errorf("tool invoker required")
	}
	if memory == nil {
		return nil, fmt.Errorf("memory required")
	}
	if strings.TrimSpace(opts.Model) == "" {
		return nil, fmt.Errorf("model name required")
	}
	if opts.MaxSteps <= 0 {
		opts.MaxSteps = defaultMaxSteps
	}
	if opts.MaxHistory <= 0 {
		opts.MaxHistory = defaultMaxHistory
	}
	if opts.SystemPrompt == "" {
		opts.SystemPrompt = SystemPrompt
	}
	if logg == nil {
		logg = logger.Nop()
	}
	return &Agent{model: model, tools: tools, memory: memory, opts: opts, logg: logg}, nil
}

// Run answers one user message within a thread and returns the assistant
// text produced during the turn, concatenated in order.
func (a *Agent) Run(ctx context.Context, threadID, message string) (string, error) {
	ctx = a.logg.WithThreadID(ctx, threadID)

	history, err := a.memory.Load(ctx, threadID)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load conversation")
	}
	history = append(history, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: message,
	})

	var reply strings.Builder
	defs := a.tools.Definitions()
	for step := 0; step < a.opts.MaxSteps; step++ {
		req := openai.ChatCompletionRequest{
			Model:       a.opts.Model,
			Temperature: a.opts.Temperature,
			Messages:    a.withSystemPrompt(history),
		}
		if step < a.opts.MaxSteps-1 && len(defs) > 0 {
			req.Tools = defs
		}

		resp, err := a.model.CreateChatCompletion(ctx, req)
		if err != nil {
			return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "chat completion")
		}
		if len(resp.Choices) == 0 {
			return "", pkgerrors.New(pkgerrors.CodeDependency, "chat completion returned no choices")
		}

		msg := resp.Choices[0].Message
		msg.Role = openai.ChatMessageRoleAssistant
		if req.Tools == nil {
			// unanswered tool calls would poison the next turn of the thread
			msg.ToolCalls = nil
		}
		history = append(history, msg)
		reply.WriteString(msg.Content)

		if len(msg.ToolCalls) == 0 {
			break
		}
		for _, call := range msg.ToolCalls {
			a.logg.Debug(a.logg.WithTool(ctx, call.Function.Name), "model requested tool")
			history = append(history, openai.ChatCompletionMessage{
				Role:       openai.ChatMessageRoleTool,
				Content:    a.tools.Invoke(ctx, call.Function.Name, call.Function.Arguments),
				Name:       call.Function.Name,
				ToolCallID: call.ID,
			})
		}
	}

	if err := a.memory.Save(ctx, threadID, trimHistory(history, a.opts.MaxHistory)); err != nil {
		// The answer is still worth returning; the thread just loses this turn.
		a.logg.Error(ctx, "failed to persist conversation", err)
	}
	return reply.String(), nil
}

func (a *Agent) withSystemPrompt(history []openai.ChatCompletionMessage) []openai.ChatCompletionMessage {
	messages := make([]openai.ChatCompletionMessage, 0, len(history)+1)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: a.opts.SystemPrompt,
	})
	return append(messages, history...)
}
