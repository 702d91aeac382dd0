package agent

import (
	"context"
	"errors"
	"sync"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/ballinwear/assistant-backend/pkg/errors"
	"github.com/ballinwear/assistant-backend/pkg/logger"
)

// scriptedModel replays canned responses and records every request.
type scriptedModel struct {
	mu        sync.Mutex
	responses []openai.ChatCompletionMessage
	err       error
	requests  []openai.ChatCompletionRequest
}

func (m *scriptedModel) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = append(m.requests, req)
	if m.err != nil {
		return openai.ChatCompletionResponse{}, m.err
	}
	if len(m.responses) == 0 {
		return openai.ChatCompletionResponse{Choices: []openai.ChatCompletionChoice{{Message: openai.ChatCompletionMessage{Content: "done"}}}}, nil
	}
	next := m.responses[0]
	m.responses = m.responses[1:]
	return openai.ChatCompletionResponse{Choices: []openai.ChatCompletionChoice{{Message: next}}}, nil
}

type recordingTools struct {
	calls []string
}

func (r *recordingTools) Definitions() []openai.Tool {
	return []openai.Tool{{Type: openai.ToolTypeFunction, Function: &openai.FunctionDefinition{Name: "get_order_details"}}}
}

func (r *recordingTools) Invoke(_ context.Context, name, args string) string {
	r.calls = append(r.calls, name+" "+args)
	return "Order summary: ORD-1"
}

func toolCall(id, name, args string) openai.ChatCompletionMessage {
	return openai.ChatCompletionMessage{
		ToolCalls: []openai.ToolCall{{
			ID:       id,
			Type:     openai.ToolTypeFunction,
			Function: openai.FunctionCall{Name: name, Arguments: args},
		}},
	}
}

func newTestAgent(t *testing.T, model ChatModel, tools ToolInvoker, memory Memory, opts Options) *Agent {
	t.Helper()
	if opts.Model == "" {
		opts.Model = "gpt-4o-mini"
	}
	a, err := New(model, tools, memory, opts, logger.Nop())
	require.NoError(t, err)
	return a
}

func TestRunExecutesToolCallsAndConcatenatesText(t *testing.T) {
	model := &scriptedModel{responses: []openai.ChatCompletionMessage{
		func() openai.ChatCompletionMessage {
			m := toolCall("call-1", "get_order_details", `{"order_id":"ORD-1"}`)
			m.Content = "<p>Let me check.</p>"
			return m
		}(),
		{Content: "<p>Your order is Delivered.</p>"},
	}}
	tools := &recordingTools{}
	memory := NewInMemory()
	a := newTestAgent(t, model, tools, memory, Options{})

	out, err := a.Run(context.Background(), "thread-1", "Where is ORD-1?")
	require.NoError(t, err)

	assert.Equal(t, "<p>Let me check.</p><p>Your order is Delivered.</p>", out)
	assert.Equal(t, []string{`get_order_details {"order_id":"ORD-1"}`}, tools.calls)
	require.Len(t, model.requests, 2)

	first := model.requests[0]
	assert.Equal(t, openai.ChatMessageRoleSystem, first.Messages[0].Role)
	assert.Equal(t, SystemPrompt, first.Messages[0].Content)
	assert.Len(t, first.Tools, 1)

	second := model.requests[1].Messages
	toolMsg := second[len(second)-1]
	assert.Equal(t, openai.ChatMessageRoleTool, toolMsg.Role)
	assert.Equal(t, "call-1", toolMsg.ToolCallID)
	assert.Equal(t, "Order summary: ORD-1", toolMsg.Content)

	history, err := memory.Load(context.Background(), "thread-1")
	require.NoError(t, err)
	require.Len(t, history, 4)
	assert.Equal(t, openai.ChatMessageRoleUser, history[0].Role)
	assert.Equal(t, openai.ChatMessageRoleAssistant, history[3].Role)
}

func TestRunReusesThreadMemoryAndIsolatesThreads(t *testing.T) {
	model := &scriptedModel{}
	memory := NewInMemory()
	a := newTestAgent(t, model, &recordingTools{}, memory, Options{})
	ctx := context.Background()

	_, err := a.Run(ctx, "thread-a", "My order id is ORD-7")
	require.NoError(t, err)
	_, err = a.Run(ctx, "thread-a", "What's the shipping address?")
	require.NoError(t, err)
	_, err = a.Run(ctx, "thread-b", "Hello")
	require.NoError(t, err)

	require.Len(t, model.requests, 3)

	secondTurn := model.requests[1].Messages
	assert.Equal(t, "My order id is ORD-7", secondTurn[1].Content, "earlier turn is replayed")
	assert.Equal(t, "What's the shipping address?", secondTurn[len(secondTurn)-1].Content)

	otherThread := model.requests[2].Messages
	require.Len(t, otherThread, 2, "system prompt plus the new message only")
	assert.Equal(t, "Hello", otherThread[1].Content)
}

func TestRunWithholdsToolsOnLastStep(t *testing.T) {
	model := &scriptedModel{responses: []openai.ChatCompletionMessage{
		toolCall("c1", "get_order_details", `{}`),
		toolCall("c2", "get_order_details", `{}`),
		{Content: "final"},
	}}
	a := newTestAgent(t, model, &recordingTools{}, NewInMemory(), Options{MaxSteps: 3})

	out, err := a.Run(context.Background(), "t", "loop please")
	require.NoError(t, err)
	assert.Equal(t, "final", out)
	require.Len(t, model.requests, 3)
	assert.NotEmpty(t, model.requests[1].Tools)
	assert.Empty(t, model.requests[2].Tools)
}

func TestRunModelFailure(t *testing.T) {
	model := &scriptedModel{err: errors.New("429 rate limited")}
	memory := NewInMemory()
	a := newTestAgent(t, model, &recordingTools{}, memory, Options{})

	_, err := a.Run(context.Background(), "t", "hi")
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeDependency))

	history, _ := memory.Load(context.Background(), "t")
	assert.Empty(t, history, "failed turns are not persisted")
}

type failingMemory struct {
	loadErr error
	saveErr error
}

func (f failingMemory) Load(context.Context, string) ([]openai.ChatCompletionMessage, error) {
	return nil, f.loadErr
}

func (f failingMemory) Save(context.Context, string, []openai.ChatCompletionMessage) error {
	return f.saveErr
}

func TestRunMemoryFailures(t *testing.T) {
	_, err := newTestAgent(t, &scriptedModel{}, &recordingTools{}, failingMemory{loadErr: errors.New("down")}, Options{}).
		Run(context.Background(), "t", "hi")
	require.Error(t, err)

	out, err := newTestAgent(t, &scriptedModel{}, &recordingTools{}, failingMemory{saveErr: errors.New("down")}, Options{}).
		Run(context.Background(), "t", "hi")
	require.NoError(t, err, "a save failure still returns the answer")
	assert.Equal(t, "done", out)
}

func TestNewValidatesDependencies(t *testing.T) {
	_, err := New(nil, &recordingTools{}, NewInMemory(), Options{Model: "m"}, nil)
	assert.Error(t, err)
	_, err = New(&scriptedModel{}, nil, NewInMemory(), Options{Model: "m"}, nil)
	assert.Error(t, err)
	_, err = New(&scriptedModel{}, &recordingTools{}, nil, Options{Model: "m"}, nil)
	assert.Error(t, err)
	_, err = New(&scriptedModel{}, &recordingTools{}, NewInMemory(), Options{}, nil)
	assert.Error(t, err)

	a, err := New(&scriptedModel{}, &recordingTools{}, NewInMemory(), Options{Model: "m"}, nil)
	require.NoError(t, err)
	assert.Equal(t, defaultMaxSteps, a.opts.MaxSteps)
	assert.Equal(t, SystemPrompt, a.opts.SystemPrompt)
}

func TestRunDropsToolCallsRequestedOnLastStep(t *testing.T) {
	model := &scriptedModel{responses: []openai.ChatCompletionMessage{
		toolCall("c1", "get_order_details", `{}`),
	}}
	tools := &recordingTools{}
	memory := NewInMemory()
	a := newTestAgent(t, model, tools, memory, Options{MaxSteps: 1})

	_, err := a.Run(context.Background(), "t", "hi")
	require.NoError(t, err)
	assert.Empty(t, tools.calls)

	history, err := memory.Load(context.Background(), "t")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Empty(t, history[1].ToolCalls)
}
