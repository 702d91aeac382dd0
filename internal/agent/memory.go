package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// Memory keeps each conversation's message history, keyed by thread id.
// Threads never observe each other's history.
type Memory interface {
	Load(ctx context.Context, threadID string) ([]openai.ChatCompletionMessage, error)
	Save(ctx context.Context, threadID string, history []openai.ChatCompletionMessage) error
}

// InMemory is a process-local Memory. History is lost on restart.
type InMemory struct {
	mu      sync.RWMutex
	threads map[string][]openai.ChatCompletionMessage
}

func NewInMemory() *InMemory {
	return &InMemory{threads: map[string][]openai.ChatCompletionMessage{}}
}

func (m *InMemory) Load(_ context.Context, threadID string) ([]openai.ChatCompletionMessage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return cloneHistory(m.threads[threadID]), nil
}

func (m *InMemory) Save(_ context.Context, threadID string, history []openai.ChatCompletionMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.threads[threadID] = cloneHistory(history)
	return nil
}

// ThreadStore persists serialized histories; *redis.Client from pkg/redis
// satisfies it.
type ThreadStore interface {
	LoadThread(ctx context.Context, threadID string) ([]byte, bool, error)
	SaveThread(ctx context.Context, threadID string, payload []byte, ttl time.Duration) error
}

// RedisMemory stores histories as JSON with a sliding TTL so idle threads expire.
type RedisMemory struct {
	store ThreadStore
	ttl   time.Duration
}

func NewRedisMemory(store ThreadStore, ttl time.Duration) *RedisMemory {
	return &RedisMemory{store: store, ttl: ttl}
}

func (m *RedisMemory) Load(ctx context.Context, threadID string) ([]openai.ChatCompletionMessage, error) {
	payload, found, err := m.store.LoadThread(ctx, threadID)
	if err != nil {
		return nil, fmt.Errorf("load thread %s: %w", threadID, err)
	}
	if !found {
		return nil, nil
	}
	var history []openai.ChatCompletionMessage
	if err := json.Unmarshal(payload, &history); err != nil {
		return nil, fmt.Errorf("decode thread %s: %w", threadID, err)
	}
	return history, nil
}

func (m *RedisMemory) Save(ctx context.Context, threadID string, history []openai.ChatCompletionMessage) error {
	payload, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("encode thread %s: %w", threadID, err)
	}
	if err := m.store.SaveThread(ctx, threadID, payload, m.ttl); err != nil {
		return fmt.Errorf("save thread %s: %w", threadID, err)
	}
	return nil
}

func cloneHistory(history []openai.ChatCompletionMessage) []openai.ChatCompletionMessage {
	if len(history) == 0 {
		return nil
	}
	out := make([]openai.ChatCompletionMessage, len(history))
	copy(out, history)
	return out
}

// trimHistory keeps roughly the last max messages, cutting only at a user turn
// so a tool result is never separated from the call that requested it. A
// single turn longer than max is kept whole.
func trimHistory(history []openai.ChatCompletionMessage, max int) []openai.ChatCompletionMessage {
	if max <= 0 || len(history) <= max {
		return history
	}
	for start := len(history) - max; start < len(history); start++ {
		if history[start].Role == openai.ChatMessageRoleUser {
			return history[start:]
		}
	}
	for start := len(history) - max - 1; start >= 0; start-- {
		if history[start].Role == openai.ChatMessageRoleUser {
			return history[start:]
		}
	}
	return history
}
