// Package tools exposes the catalog, sales ranking and order lookups as named,
// schema-described operations the chat model can call.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"

	pkgerrors "github.com/ballinwear/assistant-backend/pkg/errors"
	"github.com/ballinwear/assistant-backend/pkg/logger"
	"github.com/ballinwear/assistant-backend/pkg/metrics"
)

// Tool is one callable operation.
type Tool struct {
	Name        string
	Description string
	Parameters  jsonschema.Definition
	// Run returns the text handed back to the model.
	Run func(ctx context.Context, args json.RawMessage) (string, error)
	// Fallback converts a Run failure into model-observable text. When nil the
	// failure is reported as a JSON error object.
	Fallback func(err error) string
}

// Registry holds the tools in registration order.
type Registry struct {
	mu      sync.RWMutex
	tools   map[string]Tool
	order   []string
	logg    *logger.Logger
	metrics *metrics.ToolMetrics
}

func NewRegistry(logg *logger.Logger, m *metrics.ToolMetrics) *Registry {
	if logg == nil {
		logg = logger.Nop()
	}
	return &Registry{
		tools:   map[string]Tool{},
		logg:    logg,
		metrics: m,
	}
}

// Register adds tools, rejecting unnamed, duplicate or runless entries.
func (r *Registry) Register(tools ...Tool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, tool := range tools {
		name := strings.TrimSpace(tool.Name)
		if name == "" {
			return fmt.Errorf("tool name required")
		}
		if tool.Run == nil {
			return fmt.Errorf("tool %s: run func required", name)
		}
		if _, exists := r.tools[name]; exists {
			return fmt.Errorf("tool %s already registered", name)
		}
		tool.Name = name
		r.tools[name] = tool
		r.order = append(r.order, name)
	}
	return nil
}

// Names lists registered tool names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.order...)
}

// Definitions describes every tool in the chat completion wire format.
func (r *Registry) Definitions() []openai.Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	defs := make([]openai.Tool, 0, len(r.order))
	for _, name := range r.order {
		tool := r.tools[name]
		params := tool.Parameters
		defs = append(defs, openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        tool.Name,
				Description: tool.Description,
				Parameters:  params,
			},
		})
	}
	return defs
}

// Invoke runs the named tool and always returns text for the model: the
// tool's output, its fallback, or a JSON error object. It never panics.
func (r *Registry) Invoke(ctx context.Context, name, rawArgs string) (out string) {
	r.mu.RLock()
	tool, ok := r.tools[name]
	r.mu.RUnlock()

	ctx = r.logg.WithTool(ctx, name)
	if !ok {
		r.logg.Warn(ctx, "unknown tool requested")
		r.metrics.IncFailure(name)
		return ErrorJSON(fmt.Sprintf("unknown tool: %s", name))
	}

	start := time.Now()
	defer func() {
		r.metrics.ObserveDuration(name, time.Since(start))
		if rec := recover(); rec != nil {
			err := fmt.Errorf("tool panic: %v", rec)
			r.logg.Error(ctx, "tool panicked", err)
			r.metrics.IncFailure(name)
			out = fallback(tool, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "tool failed"))
		}
	}()

	result, err := tool.Run(ctx, normalizeArgs(rawArgs))
	if err != nil {
		r.metrics.IncFailure(name)
		if pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
			r.logg.Warn(ctx, err.Error())
			return ErrorJSON(pkgerrors.As(err).Message())
		}
		r.logg.Error(ctx, "tool failed", err)
		return fallback(tool, err)
	}

	r.metrics.IncSuccess(name)
	r.logg.Debug(ctx, "tool succeeded")
	return result
}

func fallback(tool Tool, err error) string {
	if tool.Fallback != nil {
		return tool.Fallback(err)
	}
	message := "tool failed"
	if typed := pkgerrors.As(err); typed != nil && typed.Message() != "" {
		message = typed.Message()
	}
	return ErrorJSON(message)
}

func normalizeArgs(raw string) json.RawMessage {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		return json.RawMessage("{}")
	}
	return json.RawMessage(raw)
}

// DecodeArgs unmarshals tool arguments, reporting malformed input as a
// validation error.
func DecodeArgs(raw json.RawMessage, dst any) error {
	if err := json.Unmarshal(raw, dst); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, fmt.Sprintf("invalid arguments: %v", err))
	}
	return nil
}

// ErrorJSON renders {"error": message} indented by two spaces.
func ErrorJSON(message string) string {
	out, err := json.MarshalIndent(map[string]string{"error": message}, "", "  ")
	if err != nil {
		return `{"error": "tool failed"}`
	}
	return string(out)
}
