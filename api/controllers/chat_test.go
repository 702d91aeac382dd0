package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ballinwear/assistant-backend/pkg/config"
	"github.com/ballinwear/assistant-backend/pkg/logger"
	"github.com/ballinwear/assistant-backend/pkg/types"
)

type stubRunner struct {
	reply    string
	err      error
	threadID string
	message  string
}

func (s *stubRunner) Run(_ context.Context, threadID, message string) (string, error) {
	s.threadID = threadID
	s.message = message
	return s.reply, s.err
}

func postChat(t *testing.T, handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestChatRequiresMessage(t *testing.T) {
	runner := &stubRunner{}
	handler := Chat(runner, logger.Nop())

	for _, body := range []string{`{}`, `{"message":""}`, `{"thread_id":"t-1"}`} {
		rec := postChat(t, handler, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Equal(t, "Message is required.", decodeBody[types.ErrorResponse](t, rec).Error, body)
	}
	assert.Empty(t, runner.message, "runner must not be called")
}

func TestChatRejectsMalformedJSON(t *testing.T) {
	rec := postChat(t, Chat(&stubRunner{}, logger.Nop()), `{"message":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid request body.", decodeBody[types.ErrorResponse](t, rec).Error)
}

func TestChatGeneratesThreadIDAndStripsFences(t *testing.T) {
	runner := &stubRunner{reply: "```html\n<p>Hello!</p>\n```"}
	rec := postChat(t, Chat(runner, logger.Nop()), `{"message":"Hi"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[types.ChatResponse](t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, "<p>Hello!</p>", resp.Response)
	assert.NotEmpty(t, resp.ThreadID)
	assert.Equal(t, resp.ThreadID, runner.threadID)
	assert.Equal(t, "Hi", runner.message)
}

func TestChatKeepsCallerThreadID(t *testing.T) {
	runner := &stubRunner{reply: "ok"}
	rec := postChat(t, Chat(runner, logger.Nop()), `{"message":"Hi","thread_id":"thread-42"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "thread-42", decodeBody[types.ChatResponse](t, rec).ThreadID)
	assert.Equal(t, "thread-42", runner.threadID)
}

func TestChatRejectsOversizedThreadID(t *testing.T) {
	runner := &stubRunner{reply: "ok"}
	rec := postChat(t, Chat(runner, logger.Nop()), `{"message":"Hi","thread_id":"`+strings.Repeat("x", 129)+`"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Thread id must be at most 128 characters.", decodeBody[types.ErrorResponse](t, rec).Error)
	assert.Empty(t, runner.message)
}

func TestChatTrimsThreadID(t *testing.T) {
	runner := &stubRunner{reply: "ok"}
	rec := postChat(t, Chat(runner, logger.Nop()), `{"message":"Hi","thread_id":"  thread-7  "}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "thread-7", runner.threadID)
}

func TestChatAcceptsPaddedThreadIDAtLimit(t *testing.T) {
	id := strings.Repeat("x", 128)
	runner := &stubRunner{reply: "ok"}
	rec := postChat(t, Chat(runner, logger.Nop()), `{"message":"Hi","thread_id":"  `+id+` "}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, id, runner.threadID)
	assert.Equal(t, id, decodeBody[types.ChatResponse](t, rec).ThreadID)
}

func TestChatWithoutAgent(t *testing.T) {
	rec := postChat(t, Chat(nil, logger.Nop()), `{"message":"Hi"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Chat agent not initialized.", decodeBody[types.ErrorResponse](t, rec).Error)

	rec = postChat(t, Chat(nil, logger.Nop()), `{"message":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code, "validation runs before the agent check")
}

func TestChatHidesRunnerFailures(t *testing.T) {
	runner := &stubRunner{err: errors.New("openai: 401 invalid api key sk-abc")}
	rec := postChat(t, Chat(runner, logger.Nop()), `{"message":"Hi"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal Server Error", decodeBody[types.ErrorResponse](t, rec).Error)
	assert.NotContains(t, rec.Body.String(), "sk-abc")
}

func TestRoot(t *testing.T) {
	rec := httptest.NewRecorder()
	Root().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"response":""}`, rec.Body.String())
}

type stubPinger struct{ err error }

func (s stubPinger) Ping(context.Context) error { return s.err }

func TestHealthReady(t *testing.T) {
	cfg := &config.Config{App: config.AppConfig{Env: "dev"}}

	rec := httptest.NewRecorder()
	HealthReady(cfg, logger.Nop(), map[string]Pinger{"database": stubPinger{}}).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "dev", rec.Header().Get("X-Ballin-Env"))
	assert.Equal(t, "ok", decodeBody[types.StatusResponse](t, rec).Checks["database"])

	rec = httptest.NewRecorder()
	HealthReady(cfg, logger.Nop(), map[string]Pinger{
		"database": stubPinger{},
		"redis":    stubPinger{err: errors.New("refused")},
	}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	status := decodeBody[types.StatusResponse](t, rec)
	assert.Equal(t, "unavailable", status.Status)
	assert.Equal(t, "unavailable", status.Checks["redis"])
}

func TestHealthLive(t *testing.T) {
	rec := httptest.NewRecorder()
	HealthLive(&config.Config{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"live"}`, rec.Body.String())
}
