package controllers

import (
	"context"
	"net/http"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/ballinwear/assistant-backend/api/responses"
	"github.com/ballinwear/assistant-backend/api/validators"
	"github.com/ballinwear/assistant-backend/internal/agent"
	pkgerrors "github.com/ballinwear/assistant-backend/pkg/errors"
	"github.com/ballinwear/assistant-backend/pkg/logger"
	"github.com/ballinwear/assistant-backend/pkg/types"
)

const (
	agentNotInitializedMessage = "Chat agent not initialized."
	threadIDTooLongMessage     = "Thread id must be at most 128 characters."
	maxThreadIDLength          = 128
)

// ChatRunner answers one message within a conversation thread.
type ChatRunner interface {
	Run(ctx context.Context, threadID, message string) (string, error)
}

type chatRequest struct {
	ThreadID string `json:"thread_id"`
	Message  string `json:"message" validate:"notblank"`
}

// Chat handles POST /api/chat. A nil runner answers 500 "Chat agent not
// initialized." once the request itself is valid.
func Chat(runner ChatRunner, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req chatRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		// the limit applies to the trimmed id; padding alone never rejects
		threadID := validators.SanitizeString(req.ThreadID, 0)
		if utf8.RuneCountInString(threadID) > maxThreadIDLength {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, threadIDTooLongMessage))
			return
		}
		if threadID == "" {
			threadID = uuid.NewString()
		}
		if logg != nil {
			ctx = logg.WithThreadID(ctx, threadID)
		}

		if runner == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeUnavailable, agentNotInitializedMessage))
			return
		}

		reply, err := runner.Run(ctx, threadID, req.Message)
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "chat turn failed"))
			return
		}

		responses.WriteSuccess(w, types.ChatResponse{
			Response: agent.StripCodeFences(reply),
			Success:  true,
			ThreadID: threadID,
		})
	}
}
