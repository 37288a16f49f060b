package chat

import (
	"errors"
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/akanupam/jharkhand-yatra/internal/api"
	"github.com/akanupam/jharkhand-yatra/internal/types"
)

type HandlerImpl struct {
	chatService Service
	logger      *slog.Logger
}

func NewHandlerImpl(chatService Service, logger *slog.Logger) *HandlerImpl {
	return &HandlerImpl{
		chatService: chatService,
		logger:      logger,
	}
}

// Chat handles POST /chat. The body carries the user's message; the reply
// is always 200 with a text answer unless the input itself is invalid.
func (h *HandlerImpl) Chat(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ChatHandler").Start(r.Context(), "Chat")
	defer span.End()

	var req types.ChatRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Invalid request body")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	reply, err := h.chatService.Chat(ctx, req.Message)
	if err != nil {
		if errors.Is(err, ErrEmptyMessage) {
			span.SetStatus(codes.Error, "Empty message")
			api.ErrorResponse(w, r, http.StatusBadRequest, "message must not be empty")
			return
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "Chat turn failed")
		h.logger.ErrorContext(ctx, "Chat turn failed", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "something went wrong")
		return
	}

	span.SetStatus(codes.Ok, "Chat turn served")
	api.WriteJSONResponse(w, r, http.StatusOK, types.ChatResponse{Reply: reply})
}
