package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akanupam/jharkhand-yatra/internal/types"
)

type stubChatService struct {
	reply string
	err   error
	got   string
}

func (s *stubChatService) Chat(_ context.Context, message string) (string, error) {
	s.got = message
	return s.reply, s.err
}

func postChat(t *testing.T, handler *HandlerImpl, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.Chat(rec, req)
	return rec
}

func TestChatHandlerReturnsReply(t *testing.T) {
	svc := &stubChatService{reply: "Visit Hundru Falls!"}
	handler := NewHandlerImpl(svc, discardLogger())

	rec := postChat(t, handler, `{"message": "what should I see near ranchi"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp types.ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Visit Hundru Falls!", resp.Reply)
	assert.Equal(t, "what should I see near ranchi", svc.got)
}

func TestChatHandlerRejectsEmptyMessage(t *testing.T) {
	handler := NewHandlerImpl(&stubChatService{err: ErrEmptyMessage}, discardLogger())

	rec := postChat(t, handler, `{"message": "   "}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "message must not be empty")
}

func TestChatHandlerRejectsMalformedBody(t *testing.T) {
	handler := NewHandlerImpl(&stubChatService{}, discardLogger())

	tests := []struct {
		name string
		body string
	}{
		{"bad json", `{"message": `},
		{"empty body", ``},
		{"unknown field", `{"msg": "hello"}`},
		{"two objects", `{"message": "a"}{"message": "b"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postChat(t, handler, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestChatHandlerInternalError(t *testing.T) {
	handler := NewHandlerImpl(&stubChatService{err: assert.AnError}, discardLogger())

	rec := postChat(t, handler, `{"message": "hello"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
}
