package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/krishisahayak/app-backend/internal/service/chat"
	"github.com/krishisahayak/app-backend/internal/types"
)

// SendMessageRequest is the request body for sending a chat message.
type SendMessageRequest struct {
	Prompt string `json:"prompt"`
}

// SendMessageResponse carries the assistant's reply.
type SendMessageResponse struct {
	Message types.Message `json:"message"`
}

// MessagesResponse carries the full ordered conversation.
type MessagesResponse struct {
	Messages []types.Message `json:"messages"`
	Sending  bool            `json:"sending"`
}

// MicResponse reports the recording state after a toggle.
type MicResponse struct {
	Recording bool `json:"recording"`
}

// ListMessages handles GET /app/chat/messages.
func (s *Server) ListMessages(c echo.Context) error {
	return c.JSON(http.StatusOK, MessagesResponse{
		Messages: s.chatService.Messages(),
		Sending:  s.chatService.Sending(),
	})
}

// SendMessage handles POST /app/chat/messages.
func (s *Server) SendMessage(c echo.Context) error {
	var req SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	msg, err := s.chatService.Send(c.Request().Context(), req.Prompt)
	switch {
	case errors.Is(err, chat.ErrEmptyPrompt):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "prompt must not be empty"})
	case errors.Is(err, chat.ErrBusy):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: "a send is already in progress"})
	case err != nil:
		s.logger.WithError(err).Error("failed to send message")
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to send message"})
	}

	return c.JSON(http.StatusOK, SendMessageResponse{Message: msg})
}

// ToggleMic handles POST /app/chat/mic. The voice flow's alerts travel over
// the event stream, so the handler only reports the new recording state.
func (s *Server) ToggleMic(c echo.Context) error {
	if err := s.chatService.ToggleMic(c.Request().Context()); err != nil {
		s.logger.WithError(err).Warn("mic toggle failed")
	}
	return c.JSON(http.StatusOK, MicResponse{Recording: s.chatService.Recording()})
}

// Speak handles POST /app/chat/messages/:id/speak.
func (s *Server) Speak(c echo.Context) error {
	err := s.chatService.Speak(c.Request().Context(), c.Param("id"))
	switch {
	case errors.Is(err, chat.ErrMessageNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "message not found"})
	case err != nil:
		// Already surfaced to the user as an alert.
		return c.JSON(http.StatusBadGateway, ErrorResponse{Error: "could not play audio"})
	}
	return c.JSON(http.StatusOK, SuccessResponse{Success: true})
}
