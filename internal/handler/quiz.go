package handler

import (
	"strings"

	"englex/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const (
	levelPrefix = "level_"
	resetPrefix = "reset_"
)

// handleChooseLevel shows the level keyboard
func (h *Handler) handleChooseLevel(c tele.Context) error {
	return h.editOrSend(c, "📚 Выбери уровень:", levelMarkup())
}

// handleLevel starts a quiz for the level encoded in data
func (h *Handler) handleLevel(c tele.Context, data string) error {
	level, ok := domain.ParseLevel(strings.TrimPrefix(data, levelPrefix))
	if !ok {
		return c.Respond(&tele.CallbackResponse{Text: "Неизвестный уровень"})
	}
	return h.startLevel(c, level)
}

// handleReset forgets the studied words of a level and starts it again
func (h *Handler) handleReset(c tele.Context, data string) error {
	userID := c.Sender().ID

	level, ok := domain.ParseLevel(strings.TrimPrefix(data, resetPrefix))
	if !ok {
		return c.Respond(&tele.CallbackResponse{Text: "Неизвестный уровень"})
	}

	if _, err := h.quizService.ResetLevel(userID, level); err != nil {
		h.logger.Error("Failed to reset level", zap.Error(err), zap.Int64("user_id", userID))
		return c.Respond(&tele.CallbackResponse{Text: "Ошибка при сбросе"})
	}

	return h.startLevel(c, level)
}

func (h *Handler) startLevel(c tele.Context, level domain.Level) error {
	userID := c.Sender().ID

	unlock := h.lockUser(userID)
	defer unlock()

	ctx, cancel := requestContext()
	defer cancel()

	session, err := h.quizService.StartLevel(ctx, userID, level)
	if err != nil {
		h.logger.Error("Failed to start level",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.String("level", string(level)),
		)
		return c.Respond(&tele.CallbackResponse{Text: "Ошибка при загрузке"})
	}

	h.setSession(userID, session)

	if session.Done() {
		return h.editOrSend(c, finishedText, finishedMarkup(level))
	}
	return h.editOrSend(c, formatWordPrompt(session), quizMarkup())
}

// handleSkip moves to the next word without recording the current one
func (h *Handler) handleSkip(c tele.Context) error {
	userID := c.Sender().ID

	unlock := h.lockUser(userID)
	defer unlock()

	state := h.GetState(userID)
	if state.Session == nil {
		return c.Respond(&tele.CallbackResponse{Text: "Сначала выбери уровень"})
	}

	ctx, cancel := requestContext()
	defer cancel()

	session := h.quizService.Skip(ctx, *state.Session)
	h.setSession(userID, session)

	if session.Done() {
		return h.editOrSend(c, finishedText, finishedMarkup(session.Level))
	}
	return h.editOrSend(c, formatWordPrompt(session), quizMarkup())
}
